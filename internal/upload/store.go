// Package upload stores image files under a public directory and hands back
// their URL paths. Only the extension is checked — there is no size limit
// and no content sniffing.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/xid"

	"github.com/jmartel/portfolio-api/internal/apperror"
)

// allowedExtensions is the image allowlist for uploads.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Store writes uploaded files into a single flat directory, served
// statically under /uploads/.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created on the
// first save, not here, so constructing a Store never fails.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save validates, sanitizes and writes an uploaded file, returning its
// public URL path. When the sanitized name is already taken, an xid infix
// is inserted rather than overwriting the earlier upload.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", apperror.ValidationFailed("file", "no file selected")
	}

	name := SanitizeFilename(filename)
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return "", apperror.ValidationFailed("file", "File type not allowed")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("upload: creating directory: %w", err)
	}

	dest := filepath.Join(s.dir, name)
	if _, err := os.Stat(dest); err == nil {
		base := strings.TrimSuffix(name, ext)
		name = fmt.Sprintf("%s-%s%s", base, xid.New().String(), ext)
		dest = filepath.Join(s.dir, name)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("upload: creating file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("upload: writing file: %w", err)
	}

	return "/uploads/" + name, nil
}

// SanitizeFilename strips any path component and collapses every run of
// characters outside [A-Za-z0-9._-] into a single underscore.
func SanitizeFilename(filename string) string {
	name := filepath.Base(filename)
	name = unsafeChars.ReplaceAllString(name, "_")
	return strings.Trim(name, "._")
}
