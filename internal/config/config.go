// Package config holds the process configuration, read once at startup and
// passed by reference into each component. Handlers and services never look
// up environment variables themselves.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is the full configuration surface of the server.
type Config struct {
	Port      int
	DBPath    string
	JWTSecret string

	// AllowedOrigins are the CORS origins allowed to call the API.
	AllowedOrigins []string

	// UploadDir is where uploaded images are written; it is also served
	// statically under /uploads/.
	UploadDir string

	Mail MailConfig
}

// MailConfig configures the SMTP transport used by the contact notifier.
// Recipient receives the contact-form messages; Sender is the From address.
type MailConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Sender    string
	Recipient string
}

// Load reads the configuration from the environment, applying development
// defaults where a variable is unset. It fails only on values that cannot
// be parsed — a missing optional setting is not an error.
func Load() (Config, error) {
	cfg := Config{
		Port:      8080,
		DBPath:    "data/portfolio.db",
		JWTSecret: os.Getenv("JWT_SECRET"),
		UploadDir: "data/uploads",
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}

	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		cfg.UploadDir = dir
	}

	if origins := os.Getenv("FRONTEND_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		// Local development defaults matching the Vite dev server.
		cfg.AllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}

	cfg.Mail = MailConfig{
		Host:      os.Getenv("MAIL_SERVER"),
		Port:      587,
		Username:  os.Getenv("MAIL_USERNAME"),
		Password:  os.Getenv("MAIL_PASSWORD"),
		Sender:    os.Getenv("MAIL_DEFAULT_SENDER"),
		Recipient: os.Getenv("MAIL_DEFAULT_SENDER"),
	}
	if portStr := os.Getenv("MAIL_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid MAIL_PORT %q: %w", portStr, err)
		}
		cfg.Mail.Port = port
	}

	return cfg, nil
}
