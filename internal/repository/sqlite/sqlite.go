// Package sqlite implements the repository interfaces on SQLite.
//
// modernc.org/sqlite is a pure-Go translation of SQLite — no CGo, so the
// server cross-compiles cleanly. database/sql gives us the connection pool;
// ":memory:" databases keep the repository tests fast and isolated.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps the sql.DB pool. The per-entity repositories (Skills, Projects,
// and so on) are created from it and share the pool.
type DB struct {
	conn *sql.DB
}

// New opens the database at dbPath (":memory:" for tests), enables WAL and
// foreign keys, and runs migrations.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL allows concurrent reads while a write is in progress.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are off by default in SQLite.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps it idempotent.
func (db *DB) migrate() error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"personal_info", `
			CREATE TABLE IF NOT EXISTS personal_info (
				id           TEXT PRIMARY KEY,
				name         TEXT NOT NULL DEFAULT '',
				title        TEXT NOT NULL DEFAULT '',
				description  TEXT NOT NULL DEFAULT '',
				email        TEXT NOT NULL DEFAULT '',
				phone        TEXT NOT NULL DEFAULT '',
				location     TEXT NOT NULL DEFAULT '',
				github_url   TEXT NOT NULL DEFAULT '',
				linkedin_url TEXT NOT NULL DEFAULT '',
				twitter_url  TEXT NOT NULL DEFAULT '',
				created_at   DATETIME NOT NULL,
				updated_at   DATETIME NOT NULL
			);
		`},
		{"skills", `
			CREATE TABLE IF NOT EXISTS skills (
				id          TEXT PRIMARY KEY,
				name        TEXT NOT NULL,
				category    TEXT NOT NULL,
				level       INTEGER NOT NULL DEFAULT 0,
				color       TEXT NOT NULL DEFAULT '',
				order_index INTEGER NOT NULL DEFAULT 0,
				created_at  DATETIME NOT NULL,
				updated_at  DATETIME NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_skills_order ON skills(order_index, category, name);
		`},
		{"projects", `
			CREATE TABLE IF NOT EXISTS projects (
				id           TEXT PRIMARY KEY,
				title        TEXT NOT NULL,
				description  TEXT NOT NULL DEFAULT '',
				category     TEXT NOT NULL DEFAULT '',
				image_url    TEXT NOT NULL DEFAULT '',
				technologies TEXT NOT NULL DEFAULT '[]',
				features     TEXT NOT NULL DEFAULT '[]',
				downloads    TEXT NOT NULL DEFAULT '',
				rating       REAL NOT NULL DEFAULT 0,
				users        TEXT NOT NULL DEFAULT '',
				status       TEXT NOT NULL DEFAULT '',
				github_url   TEXT NOT NULL DEFAULT '',
				demo_url     TEXT NOT NULL DEFAULT '',
				store_url    TEXT NOT NULL DEFAULT '',
				order_index  INTEGER NOT NULL DEFAULT 0,
				created_at   DATETIME NOT NULL,
				updated_at   DATETIME NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_projects_order ON projects(order_index, created_at);
		`},
		{"experiences", `
			CREATE TABLE IF NOT EXISTS experiences (
				id              TEXT PRIMARY KEY,
				title           TEXT NOT NULL,
				company         TEXT NOT NULL,
				location        TEXT NOT NULL DEFAULT '',
				period          TEXT NOT NULL DEFAULT '',
				employment_type TEXT NOT NULL DEFAULT '',
				description     TEXT NOT NULL DEFAULT '',
				achievements    TEXT NOT NULL DEFAULT '[]',
				technologies    TEXT NOT NULL DEFAULT '[]',
				color           TEXT NOT NULL DEFAULT '',
				order_index     INTEGER NOT NULL DEFAULT 0,
				created_at      DATETIME NOT NULL,
				updated_at      DATETIME NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_experiences_order ON experiences(order_index, created_at);
		`},
		{"education", `
			CREATE TABLE IF NOT EXISTS education (
				id             TEXT PRIMARY KEY,
				degree         TEXT NOT NULL,
				school         TEXT NOT NULL,
				location       TEXT NOT NULL DEFAULT '',
				period         TEXT NOT NULL DEFAULT '',
				specialization TEXT NOT NULL DEFAULT '',
				order_index    INTEGER NOT NULL DEFAULT 0,
				created_at     DATETIME NOT NULL,
				updated_at     DATETIME NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_education_order ON education(order_index, created_at);
		`},
		{"admin_users", `
			CREATE TABLE IF NOT EXISTS admin_users (
				id            TEXT PRIMARY KEY,
				username      TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				email         TEXT NOT NULL UNIQUE,
				is_active     INTEGER NOT NULL DEFAULT 1,
				created_at    DATETIME NOT NULL,
				last_login    DATETIME
			);
		`},
		{"blog_posts", `
			CREATE TABLE IF NOT EXISTS blog_posts (
				id           TEXT PRIMARY KEY,
				title        TEXT NOT NULL,
				slug         TEXT NOT NULL,
				content      TEXT NOT NULL DEFAULT '',
				author_id    TEXT NOT NULL REFERENCES admin_users(id),
				is_published INTEGER NOT NULL DEFAULT 0,
				created_at   DATETIME NOT NULL,
				updated_at   DATETIME NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_blog_posts_slug ON blog_posts(slug);
			CREATE INDEX IF NOT EXISTS idx_blog_posts_created_at ON blog_posts(created_at);
		`},
	}

	for _, s := range stmts {
		if _, err := db.conn.Exec(s.sql); err != nil {
			return fmt.Errorf("creating %s table: %w", s.name, err)
		}
	}

	return nil
}

// reorderTable is the shared implementation behind every Reorder method. It
// runs as one transaction so a partial reorder is never observable. Ids with
// no matching row affect zero rows and are skipped silently. The table name
// always comes from a repository constant, never from input.
func reorderTable(ctx context.Context, conn *sql.DB, table string, ids []string) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: beginning reorder of %s: %w", table, err)
	}
	defer tx.Rollback()

	stmt := fmt.Sprintf(`UPDATE %s SET order_index = ?, updated_at = ? WHERE id = ?`, table)
	now := time.Now()
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, stmt, i, now, id); err != nil {
			return fmt.Errorf("sqlite: reordering %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: committing reorder of %s: %w", table, err)
	}
	return nil
}
