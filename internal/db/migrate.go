package db

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationURL turns a go-sql-driver DSN into a golang-migrate database URL.
func MigrationURL(dsn string) string {
	url := dsn
	if !strings.HasPrefix(url, "mysql://") {
		url = "mysql://" + url
	}
	if !strings.Contains(url, "multiStatements=") {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		url += sep + "multiStatements=true"
	}
	return url
}

// NewMigrator builds a migrate instance over the embedded SQL files.
func NewMigrator(dsn string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, MigrationURL(dsn))
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// RunMigrations applies all pending migrations. With reset set, every table is
// dropped first. Being already up to date is not an error.
func RunMigrations(dsn string, reset bool) error {
	if reset {
		m, err := NewMigrator(dsn)
		if err != nil {
			return err
		}
		dropErr := m.Drop()
		m.Close()
		if dropErr != nil {
			return fmt.Errorf("drop schema: %w", dropErr)
		}
	}

	// Drop removes the version table too, so a fresh instance is required.
	m, err := NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
