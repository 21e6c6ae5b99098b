// xudoku - a standard and diagonal Sudoku solving service.
// Licensed under the MIT license.  See the LICENSE file for details.

package dbprep

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// The migration scripts ship inside the binary, so deployments
// never need the source tree next to them.
//
//go:embed migrations/*.sql
var migrationFiles embed.FS

// DatabaseURL gives the Postgres URL to prepare, from the
// environment or the development default.
func DatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return "postgres://localhost/xudoku?sslmode=disable"
}

// newMigrator builds a migrator over the embedded scripts.  The
// caller owns the Close.
func newMigrator() (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("couldn't read embedded migrations: %v", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("couldn't open migrator: %v", err)
	}
	return m, nil
}

// SchemaUp migrates the database to the latest schema version.
// An already current database is not an error.
func SchemaUp() error {
	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("schema migration failed: %v", err)
	}
	return nil
}

// SchemaDown removes every migrated table.
func SchemaDown() error {
	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("schema teardown failed: %v", err)
	}
	return nil
}

// SchemaVersion returns the database's current schema version, 0
// for a database that has never been migrated.
func SchemaVersion() (uint, error) {
	m, err := newMigrator()
	if err != nil {
		return 0, err
	}
	defer m.Close()
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("couldn't read schema version: %v", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty; repair the database by hand", version)
	}
	return version, nil
}
