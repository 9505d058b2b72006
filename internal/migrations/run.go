// Package migrations применяет миграции схемы через golang-migrate.
package migrations

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Run применяет все новые миграции из каталога path.
// driver — имя драйвера database/sql: "pgx" или "sqlite".
func Run(db *sql.DB, driver, path string) error {
	const op = "migrations.Run"

	var (
		instance database.Driver
		name     string
		err      error
	)
	switch driver {
	case "pgx":
		instance, err = pgxv5.WithInstance(db, &pgxv5.Config{})
		name = "pgx_v5"
	case "sqlite":
		instance, err = sqlite.WithInstance(db, &sqlite.Config{})
		name = "sqlite"
	default:
		return fmt.Errorf("%s: unsupported driver %q", op, driver)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, name, instance)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
