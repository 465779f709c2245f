package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"agrofund/db/migrations"
)

// MigratePostgres applies the embedded postgres migrations to the database
// at addr.
func MigratePostgres(addr string) error {
	return migrateUp(migrations.PostgresDir, addr)
}

// MigrateSQLite applies the embedded sqlite migrations to the database file
// at path.
func MigrateSQLite(path string) error {
	return migrateUp(migrations.SQLiteDir, "sqlite3://"+path)
}

// migrateUp applies all up migrations found in dir of the embedded FS.
func migrateUp(dir, addr string) error {
	driver, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
