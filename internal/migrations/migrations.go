// Package migrations holds the embedded SQL schema migrations and runs them
// with goose. The schema is the single owner of the uniqueness constraints
// the application relies on: the partial unique indexes that allow at most
// one open order per car and per customer, and the living-row uniqueness of
// user emails and customer cpf/email pairs.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

// Up applies all pending migrations to the database.
func Up(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.Up(db, "sql"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
