// Package migrations embeds the SQL schema migrations applied by the setup
// command.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var Migrations embed.FS

// Up applies all pending migrations to the given database.
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(Migrations)

	if err := goose.SetDialect("mysql"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
