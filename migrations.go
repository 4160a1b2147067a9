// Package bangsafe embeds the SQL migrations shipped with the service.
package bangsafe

import (
	"embed"
	"fmt"
	"io/fs"
)

// Migrations contains goose migrations, one directory per SQL dialect.
//
//go:embed migrations
var Migrations embed.FS

// MigrationsFor returns the migrations of a dialect ("postgres" or "sqlite")
// rooted at their directory.
func MigrationsFor(dialect string) (fs.FS, error) {
	sub, err := fs.Sub(Migrations, "migrations/"+dialect)
	if err != nil {
		return nil, fmt.Errorf("could not open %s migrations: %w", dialect, err)
	}

	return sub, nil
}
