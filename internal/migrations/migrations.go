// Package migrations embeds the SQL schema for the Postgres and SQLite backends.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres returns the goose migrations for the Postgres backend.
func Postgres() fs.FS {
	return sub("postgres")
}

// SQLite returns the goose migrations for the SQLite backend.
func SQLite() fs.FS {
	return sub("sqlite")
}

func sub(dir string) fs.FS {
	fsys, err := fs.Sub(files, dir)
	if err != nil {
		// dir is a constant embedded above
		panic(err)
	}
	return fsys
}
