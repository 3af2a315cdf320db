// Package db embeds the SQL migrations so builds tagged embed_migrations
// can run them without the source tree present.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
