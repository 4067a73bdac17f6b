package migrations

import "embed"

// FS contains the embedded goose migrations for the entity and privilege stores.
//
//go:embed *.sql
var FS embed.FS
