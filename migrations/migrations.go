package migrations

import "embed"

// FS holds the schema for both storage backends, one directory per backend.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
