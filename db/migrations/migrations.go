package migrations

import "embed"

// FS holds the SQL migrations applied through the golang-migrate iofs
// source.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
