// Package migrations carries the database schema. The schema is idempotent
// and applied on startup.
package migrations

import _ "embed"

//go:embed schema.sql
var Schema string
