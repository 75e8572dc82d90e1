// Package migrations carries the schema applied at startup.
package migrations

import _ "embed"

//go:embed 001_init.sql
var schema string

// Schema returns the full bootstrap DDL. Every statement is written to
// be idempotent, so re-applying on boot is safe.
func Schema() string {
	return schema
}
