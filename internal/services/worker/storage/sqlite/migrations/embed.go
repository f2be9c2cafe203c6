// Package migrations embeds SQLite migrations for the worker turn ledger.
package migrations

import "embed"

// FS contains embedded SQLite migrations for worker storage.
//
//go:embed *.sql
var FS embed.FS
