// Package lifeguard holds assets shared by every binary of the module.
package lifeguard

import "embed"

// Migrations contains the goose SQL migrations for the application tables.
//
//go:embed migrations/*.sql
var Migrations embed.FS
