// Package registry holds assets shared by the commands, such as the embedded
// SQL migrations.
package registry

import "embed"

// Migrations contains the goose migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
