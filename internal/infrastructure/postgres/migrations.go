package postgres

import "embed"

// Migrations holds the schema and seed for the benchmark tables.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory within Migrations that holds the files.
const MigrationsDir = "migrations"
