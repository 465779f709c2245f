package migrations

import "embed"

// FS embeds the SQL migration files of every SQL backend. Postgres files
// live under postgres/ and SQLite files under sqlite/; the golang-migrate
// iofs driver reads them from the matching sub directory.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

const Version = 1
