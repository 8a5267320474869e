package quotecache

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const quotesSchema = `
	CREATE TABLE IF NOT EXISTS quotes (
		ticker     TEXT NOT NULL,
		day        TIMESTAMP NOT NULL,
		close      REAL NOT NULL,
		fetched_at TIMESTAMP NOT NULL,
		PRIMARY KEY (ticker, day)
	);
`

const ratesSchema = `
	CREATE TABLE IF NOT EXISTS fx_rates (
		base       TEXT NOT NULL,
		target     TEXT NOT NULL,
		rate       REAL NOT NULL,
		fetched_at TIMESTAMP NOT NULL,
		PRIMARY KEY (base, target)
	);
`

var bootQueries = []string{
	quotesSchema,
	ratesSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (or creates) the sqlite cache database and applies the schema.
func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply cache schema: %w", err)
		}
	}
	return db, nil
}
