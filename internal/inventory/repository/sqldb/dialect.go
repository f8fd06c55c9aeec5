package sqldb

import "strconv"

// Dialect captures what differs between the supported SQL engines.
type Dialect struct {
	Name        string
	placeholder func(n int) string
	createTable string
}

var (
	// Postgres is used with github.com/lib/pq.
	Postgres = Dialect{
		Name:        "postgres",
		placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
		createTable: `
CREATE TABLE IF NOT EXISTS inventory_items (
    id          SERIAL PRIMARY KEY,
    name        TEXT NOT NULL CHECK (name <> ''),
    description TEXT NOT NULL DEFAULT '',
    photo       TEXT
)`,
	}

	// SQLite is used with modernc.org/sqlite. AUTOINCREMENT keeps ids from
	// being reused after the highest row is deleted.
	SQLite = Dialect{
		Name:        "sqlite",
		placeholder: func(int) string { return "?" },
		createTable: `
CREATE TABLE IF NOT EXISTS inventory_items (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL CHECK (name <> ''),
    description TEXT NOT NULL DEFAULT '',
    photo       TEXT
)`,
	}
)

// DialectByName returns the dialect for a storage driver name.
func DialectByName(name string) (Dialect, bool) {
	switch name {
	case Postgres.Name:
		return Postgres, true
	case SQLite.Name:
		return SQLite, true
	default:
		return Dialect{}, false
	}
}
