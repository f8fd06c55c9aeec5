package sqldb

import (
	"database/sql"
	"fmt"

	"inventory-service/internal/inventory/repository"
	"inventory-service/pkg/log"
)

type implRepository struct {
	db      *sql.DB
	dialect Dialect
	l       log.Logger
}

// New creates a database/sql backed Repository for the given dialect.
// The schema must already exist (see EnsureSchema).
func New(db *sql.DB, dialect Dialect, l log.Logger) repository.Repository {
	if db == nil {
		panic("inventory/repository/sqldb: db is required")
	}
	return &implRepository{db: db, dialect: dialect, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("inventory/repository/sqldb(%s).%s", r.dialect.Name, method)
}
