package sqldb

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the inventory_items table if it doesn't already exist.
func EnsureSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	if _, err := db.ExecContext(ctx, d.createTable); err != nil {
		return fmt.Errorf("creating %s schema: %w", d.Name, err)
	}
	return nil
}
