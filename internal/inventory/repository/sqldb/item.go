package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventory-service/internal/inventory"
	repo "inventory-service/internal/inventory/repository"
)

// CreateItem inserts a new row and returns it with the database-assigned id.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (inventory.Item, error) {
	p := r.dialect.placeholder
	query := fmt.Sprintf(
		`INSERT INTO inventory_items (name, description, photo) VALUES (%s, %s, %s) RETURNING %s`,
		p(1), p(2), p(3), itemColumns,
	)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, opt.Name, opt.Description, nullable(opt.Photo)))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return inventory.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOneItem retrieves a single Item by id.
// Returns zero-value Item (ID == 0) when not found, without an error.
func (r *implRepository) GetOneItem(ctx context.Context, id int64) (inventory.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM inventory_items WHERE id = %s`, itemColumns, r.dialect.placeholder(1))

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return inventory.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return inventory.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns every Item ordered by id.
func (r *implRepository) ListItems(ctx context.Context) ([]inventory.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM inventory_items ORDER BY id ASC`, itemColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []inventory.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// UpdateItemFields updates the provided fields. At least one must be set.
func (r *implRepository) UpdateItemFields(ctx context.Context, opt repo.UpdateItemFieldsOptions) (inventory.Item, error) {
	if opt.Empty() {
		return inventory.Item{}, repo.ErrNoFieldsProvided
	}

	query, args := r.buildUpdateFieldsQuery(opt)
	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return inventory.Item{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItemFields"), err)
		return inventory.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// UpdateItemPhoto replaces the photo reference of an Item.
func (r *implRepository) UpdateItemPhoto(ctx context.Context, opt repo.UpdateItemPhotoOptions) (inventory.Item, error) {
	p := r.dialect.placeholder
	query := fmt.Sprintf(
		`UPDATE inventory_items SET photo = %s WHERE id = %s RETURNING %s`,
		p(1), p(2), itemColumns,
	)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, nullable(opt.Photo), opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return inventory.Item{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItemPhoto"), err)
		return inventory.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// DeleteItem removes an Item row by id.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM inventory_items WHERE id = %s`, r.dialect.placeholder(1))

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	if n == 0 {
		return repo.ErrNotFound
	}
	return nil
}
