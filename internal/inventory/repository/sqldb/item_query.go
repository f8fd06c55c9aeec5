package sqldb

import (
	"database/sql"
	"fmt"
	"strings"

	"inventory-service/internal/inventory"
	repo "inventory-service/internal/inventory/repository"
)

const itemColumns = `id, name, description, photo`

type scanner interface {
	Scan(dest ...any) error
}

// scanItem reads one row selected with itemColumns.
func scanItem(s scanner) (inventory.Item, error) {
	var item inventory.Item
	var photo sql.NullString
	if err := s.Scan(&item.ID, &item.Name, &item.Description, &photo); err != nil {
		return inventory.Item{}, err
	}
	item.Photo = photo.String
	return item, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// buildUpdateFieldsQuery builds the UPDATE statement for the non-empty fields of opt.
func (r *implRepository) buildUpdateFieldsQuery(opt repo.UpdateItemFieldsOptions) (string, []any) {
	var sets []string
	var args []any
	idx := 1

	if opt.Name != "" {
		sets = append(sets, fmt.Sprintf("name = %s", r.dialect.placeholder(idx)))
		args = append(args, opt.Name)
		idx++
	}
	if opt.Description != "" {
		sets = append(sets, fmt.Sprintf("description = %s", r.dialect.placeholder(idx)))
		args = append(args, opt.Description)
		idx++
	}

	query := fmt.Sprintf(
		"UPDATE inventory_items SET %s WHERE id = %s RETURNING %s",
		strings.Join(sets, ", "), r.dialect.placeholder(idx), itemColumns,
	)
	args = append(args, opt.ID)
	return query, args
}
