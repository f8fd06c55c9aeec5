package repository

import (
	"context"

	"inventory-service/internal/inventory"
)

// Repository is the composed interface for the inventory data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (inventory.Item, error)
	// GetOneItem returns a zero-value Item (ID == 0) when nothing matches.
	GetOneItem(ctx context.Context, id int64) (inventory.Item, error)
	// ListItems returns items in ascending id order.
	ListItems(ctx context.Context) ([]inventory.Item, error)
	// UpdateItemFields changes only the non-empty fields of opt.
	UpdateItemFields(ctx context.Context, opt UpdateItemFieldsOptions) (inventory.Item, error)
	UpdateItemPhoto(ctx context.Context, opt UpdateItemPhotoOptions) (inventory.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
