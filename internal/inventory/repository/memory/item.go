package memory

import (
	"context"
	"slices"

	"inventory-service/internal/inventory"
	repo "inventory-service/internal/inventory/repository"
)

// CreateItem appends a new Item with the next id.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := inventory.Item{
		ID:          r.nextID,
		Name:        opt.Name,
		Description: opt.Description,
		Photo:       opt.Photo,
	}
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

// GetOneItem returns a zero-value Item when id is unknown.
func (r *implRepository) GetOneItem(ctx context.Context, id int64) (inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.items[i], nil
	}
	return inventory.Item{}, nil
}

// ListItems returns a copy of all items in insertion order.
func (r *implRepository) ListItems(ctx context.Context) ([]inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.items), nil
}

// UpdateItemFields applies the non-empty fields. An empty update is a no-op.
func (r *implRepository) UpdateItemFields(ctx context.Context, opt repo.UpdateItemFieldsOptions) (inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(opt.ID)
	if i < 0 {
		return inventory.Item{}, repo.ErrNotFound
	}
	if opt.Name != "" {
		r.items[i].Name = opt.Name
	}
	if opt.Description != "" {
		r.items[i].Description = opt.Description
	}
	return r.items[i], nil
}

// UpdateItemPhoto replaces the photo reference.
func (r *implRepository) UpdateItemPhoto(ctx context.Context, opt repo.UpdateItemPhotoOptions) (inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(opt.ID)
	if i < 0 {
		return inventory.Item{}, repo.ErrNotFound
	}
	r.items[i].Photo = opt.Photo
	return r.items[i], nil
}

// DeleteItem removes the Item, keeping the order of the rest.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repo.ErrNotFound
	}
	r.items = slices.Delete(r.items, i, i+1)
	return nil
}
