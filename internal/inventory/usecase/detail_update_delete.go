package usecase

import (
	"context"

	"inventory-service/internal/inventory"
	repo "inventory-service/internal/inventory/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (inventory.ItemOutput, error) {
	item, err := uc.getItem(ctx, id)
	if err != nil {
		return inventory.ItemOutput{}, err
	}
	return uc.toOutput(item), nil
}

// UpdateFields changes name and/or description. Empty fields are left as is.
func (uc *implUseCase) UpdateFields(ctx context.Context, input inventory.UpdateFieldsInput) (inventory.ItemOutput, error) {
	item, err := uc.repo.UpdateItemFields(ctx, repo.UpdateItemFieldsOptions{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		if mapped := uc.mapRepoError(err); mapped != err {
			return inventory.ItemOutput{}, mapped
		}
		uc.l.Errorf(ctx, "uc.UpdateFields UpdateItemFields: %v", err)
		return inventory.ItemOutput{}, err
	}
	return uc.toOutput(item), nil
}

// Delete removes an Item by ID. The photo file, if any, stays on disk.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		if mapped := uc.mapRepoError(err); mapped != err {
			return mapped
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	uc.l.Infof(ctx, "uc.Delete: deleted item %d", id)
	return nil
}
