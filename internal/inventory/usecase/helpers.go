package usecase

import (
	"context"
	"errors"

	"inventory-service/internal/inventory"
	repo "inventory-service/internal/inventory/repository"
)

// getItem fetches an Item and turns a missing row into ErrItemNotFound.
func (uc *implUseCase) getItem(ctx context.Context, id int64) (inventory.Item, error) {
	item, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.getItem GetOneItem: %v", err)
		return inventory.Item{}, err
	}
	if item.ID == 0 {
		return inventory.Item{}, inventory.ErrItemNotFound
	}
	return item, nil
}

func (uc *implUseCase) toOutput(item inventory.Item) inventory.ItemOutput {
	return inventory.ItemOutput{
		Item:     item,
		PhotoURL: inventory.PhotoURL(uc.baseURL, item),
	}
}

// mapRepoError translates repository sentinels into domain errors.
// Errors it does not know are returned unchanged.
func (uc *implUseCase) mapRepoError(err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return inventory.ErrItemNotFound
	case errors.Is(err, repo.ErrNoFieldsProvided):
		return inventory.ErrNoFieldsProvided
	}
	return err
}

// warnOrphan logs a stored photo that no record points to.
func (uc *implUseCase) warnOrphan(ctx context.Context, filename string) {
	if filename == "" {
		return
	}
	uc.l.Warnf(ctx, "uc: photo file %s is not referenced by any item", filename)
}
