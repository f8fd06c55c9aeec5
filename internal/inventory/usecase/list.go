package usecase

import (
	"context"

	"inventory-service/internal/inventory"
)

// List returns every Item in ascending id order.
func (uc *implUseCase) List(ctx context.Context) (inventory.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return inventory.ListItemsOutput{}, err
	}

	out := inventory.ListItemsOutput{Items: make([]inventory.ItemOutput, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, uc.toOutput(item))
	}
	return out, nil
}
