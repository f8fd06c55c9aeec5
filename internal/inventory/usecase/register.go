package usecase

import (
	"context"

	"inventory-service/internal/inventory"
	repo "inventory-service/internal/inventory/repository"
)

// Register stores the optional photo and creates a new Item.
func (uc *implUseCase) Register(ctx context.Context, input inventory.RegisterInput) (inventory.ItemOutput, error) {
	if input.Name == "" {
		return inventory.ItemOutput{}, inventory.ErrNameRequired
	}

	var photo string
	if input.Photo != nil {
		name, err := uc.photos.Save(ctx, input.Photo.Filename, input.Photo.Content)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Register Save: %v", err)
			return inventory.ItemOutput{}, err
		}
		photo = name
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Description: input.Description,
		Photo:       photo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateItem: %v", err)
		uc.warnOrphan(ctx, photo)
		return inventory.ItemOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Register: created item %d", item.ID)
	return uc.toOutput(item), nil
}
