package usecase

import (
	"context"
	"fmt"

	"inventory-service/internal/inventory"
)

// Search looks an Item up by id. With IncludePhoto set and a photo present,
// the photo link is appended to the returned description.
func (uc *implUseCase) Search(ctx context.Context, input inventory.SearchInput) (inventory.ItemOutput, error) {
	item, err := uc.getItem(ctx, input.ID)
	if err != nil {
		return inventory.ItemOutput{}, err
	}

	out := uc.toOutput(item)
	if input.IncludePhoto && item.HasPhoto() {
		out.Item.Description = fmt.Sprintf("%s (Photo: %s)", item.Description, out.PhotoURL)
	}
	return out, nil
}
