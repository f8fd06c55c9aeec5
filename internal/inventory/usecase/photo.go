package usecase

import (
	"context"
	"errors"

	"inventory-service/internal/inventory"
	repo "inventory-service/internal/inventory/repository"
	"inventory-service/pkg/photostore"
)

// Photo loads the bytes of an Item's photo.
func (uc *implUseCase) Photo(ctx context.Context, id int64) (inventory.PhotoOutput, error) {
	item, err := uc.getItem(ctx, id)
	if err != nil {
		return inventory.PhotoOutput{}, err
	}
	if !item.HasPhoto() {
		return inventory.PhotoOutput{}, inventory.ErrPhotoNotFound
	}

	data, err := uc.photos.Read(ctx, item.Photo)
	if errors.Is(err, photostore.ErrNotFound) {
		uc.l.Warnf(ctx, "uc.Photo: item %d references missing file %s", item.ID, item.Photo)
		return inventory.PhotoOutput{}, inventory.ErrPhotoFileMissing
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Photo Read: %v", err)
		return inventory.PhotoOutput{}, err
	}

	return inventory.PhotoOutput{Filename: item.Photo, Content: data}, nil
}

// UpdatePhoto stores a new photo and points the Item at it.
// The previous file is not removed.
func (uc *implUseCase) UpdatePhoto(ctx context.Context, input inventory.UpdatePhotoInput) (inventory.ItemOutput, error) {
	if _, err := uc.getItem(ctx, input.ID); err != nil {
		return inventory.ItemOutput{}, err
	}
	if input.Photo == nil {
		return inventory.ItemOutput{}, inventory.ErrPhotoRequired
	}

	name, err := uc.photos.Save(ctx, input.Photo.Filename, input.Photo.Content)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdatePhoto Save: %v", err)
		return inventory.ItemOutput{}, err
	}

	item, err := uc.repo.UpdateItemPhoto(ctx, repo.UpdateItemPhotoOptions{ID: input.ID, Photo: name})
	if err != nil {
		uc.warnOrphan(ctx, name)
		if mapped := uc.mapRepoError(err); mapped != err {
			return inventory.ItemOutput{}, mapped
		}
		uc.l.Errorf(ctx, "uc.UpdatePhoto UpdateItemPhoto: %v", err)
		return inventory.ItemOutput{}, err
	}
	return uc.toOutput(item), nil
}
