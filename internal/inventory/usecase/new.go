package usecase

import (
	"inventory-service/internal/inventory/repository"
	"inventory-service/pkg/log"
	"inventory-service/pkg/photostore"
)

// implUseCase is the private implementation of inventory.UseCase.
type implUseCase struct {
	repo    repository.Repository
	photos  photostore.IPhotoStore
	baseURL string
	l       log.Logger
}

// New creates a new inventory UseCase. baseURL prefixes generated photo links.
func New(repo repository.Repository, photos photostore.IPhotoStore, baseURL string, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		photos:  photos,
		baseURL: baseURL,
		l:       l,
	}
}
