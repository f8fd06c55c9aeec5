package inventory

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (ItemOutput, error)
	List(ctx context.Context) (ListItemsOutput, error)
	Detail(ctx context.Context, id int64) (ItemOutput, error)
	Photo(ctx context.Context, id int64) (PhotoOutput, error)
	UpdateFields(ctx context.Context, input UpdateFieldsInput) (ItemOutput, error)
	UpdatePhoto(ctx context.Context, input UpdatePhotoInput) (ItemOutput, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, input SearchInput) (ItemOutput, error)
}
