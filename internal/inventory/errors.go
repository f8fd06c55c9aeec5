package inventory

import "errors"

var (
	ErrNameRequired     = errors.New("inventory name is required")
	ErrPhotoRequired    = errors.New("no photo uploaded")
	ErrNoFieldsProvided = errors.New("no fields to update")
	ErrItemNotFound     = errors.New("item not found")
	ErrPhotoNotFound    = errors.New("item has no photo")
	ErrPhotoFileMissing = errors.New("photo file not found")
)
