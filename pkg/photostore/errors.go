package photostore

import "errors"

var (
	ErrNotFound    = errors.New("photo file not found")
	ErrEmptyDir    = errors.New("photo directory is required")
	ErrFailedWrite = errors.New("failed to write photo file")
)
