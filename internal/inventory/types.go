package inventory

import (
	"fmt"
	"io"
	"strings"
)

// Item is an inventory record. Photo is the stored filename, "" when absent.
type Item struct {
	ID          int64
	Name        string
	Description string
	Photo       string
}

// HasPhoto reports whether the item references a photo file.
func (i Item) HasPhoto() bool {
	return i.Photo != ""
}

// PhotoURL returns the public link for the item's photo, or "" if it has none.
func PhotoURL(baseURL string, item Item) string {
	if !item.HasPhoto() {
		return ""
	}
	return fmt.Sprintf("%s/inventory/%d/photo", strings.TrimRight(baseURL, "/"), item.ID)
}

// --- UseCase Inputs ---

// Upload is a file attached to a request.
type Upload struct {
	Filename string
	Content  io.Reader
}

type RegisterInput struct {
	Name        string
	Description string
	Photo       *Upload
}

type UpdateFieldsInput struct {
	ID          int64
	Name        string
	Description string
}

type UpdatePhotoInput struct {
	ID    int64
	Photo *Upload
}

type SearchInput struct {
	ID           int64
	IncludePhoto bool
}

// --- UseCase Outputs ---

// ItemOutput is an item together with its derived photo URL.
type ItemOutput struct {
	Item     Item
	PhotoURL string
}

type ListItemsOutput struct {
	Items []ItemOutput
}

type PhotoOutput struct {
	Filename string
	Content  []byte
}
