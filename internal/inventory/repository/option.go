package repository

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name        string
	Description string
	Photo       string
}

// UpdateItemFieldsOptions holds a partial update. Empty strings mean "leave as is".
type UpdateItemFieldsOptions struct {
	ID          int64
	Name        string
	Description string
}

// Empty reports whether the update would change nothing.
func (o UpdateItemFieldsOptions) Empty() bool {
	return o.Name == "" && o.Description == ""
}

// UpdateItemPhotoOptions replaces an Item's photo reference.
type UpdateItemPhotoOptions struct {
	ID    int64
	Photo string
}
