package http

import (
	"strconv"
	"strings"

	"inventory-service/internal/inventory"
)

// --- Request DTOs ---

type registerReq struct {
	Name        string            `form:"inventory_name" json:"inventory_name"`
	Description string            `form:"description"    json:"description"`
	Photo       *inventory.Upload `form:"-"              json:"-"`
}

func (r registerReq) toInput() inventory.RegisterInput {
	return inventory.RegisterInput{
		Name:        r.Name,
		Description: r.Description,
		Photo:       r.Photo,
	}
}

// ---

type updateReq struct {
	ID          int64  `form:"-"              json:"-"`
	Name        string `form:"inventory_name" json:"inventory_name"`
	Description string `form:"description"    json:"description"`
}

func (r updateReq) toInput() inventory.UpdateFieldsInput {
	return inventory.UpdateFieldsInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

// ---

type searchReq struct {
	ID           looseValue `form:"id"           json:"id"`
	IncludePhoto looseValue `form:"includePhoto" json:"includePhoto"`
}

// toInput reports false when the id is not an integer.
func (r searchReq) toInput() (inventory.SearchInput, bool) {
	id, ok := parseID(string(r.ID))
	if !ok {
		return inventory.SearchInput{}, false
	}
	return inventory.SearchInput{
		ID:           id,
		IncludePhoto: r.IncludePhoto.truthy(),
	}, true
}

// ---

type helloReq struct {
	Name string `form:"name" json:"name"`
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Photo       *string `json:"photo"    extensions:"x-nullable"`
	PhotoURL    *string `json:"photoUrl" extensions:"x-nullable"`
}

func newItemResp(out inventory.ItemOutput) itemResp {
	return itemResp{
		ID:          out.Item.ID,
		Name:        out.Item.Name,
		Description: out.Item.Description,
		Photo:       optional(out.Item.Photo),
		PhotoURL:    optional(out.PhotoURL),
	}
}

func (h *handler) newListResp(out inventory.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return items
}

// optional maps "" to a JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseID reads the leading base-10 integer, so "12abc" and "1.0" are ids
// 12 and 1. Input without leading digits is not an id.
func parseID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
