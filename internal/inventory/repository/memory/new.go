package memory

import (
	"sync"

	"inventory-service/internal/inventory"
	"inventory-service/internal/inventory/repository"
)

// implRepository keeps items in insertion order behind one lock.
// nextID only grows, so ids are never reused after a delete.
type implRepository struct {
	mu     sync.RWMutex
	items  []inventory.Item
	nextID int64
}

// New creates an empty in-memory Repository whose first id is 1.
func New() repository.Repository {
	return &implRepository{nextID: 1}
}

// indexOf must be called with mu held.
func (r *implRepository) indexOf(id int64) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
