package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"inventory-service/internal/inventory"
	"inventory-service/internal/inventory/repository"
	"inventory-service/pkg/photostore"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock photo store keeping files in memory
type mockPhotoStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	n       int
	saveErr error
}

func newMockPhotoStore() *mockPhotoStore {
	return &mockPhotoStore{files: make(map[string][]byte)}
}

func (m *mockPhotoStore) Save(ctx context.Context, originalFilename string, content io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	name := fmt.Sprintf("photo-%d.jpg", m.n)
	m.files[name] = data
	return name, nil
}

func (m *mockPhotoStore) Read(ctx context.Context, filename string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filename]
	if !ok {
		return nil, photostore.ErrNotFound
	}
	return data, nil
}

// Mock repository that fails every call
type failingRepo struct{}

var errBoom = errors.New("boom")

func (failingRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (inventory.Item, error) {
	return inventory.Item{}, errBoom
}
func (failingRepo) GetOneItem(ctx context.Context, id int64) (inventory.Item, error) {
	return inventory.Item{}, errBoom
}
func (failingRepo) ListItems(ctx context.Context) ([]inventory.Item, error) {
	return nil, errBoom
}
func (failingRepo) UpdateItemFields(ctx context.Context, opt repository.UpdateItemFieldsOptions) (inventory.Item, error) {
	return inventory.Item{}, errBoom
}
func (failingRepo) UpdateItemPhoto(ctx context.Context, opt repository.UpdateItemPhotoOptions) (inventory.Item, error) {
	return inventory.Item{}, errBoom
}
func (failingRepo) DeleteItem(ctx context.Context, id int64) error {
	return errBoom
}

// Mock repository behaving like the SQL stores on an update without fields
type noFieldsRepo struct {
	failingRepo
}

func (noFieldsRepo) UpdateItemFields(ctx context.Context, opt repository.UpdateItemFieldsOptions) (inventory.Item, error) {
	if opt.Name == "" && opt.Description == "" {
		return inventory.Item{}, repository.ErrNoFieldsProvided
	}
	return inventory.Item{}, repository.ErrNotFound
}
