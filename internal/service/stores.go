package service

import (
	"context"

	"github.com/VladPetriv/listings_api/internal/models"
)

// Stores represents all stores.
type Stores struct {
	Item  ItemStore
	Image ImageStore
}

// ItemStore provides functionality for work with items store.
//
//go:generate mockery --dir . --name ItemStore --output ./mocks
type ItemStore interface {
	// Create creates a new item in store. The category is resolved by
	// item.Category name and created when absent. ID and CategoryID are
	// filled in on success.
	Create(ctx context.Context, item *models.Item) error
	// List returns all items joined with their category names.
	List(ctx context.Context) ([]models.Item, error)
	// Get returns an item by its id, nil when it does not exist.
	Get(ctx context.Context, id int64) (*models.Item, error)
}

// CategoryStore provides functionality for work with categories store.
type CategoryStore interface {
	// CreateIfNotExists creates a category with the given name unless one already
	// exists and returns the stored category in both cases.
	CreateIfNotExists(ctx context.Context, name string) (*models.Category, error)
	// Get returns a category by filters, nil when it does not exist.
	Get(ctx context.Context, filter GetCategoryFilter) (*models.Category, error)
	// List returns a list of all categories from store.
	List(ctx context.Context) ([]models.Category, error)
}

// GetCategoryFilter represents a filters for CategoryStore.Get method.
type GetCategoryFilter struct {
	ID   int64
	Name string
}

// ImageStore provides functionality for work with stored image files.
//
//go:generate mockery --dir . --name ImageStore --output ./mocks
type ImageStore interface {
	// Save writes image data and returns the filename it was stored under.
	Save(ctx context.Context, data []byte, suggestedName string) (string, error)
	// Load returns the image stored under name, nil when there is no such file.
	Load(ctx context.Context, name string) (*models.Image, error)
	// Exists reports whether an image is stored under name.
	Exists(ctx context.Context, name string) (bool, error)
}
