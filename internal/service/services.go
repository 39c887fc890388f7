package service

import (
	"context"
	"errors"

	"github.com/VladPetriv/listings_api/internal/models"
	"github.com/VladPetriv/listings_api/pkg/errs"
)

// Services contains all services.
type Services struct {
	Item  ItemService
	Image ImageService
}

var (
	// ErrItemNotFound happens when an item with requested id does not exist.
	ErrItemNotFound = errs.NewNotFound("Item not found")
	// ErrNameRequired happens when an item is submitted without a name.
	ErrNameRequired = errs.New("name is required")
	// ErrCategoryRequired happens when an item is submitted without a category.
	ErrCategoryRequired = errs.New("category is required")
	// ErrInvalidImageName happens when a requested image name is not a plain .jpg filename.
	ErrInvalidImageName = errs.New("Image path does not end with .jpg")
	// ErrDefaultImageMissing happens when the fallback image is not present in the image store.
	ErrDefaultImageMissing = errors.New("default image not found")
)

// ItemService provides functionality for listing items.
//
//go:generate mockery --dir . --name ItemService --output ./mocks
type ItemService interface {
	// CreateItem stores the uploaded image (if any) and creates a new item.
	CreateItem(ctx context.Context, opts CreateItemOptions) (*models.Item, error)
	// ListItems returns all items.
	ListItems(ctx context.Context) ([]models.Item, error)
	// GetItem returns a single item by id.
	GetItem(ctx context.Context, id int64) (*models.Item, error)
}

// CreateItemOptions represents input options for ItemService.CreateItem.
type CreateItemOptions struct {
	Name     string
	Category string
	Image    *UploadedImage
}

// UploadedImage represents an image file received along with an item.
type UploadedImage struct {
	Filename string
	Data     []byte
}

// ImageService provides functionality for serving item images.
//
//go:generate mockery --dir . --name ImageService --output ./mocks
type ImageService interface {
	// GetImage returns the image stored under name or the default image when it's absent.
	GetImage(ctx context.Context, name string) (*models.Image, error)
	// CheckDefaultImage verifies that the default image can be served.
	CheckDefaultImage(ctx context.Context) error
}
