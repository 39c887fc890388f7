package service

import (
	"context"
	"fmt"

	"github.com/VladPetriv/listings_api/internal/models"
	"github.com/VladPetriv/listings_api/pkg/logger"
)

type itemService struct {
	logger *logger.Logger
	stores Stores
}

var _ ItemService = (*itemService)(nil)

// NewItem returns new instance of item service.
func NewItem(logger *logger.Logger, stores Stores) *itemService {
	return &itemService{
		logger: logger,
		stores: stores,
	}
}

func (i *itemService) CreateItem(ctx context.Context, opts CreateItemOptions) (*models.Item, error) {
	logger := i.logger.With().Str("name", "itemService.CreateItem").Logger()
	logger.Debug().
		Str("itemName", opts.Name).
		Str("category", opts.Category).
		Bool("withImage", opts.Image != nil).
		Msg("got args")

	if opts.Name == "" {
		return nil, ErrNameRequired
	}
	if opts.Category == "" {
		return nil, ErrCategoryRequired
	}

	item := &models.Item{
		Name:     opts.Name,
		Category: opts.Category,
	}

	if opts.Image != nil {
		imageName, err := i.stores.Image.Save(ctx, opts.Image.Data, opts.Image.Filename)
		if err != nil {
			logger.Error().Err(err).Msg("save image in store")
			return nil, fmt.Errorf("save image in store: %w", err)
		}
		logger.Debug().Str("image", imageName).Msg("saved image in store")

		item.Image = imageName
	}

	err := i.stores.Item.Create(ctx, item)
	if err != nil {
		logger.Error().Err(err).Msg("create item in store")
		return nil, fmt.Errorf("create item in store: %w", err)
	}

	logger.Info().Any("item", item).Msg("item created")
	return item, nil
}

func (i *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	logger := i.logger.With().Str("name", "itemService.ListItems").Logger()
	logger.Debug().Msg("got args")

	items, err := i.stores.Item.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list items from store")
		return nil, fmt.Errorf("list items from store: %w", err)
	}
	if items == nil {
		items = []models.Item{}
	}

	logger.Debug().Int("itemsCount", len(items)).Msg("got items")
	return items, nil
}

func (i *itemService) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	logger := i.logger.With().Str("name", "itemService.GetItem").Logger()
	logger.Debug().Int64("id", id).Msg("got args")

	item, err := i.stores.Item.Get(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msg("get item from store")
		return nil, fmt.Errorf("get item from store: %w", err)
	}
	if item == nil {
		logger.Info().Int64("id", id).Msg("item not found")
		return nil, ErrItemNotFound
	}

	logger.Debug().Any("item", item).Msg("got item")
	return item, nil
}
