package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/VladPetriv/listings_api/internal/models"
	"github.com/VladPetriv/listings_api/pkg/logger"
)

const imageExtension = ".jpg"

type imageService struct {
	logger           *logger.Logger
	imageStore       ImageStore
	defaultImageName string
}

var _ ImageService = (*imageService)(nil)

// NewImage returns new instance of image service.
func NewImage(logger *logger.Logger, imageStore ImageStore, defaultImageName string) *imageService {
	return &imageService{
		logger:           logger,
		imageStore:       imageStore,
		defaultImageName: defaultImageName,
	}
}

func (i *imageService) GetImage(ctx context.Context, name string) (*models.Image, error) {
	logger := i.logger.With().Str("name", "imageService.GetImage").Logger()
	logger.Debug().Str("image", name).Msg("got args")

	if !isValidImageName(name) {
		logger.Info().Str("image", name).Msg("invalid image name")
		return nil, ErrInvalidImageName
	}

	image, err := i.imageStore.Load(ctx, name)
	if err != nil {
		logger.Error().Err(err).Msg("load image from store")
		return nil, fmt.Errorf("load image from store: %w", err)
	}
	if image != nil {
		return image, nil
	}

	logger.Debug().Str("image", name).Msg("image not found, falling back to default image")

	image, err = i.imageStore.Load(ctx, i.defaultImageName)
	if err != nil {
		logger.Error().Err(err).Msg("load default image from store")
		return nil, fmt.Errorf("load default image from store: %w", err)
	}
	if image == nil {
		logger.Error().Str("defaultImage", i.defaultImageName).Msg("default image not found")
		return nil, fmt.Errorf("load default image %q: %w", i.defaultImageName, ErrDefaultImageMissing)
	}

	return image, nil
}

func (i *imageService) CheckDefaultImage(ctx context.Context) error {
	logger := i.logger.With().Str("name", "imageService.CheckDefaultImage").Logger()
	logger.Debug().Str("defaultImage", i.defaultImageName).Msg("got args")

	exists, err := i.imageStore.Exists(ctx, i.defaultImageName)
	if err != nil {
		logger.Error().Err(err).Msg("check default image in store")
		return fmt.Errorf("check default image in store: %w", err)
	}
	if !exists {
		logger.Error().Str("defaultImage", i.defaultImageName).Msg("default image not found")
		return fmt.Errorf("check default image %q: %w", i.defaultImageName, ErrDefaultImageMissing)
	}

	return nil
}

// isValidImageName accepts plain filenames with the .jpg suffix only.
func isValidImageName(name string) bool {
	if !strings.HasSuffix(name, imageExtension) {
		return false
	}

	return !strings.ContainsAny(name, `/\`)
}
