package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/VladPetriv/listings_api/internal/models"
	"github.com/VladPetriv/listings_api/internal/service"
)

const hashedImageExtension = ".jpg"

// imageStore keeps image files in a single directory.
type imageStore struct {
	dir    string
	naming models.ImageNaming
}

var _ service.ImageStore = (*imageStore)(nil)

// NewImage returns new instance of the image store and creates its directory.
func NewImage(dir string, naming models.ImageNaming) (*imageStore, error) {
	if !naming.IsValid() {
		return nil, fmt.Errorf("unknown image naming %q", naming)
	}

	err := os.MkdirAll(dir, 0o750)
	if err != nil {
		return nil, fmt.Errorf("create images directory: %w", err)
	}

	return &imageStore{
		dir:    dir,
		naming: naming,
	}, nil
}

// Save writes data to the image directory. Files are overwritten, so with
// ImageNamingOriginal the last upload under a name wins.
func (i *imageStore) Save(_ context.Context, data []byte, suggestedName string) (string, error) {
	name, err := i.filename(data, suggestedName)
	if err != nil {
		return "", err
	}

	err = os.WriteFile(filepath.Join(i.dir, name), data, 0o644)
	if err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return name, nil
}

func (i *imageStore) filename(data []byte, suggestedName string) (string, error) {
	if i.naming == models.ImageNamingHash {
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:]) + hashedImageExtension, nil
	}

	name := filepath.Base(suggestedName)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid image filename %q", suggestedName)
	}

	return name, nil
}

func (i *imageStore) Load(_ context.Context, name string) (*models.Image, error) {
	data, err := os.ReadFile(filepath.Join(i.dir, filepath.Base(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read image file: %w", err)
	}

	return &models.Image{
		Name: name,
		Data: data,
	}, nil
}

func (i *imageStore) Exists(_ context.Context, name string) (bool, error) {
	info, err := os.Stat(filepath.Join(i.dir, filepath.Base(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat image file: %w", err)
	}

	return !info.IsDir(), nil
}
