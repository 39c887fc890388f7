package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/VladPetriv/listings_api/internal/models"
	"github.com/VladPetriv/listings_api/internal/service"
)

// itemFileStore keeps all items in a single JSON document.
// An item id is its zero-based position in the document.
type itemFileStore struct {
	mu       sync.Mutex
	filename string
}

var _ service.ItemStore = (*itemFileStore)(nil)

type itemsDocument struct {
	Items []fileItem `json:"items"`
}

type fileItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// NewItemFile returns new instance of the JSON file backed item store.
func NewItemFile(filename string) *itemFileStore {
	return &itemFileStore{
		filename: filename,
	}
}

func (i *itemFileStore) Create(_ context.Context, item *models.Item) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	document, err := i.read()
	if err != nil {
		return err
	}

	document.Items = append(document.Items, fileItem{
		Name:     item.Name,
		Category: item.Category,
		Image:    item.Image,
	})

	err = i.write(document)
	if err != nil {
		return err
	}

	item.ID = int64(len(document.Items) - 1)

	return nil
}

func (i *itemFileStore) List(_ context.Context) ([]models.Item, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	document, err := i.read()
	if err != nil {
		return nil, err
	}

	items := make([]models.Item, 0, len(document.Items))
	for id, item := range document.Items {
		items = append(items, item.toModel(int64(id)))
	}

	return items, nil
}

func (i *itemFileStore) Get(_ context.Context, id int64) (*models.Item, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	document, err := i.read()
	if err != nil {
		return nil, err
	}

	if id < 0 || id >= int64(len(document.Items)) {
		return nil, nil
	}

	item := document.Items[id].toModel(id)
	return &item, nil
}

func (f fileItem) toModel(id int64) models.Item {
	return models.Item{
		ID:       id,
		Name:     f.Name,
		Category: f.Category,
		Image:    f.Image,
	}
}

func (i *itemFileStore) read() (*itemsDocument, error) {
	var document itemsDocument

	data, err := os.ReadFile(i.filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &document, nil
		}
		return nil, fmt.Errorf("read items file: %w", err)
	}
	if len(data) == 0 {
		return &document, nil
	}

	err = json.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("decode items file: %w", err)
	}

	return &document, nil
}

func (i *itemFileStore) write(document *itemsDocument) error {
	data, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("encode items file: %w", err)
	}

	dir := filepath.Dir(i.filename)
	if dir != "." && dir != "" {
		err = os.MkdirAll(dir, 0o750)
		if err != nil {
			return fmt.Errorf("create items directory: %w", err)
		}
	}

	err = os.WriteFile(i.filename, data, 0o644)
	if err != nil {
		return fmt.Errorf("write items file: %w", err)
	}

	return nil
}
