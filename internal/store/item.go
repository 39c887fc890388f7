package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/VladPetriv/listings_api/internal/models"
	"github.com/VladPetriv/listings_api/internal/service"
	"github.com/VladPetriv/listings_api/pkg/database"
)

type itemStore struct {
	*database.SQL
	categories service.CategoryStore
}

var _ service.ItemStore = (*itemStore)(nil)

// NewItem returns new instance of the SQL backed item store.
func NewItem(db *database.SQL, categories service.CategoryStore) *itemStore {
	return &itemStore{
		SQL:        db,
		categories: categories,
	}
}

// Create resolves the item category and inserts the item. Both statements commit
// on their own, so a failed item insert may leave an unused category behind.
func (i *itemStore) Create(ctx context.Context, item *models.Item) error {
	category, err := i.categories.CreateIfNotExists(ctx, item.Category)
	if err != nil {
		return fmt.Errorf("resolve category: %w", err)
	}

	query, args, err := i.StatementBuilder().
		Insert("items").
		Columns("name", "category_id", "image").
		Values(item.Name, category.ID, item.Image).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create item query: %w", err)
	}

	var id int64
	err = i.DB.QueryRowxContext(ctx, query, args...).Scan(&id)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	item.ID = id
	item.CategoryID = category.ID

	return nil
}

func (i *itemStore) selectItems() sq.SelectBuilder {
	return i.StatementBuilder().
		Select(
			"items.id AS id",
			"items.name AS name",
			"items.category_id AS category_id",
			"categories.name AS category",
			"items.image AS image",
		).
		From("items").
		Join("categories ON categories.id = items.category_id")
}

func (i *itemStore) List(ctx context.Context) ([]models.Item, error) {
	query, args, err := i.selectItems().
		OrderBy("items.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items query: %w", err)
	}

	var items []models.Item
	err = i.DB.SelectContext(ctx, &items, query, args...)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (i *itemStore) Get(ctx context.Context, id int64) (*models.Item, error) {
	query, args, err := i.selectItems().
		Where(sq.Eq{"items.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item query: %w", err)
	}

	var item models.Item
	err = i.DB.GetContext(ctx, &item, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &item, nil
}
