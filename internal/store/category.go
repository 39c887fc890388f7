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

type categoryStore struct {
	*database.SQL
}

var _ service.CategoryStore = (*categoryStore)(nil)

// NewCategory returns a new instance of the category store.
func NewCategory(db *database.SQL) *categoryStore {
	return &categoryStore{
		db,
	}
}

func (c *categoryStore) CreateIfNotExists(ctx context.Context, name string) (*models.Category, error) {
	query, args, err := c.StatementBuilder().
		Insert("categories").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create category query: %w", err)
	}

	_, err = c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	category, err := c.Get(ctx, service.GetCategoryFilter{Name: name})
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %q not found after insert", name)
	}

	return category, nil
}

func (c *categoryStore) Get(ctx context.Context, filter service.GetCategoryFilter) (*models.Category, error) {
	stmt := c.StatementBuilder().
		Select("id", "name").
		From("categories")

	if filter.ID != 0 {
		stmt = stmt.Where(sq.Eq{"id": filter.ID})
	}
	if filter.Name != "" {
		stmt = stmt.Where(sq.Eq{"name": filter.Name})
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category query: %w", err)
	}

	var category models.Category
	err = c.DB.GetContext(ctx, &category, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}

func (c *categoryStore) List(ctx context.Context) ([]models.Category, error) {
	query, args, err := c.StatementBuilder().
		Select("id", "name").
		From("categories").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories query: %w", err)
	}

	var categories []models.Category
	err = c.DB.SelectContext(ctx, &categories, query, args...)
	if err != nil {
		return nil, err
	}

	return categories, nil
}
