package store_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/VladPetriv/listings_api/internal/models"
	"github.com/VladPetriv/listings_api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemFile_CreateAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "data", "items.json")
	itemStore := store.NewItemFile(filename)

	got, err := itemStore.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "missing file reads as an empty store")

	bike := &models.Item{Name: "Bike", Category: "Sports"}
	require.NoError(t, itemStore.Create(ctx, bike))
	assert.Equal(t, int64(0), bike.ID)

	jacket := &models.Item{Name: "Jacket", Category: "Fashion", Image: "abc.jpg"}
	require.NoError(t, itemStore.Create(ctx, jacket))
	assert.Equal(t, int64(1), jacket.ID)

	got, err = itemStore.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Item{
		{ID: 0, Name: "Bike", Category: "Sports"},
		{ID: 1, Name: "Jacket", Category: "Fashion", Image: "abc.jpg"},
	}, got)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)

	var document map[string][]map[string]string
	require.NoError(t, json.Unmarshal(data, &document))
	assert.Equal(t, map[string][]map[string]string{
		"items": {
			{"name": "Bike", "category": "Sports", "image": ""},
			{"name": "Jacket", "category": "Fashion", "image": "abc.jpg"},
		},
	}, document)
}

func TestItemFile_Get(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	itemStore := store.NewItemFile(filepath.Join(t.TempDir(), "items.json"))

	got, err := itemStore.Get(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, got, "empty store has no item 0")

	require.NoError(t, itemStore.Create(ctx, &models.Item{Name: "Bike", Category: "Sports"}))

	testCases := [...]struct {
		desc     string
		id       int64
		expected *models.Item
	}{
		{
			desc:     "positive: item found by index",
			id:       0,
			expected: &models.Item{ID: 0, Name: "Bike", Category: "Sports"},
		},
		{
			desc: "negative: index out of range",
			id:   1,
		},
		{
			desc: "negative: negative index",
			id:   -1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := itemStore.Get(ctx, tc.id)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestItemFile_ReadsExistingDocument(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "items.json")
	err := os.WriteFile(filename, []byte(`{"items":[{"name":"Chair","category":"Furniture","image":"chair.jpg"}]}`), 0o644)
	require.NoError(t, err)

	itemStore := store.NewItemFile(filename)

	got, err := itemStore.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Item{{ID: 0, Name: "Chair", Category: "Furniture", Image: "chair.jpg"}}, got)
}

func TestItemFile_CorruptedDocument(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(filename, []byte(`{"items":`), 0o644))

	itemStore := store.NewItemFile(filename)

	_, err := itemStore.List(ctx)
	assert.Error(t, err)

	err = itemStore.Create(ctx, &models.Item{Name: "Bike", Category: "Sports"})
	assert.Error(t, err)
}
