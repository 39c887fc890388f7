package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/VladPetriv/listings_api/internal/service"
	"github.com/VladPetriv/listings_api/internal/store"
	"github.com/VladPetriv/listings_api/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_CreateIfNotExists(t *testing.T) {
	t.Parallel()

	forEachDialect(t, func(t *testing.T, db *database.SQL) {
		ctx := context.Background()
		categoryStore := store.NewCategory(db)

		first, err := categoryStore.CreateIfNotExists(ctx, "Sports")
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.NotZero(t, first.ID)
		assert.Equal(t, "Sports", first.Name)

		second, err := categoryStore.CreateIfNotExists(ctx, "Sports")
		require.NoError(t, err)
		assert.Equal(t, first, second, "existing category should be reused")

		other, err := categoryStore.CreateIfNotExists(ctx, "sports")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, other.ID, "names are matched case-sensitively")

		categories, err := categoryStore.List(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 2)
	})
}

func TestCategory_CreateIfNotExists_Concurrent(t *testing.T) {
	t.Parallel()

	forEachDialect(t, func(t *testing.T, db *database.SQL) {
		ctx := context.Background()
		categoryStore := store.NewCategory(db)

		const workers = 8

		var wg sync.WaitGroup
		ids := make([]int64, workers)
		errs := make([]error, workers)
		for w := 0; w < workers; w++ {
			w := w
			wg.Add(1)
			go func() {
				defer wg.Done()

				category, err := categoryStore.CreateIfNotExists(ctx, "Furniture")
				errs[w] = err
				if category != nil {
					ids[w] = category.ID
				}
			}()
		}
		wg.Wait()

		for w := 0; w < workers; w++ {
			require.NoError(t, errs[w])
			assert.Equal(t, ids[0], ids[w])
		}

		categories, err := categoryStore.List(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 1)
	})
}

func TestCategory_Get(t *testing.T) {
	t.Parallel()

	forEachDialect(t, func(t *testing.T, db *database.SQL) {
		ctx := context.Background()
		categoryStore := store.NewCategory(db)

		created, err := categoryStore.CreateIfNotExists(ctx, "Books")
		require.NoError(t, err)

		testCases := [...]struct {
			desc     string
			filter   service.GetCategoryFilter
			expectOK bool
		}{
			{
				desc:     "positive: category found by name",
				filter:   service.GetCategoryFilter{Name: "Books"},
				expectOK: true,
			},
			{
				desc:     "positive: category found by id",
				filter:   service.GetCategoryFilter{ID: created.ID},
				expectOK: true,
			},
			{
				desc:   "negative: category not found",
				filter: service.GetCategoryFilter{Name: "Toys"},
			},
		}
		for _, tc := range testCases {
			got, err := categoryStore.Get(ctx, tc.filter)
			assert.NoError(t, err, tc.desc)
			if tc.expectOK {
				assert.Equal(t, created, got, tc.desc)
			} else {
				assert.Nil(t, got, tc.desc)
			}
		}
	})
}
