package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/django-nerd/ulin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "nested", "ulin.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("empty collection lists as empty slice", func(t *testing.T) {
		records, err := store.GetDocuments(ctx, domain.CollectionHomestay)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)

		names, err := store.ListCollections(ctx)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	var firstID string

	t.Run("create returns a fresh id", func(t *testing.T) {
		desc := "sea facing"
		id, err := store.CreateDocument(ctx, domain.CollectionHomestay, domain.Homestay{
			Name:          "Bay View",
			Location:      "Goa",
			Description:   &desc,
			PricePerNight: 50,
			MaxGuests:     2,
			Amenities:     []string{"wifi"},
			Images:        []string{},
			Rating:        4.5,
		})
		require.NoError(t, err)
		assert.Len(t, id, 24)
		firstID = id
	})

	t.Run("identical records get distinct ids", func(t *testing.T) {
		h := domain.Homestay{Name: "Twin", Location: "Goa", PricePerNight: 1, MaxGuests: 1, Amenities: []string{}, Images: []string{}}

		a, err := store.CreateDocument(ctx, domain.CollectionHomestay, h)
		require.NoError(t, err)
		b, err := store.CreateDocument(ctx, domain.CollectionHomestay, h)
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})

	t.Run("list keeps insertion order and fields", func(t *testing.T) {
		records, err := store.GetDocuments(ctx, domain.CollectionHomestay)
		require.NoError(t, err)
		require.Len(t, records, 3)

		first := records[0]
		assert.Equal(t, firstID, first["_id"])
		assert.Equal(t, "Bay View", first["name"])
		assert.Equal(t, "sea facing", first["description"])
		assert.Equal(t, 50.0, first["price_per_night"])
		assert.Equal(t, 2.0, first["max_guests"])
		assert.Equal(t, []any{"wifi"}, first["amenities"])
		assert.Equal(t, []any{}, first["images"])
		assert.Equal(t, 4.5, first["rating"])
	})

	t.Run("collections are kept apart", func(t *testing.T) {
		_, err := store.CreateDocument(ctx, domain.CollectionBooking, domain.Booking{Type: "homestay", ItemID: firstID, Guests: 1})
		require.NoError(t, err)

		bookings, err := store.GetDocuments(ctx, domain.CollectionBooking)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, firstID, bookings[0]["item_id"])

		packages, err := store.GetDocuments(ctx, domain.CollectionPackage)
		require.NoError(t, err)
		assert.Empty(t, packages)

		names, err := store.ListCollections(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"booking", "homestay"}, names)
	})

	t.Run("unknown collection is rejected", func(t *testing.T) {
		_, err := store.CreateDocument(ctx, "customers", domain.Customer{Name: "x"})
		assert.ErrorIs(t, err, domain.ErrUnknownCollection)

		_, err = store.GetDocuments(ctx, "customers")
		assert.ErrorIs(t, err, domain.ErrUnknownCollection)
	})
}

func TestStore_ConcurrentCreates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const n = 10
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := store.CreateDocument(ctx, domain.CollectionPackage, domain.Package{Title: "Trek", Highlights: []string{}, Images: []string{}})
			if err == nil {
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestStore_Closed(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "ulin.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.ListCollections(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)

	_, err = store.CreateDocument(context.Background(), domain.CollectionHomestay, domain.Homestay{})
	assert.ErrorIs(t, err, domain.ErrStorage)
}
