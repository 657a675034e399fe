package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moustaash/lcc-availability-2/internal/app/feed"
	"github.com/Moustaash/lcc-availability-2/internal/domain/properties"
)

func TestSnapshotStoreStartsEmpty(t *testing.T) {
	store := NewSnapshotStore()
	assert.Empty(t, store.Properties(context.Background()))
	assert.Nil(t, store.Reservations(context.Background(), "p1"))
}

func TestSnapshotStoreReplaceIsWholesale(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore()

	first := feed.Normalize([]feed.RawProperty{{
		ID: "p1", Label: "P1",
		Records: []feed.RawRecord{{Start: "2025-11-10", End: "2025-11-13", Status: "booked"}},
	}}, nil)
	require.NoError(t, store.Replace(ctx, first))
	require.Len(t, store.Properties(ctx), 1)
	require.Len(t, store.Reservations(ctx, "p1"), 1)

	second := feed.Normalize([]feed.RawProperty{{ID: "p2", Label: "P2"}}, nil)
	require.NoError(t, store.Replace(ctx, second))

	props := store.Properties(ctx)
	require.Len(t, props, 1)
	assert.Equal(t, properties.PropertyID("p2"), props[0].ID)
	assert.Nil(t, store.Reservations(ctx, "p1"))
}
