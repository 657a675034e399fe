package feedsource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSourceFetch(t *testing.T) {
	source := NewFileSource("testdata/feed.json")
	raw, err := source.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, raw, 1)
	assert.Equal(t, "p1", raw[0].ID)
	require.Len(t, raw[0].Records, 2)
	assert.Equal(t, "booked", raw[0].Records[0].Status)
	require.NotNil(t, raw[0].Records[1].PriceTotal)
	assert.Equal(t, 4650.0, *raw[0].Records[1].PriceTotal)
}

func TestFileSourceMissingFile(t *testing.T) {
	source := NewFileSource("testdata/nope.json")
	_, err := source.Fetch(context.Background())
	require.Error(t, err)
}
