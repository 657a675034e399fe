package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		code string
		want Status
	}{
		{"booked", StatusConfirmed},
		{"option", StatusOption},
		{"blocked", StatusBlocked},
		{"free", StatusFree},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.code)
		require.NoError(t, err, tc.code)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseStatusUnknown(t *testing.T) {
	_, err := ParseStatus("maintenance")
	require.ErrorIs(t, err, ErrUnknownStatus)
}

func TestStatusPriorityOrder(t *testing.T) {
	assert.Greater(t, StatusBlocked.Priority(), StatusOption.Priority())
	assert.Greater(t, StatusOption.Priority(), StatusConfirmed.Priority())
	assert.Greater(t, StatusConfirmed.Priority(), StatusFree.Priority())
	assert.Less(t, Status("bogus").Priority(), StatusFree.Priority())
}

func TestChecksOutOnEndDate(t *testing.T) {
	assert.True(t, StatusConfirmed.ChecksOutOnEndDate())
	assert.True(t, StatusFree.ChecksOutOnEndDate())
	assert.False(t, StatusOption.ChecksOutOnEndDate())
	assert.False(t, StatusBlocked.ChecksOutOnEndDate())
}
