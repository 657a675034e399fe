package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moustaash/lcc-availability-2/internal/domain/properties"
	"github.com/Moustaash/lcc-availability-2/internal/domain/schedule"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := schedule.ParseDay(s)
	require.NoError(t, err)
	return d
}

func ptr(f float64) *float64 { return &f }

func TestNormalizeCheckoutConvention(t *testing.T) {
	raw := []RawProperty{{
		ID:    "p1",
		Label: "P1",
		Records: []RawRecord{
			{Start: "2025-11-10", End: "2025-11-13", Status: "booked"},
			{Start: "2025-12-06", End: "2025-12-13", Status: "free", PriceTotal: ptr(4650)},
		},
	}}
	snap := Normalize(raw, nil)

	rs := snap.Reservations["p1"]
	require.Len(t, rs, 2)
	assert.Equal(t, day(t, "2025-11-12"), rs[0].EndDay)
	assert.Equal(t, day(t, "2025-12-12"), rs[1].EndDay)
}

func TestNormalizeCheckoutSingleDay(t *testing.T) {
	raw := []RawProperty{{
		ID: "p1",
		Records: []RawRecord{
			{Start: "2025-11-10", End: "2025-11-10", Status: "booked"},
		},
	}}
	snap := Normalize(raw, nil)

	rs := snap.Reservations["p1"]
	require.Len(t, rs, 1)
	assert.Equal(t, day(t, "2025-11-10"), rs[0].StartDay)
	assert.Equal(t, day(t, "2025-11-10"), rs[0].EndDay)
}

func TestNormalizeInclusiveConvention(t *testing.T) {
	raw := []RawProperty{{
		ID: "p1",
		Records: []RawRecord{
			{Start: "2025-11-20", End: "2025-11-22", Status: "option"},
			{Start: "2025-11-01", End: "2025-11-30", Status: "blocked"},
		},
	}}
	snap := Normalize(raw, nil)

	rs := snap.Reservations["p1"]
	require.Len(t, rs, 2)
	// Sorted by start day: blocked first.
	assert.Equal(t, day(t, "2025-11-30"), rs[0].EndDay)
	assert.Equal(t, day(t, "2025-11-22"), rs[1].EndDay)
}

func TestNormalizeDropsMalformedRecords(t *testing.T) {
	raw := []RawProperty{{
		ID: "p1",
		Records: []RawRecord{
			{Start: "2025-11-10", End: "2025-11-13", Status: "maintenance"},
			{Start: "not-a-date", End: "2025-11-13", Status: "booked"},
			{Start: "2025-11-10", End: "garbage", Status: "booked"},
			{Start: "2025-11-13", End: "2025-11-10", Status: "booked"},
			{Start: "2025-11-20", End: "2025-11-22", Status: "option"},
		},
	}}
	snap := Normalize(raw, nil)

	rs := snap.Reservations["p1"]
	require.Len(t, rs, 1)
	assert.Equal(t, schedule.StatusOption, rs[0].Status)
}

func TestNormalizeInvariantStartNotAfterEnd(t *testing.T) {
	raw := []RawProperty{{
		ID: "p1",
		Records: []RawRecord{
			{Start: "2025-11-10", End: "2025-11-13", Status: "booked"},
			{Start: "2025-11-10", End: "2025-11-10", Status: "free"},
			{Start: "2025-11-20", End: "2025-11-20", Status: "blocked"},
		},
	}}
	snap := Normalize(raw, nil)
	for _, rs := range snap.Reservations {
		for _, r := range rs {
			assert.False(t, r.StartDay.After(r.EndDay))
		}
	}
}

func TestNormalizeSortsPropertiesByDisplayName(t *testing.T) {
	raw := []RawProperty{
		{ID: "z", Label: "Zinal"},
		{ID: "a", Label: "Arolla"},
		{ID: "m", Label: "Morgins"},
	}
	snap := Normalize(raw, nil)

	require.Len(t, snap.Properties, 3)
	assert.Equal(t, "Arolla", snap.Properties[0].DisplayName)
	assert.Equal(t, "Morgins", snap.Properties[1].DisplayName)
	assert.Equal(t, "Zinal", snap.Properties[2].DisplayName)
}

func TestNormalizeSortsReservationsByStartStable(t *testing.T) {
	raw := []RawProperty{{
		ID: "p1",
		Records: []RawRecord{
			{Start: "2025-11-20", End: "2025-11-22", Status: "option"},
			{Start: "2025-11-05", End: "2025-11-08", Status: "booked"},
			{Start: "2025-11-05", End: "2025-11-07", Status: "blocked"},
		},
	}}
	snap := Normalize(raw, nil)

	rs := snap.Reservations["p1"]
	require.Len(t, rs, 3)
	assert.Equal(t, day(t, "2025-11-05"), rs[0].StartDay)
	// Same start day keeps input order: booked came first.
	assert.Equal(t, schedule.StatusConfirmed, rs[0].Status)
	assert.Equal(t, schedule.StatusBlocked, rs[1].Status)
	assert.Equal(t, schedule.StatusOption, rs[2].Status)
}

func TestNormalizePriceMapping(t *testing.T) {
	raw := []RawProperty{{
		ID: "p1",
		Records: []RawRecord{
			{Start: "2025-12-06", End: "2025-12-13", Status: "free", PriceTotal: ptr(4650.4)},
			{Start: "2025-12-13", End: "2025-12-20", Status: "free"},
		},
	}}
	snap := Normalize(raw, nil)

	rs := snap.Reservations["p1"]
	require.Len(t, rs, 2)
	require.NotNil(t, rs[0].Price)
	assert.Equal(t, int64(4650), rs[0].Price.Amount)
	assert.Nil(t, rs[1].Price)
}

func TestNormalizeSkipsPropertyWithoutID(t *testing.T) {
	raw := []RawProperty{
		{ID: "", Label: "Nameless"},
		{ID: "p1", Label: "P1"},
	}
	snap := Normalize(raw, nil)
	require.Len(t, snap.Properties, 1)
	assert.Equal(t, properties.PropertyID("p1"), snap.Properties[0].ID)
}

func TestNormalizeLabelFallsBackToID(t *testing.T) {
	snap := Normalize([]RawProperty{{ID: "p1"}}, nil)
	require.Len(t, snap.Properties, 1)
	assert.Equal(t, "p1", snap.Properties[0].DisplayName)
}
