package dto

import (
	"time"

	"github.com/Moustaash/lcc-availability-2/internal/domain/properties"
	"github.com/Moustaash/lcc-availability-2/internal/domain/schedule"
)

// Property is the public per-property metadata.
type Property struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Reservation is a normalized closed day interval. Days are ISO calendar
// dates; EndDay is the last occupied day.
type Reservation struct {
	PropertyID string `json:"property_id"`
	StartDay   string `json:"start_day"`
	EndDay     string `json:"end_day"`
	Status     string `json:"status"`
	PriceTotal *int64 `json:"price_total,omitempty"`
}

// RenderBar is one window-clipped bar, ready for column-span placement.
type RenderBar struct {
	PropertyID      string `json:"property_id"`
	Status          string `json:"status"`
	FirstVisibleDay string `json:"first_visible_day"`
	LastVisibleDay  string `json:"last_visible_day"`
	ClippedStart    bool   `json:"clipped_start"`
	ClippedEnd      bool   `json:"clipped_end"`
	ColStart        int    `json:"col_start"`
	ColEnd          int    `json:"col_end"`
	PriceBucket     string `json:"price_bucket,omitempty"`
	PriceTotal      *int64 `json:"price_total,omitempty"`
}

// PropertyBars aggregates the bars for one property over one window.
type PropertyBars struct {
	PropertyID string      `json:"property_id"`
	WindowFrom string      `json:"window_from"`
	WindowTo   string      `json:"window_to"`
	Bars       []RenderBar `json:"bars"`
}

// DayResolution is the outcome of resolving one day. Reservation is null
// when no data covers the day.
type DayResolution struct {
	PropertyID  string       `json:"property_id"`
	Day         string       `json:"day"`
	Reservation *Reservation `json:"reservation"`
}

// MapProperties converts domain properties preserving order.
func MapProperties(props []properties.Property) []Property {
	out := make([]Property, 0, len(props))
	for _, p := range props {
		out = append(out, Property{ID: string(p.ID), DisplayName: p.DisplayName})
	}
	return out
}

// MapReservation converts one normalized reservation.
func MapReservation(r schedule.Reservation) Reservation {
	return Reservation{
		PropertyID: string(r.PropertyID),
		StartDay:   schedule.FormatDay(r.StartDay),
		EndDay:     schedule.FormatDay(r.EndDay),
		Status:     string(r.Status),
		PriceTotal: mapPrice(r.Price),
	}
}

// MapPropertyBars converts rendered bars with their grid column spans.
func MapPropertyBars(id properties.PropertyID, bars []schedule.RenderBar, windowStart, windowEnd time.Time) PropertyBars {
	out := PropertyBars{
		PropertyID: string(id),
		WindowFrom: schedule.FormatDay(windowStart),
		WindowTo:   schedule.FormatDay(windowEnd),
		Bars:       make([]RenderBar, 0, len(bars)),
	}
	for _, b := range bars {
		colStart, colEnd := b.ColumnSpan(windowStart)
		out.Bars = append(out.Bars, RenderBar{
			PropertyID:      string(b.PropertyID),
			Status:          string(b.Status),
			FirstVisibleDay: schedule.FormatDay(b.FirstVisibleDay),
			LastVisibleDay:  schedule.FormatDay(b.LastVisibleDay),
			ClippedStart:    b.ClippedStart,
			ClippedEnd:      b.ClippedEnd,
			ColStart:        colStart,
			ColEnd:          colEnd,
			PriceBucket:     string(b.PriceBucket),
			PriceTotal:      mapPrice(b.Price),
		})
	}
	return out
}

// MapDayResolution converts a resolver outcome, keeping the null case
// explicit.
func MapDayResolution(id properties.PropertyID, day time.Time, r *schedule.Reservation) DayResolution {
	res := DayResolution{PropertyID: string(id), Day: schedule.FormatDay(schedule.DayOf(day))}
	if r != nil {
		mapped := MapReservation(*r)
		res.Reservation = &mapped
	}
	return res
}

func mapPrice(p *schedule.Price) *int64 {
	if p == nil {
		return nil
	}
	amount := p.Amount
	return &amount
}
