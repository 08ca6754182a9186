package queries

import (
	"context"

	"manuara-reservas/internal/domain/cabin"
	"manuara-reservas/internal/domain/reservation"
)

// CabinOccupancy summarizes booked nights for one cabin over a window.
type CabinOccupancy struct {
	CabinID       string
	CabinLabel    string
	BookedNights  int
	WindowNights  int
	OccupancyRate float64
}

type AnalyticsQueries interface {
	Occupancy(ctx context.Context, window reservation.StayRange) ([]*CabinOccupancy, error)
}

type analyticsQueriesImpl struct {
	store ReservationReadStore
}

func NewAnalyticsQueries(store ReservationReadStore) AnalyticsQueries {
	return &analyticsQueriesImpl{store: store}
}

// Occupancy counts, per cabin, the nights within the window covered by an
// active reservation. Overlap math mirrors the engine's half-open rule.
func (q *analyticsQueriesImpl) Occupancy(ctx context.Context, window reservation.StayRange) ([]*CabinOccupancy, error) {
	snapshot, err := q.store.ActiveSnapshots(ctx)
	if err != nil {
		return nil, err
	}

	windowNights := window.Nights()
	nightsByCabin := make(map[cabin.ID]int)
	for _, s := range snapshot {
		if !s.Status.IsActive() || !s.Stay.Overlaps(window) {
			continue
		}
		nightsByCabin[s.CabinID] += clampedNights(s.Stay, window)
	}

	infos := cabin.All()
	out := make([]*CabinOccupancy, 0, len(infos))
	for _, info := range infos {
		booked := nightsByCabin[info.ID]
		occ := &CabinOccupancy{
			CabinID:      info.ID.String(),
			CabinLabel:   info.DisplayLabel,
			BookedNights: booked,
			WindowNights: windowNights,
		}
		if windowNights > 0 {
			occ.OccupancyRate = float64(booked) / float64(windowNights)
		}
		out = append(out, occ)
	}
	return out, nil
}

func clampedNights(stay, window reservation.StayRange) int {
	start := stay.CheckIn()
	if window.CheckIn().After(start) {
		start = window.CheckIn()
	}
	end := stay.CheckOut()
	if window.CheckOut().Before(end) {
		end = window.CheckOut()
	}
	n := start.DaysUntil(end)
	if n < 0 {
		return 0
	}
	return n
}
