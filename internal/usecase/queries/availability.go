package queries

import (
	"context"

	"manuara-reservas/internal/domain/cabin"
	"manuara-reservas/internal/domain/reservation"

	"github.com/google/uuid"
)

// CabinCheck answers "is this cabin free for this range"; when it is not,
// NextAvailableDate carries the engine's best-effort suggestion (nil when
// the bounded scan found nothing).
type CabinCheck struct {
	CabinID           cabin.ID
	Available         bool
	NextAvailableDate *reservation.Date
}

type AvailabilityQueries interface {
	CheckCabin(ctx context.Context, cabinID cabin.ID, stay reservation.StayRange) (*CabinCheck, error)
	CheckAllCabins(ctx context.Context, stay reservation.StayRange) ([]reservation.CabinAvailability, error)
}

type availabilityQueriesImpl struct {
	store       ReservationReadStore
	horizonDays int
}

func NewAvailabilityQueries(store ReservationReadStore, horizonDays int) AvailabilityQueries {
	if horizonDays <= 0 {
		horizonDays = reservation.DefaultHorizonDays
	}
	return &availabilityQueriesImpl{store: store, horizonDays: horizonDays}
}

// CheckCabin fetches a fresh snapshot for every call; correctness over
// latency at this request volume.
func (q *availabilityQueriesImpl) CheckCabin(ctx context.Context, cabinID cabin.ID, stay reservation.StayRange) (*CabinCheck, error) {
	snapshot, err := q.store.ActiveSnapshotsByCabin(ctx, cabinID)
	if err != nil {
		return nil, err
	}

	check := &CabinCheck{
		CabinID:   cabinID,
		Available: reservation.IsAvailable(snapshot, cabinID, stay, uuid.Nil),
	}
	if !check.Available {
		if next, ok := reservation.NextAvailableDate(snapshot, cabinID, stay.CheckIn(), q.horizonDays); ok {
			check.NextAvailableDate = &next
		}
	}
	return check, nil
}

func (q *availabilityQueriesImpl) CheckAllCabins(ctx context.Context, stay reservation.StayRange) ([]reservation.CabinAvailability, error) {
	snapshot, err := q.store.ActiveSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	return reservation.CheckAllCabins(snapshot, stay, uuid.Nil), nil
}
