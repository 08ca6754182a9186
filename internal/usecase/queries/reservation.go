package queries

import (
	"context"
	"time"

	"manuara-reservas/internal/domain/cabin"
	"manuara-reservas/internal/domain/reservation"
	"manuara-reservas/internal/infra"
	"manuara-reservas/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

// ReservationView is the read model served to the dashboard.
type ReservationView struct {
	ID              uuid.UUID
	CabinID         string
	CabinLabel      string
	CheckIn         string
	CheckOut        string
	Nights          int
	Status          string
	GuestName       string
	GuestCount      int
	ContactEmail    string
	ContactPhone    string
	Note            string
	TotalPriceCents int64
	AmountPaidCents int64
	PaymentStatus   string
	CheckedInAt     *time.Time
	CheckedOutAt    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TurnoverView flags a same-cabin same-day departure and arrival. An
// operational warning for the cleaning crew, never a booking conflict.
type TurnoverView struct {
	CabinID        string
	CabinLabel     string
	Date           string
	DepartureID    uuid.UUID
	DepartureGuest string
	ArrivalID      uuid.UUID
	ArrivalGuest   string
}

type ReservationFilter struct {
	CabinID      *cabin.ID
	Status       *reservation.Status
	From         *reservation.Date // window overlap, half-open
	To           *reservation.Date
	ArrivalsOn   *reservation.Date
	DeparturesOn *reservation.Date
}

// ReservationReadStore is the snapshot-per-call query interface over the
// store; no process-wide cache sits behind it.
type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	ActiveSnapshotsByCabin(ctx context.Context, cabinID cabin.ID) ([]reservation.Snapshot, error)
	ActiveSnapshots(ctx context.Context) ([]reservation.Snapshot, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	Turnovers(ctx context.Context, date reservation.Date) ([]*TurnoverView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error) {
	return q.store.List(ctx, filter)
}

func (q *reservationQueriesImpl) Turnovers(ctx context.Context, date reservation.Date) ([]*TurnoverView, error) {
	confirmed := reservation.StatusConfirmed

	departures, err := q.store.List(ctx, ReservationFilter{DeparturesOn: &date, Status: &confirmed})
	if err != nil {
		return nil, err
	}
	arrivals, err := q.store.List(ctx, ReservationFilter{ArrivalsOn: &date, Status: &confirmed})
	if err != nil {
		return nil, err
	}

	arrivalsByCabin := make(map[string]*ReservationView, len(arrivals))
	for _, a := range arrivals {
		arrivalsByCabin[a.CabinID] = a
	}

	var out []*TurnoverView
	for _, d := range departures {
		a, ok := arrivalsByCabin[d.CabinID]
		if !ok {
			continue
		}
		out = append(out, &TurnoverView{
			CabinID:        d.CabinID,
			CabinLabel:     d.CabinLabel,
			Date:           date.String(),
			DepartureID:    d.ID,
			DepartureGuest: d.GuestName,
			ArrivalID:      a.ID,
			ArrivalGuest:   a.GuestName,
		})
	}
	return out, nil
}
