package shared

import (
	"context"

	"manuara-reservas/internal/domain/cabin"
	"manuara-reservas/internal/domain/reservation"

	"github.com/google/uuid"
)

// UnitOfWork serializes the availability re-check and the write that
// follows it. Every booking mutation runs inside Within so two concurrent
// writers cannot both pass their checks and double-book a cabin.
type UnitOfWork interface {
	// Within: serializable transaction with retry on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: snapshot reads outside a transaction (best-effort paths)
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ActiveSnapshotsByCabin(ctx context.Context, cabinID cabin.ID) ([]reservation.Snapshot, error)
}

type ReservationRepository interface {
	Insert(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
}

type NotificationRepository interface {
	Create(ctx context.Context, kind, message string, reservationID uuid.UUID) error
	MarkRead(ctx context.Context, id uuid.UUID) error
}
