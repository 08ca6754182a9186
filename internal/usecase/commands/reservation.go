package commands

import (
	"context"
	"fmt"

	"manuara-reservas/internal/domain/cabin"
	"manuara-reservas/internal/domain/reservation"
	"manuara-reservas/internal/infra"
	"manuara-reservas/internal/pkg/clock"
	"manuara-reservas/internal/pkg/errs"
	"manuara-reservas/internal/usecase/queries"
	"manuara-reservas/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrDomainValidation    = errs.New("domain validation error")
	ErrStoreFailure        = errs.New("store operation failed")
)

// ConflictError is a normal outcome of the booking protocol, not a store
// failure: the requested range is taken. NextAvailableDate is the engine's
// bounded-scan suggestion and may be nil when the horizon was exhausted.
type ConflictError struct {
	CabinID           cabin.ID
	NextAvailableDate *reservation.Date
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cabin %s is not available for the requested range", e.CabinID)
}

type CreateReservationParams struct {
	CabinID      cabin.ID
	Stay         reservation.StayRange
	Status       reservation.Status
	GuestName    string
	GuestCount   int
	ContactEmail string
	ContactPhone string
	Note         string
}

// UpdateReservationParams carries partial updates; nil means unchanged.
type UpdateReservationParams struct {
	CabinID      *cabin.ID
	Stay         *reservation.StayRange
	Status       *reservation.Status
	GuestName    *string
	GuestCount   *int
	ContactEmail *string
	ContactPhone *string
	Note         *string
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateReservationParams) (*queries.ReservationView, error)
	Cancel(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	CheckOut(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	RecordPayment(ctx context.Context, id uuid.UUID, amountCents int64) (*queries.ReservationView, error)
}

const (
	notifReservationCreated   = "reservation_created"
	notifReservationCancelled = "reservation_cancelled"
	notifPaymentRecorded      = "payment_recorded"
	notifCheckedIn            = "checked_in"
	notifCheckedOut           = "checked_out"
)

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
	horizonDays        int
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
	horizonDays int,
) ReservationCommands {
	if horizonDays <= 0 {
		horizonDays = reservation.DefaultHorizonDays
	}
	return &reservationUseCaseImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		clock:              clk,
		horizonDays:        horizonDays,
	}
}

// Create re-checks availability and persists inside one serializable
// transaction, so the check-then-act window of the old dashboard protocol
// is closed rather than merely narrowed. The daterange exclusion
// constraint in the schema backstops it.
func (u *reservationUseCaseImpl) Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error) {
	entity, err := reservation.NewReservation(
		params.CabinID,
		params.Stay,
		params.Status,
		params.GuestName,
		params.GuestCount,
		params.ContactEmail,
		params.ContactPhone,
		params.Note,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().ActiveSnapshotsByCabin(ctx, params.CabinID)
		if err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		if !reservation.IsAvailable(snapshot, params.CabinID, params.Stay, uuid.Nil) {
			return u.conflict(snapshot, params.CabinID, params.Stay.CheckIn())
		}

		if err := tx.Reservations().Insert(ctx, entity); err != nil {
			return u.mapWriteError(ctx, err, params.CabinID, params.Stay.CheckIn())
		}

		msg := fmt.Sprintf("Reserva creada: %s, %s (%s → %s)",
			entity.GuestName(), params.CabinID.DisplayLabel(), params.Stay.CheckIn(), params.Stay.CheckOut())
		if err := tx.Notifications().Create(ctx, notifReservationCreated, msg, entity.ID()); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.viewByID(ctx, entity.ID())
}

func (u *reservationUseCaseImpl) Update(ctx context.Context, id uuid.UUID, params UpdateReservationParams) (*queries.ReservationView, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := u.loadEntity(ctx, tx, id)
		if err != nil {
			return err
		}

		targetCabin := entity.CabinID()
		if params.CabinID != nil {
			targetCabin = *params.CabinID
		}
		targetStay := entity.Stay()
		if params.Stay != nil {
			targetStay = *params.Stay
		}

		relocated := targetCabin != entity.CabinID() || !targetStay.Equal(entity.Stay())
		if relocated {
			// The reservation being edited must not conflict with its own
			// stored range, hence excludeID.
			snapshot, err := tx.Reads().ActiveSnapshotsByCabin(ctx, targetCabin)
			if err != nil {
				return errs.Mark(err, ErrStoreFailure)
			}
			if !reservation.IsAvailable(snapshot, targetCabin, targetStay, entity.ID()) {
				return u.conflict(snapshot, targetCabin, targetStay.CheckIn())
			}
			if err := entity.Reschedule(targetCabin, targetStay); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}

		if err := applyGuestPatch(entity, params); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		var cancelled bool
		if params.Status != nil && *params.Status != entity.Status() {
			switch *params.Status {
			case reservation.StatusConfirmed:
				if err := entity.Confirm(); err != nil {
					return errs.Mark(err, ErrDomainValidation)
				}
			case reservation.StatusPending:
				if err := entity.MarkPending(); err != nil {
					return errs.Mark(err, ErrDomainValidation)
				}
			case reservation.StatusCancelled:
				if err := entity.Cancel(); err != nil {
					return errs.Mark(err, ErrDomainValidation)
				}
				cancelled = true
			}
		}

		if err := tx.Reservations().Update(ctx, entity); err != nil {
			return u.mapWriteError(ctx, err, targetCabin, targetStay.CheckIn())
		}
		if cancelled {
			msg := fmt.Sprintf("Reserva cancelada: %s, %s", entity.GuestName(), entity.CabinID().DisplayLabel())
			if err := tx.Notifications().Create(ctx, notifReservationCancelled, msg, entity.ID()); err != nil {
				return errs.Mark(err, ErrStoreFailure)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.viewByID(ctx, id)
}

func (u *reservationUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := u.loadEntity(ctx, tx, id)
		if err != nil {
			return err
		}
		wasCancelled := entity.Status() == reservation.StatusCancelled

		if err := entity.Cancel(); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if wasCancelled {
			// Idempotent: nothing to write, nothing to announce.
			return nil
		}

		if err := tx.Reservations().Update(ctx, entity); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		msg := fmt.Sprintf("Reserva cancelada: %s, %s", entity.GuestName(), entity.CabinID().DisplayLabel())
		if err := tx.Notifications().Create(ctx, notifReservationCancelled, msg, entity.ID()); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.viewByID(ctx, id)
}

func (u *reservationUseCaseImpl) CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return u.timestampOp(ctx, id, notifCheckedIn, "Check-in registrado: %s, %s", func(entity *reservation.Reservation) error {
		return entity.CheckIn(u.clock.Now())
	})
}

func (u *reservationUseCaseImpl) CheckOut(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return u.timestampOp(ctx, id, notifCheckedOut, "Check-out registrado: %s, %s", func(entity *reservation.Reservation) error {
		return entity.CheckOut(u.clock.Now())
	})
}

func (u *reservationUseCaseImpl) RecordPayment(ctx context.Context, id uuid.UUID, amountCents int64) (*queries.ReservationView, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := u.loadEntity(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := entity.RecordPayment(amountCents); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Reservations().Update(ctx, entity); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		msg := fmt.Sprintf("Pago registrado: %s, %s (%s)",
			entity.GuestName(), entity.CabinID().DisplayLabel(), entity.PaymentStatus())
		if err := tx.Notifications().Create(ctx, notifPaymentRecorded, msg, entity.ID()); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.viewByID(ctx, id)
}

func (u *reservationUseCaseImpl) timestampOp(
	ctx context.Context,
	id uuid.UUID,
	notifKind, msgFormat string,
	op func(*reservation.Reservation) error,
) (*queries.ReservationView, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := u.loadEntity(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := op(entity); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Reservations().Update(ctx, entity); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		msg := fmt.Sprintf(msgFormat, entity.GuestName(), entity.CabinID().DisplayLabel())
		if err := tx.Notifications().Create(ctx, notifKind, msg, entity.ID()); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.viewByID(ctx, id)
}

func (u *reservationUseCaseImpl) loadEntity(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	entity, err := tx.Reads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return entity, nil
}

func (u *reservationUseCaseImpl) conflict(snapshot []reservation.Snapshot, cabinID cabin.ID, from reservation.Date) error {
	conflictErr := &ConflictError{CabinID: cabinID}
	if next, ok := reservation.NextAvailableDate(snapshot, cabinID, from, u.horizonDays); ok {
		conflictErr.NextAvailableDate = &next
	}
	return conflictErr
}

// mapWriteError turns an exclusion-constraint violation into the same
// conflict result the in-transaction check produces. The snapshot that saw
// the conflict is gone with the aborted transaction, so the suggestion is
// recomputed from a fresh read, best effort.
func (u *reservationUseCaseImpl) mapWriteError(ctx context.Context, err error, cabinID cabin.ID, from reservation.Date) error {
	if !infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, ErrStoreFailure)
	}
	conflictErr := &ConflictError{CabinID: cabinID}
	if snapshot, readErr := u.uow.CommandReads().ActiveSnapshotsByCabin(ctx, cabinID); readErr == nil {
		if next, ok := reservation.NextAvailableDate(snapshot, cabinID, from, u.horizonDays); ok {
			conflictErr.NextAvailableDate = &next
		}
	}
	return conflictErr
}

func (u *reservationUseCaseImpl) viewByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := u.reservationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}

func applyGuestPatch(entity *reservation.Reservation, params UpdateReservationParams) error {
	if params.GuestName == nil && params.GuestCount == nil &&
		params.ContactEmail == nil && params.ContactPhone == nil && params.Note == nil {
		return nil
	}

	guestName := entity.GuestName()
	if params.GuestName != nil {
		guestName = *params.GuestName
	}
	guestCount := entity.GuestCount()
	if params.GuestCount != nil {
		guestCount = *params.GuestCount
	}
	contactEmail := entity.ContactEmail()
	if params.ContactEmail != nil {
		contactEmail = *params.ContactEmail
	}
	contactPhone := entity.ContactPhone()
	if params.ContactPhone != nil {
		contactPhone = *params.ContactPhone
	}
	note := entity.Note()
	if params.Note != nil {
		note = *params.Note
	}

	return entity.UpdateGuestDetails(guestName, guestCount, contactEmail, contactPhone, note)
}
