package reservation

import (
	"errors"
	"strings"
	"time"

	"manuara-reservas/internal/domain/cabin"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus         = errors.New("invalid reservation status")
	ErrGuestNameRequired     = errors.New("guest name is required")
	ErrInvalidGuestCount     = errors.New("guest count must be positive")
	ErrGuestCountOverCap     = errors.New("guest count exceeds cabin capacity")
	ErrReservationCancelled  = errors.New("reservation is cancelled")
	ErrNotConfirmed          = errors.New("reservation is not confirmed")
	ErrAlreadyCheckedIn      = errors.New("guest already checked in")
	ErrNotCheckedIn          = errors.New("guest has not checked in")
	ErrAlreadyCheckedOut     = errors.New("guest already checked out")
	ErrInvalidPaymentAmount  = errors.New("payment amount must be positive")
	ErrPaymentExceedsTotal   = errors.New("payment exceeds outstanding total")
	ErrCheckedInNotCancelled = errors.New("cannot cancel after check-in")
)

type Reservation struct {
	id              uuid.UUID
	cabinID         cabin.ID
	stay            StayRange
	status          Status
	guestName       string
	guestCount      int
	contactEmail    string
	contactPhone    string
	note            string
	totalPriceCents int64
	amountPaidCents int64
	checkedInAt     *time.Time
	checkedOutAt    *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReservation(
	cabinID cabin.ID,
	stay StayRange,
	status Status,
	guestName string,
	guestCount int,
	contactEmail, contactPhone, note string,
) (*Reservation, error) {
	if !cabinID.IsValid() {
		return nil, cabin.ErrUnknownCabin
	}
	if !status.IsValid() || status == StatusCancelled {
		return nil, ErrInvalidStatus
	}
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, ErrGuestNameRequired
	}
	if guestCount < 1 {
		return nil, ErrInvalidGuestCount
	}
	if guestCount > cabinID.MaxCapacity() {
		return nil, ErrGuestCountOverCap
	}

	return &Reservation{
		id:              uuid.New(),
		cabinID:         cabinID,
		stay:            stay,
		status:          status,
		guestName:       guestName,
		guestCount:      guestCount,
		contactEmail:    strings.TrimSpace(contactEmail),
		contactPhone:    strings.TrimSpace(contactPhone),
		note:            strings.TrimSpace(note),
		totalPriceCents: priceFor(cabinID, stay),
	}, nil
}

// ReconstructReservation rehydrates a stored row without re-running
// creation validation.
func ReconstructReservation(
	id uuid.UUID,
	cabinID cabin.ID,
	stay StayRange,
	status Status,
	guestName string,
	guestCount int,
	contactEmail, contactPhone, note string,
	totalPriceCents, amountPaidCents int64,
	checkedInAt, checkedOutAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		cabinID:         cabinID,
		stay:            stay,
		status:          status,
		guestName:       guestName,
		guestCount:      guestCount,
		contactEmail:    contactEmail,
		contactPhone:    contactPhone,
		note:            note,
		totalPriceCents: totalPriceCents,
		amountPaidCents: amountPaidCents,
		checkedInAt:     checkedInAt,
		checkedOutAt:    checkedOutAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func priceFor(cabinID cabin.ID, stay StayRange) int64 {
	return int64(stay.Nights()) * cabinID.NightlyRateCents()
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) CabinID() cabin.ID    { return r.cabinID }
func (r *Reservation) Stay() StayRange      { return r.stay }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) GuestName() string    { return r.guestName }
func (r *Reservation) GuestCount() int      { return r.guestCount }
func (r *Reservation) ContactEmail() string { return r.contactEmail }
func (r *Reservation) ContactPhone() string { return r.contactPhone }
func (r *Reservation) Note() string         { return r.note }

func (r *Reservation) TotalPriceCents() int64   { return r.totalPriceCents }
func (r *Reservation) AmountPaidCents() int64   { return r.amountPaidCents }
func (r *Reservation) CheckedInAt() *time.Time  { return r.checkedInAt }
func (r *Reservation) CheckedOutAt() *time.Time { return r.checkedOutAt }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) PaymentStatus() PaymentStatus {
	switch {
	case r.amountPaidCents <= 0:
		return PaymentUnpaid
	case r.amountPaidCents < r.totalPriceCents:
		return PaymentPartial
	default:
		return PaymentPaid
	}
}

// Snapshot projects the fields availability decisions need.
func (r *Reservation) Snapshot() Snapshot {
	return Snapshot{
		ID:      r.id,
		CabinID: r.cabinID,
		Stay:    r.stay,
		Status:  r.status,
	}
}

// Reschedule moves the reservation to a new cabin and/or date range and
// reprices it. Availability against other reservations is the
// orchestrator's concern.
func (r *Reservation) Reschedule(cabinID cabin.ID, stay StayRange) error {
	if r.status == StatusCancelled {
		return ErrReservationCancelled
	}
	if !cabinID.IsValid() {
		return cabin.ErrUnknownCabin
	}
	if r.guestCount > cabinID.MaxCapacity() {
		return ErrGuestCountOverCap
	}
	r.cabinID = cabinID
	r.stay = stay
	r.totalPriceCents = priceFor(cabinID, stay)
	return nil
}

func (r *Reservation) UpdateGuestDetails(guestName string, guestCount int, contactEmail, contactPhone, note string) error {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return ErrGuestNameRequired
	}
	if guestCount < 1 {
		return ErrInvalidGuestCount
	}
	if guestCount > r.cabinID.MaxCapacity() {
		return ErrGuestCountOverCap
	}
	r.guestName = guestName
	r.guestCount = guestCount
	r.contactEmail = strings.TrimSpace(contactEmail)
	r.contactPhone = strings.TrimSpace(contactPhone)
	r.note = strings.TrimSpace(note)
	return nil
}

// MarkPending reverts a reservation that has not hosted its guests yet,
// e.g. while a payment dispute is sorted out.
func (r *Reservation) MarkPending() error {
	if r.status == StatusCancelled {
		return ErrReservationCancelled
	}
	if r.checkedInAt != nil {
		return ErrAlreadyCheckedIn
	}
	r.status = StatusPending
	return nil
}

func (r *Reservation) Confirm() error {
	if r.status == StatusCancelled {
		return ErrReservationCancelled
	}
	r.status = StatusConfirmed
	return nil
}

// Cancel is idempotent: cancelling a cancelled reservation is a no-op.
// Cancelling frees the date range for the next availability query.
func (r *Reservation) Cancel() error {
	if r.status == StatusCancelled {
		return nil
	}
	if r.checkedInAt != nil && r.checkedOutAt == nil {
		return ErrCheckedInNotCancelled
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) CheckIn(now time.Time) error {
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	if r.checkedInAt != nil {
		return ErrAlreadyCheckedIn
	}
	r.checkedInAt = &now
	return nil
}

func (r *Reservation) CheckOut(now time.Time) error {
	if r.checkedInAt == nil {
		return ErrNotCheckedIn
	}
	if r.checkedOutAt != nil {
		return ErrAlreadyCheckedOut
	}
	r.checkedOutAt = &now
	return nil
}

func (r *Reservation) RecordPayment(amountCents int64) error {
	if r.status == StatusCancelled {
		return ErrReservationCancelled
	}
	if amountCents <= 0 {
		return ErrInvalidPaymentAmount
	}
	if r.amountPaidCents+amountCents > r.totalPriceCents {
		return ErrPaymentExceedsTotal
	}
	r.amountPaidCents += amountCents
	return nil
}
