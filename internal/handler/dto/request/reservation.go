package request

import (
	"manuara-reservas/internal/domain/cabin"
	"manuara-reservas/internal/domain/reservation"
	"manuara-reservas/internal/pkg/errs"
	"manuara-reservas/internal/usecase/commands"
)

var ErrDatesIncomplete = errs.New("check_in and check_out must be provided together")

type CreateReservationRequest struct {
	CabinID      string  `json:"cabin_id" binding:"required"`
	CheckIn      string  `json:"check_in" binding:"required"`
	CheckOut     string  `json:"check_out" binding:"required"`
	Status       *string `json:"status,omitempty"`
	GuestName    string  `json:"guest_name" binding:"required"`
	GuestCount   int     `json:"guest_count" binding:"required"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Note         *string `json:"note,omitempty"`
}

// ToParams parses wire values into domain types. Malformed dates, an
// unknown cabin and a reversed range all fail here, before any use case
// logic runs.
func (r CreateReservationRequest) ToParams() (commands.CreateReservationParams, error) {
	cabinID, err := cabin.ParseID(r.CabinID)
	if err != nil {
		return commands.CreateReservationParams{}, err
	}

	stay, err := reservation.ParseStayRange(r.CheckIn, r.CheckOut)
	if err != nil {
		return commands.CreateReservationParams{}, err
	}

	status := reservation.StatusConfirmed
	if r.Status != nil {
		status = reservation.Status(*r.Status)
		if !status.IsValid() {
			return commands.CreateReservationParams{}, reservation.ErrInvalidStatus
		}
	}

	return commands.CreateReservationParams{
		CabinID:      cabinID,
		Stay:         stay,
		Status:       status,
		GuestName:    r.GuestName,
		GuestCount:   r.GuestCount,
		ContactEmail: deref(r.ContactEmail),
		ContactPhone: deref(r.ContactPhone),
		Note:         deref(r.Note),
	}, nil
}

type UpdateReservationRequest struct {
	CabinID      *string `json:"cabin_id,omitempty"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	Status       *string `json:"status,omitempty"`
	GuestName    *string `json:"guest_name,omitempty"`
	GuestCount   *int    `json:"guest_count,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Note         *string `json:"note,omitempty"`
}

func (r UpdateReservationRequest) ToParams() (commands.UpdateReservationParams, error) {
	params := commands.UpdateReservationParams{
		GuestName:    r.GuestName,
		GuestCount:   r.GuestCount,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Note:         r.Note,
	}

	if r.CabinID != nil {
		cabinID, err := cabin.ParseID(*r.CabinID)
		if err != nil {
			return commands.UpdateReservationParams{}, err
		}
		params.CabinID = &cabinID
	}

	// Dates only move as a pair; a lone endpoint cannot be validated
	// against the stored one without racing other edits.
	if (r.CheckIn == nil) != (r.CheckOut == nil) {
		return commands.UpdateReservationParams{}, ErrDatesIncomplete
	}
	if r.CheckIn != nil {
		stay, err := reservation.ParseStayRange(*r.CheckIn, *r.CheckOut)
		if err != nil {
			return commands.UpdateReservationParams{}, err
		}
		params.Stay = &stay
	}

	if r.Status != nil {
		status := reservation.Status(*r.Status)
		if !status.IsValid() {
			return commands.UpdateReservationParams{}, reservation.ErrInvalidStatus
		}
		params.Status = &status
	}

	return params, nil
}

type RecordPaymentRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
