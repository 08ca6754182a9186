package response

import (
	"time"

	"manuara-reservas/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID              uuid.UUID  `json:"id"`
	CabinID         string     `json:"cabinId"`
	CabinLabel      string     `json:"cabinLabel"`
	CheckIn         string     `json:"checkIn"`
	CheckOut        string     `json:"checkOut"`
	Nights          int        `json:"nights"`
	Status          string     `json:"status"`
	GuestName       string     `json:"guestName"`
	GuestCount      int        `json:"guestCount"`
	ContactEmail    string     `json:"contactEmail,omitempty"`
	ContactPhone    string     `json:"contactPhone,omitempty"`
	Note            string     `json:"note,omitempty"`
	TotalPriceCents int64      `json:"totalPriceCents"`
	AmountPaidCents int64      `json:"amountPaidCents"`
	PaymentStatus   string     `json:"paymentStatus"`
	CheckedInAt     *time.Time `json:"checkedInAt,omitempty"`
	CheckedOutAt    *time.Time `json:"checkedOutAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	// Field names line up with the read model on purpose.
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromReservationView(rm)
	}
	return out
}

type TurnoverResponse struct {
	CabinID        string    `json:"cabinId"`
	CabinLabel     string    `json:"cabinLabel"`
	Date           string    `json:"date"`
	DepartureID    uuid.UUID `json:"departureId"`
	DepartureGuest string    `json:"departureGuest"`
	ArrivalID      uuid.UUID `json:"arrivalId"`
	ArrivalGuest   string    `json:"arrivalGuest"`
}

func FromTurnoverViews(rms []*queries.TurnoverView) []*TurnoverResponse {
	out := make([]*TurnoverResponse, len(rms))
	for i, rm := range rms {
		var resp TurnoverResponse
		_ = copier.Copy(&resp, rm)
		out[i] = &resp
	}
	return out
}
