package builder

import (
	"time"

	"manuara-reservas/internal/domain/cabin"
	"manuara-reservas/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationBuilder builds valid reservations for tests; mutate the
// defaults through the With* methods.
type ReservationBuilder struct {
	cabinID      cabin.ID
	checkIn      string
	checkOut     string
	status       reservation.Status
	guestName    string
	guestCount   int
	contactEmail string
	contactPhone string
	note         string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		cabinID:      cabin.Small,
		checkIn:      "2025-08-01",
		checkOut:     "2025-08-05",
		status:       reservation.StatusConfirmed,
		guestName:    "Ana Pakarati",
		guestCount:   2,
		contactEmail: "ana@example.com",
		contactPhone: "+56 9 5555 1234",
		note:         "",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithCabin(id cabin.ID) *ReservationBuilder {
	b.cabinID = id
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut string) *ReservationBuilder {
	b.checkIn = checkIn
	b.checkOut = checkOut
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.status = s
	return b
}

func (b *ReservationBuilder) WithGuestName(name string) *ReservationBuilder {
	b.guestName = name
	return b
}

func (b *ReservationBuilder) WithGuestCount(n int) *ReservationBuilder {
	b.guestCount = n
	return b
}

func (b *ReservationBuilder) WithNote(note string) *ReservationBuilder {
	b.note = note
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := reservation.ParseStayRange(b.checkIn, b.checkOut)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(
		b.cabinID,
		stay,
		b.status,
		b.guestName,
		b.guestCount,
		b.contactEmail,
		b.contactPhone,
		b.note,
	)
}

// BuildReconstructed rehydrates an entity the way the read store does,
// bypassing creation validation. Needed for states NewReservation cannot
// produce, like cancelled.
func (b *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	stay, err := reservation.ParseStayRange(b.checkIn, b.checkOut)
	if err != nil {
		panic(err)
	}
	total := int64(stay.Nights()) * b.cabinID.NightlyRateCents()
	return reservation.ReconstructReservation(
		uuid.New(),
		b.cabinID,
		stay,
		b.status,
		b.guestName,
		b.guestCount,
		b.contactEmail,
		b.contactPhone,
		b.note,
		total,
		0,
		nil,
		nil,
		time.Now(),
		time.Now(),
	)
}

// BuildSnapshot produces an engine snapshot directly; the stay must be
// well-formed or the builder panics, which is acceptable in tests.
func (b *ReservationBuilder) BuildSnapshot() reservation.Snapshot {
	stay, err := reservation.ParseStayRange(b.checkIn, b.checkOut)
	if err != nil {
		panic(err)
	}
	return reservation.Snapshot{
		ID:      uuid.New(),
		CabinID: b.cabinID,
		Stay:    stay,
		Status:  b.status,
	}
}
