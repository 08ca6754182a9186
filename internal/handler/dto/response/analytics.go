package response

import (
	"time"

	"manuara-reservas/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CabinOccupancyResponse struct {
	CabinID       string  `json:"cabinId"`
	CabinLabel    string  `json:"cabinLabel"`
	BookedNights  int     `json:"bookedNights"`
	WindowNights  int     `json:"windowNights"`
	OccupancyRate float64 `json:"occupancyRate"`
}

func FromCabinOccupancies(rms []*queries.CabinOccupancy) []*CabinOccupancyResponse {
	out := make([]*CabinOccupancyResponse, len(rms))
	for i, rm := range rms {
		var resp CabinOccupancyResponse
		_ = copier.Copy(&resp, rm)
		out[i] = &resp
	}
	return out
}

type NotificationResponse struct {
	ID            uuid.UUID  `json:"id"`
	Kind          string     `json:"kind"`
	Message       string     `json:"message"`
	ReservationID uuid.UUID  `json:"reservationId"`
	ReadAt        *time.Time `json:"readAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func FromNotificationViews(rms []*queries.NotificationView) []*NotificationResponse {
	out := make([]*NotificationResponse, len(rms))
	for i, rm := range rms {
		var resp NotificationResponse
		_ = copier.Copy(&resp, rm)
		out[i] = &resp
	}
	return out
}
