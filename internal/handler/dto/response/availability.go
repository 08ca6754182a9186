package response

import (
	"manuara-reservas/internal/domain/reservation"
	"manuara-reservas/internal/usecase/queries"
)

type CabinCheckResponse struct {
	CabinID           string  `json:"cabinId"`
	Available         bool    `json:"available"`
	NextAvailableDate *string `json:"nextAvailableDate,omitempty"`
}

func FromCabinCheck(check *queries.CabinCheck) *CabinCheckResponse {
	return &CabinCheckResponse{
		CabinID:           string(check.CabinID),
		Available:         check.Available,
		NextAvailableDate: dateString(check.NextAvailableDate),
	}
}

type CabinAvailabilityResponse struct {
	CabinID     string `json:"cabinId"`
	CabinLabel  string `json:"cabinLabel"`
	Available   bool   `json:"available"`
	MaxCapacity int    `json:"maxCapacity"`
}

func FromCabinAvailabilities(results []reservation.CabinAvailability) []*CabinAvailabilityResponse {
	out := make([]*CabinAvailabilityResponse, len(results))
	for i, r := range results {
		out[i] = &CabinAvailabilityResponse{
			CabinID:     string(r.CabinID),
			CabinLabel:  r.CabinID.DisplayLabel(),
			Available:   r.Available,
			MaxCapacity: r.MaxCapacity,
		}
	}
	return out
}

// ExternalAvailabilityResponse is the integration contract: external
// short code in, external short code out, internal IDs never leak.
type ExternalAvailabilityResponse struct {
	Available         bool    `json:"available"`
	CabinType         string  `json:"cabinType"`
	CheckIn           string  `json:"checkIn"`
	CheckOut          string  `json:"checkOut"`
	NextAvailableDate *string `json:"nextAvailableDate,omitempty"`
}

func dateString(d *reservation.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
