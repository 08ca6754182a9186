package reservation

import (
	"manuara-reservas/internal/domain/cabin"

	"github.com/google/uuid"
)

// DefaultHorizonDays bounds the next-available-date scan when no explicit
// horizon is configured.
const DefaultHorizonDays = 30

// Snapshot is the minimal projection of a stored reservation that
// availability decisions operate on. The engine is pure: it never performs
// I/O and never errors on well-formed input.
type Snapshot struct {
	ID      uuid.UUID
	CabinID cabin.ID
	Stay    StayRange
	Status  Status
}

type CabinAvailability struct {
	CabinID     cabin.ID
	Available   bool
	MaxCapacity int
}

// IsAvailable reports whether cabinID is free for stay given the snapshot.
// Reservations for other cabins, cancelled reservations, and the
// reservation identified by excludeID (uuid.Nil for none) are ignored, so
// an in-progress edit does not conflict with its own stored range.
func IsAvailable(snapshot []Snapshot, cabinID cabin.ID, stay StayRange, excludeID uuid.UUID) bool {
	for _, s := range snapshot {
		if s.CabinID != cabinID {
			continue
		}
		if !s.Status.IsActive() {
			continue
		}
		if excludeID != uuid.Nil && s.ID == excludeID {
			continue
		}
		if s.Stay.Overlaps(stay) {
			return false
		}
	}
	return true
}

// CheckAllCabins runs IsAvailable once per catalog cabin, in the declared
// catalog order regardless of snapshot ordering.
func CheckAllCabins(snapshot []Snapshot, stay StayRange, excludeID uuid.UUID) []CabinAvailability {
	infos := cabin.All()
	out := make([]CabinAvailability, 0, len(infos))
	for _, info := range infos {
		out = append(out, CabinAvailability{
			CabinID:     info.ID,
			Available:   IsAvailable(snapshot, info.ID, stay, excludeID),
			MaxCapacity: info.MaxCapacity,
		})
	}
	return out
}

// NextAvailableDate scans day by day from `from` (inclusive) for the first
// date not covered by any active reservation of cabinID, giving up after
// horizonDays. The false return means "no answer within the horizon", not
// "free beyond it".
func NextAvailableDate(snapshot []Snapshot, cabinID cabin.ID, from Date, horizonDays int) (Date, bool) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	d := from
	for i := 0; i < horizonDays; i++ {
		if !dayOccupied(snapshot, cabinID, d) {
			return d, true
		}
		d = d.AddDays(1)
	}
	return Date{}, false
}

func dayOccupied(snapshot []Snapshot, cabinID cabin.ID, d Date) bool {
	for _, s := range snapshot {
		if s.CabinID != cabinID || !s.Status.IsActive() {
			continue
		}
		if s.Stay.Contains(d) {
			return true
		}
	}
	return false
}
