package cabin

import "errors"

var ErrUnknownCabin = errors.New("unknown cabin")

// ID is the canonical internal identifier of a physical cabin. External
// short codes and display labels map onto it; neither participates in
// comparisons anywhere else in the system.
type ID string

const (
	Small   ID = "small"
	Medium1 ID = "medium-1"
	Medium2 ID = "medium-2"
	Large   ID = "large"
)

type Info struct {
	ID               ID
	MaxCapacity      int
	NightlyRateCents int64
	ExternalCode     string
	DisplayLabel     string
}

// catalog order is the declared order of the physical cabins; availability
// listings preserve it regardless of input ordering.
var catalog = []Info{
	{ID: Small, MaxCapacity: 3, NightlyRateCents: 5500, ExternalCode: "pequena", DisplayLabel: "Cabaña Pequeña (Max 3p)"},
	{ID: Medium1, MaxCapacity: 4, NightlyRateCents: 7000, ExternalCode: "mediana1", DisplayLabel: "Cabaña Mediana 1 (Max 4p)"},
	{ID: Medium2, MaxCapacity: 4, NightlyRateCents: 7000, ExternalCode: "mediana2", DisplayLabel: "Cabaña Mediana 2 (Max 4p)"},
	{ID: Large, MaxCapacity: 6, NightlyRateCents: 9500, ExternalCode: "grande", DisplayLabel: "Cabaña Grande (Max 6p)"},
}

var (
	byID           = map[ID]Info{}
	byExternalCode = map[string]Info{}
)

func init() {
	for _, info := range catalog {
		byID[info.ID] = info
		byExternalCode[info.ExternalCode] = info
	}
}

// All returns the cabin catalog in declared order.
func All() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

func ParseID(s string) (ID, error) {
	if _, ok := byID[ID(s)]; !ok {
		return "", ErrUnknownCabin
	}
	return ID(s), nil
}

// FromExternalCode resolves the short code used by the external
// availability integration.
func FromExternalCode(code string) (ID, error) {
	info, ok := byExternalCode[code]
	if !ok {
		return "", ErrUnknownCabin
	}
	return info.ID, nil
}

func (id ID) IsValid() bool {
	_, ok := byID[id]
	return ok
}

func (id ID) String() string {
	return string(id)
}

func (id ID) MaxCapacity() int {
	return byID[id].MaxCapacity
}

func (id ID) NightlyRateCents() int64 {
	return byID[id].NightlyRateCents
}

func (id ID) ExternalCode() string {
	return byID[id].ExternalCode
}

func (id ID) DisplayLabel() string {
	return byID[id].DisplayLabel
}
