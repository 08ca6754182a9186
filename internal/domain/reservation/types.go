package reservation

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the reservation occupies its date range.
// Cancelled reservations never participate in conflict checks.
func (s Status) IsActive() bool {
	return s == StatusConfirmed || s == StatusPending
}

// PaymentStatus is derived from amount paid vs total price, never stored.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)
