package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidStayRange = errors.New("check-out must be after check-in")
)

// Date is a calendar date with no time component. Reservations are compared
// at day granularity; the wire and storage format is ISO YYYY-MM-DD.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

// DateOf truncates a timestamp to its calendar date in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.t.Format(time.DateOnly)
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

func (d Date) After(o Date) bool {
	return d.t.After(o.t)
}

func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the number of whole days from d to o (negative if o
// precedes d).
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t) / (24 * time.Hour))
}

// StayRange is a half-open [checkIn, checkOut) date interval. The checkout
// day itself is not occupied, so a same-day turnover on one cabin is not a
// conflict.
type StayRange struct {
	checkIn  Date
	checkOut Date
}

func NewStayRange(checkIn, checkOut Date) (StayRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return StayRange{}, ErrInvalidDate
	}
	if !checkOut.After(checkIn) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

func ParseStayRange(checkIn, checkOut string) (StayRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return StayRange{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return StayRange{}, err
	}
	return NewStayRange(in, out)
}

func (s StayRange) CheckIn() Date {
	return s.checkIn
}

func (s StayRange) CheckOut() Date {
	return s.checkOut
}

func (s StayRange) Nights() int {
	return s.checkIn.DaysUntil(s.checkOut)
}

// Overlaps applies the half-open interval rule:
// a.checkIn < b.checkOut && a.checkOut > b.checkIn.
func (s StayRange) Overlaps(o StayRange) bool {
	return s.checkIn.Before(o.checkOut) && s.checkOut.After(o.checkIn)
}

// Contains reports whether d falls within [checkIn, checkOut).
func (s StayRange) Contains(d Date) bool {
	return !d.Before(s.checkIn) && d.Before(s.checkOut)
}

func (s StayRange) Equal(o StayRange) bool {
	return s.checkIn.Equal(o.checkIn) && s.checkOut.Equal(o.checkOut)
}

// ToDaterange renders the range in postgres daterange literal form.
func (s StayRange) ToDaterange() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn, s.checkOut)
}
