package booking

import (
	"fmt"
	"strings"
	"time"
)

// TimeSlot is the half-open interval [start, end) a booking occupies.
// Instants are absolute; no timezone semantics beyond that.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps is true iff the two half-open intervals intersect. Touching
// boundaries (a.end == b.start) do not overlap, so back-to-back bookings
// are allowed.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// StartedBy reports whether the slot's start has already passed at now.
func (ts TimeSlot) StartedBy(now time.Time) bool {
	return !now.Before(ts.start)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

// Instructions is the owner's optional free-text care note for a booking.
type Instructions struct {
	value string
}

func NewInstructions(value string) Instructions {
	return Instructions{value: strings.TrimSpace(value)}
}

func (i Instructions) String() string {
	return i.value
}

func (i Instructions) IsEmpty() bool {
	return i.value == ""
}
