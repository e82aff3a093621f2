package booking

import (
	"math"

	"walkies/internal/domain/pet"
	"walkies/internal/domain/user"
	"walkies/internal/domain/walker"

	"walkies/internal/pkg/clock"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// CreateBooking builds a new pending booking for the actor's pet against
// the walker's listed rate. Conflict detection happens in the usecase
// layer, inside the same transaction as the write.
func (f *Factory) CreateBooking(
	actor Actor,
	p *pet.Pet,
	profile *walker.Profile,
	slot TimeSlot,
	instructions Instructions,
) (*Booking, error) {
	if actor.Role != user.RoleOwner {
		return nil, ErrNotBookingOwner
	}
	if !p.OwnedBy(actor.ID) {
		return nil, ErrNotBookingOwner
	}

	price, err := PriceFor(profile.HourlyRateCents(), slot)
	if err != nil {
		return nil, err
	}

	b := NewBooking(p.ID(), actor.ID, profile.UserID(), slot, price, instructions)
	b.createdAt = f.Clock.Now()
	b.updatedAt = b.createdAt
	return b, nil
}

// PriceFor computes rate * duration in hours, rounded to the rate's own
// unit (cents). No currency conversion is implied.
func PriceFor(hourlyRateCents int64, slot TimeSlot) (Money, error) {
	hours := slot.Duration().Hours()
	cents := int64(math.Round(float64(hourlyRateCents) * hours))
	return NewMoney(cents)
}
