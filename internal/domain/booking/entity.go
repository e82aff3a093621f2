package booking

import (
	"time"

	"walkies/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot    = errs.New("start time must be before end time")
	ErrInvalidStatus      = errs.New("invalid booking status")
	ErrInvalidTransition  = errs.New("transition not allowed from current status")
	ErrEngagementStarted  = errs.New("engagement already started")
	ErrNegativePrice      = errs.New("price cannot be negative")
	ErrNotParticipant     = errs.New("actor is not a participant of this booking")
	ErrNotBookingOwner    = errs.New("only the booking's owner may do this")
	ErrNotBookingWalker   = errs.New("only the booking's walker may do this")
	ErrInstructionsLocked = errs.New("special instructions can no longer be edited")
)

// Booking is the central entity: a walker's time slot reserved by an
// owner for one pet. Participants, interval and price are immutable after
// creation; only status and special instructions evolve.
type Booking struct {
	id           uuid.UUID
	petID        uuid.UUID
	ownerID      uuid.UUID
	walkerID     uuid.UUID
	slot         TimeSlot
	status       Status
	price        Money
	instructions Instructions
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBooking(petID, ownerID, walkerID uuid.UUID, slot TimeSlot, price Money, instructions Instructions) *Booking {
	return &Booking{
		id:           uuid.New(),
		petID:        petID,
		ownerID:      ownerID,
		walkerID:     walkerID,
		slot:         slot,
		status:       StatusPending,
		price:        price,
		instructions: instructions,
	}
}

func ReconstructBooking(
	id, petID, ownerID, walkerID uuid.UUID,
	slot TimeSlot,
	status Status,
	price Money,
	instructions Instructions,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		petID:        petID,
		ownerID:      ownerID,
		walkerID:     walkerID,
		slot:         slot,
		status:       status,
		price:        price,
		instructions: instructions,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Subject projects the booking into the policy's view of it.
func (b *Booking) Subject() Subject {
	return Subject{
		OwnerID:  b.ownerID,
		WalkerID: b.walkerID,
		Status:   b.status,
		Start:    b.slot.Start(),
	}
}

// Transition applies one status change on behalf of actor. Illegal edges
// and terminal states fail with ErrInvalidTransition; an actor on the
// wrong side of the booking fails with a policy error. On success the
// status advances and updatedAt is set to now.
func (b *Booking) Transition(actor Actor, target Status, now time.Time) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if err := Decide(actor, b.Subject(), TransitionOp(target), now); err != nil {
		return err
	}

	b.status = target
	b.updatedAt = now
	return nil
}

// UpdateInstructions replaces the special instructions. Owner-only, and
// only while the booking is pending or confirmed.
func (b *Booking) UpdateInstructions(actor Actor, instructions Instructions, now time.Time) error {
	if err := Decide(actor, b.Subject(), EditInstructionsOp(), now); err != nil {
		return err
	}

	b.instructions = instructions
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) PetID() uuid.UUID           { return b.petID }
func (b *Booking) OwnerID() uuid.UUID         { return b.ownerID }
func (b *Booking) WalkerID() uuid.UUID        { return b.walkerID }
func (b *Booking) Slot() TimeSlot             { return b.slot }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) Price() Money               { return b.price }
func (b *Booking) Instructions() Instructions { return b.instructions }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
