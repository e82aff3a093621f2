package booking

import (
	"time"

	"walkies/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated identity an operation runs as. The core never
// reads ambient session state; every operation receives its actor
// explicitly.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

// Subject is the slice of a booking the policy needs to decide access:
// who holds each side, where the lifecycle stands, and when the slot
// starts.
type Subject struct {
	OwnerID  uuid.UUID
	WalkerID uuid.UUID
	Status   Status
	Start    time.Time
}

type OpKind int

const (
	OpRead OpKind = iota + 1
	OpEditInstructions
	OpTransition
)

type Operation struct {
	Kind   OpKind
	Target Status
}

func ReadOp() Operation {
	return Operation{Kind: OpRead}
}

func EditInstructionsOp() Operation {
	return Operation{Kind: OpEditInstructions}
}

func TransitionOp(target Status) Operation {
	return Operation{Kind: OpTransition, Target: target}
}

// binding names which side of the booking an actor must hold for a
// transition edge.
type binding int

const (
	bindOwner binding = iota + 1
	bindWalker
	bindParticipant
)

type rule struct {
	binding binding
	// notStarted rejects the transition once the slot's start has passed.
	notStarted bool
}

var transitionRules = map[Status]map[Status]rule{
	StatusPending: {
		StatusConfirmed: {binding: bindWalker},
		StatusRejected:  {binding: bindWalker},
		StatusCanceled:  {binding: bindOwner},
	},
	StatusConfirmed: {
		StatusCompleted: {binding: bindWalker},
		StatusCanceled:  {binding: bindParticipant, notStarted: true},
	},
}

// Decide is the pure authorization decision: nil allows the operation,
// otherwise the returned error names why it is denied. It has no side
// effects and consults nothing but its arguments.
func Decide(actor Actor, subj Subject, op Operation, now time.Time) error {
	switch op.Kind {
	case OpRead:
		if isParticipant(actor, subj) {
			return nil
		}
		return ErrNotParticipant

	case OpEditInstructions:
		if actor.ID != subj.OwnerID || actor.Role != user.RoleOwner {
			return ErrNotBookingOwner
		}
		if !subj.Status.IsActive() {
			return ErrInstructionsLocked
		}
		return nil

	case OpTransition:
		return decideTransition(actor, subj, op.Target, now)

	default:
		return ErrNotParticipant
	}
}

func decideTransition(actor Actor, subj Subject, target Status, now time.Time) error {
	r, ok := transitionRules[subj.Status][target]
	if !ok {
		return ErrInvalidTransition
	}

	switch r.binding {
	case bindOwner:
		if actor.ID != subj.OwnerID || actor.Role != user.RoleOwner {
			return ErrNotBookingOwner
		}
	case bindWalker:
		if actor.ID != subj.WalkerID || actor.Role != user.RoleWalker {
			return ErrNotBookingWalker
		}
	case bindParticipant:
		if !isParticipant(actor, subj) {
			return ErrNotParticipant
		}
	}

	if r.notStarted && !now.Before(subj.Start) {
		return ErrEngagementStarted
	}

	return nil
}

func isParticipant(actor Actor, subj Subject) bool {
	switch actor.Role {
	case user.RoleOwner:
		return actor.ID == subj.OwnerID
	case user.RoleWalker:
		return actor.ID == subj.WalkerID
	default:
		return false
	}
}
