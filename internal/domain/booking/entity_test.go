//go:build unit

package booking_test

import (
	"testing"

	"walkies/internal/domain/booking"
	"walkies/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T, owner, walker booking.Actor) *booking.Booking {
	t.Helper()
	slot := mustSlot(t, at(t, 10, 0), at(t, 11, 0))
	price, err := booking.NewMoney(2000)
	require.NoError(t, err)
	return booking.NewBooking(uuid.New(), owner.ID, walker.ID, slot, price, booking.NewInstructions(""))
}

func TestBookingLifecycleScenario(t *testing.T) {
	owner := booking.Actor{ID: uuid.New(), Role: user.RoleOwner}
	walker := booking.Actor{ID: uuid.New(), Role: user.RoleWalker}
	b := newTestBooking(t, owner, walker)
	now := at(t, 9, 0)

	require.Equal(t, booking.StatusPending, b.Status())

	// Owner cannot confirm their own booking.
	err := b.Transition(owner, booking.StatusConfirmed, now)
	require.ErrorIs(t, err, booking.ErrNotBookingWalker)
	assert.Equal(t, booking.StatusPending, b.Status())

	// Walker confirms, then completes.
	require.NoError(t, b.Transition(walker, booking.StatusConfirmed, now))
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, now, b.UpdatedAt())

	later := at(t, 12, 0)
	require.NoError(t, b.Transition(walker, booking.StatusCompleted, later))
	assert.Equal(t, booking.StatusCompleted, b.Status())
	assert.Equal(t, later, b.UpdatedAt())

	// Completed is terminal: any further transition fails.
	err = b.Transition(owner, booking.StatusCanceled, later)
	require.ErrorIs(t, err, booking.ErrInvalidTransition)
	err = b.Transition(walker, booking.StatusCanceled, later)
	require.ErrorIs(t, err, booking.ErrInvalidTransition)
	assert.Equal(t, booking.StatusCompleted, b.Status())
}

func TestBookingRejectScenario(t *testing.T) {
	owner := booking.Actor{ID: uuid.New(), Role: user.RoleOwner}
	walker := booking.Actor{ID: uuid.New(), Role: user.RoleWalker}
	b := newTestBooking(t, owner, walker)
	now := at(t, 9, 0)

	require.NoError(t, b.Transition(walker, booking.StatusRejected, now))
	assert.Equal(t, booking.StatusRejected, b.Status())

	err := b.Transition(walker, booking.StatusConfirmed, now)
	require.ErrorIs(t, err, booking.ErrInvalidTransition)
}

func TestBookingCancelGuard(t *testing.T) {
	owner := booking.Actor{ID: uuid.New(), Role: user.RoleOwner}
	walker := booking.Actor{ID: uuid.New(), Role: user.RoleWalker}
	b := newTestBooking(t, owner, walker)

	require.NoError(t, b.Transition(walker, booking.StatusConfirmed, at(t, 9, 0)))

	// Slot starts at 10:00; cancellation at 10:30 is too late.
	err := b.Transition(owner, booking.StatusCanceled, at(t, 10, 30))
	require.ErrorIs(t, err, booking.ErrEngagementStarted)
	assert.Equal(t, booking.StatusConfirmed, b.Status())

	require.NoError(t, b.Transition(owner, booking.StatusCanceled, at(t, 9, 30)))
	assert.Equal(t, booking.StatusCanceled, b.Status())
}

func TestBookingInvalidTargetStatus(t *testing.T) {
	owner := booking.Actor{ID: uuid.New(), Role: user.RoleOwner}
	walker := booking.Actor{ID: uuid.New(), Role: user.RoleWalker}
	b := newTestBooking(t, owner, walker)

	err := b.Transition(walker, booking.Status("cancelled"), at(t, 9, 0))
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestBookingUpdateInstructions(t *testing.T) {
	owner := booking.Actor{ID: uuid.New(), Role: user.RoleOwner}
	walker := booking.Actor{ID: uuid.New(), Role: user.RoleWalker}
	b := newTestBooking(t, owner, walker)
	now := at(t, 9, 0)

	require.NoError(t, b.UpdateInstructions(owner, booking.NewInstructions("needs his medication at 2:30pm"), now))
	assert.Equal(t, "needs his medication at 2:30pm", b.Instructions().String())

	err := b.UpdateInstructions(walker, booking.NewInstructions("nope"), now)
	require.ErrorIs(t, err, booking.ErrNotBookingOwner)

	require.NoError(t, b.Transition(walker, booking.StatusRejected, now))
	err = b.UpdateInstructions(owner, booking.NewInstructions("too late"), now)
	require.ErrorIs(t, err, booking.ErrInstructionsLocked)
	assert.Equal(t, "needs his medication at 2:30pm", b.Instructions().String())
}
