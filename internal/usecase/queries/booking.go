package queries

import (
	"context"

	"walkies/internal/domain/booking"
	"walkies/internal/infra"
	"walkies/internal/pkg/clock"
	"walkies/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrAccessDenied    = errs.New("access denied")
)

type BookingQueries interface {
	// GetByID returns the booking only to its owner or walker.
	GetByID(ctx context.Context, actor booking.Actor, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the participant gate, for read-after-write paths.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByActor(ctx context.Context, actor booking.Actor) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindViewsByParticipant(ctx context.Context, participantID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clock}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor booking.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	status, err := booking.NewStatus(view.Status)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking has invalid status")
	}

	subject := booking.Subject{
		OwnerID:  view.OwnerID,
		WalkerID: view.WalkerID,
		Status:   status,
		Start:    view.StartTime,
	}
	if err := booking.Decide(actor, subject, booking.ReadOp(), q.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrAccessDenied)
	}

	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByActor(ctx context.Context, actor booking.Actor) ([]*BookingListItem, error) {
	return q.store.FindViewsByParticipant(ctx, actor.ID)
}
