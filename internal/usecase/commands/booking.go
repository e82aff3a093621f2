package commands

import (
	"context"
	"errors"
	"time"

	"walkies/internal/domain/booking"
	"walkies/internal/infra"
	"walkies/internal/pkg/clock"
	"walkies/internal/pkg/errs"
	"walkies/internal/usecase/queries"
	"walkies/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPetNotFound             = errs.New("pet not found")
	ErrWalkerNotFound          = errs.New("walker not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrSlotUnavailable         = errs.New("walker is already booked for this slot")
	ErrStatusConflict          = errs.New("booking was modified concurrently")
	ErrForbidden               = errs.New("actor may not perform this operation")
	ErrInvalidTransition       = errs.New("status transition not allowed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrStorageUnavailable      = errs.New("storage unavailable")
)

type CreateBookingParams struct {
	PetID               uuid.UUID
	WalkerID            uuid.UUID
	StartTime           time.Time
	EndTime             time.Time
	SpecialInstructions string
}

// ConflictDetector decides whether a candidate slot collides with a
// walker's existing engagements. The default implementation scans the
// walker's active bookings inside the creation transaction; swapping it
// out changes the strategy without touching the callers.
type ConflictDetector interface {
	Conflicts(ctx context.Context, repo shared.BookingRepository, walkerID uuid.UUID, slot booking.TimeSlot, excludeID *uuid.UUID) ([]uuid.UUID, error)
}

type activeScanDetector struct{}

func NewConflictDetector() ConflictDetector {
	return activeScanDetector{}
}

func (activeScanDetector) Conflicts(ctx context.Context, repo shared.BookingRepository, walkerID uuid.UUID, slot booking.TimeSlot, excludeID *uuid.UUID) ([]uuid.UUID, error) {
	existing, err := repo.ListActiveByWalkerForUpdate(ctx, walkerID)
	if err != nil {
		return nil, err
	}
	return booking.FindConflicts(slot, existing, excludeID), nil
}

type BookingCommands interface {
	Create(ctx context.Context, actor booking.Actor, params CreateBookingParams) (*queries.BookingView, error)
	Transition(ctx context.Context, actor booking.Actor, id uuid.UUID, target booking.Status) (*queries.BookingView, error)
	UpdateInstructions(ctx context.Context, actor booking.Actor, id uuid.UUID, instructions string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	detector       ConflictDetector
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	detector ConflictDetector,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		detector:       detector,
		factory:        factory,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

// Create reserves a walker's slot. The conflict check and the insert run
// in one serializable transaction so two overlapping requests cannot both
// commit; the storage layer's exclusion constraint backstops the scan.
func (b *bookingCommandsImpl) Create(ctx context.Context, actor booking.Actor, params CreateBookingParams) (*queries.BookingView, error) {
	slot, err := booking.NewTimeSlot(params.StartTime, params.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}
	instructions := booking.NewInstructions(params.SpecialInstructions)

	var created *booking.Booking
	err = b.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		dog, err := tx.Pets().FindByID(ctx, params.PetID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPetNotFound
			}
			return wrapRepoFailure(err)
		}

		profile, err := tx.Walkers().FindByUserID(ctx, params.WalkerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrWalkerNotFound
			}
			return wrapRepoFailure(err)
		}

		entity, err := b.factory.CreateBooking(actor, dog, profile, slot, instructions)
		if err != nil {
			return mapDomainErr(err)
		}

		conflicts, err := b.detector.Conflicts(ctx, tx.Bookings(), profile.UserID(), slot, nil)
		if err != nil {
			return wrapRepoFailure(err)
		}
		if len(conflicts) > 0 {
			return ErrSlotUnavailable
		}

		if err := tx.Bookings().Create(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSlotUnavailable
			}
			return wrapRepoFailure(err)
		}

		created = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b.bookingQueries.GetByIDSystem(ctx, created.ID())
}

// Transition loads the booking, lets the domain validate the edge, then
// applies it with a compare-and-swap on the previous status. A swap that
// matches zero rows means another request won the race.
func (b *bookingCommandsImpl) Transition(ctx context.Context, actor booking.Actor, id uuid.UUID, target booking.Status) (*queries.BookingView, error) {
	repos := b.uow.Repos()

	entity, err := repos.Bookings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, wrapRepoFailure(err)
	}

	previous := entity.Status()
	if err := entity.Transition(actor, target, b.clock.Now()); err != nil {
		return nil, mapDomainErr(err)
	}

	swapped, err := repos.Bookings().UpdateStatus(ctx, id, previous, target, entity.UpdatedAt())
	if err != nil {
		return nil, wrapRepoFailure(err)
	}
	if !swapped {
		return nil, ErrStatusConflict
	}

	return b.bookingQueries.GetByIDSystem(ctx, id)
}

func (b *bookingCommandsImpl) UpdateInstructions(ctx context.Context, actor booking.Actor, id uuid.UUID, instructions string) (*queries.BookingView, error) {
	repos := b.uow.Repos()

	entity, err := repos.Bookings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, wrapRepoFailure(err)
	}

	text := booking.NewInstructions(instructions)
	if err := entity.UpdateInstructions(actor, text, b.clock.Now()); err != nil {
		return nil, mapDomainErr(err)
	}

	// The write re-checks the status so a transition landing between our
	// read and this update cannot resurrect instructions on a closed booking.
	applied, err := repos.Bookings().UpdateInstructions(ctx, id, text.String(), entity.UpdatedAt())
	if err != nil {
		return nil, wrapRepoFailure(err)
	}
	if !applied {
		return nil, ErrStatusConflict
	}

	return b.bookingQueries.GetByIDSystem(ctx, id)
}

// mapDomainErr translates domain sentinel errors into the usecase error
// vocabulary the handler layer maps to HTTP statuses.
func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrNotBookingOwner),
		errors.Is(err, booking.ErrNotBookingWalker),
		errors.Is(err, booking.ErrNotParticipant):
		return errs.Mark(err, ErrForbidden)
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrEngagementStarted),
		errors.Is(err, booking.ErrInstructionsLocked):
		return errs.Mark(err, ErrInvalidTransition)
	case errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidTimeSlot),
		errors.Is(err, booking.ErrNegativePrice):
		return errs.Mark(err, ErrDomainValidation)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}

func wrapRepoFailure(err error) error {
	if infra.IsKind(err, infra.KindUnavailable) {
		return errs.Mark(err, ErrStorageUnavailable)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
