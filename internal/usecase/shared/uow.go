package shared

import (
	"context"
	"time"

	"walkies/internal/domain/booking"
	"walkies/internal/domain/pet"
	"walkies/internal/domain/user"
	"walkies/internal/domain/walker"

	"github.com/google/uuid"
)

// UnitOfWork scopes repository access to a transaction. Booking creation
// needs the serializable variant so the conflict check and the insert
// commit together or not at all.
type UnitOfWork interface {
	// Within runs fn in a read-committed transaction with retry on
	// transient failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable runs fn under serializable isolation; serialization
	// failures are retried with backoff.
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Repos returns repositories bound to the pool for single-statement
	// operations that need no explicit transaction.
	Repos() Tx
}

type Tx interface {
	Bookings() BookingRepository
	Pets() PetRepository
	Walkers() WalkerRepository
	Users() UserRepository
}

// BookingRepository is the key-addressed store the scheduling engine runs
// against. UpdateStatus is a compare-and-swap: it applies the new status
// only if the stored status still equals expected, reporting false on a
// lost race.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// ListActiveByWalker returns the walker's pending and confirmed
	// bookings in slot order.
	ListActiveByWalker(ctx context.Context, walkerID uuid.UUID) ([]*booking.Booking, error)
	// ListActiveByWalkerForUpdate additionally locks the returned rows for
	// the duration of the surrounding transaction.
	ListActiveByWalkerForUpdate(ctx context.Context, walkerID uuid.UUID) ([]*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, target booking.Status, updatedAt time.Time) (bool, error)
	// UpdateInstructions writes the instructions only while the booking is
	// still active, reporting false otherwise.
	UpdateInstructions(ctx context.Context, id uuid.UUID, instructions string, updatedAt time.Time) (bool, error)
}

type PetRepository interface {
	Create(ctx context.Context, p *pet.Pet) error
	FindByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error)
}

type WalkerRepository interface {
	Save(ctx context.Context, profile *walker.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*walker.Profile, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
}
