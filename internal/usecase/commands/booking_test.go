//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"walkies/internal/domain/booking"
	"walkies/internal/domain/pet"
	"walkies/internal/domain/user"
	"walkies/internal/domain/walker"
	"walkies/internal/infra"
	"walkies/internal/pkg/clock"
	"walkies/internal/usecase/commands"
	"walkies/internal/usecase/queries"
	"walkies/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes standing in for the pgx repositories.

type fakeBookingRepo struct {
	byID     map[uuid.UUID]*booking.Booking
	failSwap bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[uuid.UUID]*booking.Booking)}
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.ReconstructBooking(
		b.ID(), b.PetID(), b.OwnerID(), b.WalkerID(),
		b.Slot(), b.Status(), b.Price(), b.Instructions(),
		b.CreatedAt(), b.UpdatedAt(),
	)
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	r.byID[b.ID()] = cloneBooking(b)
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return cloneBooking(b), nil
}

func (r *fakeBookingRepo) ListActiveByWalker(_ context.Context, walkerID uuid.UUID) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.byID {
		if b.WalkerID() == walkerID && b.Status().IsActive() {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListActiveByWalkerForUpdate(ctx context.Context, walkerID uuid.UUID) ([]*booking.Booking, error) {
	return r.ListActiveByWalker(ctx, walkerID)
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, expected, target booking.Status, updatedAt time.Time) (bool, error) {
	if r.failSwap {
		return false, nil
	}
	b, ok := r.byID[id]
	if !ok || b.Status() != expected {
		return false, nil
	}
	r.byID[id] = booking.ReconstructBooking(
		b.ID(), b.PetID(), b.OwnerID(), b.WalkerID(),
		b.Slot(), target, b.Price(), b.Instructions(),
		b.CreatedAt(), updatedAt,
	)
	return true, nil
}

func (r *fakeBookingRepo) UpdateInstructions(_ context.Context, id uuid.UUID, instructions string, updatedAt time.Time) (bool, error) {
	b, ok := r.byID[id]
	if !ok || !b.Status().IsActive() {
		return false, nil
	}
	r.byID[id] = booking.ReconstructBooking(
		b.ID(), b.PetID(), b.OwnerID(), b.WalkerID(),
		b.Slot(), b.Status(), b.Price(), booking.NewInstructions(instructions),
		b.CreatedAt(), updatedAt,
	)
	return true, nil
}

type fakePetRepo struct {
	byID map[uuid.UUID]*pet.Pet
}

func (r *fakePetRepo) Create(_ context.Context, p *pet.Pet) error {
	r.byID[p.ID()] = p
	return nil
}

func (r *fakePetRepo) FindByID(_ context.Context, id uuid.UUID) (*pet.Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	return p, nil
}

type fakeWalkerRepo struct {
	byUserID map[uuid.UUID]*walker.Profile
}

func (r *fakeWalkerRepo) Save(_ context.Context, p *walker.Profile) error {
	r.byUserID[p.UserID()] = p
	return nil
}

func (r *fakeWalkerRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*walker.Profile, error) {
	p, ok := r.byUserID[userID]
	if !ok {
		return nil, infra.WrapRepoErr("walker profile not found", nil, infra.KindNotFound)
	}
	return p, nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) Create(context.Context, *user.User) error { return nil }

type fakeTx struct {
	bookings *fakeBookingRepo
	pets     *fakePetRepo
	walkers  *fakeWalkerRepo
}

func (t *fakeTx) Bookings() shared.BookingRepository { return t.bookings }
func (t *fakeTx) Pets() shared.PetRepository         { return t.pets }
func (t *fakeTx) Walkers() shared.WalkerRepository   { return t.walkers }
func (t *fakeTx) Users() shared.UserRepository       { return fakeUserRepo{} }

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) Repos() shared.Tx { return u.tx }

// fakeBookingViews synthesizes read models straight from the write store.
type fakeBookingViews struct {
	repo *fakeBookingRepo
}

func (q *fakeBookingViews) GetByID(ctx context.Context, _ booking.Actor, id uuid.UUID) (*queries.BookingView, error) {
	return q.GetByIDSystem(ctx, id)
}

func (q *fakeBookingViews) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, ok := q.repo.byID[id]
	if !ok {
		return nil, queries.ErrBookingNotFound
	}
	instructions := b.Instructions().String()
	return &queries.BookingView{
		ID:                  b.ID(),
		PetID:               b.PetID(),
		OwnerID:             b.OwnerID(),
		WalkerID:            b.WalkerID(),
		StartTime:           b.Slot().Start(),
		EndTime:             b.Slot().End(),
		Status:              b.Status().String(),
		PriceCents:          b.Price().Cents(),
		SpecialInstructions: &instructions,
		CreatedAt:           b.CreatedAt(),
		UpdatedAt:           b.UpdatedAt(),
	}, nil
}

func (q *fakeBookingViews) ListByActor(context.Context, booking.Actor) ([]*queries.BookingListItem, error) {
	return nil, nil
}

type bookingFixture struct {
	cmd      commands.BookingCommands
	repo     *fakeBookingRepo
	clock    *clock.MockClock
	owner    booking.Actor
	walker   booking.Actor
	pet      *pet.Pet
	now      time.Time
	slotFrom time.Time
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	now := time.Date(2024, 1, 9, 12, 0, 0, 0, time.UTC)
	mockClock := clock.NewMockClock(now)

	owner := booking.Actor{ID: uuid.New(), Role: user.RoleOwner}
	walkerActor := booking.Actor{ID: uuid.New(), Role: user.RoleWalker}

	dog, err := pet.NewPet(owner.ID, "Buddy", "Golden Retriever", pet.SizeLarge, "", "", "")
	require.NoError(t, err)

	profile, err := walker.NewProfile(walkerActor.ID, "weekday walks", 2000, "5 years", []string{"Walking"})
	require.NoError(t, err)

	bookingRepo := newFakeBookingRepo()
	tx := &fakeTx{
		bookings: bookingRepo,
		pets:     &fakePetRepo{byID: map[uuid.UUID]*pet.Pet{dog.ID(): dog}},
		walkers:  &fakeWalkerRepo{byUserID: map[uuid.UUID]*walker.Profile{walkerActor.ID: profile}},
	}

	cmd := commands.NewBookingCommands(
		&fakeUoW{tx: tx},
		commands.NewConflictDetector(),
		booking.NewFactory(mockClock),
		&fakeBookingViews{repo: bookingRepo},
		mockClock,
	)

	return &bookingFixture{
		cmd:      cmd,
		repo:     bookingRepo,
		clock:    mockClock,
		owner:    owner,
		walker:   walkerActor,
		pet:      dog,
		now:      now,
		slotFrom: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
	}
}

func (f *bookingFixture) createParams(start, end time.Time) commands.CreateBookingParams {
	return commands.CreateBookingParams{
		PetID:               f.pet.ID(),
		WalkerID:            f.walker.ID,
		StartTime:           start,
		EndTime:             end,
		SpecialInstructions: "ring the bell",
	}
}

func TestBookingCommandsCreate(t *testing.T) {
	t.Run("creates a pending booking with computed price", func(t *testing.T) {
		f := newBookingFixture(t)
		view, err := f.cmd.Create(context.Background(), f.owner, f.createParams(f.slotFrom, f.slotFrom.Add(time.Hour)))
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending.String(), view.Status)
		assert.Equal(t, int64(2000), view.PriceCents)
		assert.Equal(t, f.walker.ID, view.WalkerID)
		assert.Equal(t, f.now, view.CreatedAt)
	})

	t.Run("rejects an inverted time slot", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.cmd.Create(context.Background(), f.owner, f.createParams(f.slotFrom.Add(time.Hour), f.slotFrom))
		require.ErrorIs(t, err, commands.ErrInvalidTimeSlot)
	})

	t.Run("rejects an overlapping slot for the same walker", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.cmd.Create(context.Background(), f.owner, f.createParams(f.slotFrom, f.slotFrom.Add(time.Hour)))
		require.NoError(t, err)

		_, err = f.cmd.Create(context.Background(), f.owner, f.createParams(f.slotFrom.Add(30*time.Minute), f.slotFrom.Add(90*time.Minute)))
		require.ErrorIs(t, err, commands.ErrSlotUnavailable)
	})

	t.Run("allows a back-to-back slot", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.cmd.Create(context.Background(), f.owner, f.createParams(f.slotFrom, f.slotFrom.Add(time.Hour)))
		require.NoError(t, err)

		_, err = f.cmd.Create(context.Background(), f.owner, f.createParams(f.slotFrom.Add(time.Hour), f.slotFrom.Add(2*time.Hour)))
		require.NoError(t, err)
	})

	t.Run("frees the slot once the holder is canceled", func(t *testing.T) {
		f := newBookingFixture(t)
		first, err := f.cmd.Create(context.Background(), f.owner, f.createParams(f.slotFrom, f.slotFrom.Add(time.Hour)))
		require.NoError(t, err)

		_, err = f.cmd.Transition(context.Background(), f.owner, first.ID, booking.StatusCanceled)
		require.NoError(t, err)

		_, err = f.cmd.Create(context.Background(), f.owner, f.createParams(f.slotFrom, f.slotFrom.Add(time.Hour)))
		require.NoError(t, err)
	})

	t.Run("walker actor may not create bookings", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.cmd.Create(context.Background(), f.walker, f.createParams(f.slotFrom, f.slotFrom.Add(time.Hour)))
		require.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("unknown pet", func(t *testing.T) {
		f := newBookingFixture(t)
		params := f.createParams(f.slotFrom, f.slotFrom.Add(time.Hour))
		params.PetID = uuid.New()
		_, err := f.cmd.Create(context.Background(), f.owner, params)
		require.ErrorIs(t, err, commands.ErrPetNotFound)
	})

	t.Run("unknown walker", func(t *testing.T) {
		f := newBookingFixture(t)
		params := f.createParams(f.slotFrom, f.slotFrom.Add(time.Hour))
		params.WalkerID = uuid.New()
		_, err := f.cmd.Create(context.Background(), f.owner, params)
		require.ErrorIs(t, err, commands.ErrWalkerNotFound)
	})
}

func TestBookingCommandsTransition(t *testing.T) {
	create := func(t *testing.T, f *bookingFixture) uuid.UUID {
		t.Helper()
		view, err := f.cmd.Create(context.Background(), f.owner, f.createParams(f.slotFrom, f.slotFrom.Add(time.Hour)))
		require.NoError(t, err)
		return view.ID
	}

	t.Run("walker confirms then completes", func(t *testing.T) {
		f := newBookingFixture(t)
		id := create(t, f)

		view, err := f.cmd.Transition(context.Background(), f.walker, id, booking.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed.String(), view.Status)

		view, err = f.cmd.Transition(context.Background(), f.walker, id, booking.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCompleted.String(), view.Status)
	})

	t.Run("owner may not confirm", func(t *testing.T) {
		f := newBookingFixture(t)
		id := create(t, f)

		_, err := f.cmd.Transition(context.Background(), f.owner, id, booking.StatusConfirmed)
		require.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("terminal booking refuses further transitions", func(t *testing.T) {
		f := newBookingFixture(t)
		id := create(t, f)

		_, err := f.cmd.Transition(context.Background(), f.walker, id, booking.StatusRejected)
		require.NoError(t, err)

		_, err = f.cmd.Transition(context.Background(), f.walker, id, booking.StatusConfirmed)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("cancel after start is refused", func(t *testing.T) {
		f := newBookingFixture(t)
		id := create(t, f)

		_, err := f.cmd.Transition(context.Background(), f.walker, id, booking.StatusConfirmed)
		require.NoError(t, err)

		f.clock.Set(f.slotFrom.Add(10 * time.Minute))
		_, err = f.cmd.Transition(context.Background(), f.owner, id, booking.StatusCanceled)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("lost compare-and-swap surfaces as conflict", func(t *testing.T) {
		f := newBookingFixture(t)
		id := create(t, f)

		f.repo.failSwap = true
		_, err := f.cmd.Transition(context.Background(), f.walker, id, booking.StatusConfirmed)
		require.ErrorIs(t, err, commands.ErrStatusConflict)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(t)
		_, err := f.cmd.Transition(context.Background(), f.walker, uuid.New(), booking.StatusConfirmed)
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestBookingCommandsUpdateInstructions(t *testing.T) {
	t.Run("owner edits instructions while pending", func(t *testing.T) {
		f := newBookingFixture(t)
		view, err := f.cmd.Create(context.Background(), f.owner, f.createParams(f.slotFrom, f.slotFrom.Add(time.Hour)))
		require.NoError(t, err)

		updated, err := f.cmd.UpdateInstructions(context.Background(), f.owner, view.ID, "gate code 4821")
		require.NoError(t, err)
		require.NotNil(t, updated.SpecialInstructions)
		assert.Equal(t, "gate code 4821", *updated.SpecialInstructions)
	})

	t.Run("walker may not edit instructions", func(t *testing.T) {
		f := newBookingFixture(t)
		view, err := f.cmd.Create(context.Background(), f.owner, f.createParams(f.slotFrom, f.slotFrom.Add(time.Hour)))
		require.NoError(t, err)

		_, err = f.cmd.UpdateInstructions(context.Background(), f.walker, view.ID, "nope")
		require.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("instructions lock once the booking closes", func(t *testing.T) {
		f := newBookingFixture(t)
		view, err := f.cmd.Create(context.Background(), f.owner, f.createParams(f.slotFrom, f.slotFrom.Add(time.Hour)))
		require.NoError(t, err)

		_, err = f.cmd.Transition(context.Background(), f.walker, view.ID, booking.StatusRejected)
		require.NoError(t, err)

		_, err = f.cmd.UpdateInstructions(context.Background(), f.owner, view.ID, "too late")
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})
}
