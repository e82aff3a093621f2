package queries

import (
	"context"

	"walkies/internal/domain/booking"
	"walkies/internal/infra"
	"walkies/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPetNotFound = errs.New("pet not found")
	ErrNotPetOwner = errs.New("pet belongs to another owner")
)

type PetQueries interface {
	GetByID(ctx context.Context, actor booking.Actor, id uuid.UUID) (*PetView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PetView, error)
}

type PetReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*PetView, error)
	FindViewsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PetView, error)
}

type petQueriesImpl struct {
	store PetReadStore
}

func NewPetQueries(store PetReadStore) PetQueries {
	return &petQueriesImpl{store: store}
}

func (q *petQueriesImpl) GetByID(ctx context.Context, actor booking.Actor, id uuid.UUID) (*PetView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	if view.OwnerID != actor.ID {
		return nil, ErrNotPetOwner
	}
	return view, nil
}

func (q *petQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PetView, error) {
	return q.store.FindViewsByOwner(ctx, ownerID)
}
