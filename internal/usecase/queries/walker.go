package queries

import (
	"context"

	"walkies/internal/domain/walker"
	"walkies/internal/infra"
	"walkies/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrWalkerNotFound = errs.New("walker not found")

type WalkerQueries interface {
	// Search lists walker profiles matching the filter, in registration
	// order so repeated queries page consistently.
	Search(ctx context.Context, filter walker.Filter) ([]*WalkerView, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*WalkerView, error)
}

type WalkerReadStore interface {
	// ListViews returns all walker profiles ordered by created_at, user_id.
	ListViews(ctx context.Context) ([]*WalkerView, error)
	FindViewByUserID(ctx context.Context, userID uuid.UUID) (*WalkerView, error)
}

type walkerQueriesImpl struct {
	store WalkerReadStore
}

func NewWalkerQueries(store WalkerReadStore) WalkerQueries {
	return &walkerQueriesImpl{store: store}
}

func (q *walkerQueriesImpl) Search(ctx context.Context, filter walker.Filter) ([]*WalkerView, error) {
	views, err := q.store.ListViews(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*WalkerView, 0, len(views))
	for _, v := range views {
		if filter.Matches(candidateOf(v)) {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func (q *walkerQueriesImpl) GetByID(ctx context.Context, userID uuid.UUID) (*WalkerView, error) {
	view, err := q.store.FindViewByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWalkerNotFound
		}
		return nil, err
	}
	return view, nil
}

func candidateOf(v *WalkerView) walker.Candidate {
	return walker.Candidate{
		FirstName:       v.FirstName,
		LastName:        v.LastName,
		Bio:             v.Bio,
		HourlyRateCents: v.HourlyRateCents,
		Rating:          v.Rating,
		Services:        v.Services,
	}
}
