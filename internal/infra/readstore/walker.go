package readstore

import (
	"context"

	"walkies/internal/infra"
	"walkies/internal/infra/db"
	"walkies/internal/usecase/queries"

	"github.com/google/uuid"
)

type WalkerReadStore struct {
	db db.DBTX
}

func NewWalkerReadStore(dbtx db.DBTX) *WalkerReadStore {
	return &WalkerReadStore{db: dbtx}
}

const walkerViewQuery = `
	SELECT w.user_id, u.first_name, u.last_name, w.bio, w.hourly_rate_cents,
	       w.experience, w.services, w.rating, w.created_at
	FROM walker_profiles w
	JOIN users u ON u.id = w.user_id`

// ListViews returns every profile in registration order so the in-process
// filter produces a stable result set.
func (s *WalkerReadStore) ListViews(ctx context.Context) ([]*queries.WalkerView, error) {
	rows, err := s.db.Query(ctx, walkerViewQuery+`
	ORDER BY w.created_at, w.user_id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list walker views", err)
	}
	defer rows.Close()

	var views []*queries.WalkerView
	for rows.Next() {
		var view queries.WalkerView
		err := rows.Scan(
			&view.UserID, &view.FirstName, &view.LastName, &view.Bio, &view.HourlyRateCents,
			&view.Experience, &view.Services, &view.Rating, &view.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan walker view", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate walker views", err)
	}
	return views, nil
}

func (s *WalkerReadStore) FindViewByUserID(ctx context.Context, userID uuid.UUID) (*queries.WalkerView, error) {
	var view queries.WalkerView
	err := s.db.QueryRow(ctx, walkerViewQuery+`
	WHERE w.user_id = $1`, userID).Scan(
		&view.UserID, &view.FirstName, &view.LastName, &view.Bio, &view.HourlyRateCents,
		&view.Experience, &view.Services, &view.Rating, &view.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find walker view", err)
	}
	return &view, nil
}
