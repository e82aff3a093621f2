package repository

import (
	"context"
	"time"

	"walkies/internal/domain/walker"
	"walkies/internal/infra"
	"walkies/internal/infra/db"

	"github.com/google/uuid"
)

type WalkerRepository struct {
	db db.DBTX
}

func NewWalkerRepository(dbtx db.DBTX) *WalkerRepository {
	return &WalkerRepository{db: dbtx}
}

// Save upserts so profile creation at registration and later edits share
// one code path.
func (r *WalkerRepository) Save(ctx context.Context, p *walker.Profile) error {
	const query = `
		INSERT INTO walker_profiles (user_id, bio, hourly_rate_cents, experience, services, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (user_id) DO UPDATE SET
			bio = EXCLUDED.bio,
			hourly_rate_cents = EXCLUDED.hourly_rate_cents,
			experience = EXCLUDED.experience,
			services = EXCLUDED.services,
			rating = EXCLUDED.rating,
			updated_at = now()`

	_, err := r.db.Exec(ctx, query,
		p.UserID(), p.Bio(), p.HourlyRateCents(), p.Experience(), p.Services(), p.Rating(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save walker profile", err)
	}
	return nil
}

func (r *WalkerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*walker.Profile, error) {
	const query = `
		SELECT user_id, bio, hourly_rate_cents, experience, services, rating, created_at, updated_at
		FROM walker_profiles WHERE user_id = $1`

	var (
		id                   uuid.UUID
		bio, experience      string
		hourlyRateCents      int64
		services             []string
		rating               *float64
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&id, &bio, &hourlyRateCents, &experience, &services, &rating, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find walker profile", err)
	}

	return walker.ReconstructProfile(id, bio, hourlyRateCents, experience, services, rating, createdAt, updatedAt), nil
}
