package readstore

import (
	"context"

	"walkies/internal/infra"
	"walkies/internal/infra/db"
	"walkies/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.pet_id, p.name,
		       b.owner_id, ou.first_name || ' ' || ou.last_name,
		       b.walker_id, wu.first_name || ' ' || wu.last_name,
		       b.start_time, b.end_time, b.status, b.price_cents,
		       NULLIF(b.special_instructions, ''),
		       b.created_at, b.updated_at
		FROM bookings b
		JOIN pets p ON p.id = b.pet_id
		JOIN users ou ON ou.id = b.owner_id
		JOIN users wu ON wu.id = b.walker_id
		WHERE b.id = $1`

	var view queries.BookingView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.PetID, &view.PetName,
		&view.OwnerID, &view.OwnerName,
		&view.WalkerID, &view.WalkerName,
		&view.StartTime, &view.EndTime, &view.Status, &view.PriceCents,
		&view.SpecialInstructions,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return &view, nil
}

func (s *BookingReadStore) FindViewsByParticipant(ctx context.Context, participantID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, p.name,
		       wu.first_name || ' ' || wu.last_name,
		       ou.first_name || ' ' || ou.last_name,
		       b.start_time, b.end_time, b.status, b.price_cents, b.created_at
		FROM bookings b
		JOIN pets p ON p.id = b.pet_id
		JOIN users ou ON ou.id = b.owner_id
		JOIN users wu ON wu.id = b.walker_id
		WHERE b.owner_id = $1 OR b.walker_id = $1
		ORDER BY b.start_time DESC, b.id`

	rows, err := s.db.Query(ctx, query, participantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking views", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(
			&item.ID, &item.PetName, &item.WalkerName, &item.OwnerName,
			&item.StartTime, &item.EndTime, &item.Status, &item.PriceCents, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking views", err)
	}
	return items, nil
}
