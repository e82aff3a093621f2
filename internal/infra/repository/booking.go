package repository

import (
	"context"
	"time"

	"walkies/internal/domain/booking"
	"walkies/internal/infra"
	"walkies/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const bookingColumns = `id, pet_id, owner_id, walker_id, start_time, end_time, status, price_cents, special_instructions, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		b.ID(), b.PetID(), b.OwnerID(), b.WalkerID(),
		b.Slot().Start(), b.Slot().End(),
		b.Status().String(), b.Price().Cents(), b.Instructions().String(),
		b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) ListActiveByWalker(ctx context.Context, walkerID uuid.UUID) ([]*booking.Booking, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE walker_id = $1 AND status IN ('pending', 'confirmed')
		ORDER BY start_time`

	return r.listByWalker(ctx, query, walkerID)
}

// ListActiveByWalkerForUpdate locks the walker's active rows so concurrent
// creations serialize on the conflict scan.
func (r *BookingRepository) ListActiveByWalkerForUpdate(ctx context.Context, walkerID uuid.UUID) ([]*booking.Booking, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE walker_id = $1 AND status IN ('pending', 'confirmed')
		ORDER BY start_time
		FOR UPDATE`

	return r.listByWalker(ctx, query, walkerID)
}

func (r *BookingRepository) listByWalker(ctx context.Context, query string, walkerID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, query, walkerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, target booking.Status, updatedAt time.Time) (bool, error) {
	const query = `
		UPDATE bookings
		SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2`

	tag, err := r.db.Exec(ctx, query, id, expected.String(), target.String(), updatedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BookingRepository) UpdateInstructions(ctx context.Context, id uuid.UUID, instructions string, updatedAt time.Time) (bool, error) {
	const query = `
		UPDATE bookings
		SET special_instructions = $2, updated_at = $3
		WHERE id = $1 AND status IN ('pending', 'confirmed')`

	tag, err := r.db.Exec(ctx, query, id, instructions, updatedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking instructions", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, petID, ownerID, walkerID uuid.UUID
		startTime, endTime           time.Time
		status                       string
		priceCents                   int64
		instructions                 string
		createdAt, updatedAt         time.Time
	)
	err := row.Scan(&id, &petID, &ownerID, &walkerID, &startTime, &endTime, &status, &priceCents, &instructions, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	slot, err := booking.NewTimeSlot(startTime, endTime)
	if err != nil {
		return nil, err
	}
	st, err := booking.NewStatus(status)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(priceCents)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, petID, ownerID, walkerID,
		slot, st, price, booking.NewInstructions(instructions),
		createdAt, updatedAt,
	), nil
}
