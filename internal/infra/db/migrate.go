package db

import (
	"context"

	"walkies/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The exclusion constraint on bookings is the storage-level backstop for
// slot conflicts: even if the application-level scan misses a race, two
// active bookings can never overlap for the same walker.
const schemaSQL = `
CREATE EXTENSION IF NOT EXISTS btree_gist;

CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    first_name    TEXT NOT NULL,
    last_name     TEXT NOT NULL,
    role          TEXT NOT NULL CHECK (role IN ('owner', 'walker')),
    phone         TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS pets (
    id            UUID PRIMARY KEY,
    owner_id      UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    name          TEXT NOT NULL,
    breed         TEXT NOT NULL,
    size          TEXT NOT NULL CHECK (size IN ('small', 'medium', 'large')),
    temperament   TEXT NOT NULL DEFAULT '',
    special_needs TEXT NOT NULL DEFAULT '',
    medical_info  TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_pets_owner ON pets (owner_id);

CREATE TABLE IF NOT EXISTS walker_profiles (
    user_id           UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
    bio               TEXT NOT NULL DEFAULT '',
    hourly_rate_cents BIGINT NOT NULL DEFAULT 0 CHECK (hourly_rate_cents >= 0),
    experience        TEXT NOT NULL DEFAULT '',
    services          TEXT[] NOT NULL DEFAULT '{Walking}',
    rating            DOUBLE PRECISION CHECK (rating BETWEEN 0 AND 5),
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bookings (
    id                   UUID PRIMARY KEY,
    pet_id               UUID NOT NULL REFERENCES pets(id),
    owner_id             UUID NOT NULL REFERENCES users(id),
    walker_id            UUID NOT NULL REFERENCES users(id),
    start_time           TIMESTAMPTZ NOT NULL,
    end_time             TIMESTAMPTZ NOT NULL,
    status               TEXT NOT NULL CHECK (status IN ('pending', 'confirmed', 'completed', 'canceled', 'rejected')),
    price_cents          BIGINT NOT NULL CHECK (price_cents >= 0),
    special_instructions TEXT NOT NULL DEFAULT '',
    created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
    CHECK (start_time < end_time),
    CONSTRAINT bookings_no_active_overlap EXCLUDE USING gist (
        walker_id WITH =,
        tstzrange(start_time, end_time) WITH &&
    ) WHERE (status IN ('pending', 'confirmed'))
);

CREATE INDEX IF NOT EXISTS idx_bookings_walker_start ON bookings (walker_id, start_time);
CREATE INDEX IF NOT EXISTS idx_bookings_owner_start ON bookings (owner_id, start_time);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return errs.Wrap(err, "failed to apply schema")
	}
	return nil
}
