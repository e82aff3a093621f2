//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"walkies/internal/domain/walker"
	"walkies/internal/infra"
	"walkies/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeWalkerReadStore struct {
	views []*queries.WalkerView
}

func (s *fakeWalkerReadStore) ListViews(_ context.Context) ([]*queries.WalkerView, error) {
	return s.views, nil
}

func (s *fakeWalkerReadStore) FindViewByUserID(_ context.Context, userID uuid.UUID) (*queries.WalkerView, error) {
	for _, v := range s.views {
		if v.UserID == userID {
			return v, nil
		}
	}
	return nil, infra.WrapRepoErr("walker profile not found", nil, infra.KindNotFound)
}

func ratingOf(r float64) *float64 { return &r }

func walkerViewFixture(first, last, bio string, rate int64, rating *float64, services ...string) *queries.WalkerView {
	return &queries.WalkerView{
		UserID:          uuid.New(),
		FirstName:       first,
		LastName:        last,
		Bio:             bio,
		HourlyRateCents: rate,
		Experience:      "3 years",
		Services:        services,
		Rating:          rating,
		CreatedAt:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestWalkerQueries_Search(t *testing.T) {
	alice := walkerViewFixture("Alice", "Nguyen", "Long hikes a specialty", 2500, ratingOf(4.8), "Walking", "Running")
	bob := walkerViewFixture("Bob", "Meyer", "Patient with nervous dogs", 1800, ratingOf(3.9), "Walking")
	cara := walkerViewFixture("Cara", "Ishida", "New to the platform", 1500, nil, "Walking", "Overnight Care")

	store := &fakeWalkerReadStore{views: []*queries.WalkerView{alice, bob, cara}}
	q := queries.NewWalkerQueries(store)

	tests := []struct {
		name   string
		filter walker.Filter
		want   []*queries.WalkerView
	}{
		{
			name:   "empty filter returns everyone in store order",
			filter: walker.Filter{},
			want:   []*queries.WalkerView{alice, bob, cara},
		},
		{
			name:   "term matches bio case-insensitively",
			filter: walker.Filter{Term: "NERVOUS"},
			want:   []*queries.WalkerView{bob},
		},
		{
			name:   "rating floor excludes unrated walkers",
			filter: walker.Filter{MinRating: 4.0},
			want:   []*queries.WalkerView{alice},
		},
		{
			name:   "price ceiling is inclusive",
			filter: walker.Filter{MaxPriceCents: maxPrice(1800)},
			want:   []*queries.WalkerView{bob, cara},
		},
		{
			name:   "required services need the full set",
			filter: walker.Filter{RequiredServices: []string{"Walking", "Overnight Care"}},
			want:   []*queries.WalkerView{cara},
		},
		{
			name:   "criteria combine conjunctively",
			filter: walker.Filter{Term: "a", MinRating: 4.5, MaxPriceCents: maxPrice(3000)},
			want:   []*queries.WalkerView{alice},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.Search(context.Background(), tt.filter)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Search result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWalkerQueries_GetByID(t *testing.T) {
	profile := walkerViewFixture("Alice", "Nguyen", "Long hikes a specialty", 2500, ratingOf(4.8), "Walking")
	store := &fakeWalkerReadStore{views: []*queries.WalkerView{profile}}
	q := queries.NewWalkerQueries(store)

	t.Run("returns the stored profile", func(t *testing.T) {
		got, err := q.GetByID(context.Background(), profile.UserID)
		require.NoError(t, err)

		if diff := cmp.Diff(profile, got); diff != "" {
			t.Errorf("Profile mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), uuid.New())
		require.ErrorIs(t, err, queries.ErrWalkerNotFound)
	})
}

func maxPrice(cents int64) *int64 { return &cents }
