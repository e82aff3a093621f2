package walker

import (
	"strings"
	"time"

	"walkies/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNegativeRate    = errs.New("hourly rate cannot be negative")
	ErrNoServices      = errs.New("at least one service must be offered")
	ErrInvalidRating   = errs.New("rating must be between 0 and 5")
	ErrEmptyService    = errs.New("service tag must not be empty")
	ErrNotProfileOwner = errs.New("profile belongs to another walker")
)

// DefaultService is assigned to newly registered walkers until they edit
// their profile.
const DefaultService = "Walking"

// Profile holds a walker's marketplace listing. One per walker actor,
// mutated only by its owning actor.
type Profile struct {
	userID          uuid.UUID
	bio             string
	hourlyRateCents int64
	experience      string
	services        []string
	rating          *float64
	createdAt       time.Time
	updatedAt       time.Time
}

func NewProfile(userID uuid.UUID, bio string, hourlyRateCents int64, experience string, services []string) (*Profile, error) {
	if hourlyRateCents < 0 {
		return nil, ErrNegativeRate
	}
	normalized, err := normalizeServices(services)
	if err != nil {
		return nil, err
	}

	return &Profile{
		userID:          userID,
		bio:             strings.TrimSpace(bio),
		hourlyRateCents: hourlyRateCents,
		experience:      strings.TrimSpace(experience),
		services:        normalized,
	}, nil
}

func ReconstructProfile(
	userID uuid.UUID,
	bio string,
	hourlyRateCents int64,
	experience string,
	services []string,
	rating *float64,
	createdAt, updatedAt time.Time,
) *Profile {
	return &Profile{
		userID:          userID,
		bio:             bio,
		hourlyRateCents: hourlyRateCents,
		experience:      experience,
		services:        services,
		rating:          rating,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Update replaces the mutable listing fields. The caller must already have
// verified the acting walker owns this profile.
func (p *Profile) Update(actorID uuid.UUID, bio string, hourlyRateCents int64, experience string, services []string) error {
	if actorID != p.userID {
		return ErrNotProfileOwner
	}
	if hourlyRateCents < 0 {
		return ErrNegativeRate
	}
	normalized, err := normalizeServices(services)
	if err != nil {
		return err
	}

	p.bio = strings.TrimSpace(bio)
	p.hourlyRateCents = hourlyRateCents
	p.experience = strings.TrimSpace(experience)
	p.services = normalized
	return nil
}

func (p *Profile) SetRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return ErrInvalidRating
	}
	p.rating = &rating
	return nil
}

func (p *Profile) Offers(service string) bool {
	for _, s := range p.services {
		if s == service {
			return true
		}
	}
	return false
}

func (p *Profile) UserID() uuid.UUID      { return p.userID }
func (p *Profile) Bio() string            { return p.bio }
func (p *Profile) HourlyRateCents() int64 { return p.hourlyRateCents }
func (p *Profile) Experience() string     { return p.experience }
func (p *Profile) Services() []string     { return p.services }
func (p *Profile) Rating() *float64       { return p.rating }
func (p *Profile) CreatedAt() time.Time   { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time   { return p.updatedAt }

func normalizeServices(services []string) ([]string, error) {
	if len(services) == 0 {
		return nil, ErrNoServices
	}
	normalized := make([]string, 0, len(services))
	seen := make(map[string]struct{}, len(services))
	for _, s := range services {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, ErrEmptyService
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		normalized = append(normalized, s)
	}
	return normalized, nil
}
