package walker

import "strings"

// Candidate is the flattened view of a walker the directory filters over:
// listing data joined with the actor's identity fields.
type Candidate struct {
	FirstName       string
	LastName        string
	Bio             string
	HourlyRateCents int64
	Rating          *float64
	Services        []string
}

// Filter is a conjunction of discovery criteria. Zero values impose no
// restriction: empty Term matches everything, MinRating 0 keeps unrated
// walkers, nil MaxPriceCents means no ceiling, empty RequiredServices
// requires nothing.
type Filter struct {
	Term             string
	MinRating        float64
	MaxPriceCents    *int64
	RequiredServices []string
}

func (f Filter) Matches(c Candidate) bool {
	return f.matchesTerm(c) &&
		f.matchesRating(c) &&
		f.matchesPrice(c) &&
		f.matchesServices(c)
}

// Term is a case-insensitive substring match against first name, last name
// and bio. No ranking: a candidate either matches or it does not.
func (f Filter) matchesTerm(c Candidate) bool {
	term := strings.ToLower(strings.TrimSpace(f.Term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.FirstName), term) ||
		strings.Contains(strings.ToLower(c.LastName), term) ||
		strings.Contains(strings.ToLower(c.Bio), term)
}

// Walkers without a rating are excluded as soon as any floor is requested.
func (f Filter) matchesRating(c Candidate) bool {
	if f.MinRating <= 0 {
		return true
	}
	return c.Rating != nil && *c.Rating >= f.MinRating
}

func (f Filter) matchesPrice(c Candidate) bool {
	if f.MaxPriceCents == nil {
		return true
	}
	return c.HourlyRateCents <= *f.MaxPriceCents
}

// A candidate matches only if its offered set is a superset of the
// required set.
func (f Filter) matchesServices(c Candidate) bool {
	if len(f.RequiredServices) == 0 {
		return true
	}
	offered := make(map[string]struct{}, len(c.Services))
	for _, s := range c.Services {
		offered[s] = struct{}{}
	}
	for _, required := range f.RequiredServices {
		if _, ok := offered[required]; !ok {
			return false
		}
	}
	return true
}
