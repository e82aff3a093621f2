package request

import (
	"strings"

	"walkies/internal/domain/walker"
)

type UpdateProfileRequest struct {
	Bio             string   `json:"bio"`
	HourlyRateCents int64    `json:"hourlyRateCents" binding:"gte=0"`
	Experience      string   `json:"experience"`
	Services        []string `json:"servicesOffered" binding:"required,min=1"`
}

// SearchWalkersQuery carries the discovery filters; all are optional and
// absent filters match everything.
type SearchWalkersQuery struct {
	Term          string  `form:"term"`
	MinRating     float64 `form:"minRating" binding:"gte=0,lte=5"`
	MaxPriceCents *int64  `form:"maxPriceCents" binding:"omitempty,gte=0"`
	Services      string  `form:"services"`
}

func (q *SearchWalkersQuery) ToFilter() walker.Filter {
	var required []string
	for _, s := range strings.Split(q.Services, ",") {
		if s = strings.TrimSpace(s); s != "" {
			required = append(required, s)
		}
	}
	return walker.Filter{
		Term:             q.Term,
		MinRating:        q.MinRating,
		MaxPriceCents:    q.MaxPriceCents,
		RequiredServices: required,
	}
}
