package response

import (
	"time"

	"walkies/internal/usecase/queries"

	"github.com/google/uuid"
)

type WalkerResponse struct {
	UserID          uuid.UUID `json:"userId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Bio             string    `json:"bio"`
	HourlyRateCents int64     `json:"hourlyRateCents"`
	Experience      string    `json:"experience"`
	Services        []string  `json:"servicesOffered"`
	Rating          *float64  `json:"rating,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromWalkerView(rm *queries.WalkerView) *WalkerResponse {
	return &WalkerResponse{
		UserID:          rm.UserID,
		FirstName:       rm.FirstName,
		LastName:        rm.LastName,
		Bio:             rm.Bio,
		HourlyRateCents: rm.HourlyRateCents,
		Experience:      rm.Experience,
		Services:        rm.Services,
		Rating:          rm.Rating,
		CreatedAt:       rm.CreatedAt,
	}
}
