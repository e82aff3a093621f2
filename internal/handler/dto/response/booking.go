package response

import (
	"time"

	"walkies/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                  uuid.UUID `json:"id"`
	PetID               uuid.UUID `json:"petId"`
	PetName             string    `json:"petName"`
	OwnerID             uuid.UUID `json:"ownerId"`
	OwnerName           string    `json:"ownerName"`
	WalkerID            uuid.UUID `json:"walkerId"`
	WalkerName          string    `json:"walkerName"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
	Status              string    `json:"status"`
	PriceCents          int64     `json:"priceCents"`
	SpecialInstructions *string   `json:"specialInstructions,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	PetName    string    `json:"petName"`
	WalkerName string    `json:"walkerName"`
	OwnerName  string    `json:"ownerName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
	PriceCents int64     `json:"priceCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                  rm.ID,
		PetID:               rm.PetID,
		PetName:             rm.PetName,
		OwnerID:             rm.OwnerID,
		OwnerName:           rm.OwnerName,
		WalkerID:            rm.WalkerID,
		WalkerName:          rm.WalkerName,
		StartTime:           rm.StartTime,
		EndTime:             rm.EndTime,
		Status:              rm.Status,
		PriceCents:          rm.PriceCents,
		SpecialInstructions: rm.SpecialInstructions,
		CreatedAt:           rm.CreatedAt,
		UpdatedAt:           rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:         rm.ID,
		PetName:    rm.PetName,
		WalkerName: rm.WalkerName,
		OwnerName:  rm.OwnerName,
		StartTime:  rm.StartTime,
		EndTime:    rm.EndTime,
		Status:     rm.Status,
		PriceCents: rm.PriceCents,
		CreatedAt:  rm.CreatedAt,
	}
}
