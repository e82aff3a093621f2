package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PetID               uuid.UUID `json:"petId" binding:"required"`
	WalkerID            uuid.UUID `json:"walkerId" binding:"required"`
	StartTime           time.Time `json:"startTime" binding:"required"`
	EndTime             time.Time `json:"endTime" binding:"required"`
	SpecialInstructions string    `json:"specialInstructions"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateInstructionsRequest struct {
	SpecialInstructions string `json:"specialInstructions" binding:"required"`
}
