package response

import (
	"time"

	"walkies/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetResponse struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Name         string    `json:"name"`
	Breed        string    `json:"breed"`
	Size         string    `json:"size"`
	Temperament  *string   `json:"temperament,omitempty"`
	SpecialNeeds *string   `json:"specialNeeds,omitempty"`
	MedicalInfo  *string   `json:"medicalInfo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromPetView(rm *queries.PetView) *PetResponse {
	return &PetResponse{
		ID:           rm.ID,
		OwnerID:      rm.OwnerID,
		Name:         rm.Name,
		Breed:        rm.Breed,
		Size:         rm.Size,
		Temperament:  rm.Temperament,
		SpecialNeeds: rm.SpecialNeeds,
		MedicalInfo:  rm.MedicalInfo,
		CreatedAt:    rm.CreatedAt,
	}
}
