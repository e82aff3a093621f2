package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                  uuid.UUID `json:"id"`
	PetID               uuid.UUID `json:"pet_id"`
	PetName             string    `json:"pet_name"`
	OwnerID             uuid.UUID `json:"owner_id"`
	OwnerName           string    `json:"owner_name"`
	WalkerID            uuid.UUID `json:"walker_id"`
	WalkerName          string    `json:"walker_name"`
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
	Status              string    `json:"status"`
	PriceCents          int64     `json:"price_cents"`
	SpecialInstructions *string   `json:"special_instructions,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	PetName    string    `json:"pet_name"`
	WalkerName string    `json:"walker_name"`
	OwnerName  string    `json:"owner_name"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

type WalkerView struct {
	UserID          uuid.UUID `json:"user_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Bio             string    `json:"bio"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	Experience      string    `json:"experience"`
	Services        []string  `json:"services_offered"`
	Rating          *float64  `json:"rating,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type PetView struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"`
	Breed        string    `json:"breed"`
	Size         string    `json:"size"`
	Temperament  *string   `json:"temperament,omitempty"`
	SpecialNeeds *string   `json:"special_needs,omitempty"`
	MedicalInfo  *string   `json:"medical_info,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
