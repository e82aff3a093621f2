package pet

import (
	"strings"
	"time"

	"walkies/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidName  = errs.New("pet name must not be empty")
	ErrInvalidBreed = errs.New("pet breed must not be empty")
	ErrInvalidSize  = errs.New("invalid pet size")
)

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

func (s Size) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

func NewSize(s string) (Size, error) {
	size := Size(s)
	if !size.IsValid() {
		return "", ErrInvalidSize
	}
	return size, nil
}

// Pet belongs to exactly one owner. Only its id and owning actor id matter
// for booking authorization; the rest is profile data.
type Pet struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	name         string
	breed        string
	size         Size
	temperament  string
	specialNeeds string
	medicalInfo  string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPet(ownerID uuid.UUID, name, breed string, size Size, temperament, specialNeeds, medicalInfo string) (*Pet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	breed = strings.TrimSpace(breed)
	if breed == "" {
		return nil, ErrInvalidBreed
	}
	if !size.IsValid() {
		return nil, ErrInvalidSize
	}

	return &Pet{
		id:           uuid.New(),
		ownerID:      ownerID,
		name:         name,
		breed:        breed,
		size:         size,
		temperament:  strings.TrimSpace(temperament),
		specialNeeds: strings.TrimSpace(specialNeeds),
		medicalInfo:  strings.TrimSpace(medicalInfo),
	}, nil
}

func ReconstructPet(
	id, ownerID uuid.UUID,
	name, breed string,
	size Size,
	temperament, specialNeeds, medicalInfo string,
	createdAt, updatedAt time.Time,
) *Pet {
	return &Pet{
		id:           id,
		ownerID:      ownerID,
		name:         name,
		breed:        breed,
		size:         size,
		temperament:  temperament,
		specialNeeds: specialNeeds,
		medicalInfo:  medicalInfo,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Pet) OwnedBy(actorID uuid.UUID) bool {
	return p.ownerID == actorID
}

func (p *Pet) ID() uuid.UUID        { return p.id }
func (p *Pet) OwnerID() uuid.UUID   { return p.ownerID }
func (p *Pet) Name() string         { return p.name }
func (p *Pet) Breed() string        { return p.breed }
func (p *Pet) Size() Size           { return p.size }
func (p *Pet) Temperament() string  { return p.temperament }
func (p *Pet) SpecialNeeds() string { return p.specialNeeds }
func (p *Pet) MedicalInfo() string  { return p.medicalInfo }
func (p *Pet) CreatedAt() time.Time { return p.createdAt }
func (p *Pet) UpdatedAt() time.Time { return p.updatedAt }
