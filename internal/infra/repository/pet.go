package repository

import (
	"context"
	"time"

	"walkies/internal/domain/pet"
	"walkies/internal/infra"
	"walkies/internal/infra/db"

	"github.com/google/uuid"
)

type PetRepository struct {
	db db.DBTX
}

func NewPetRepository(dbtx db.DBTX) *PetRepository {
	return &PetRepository{db: dbtx}
}

func (r *PetRepository) Create(ctx context.Context, p *pet.Pet) error {
	const query = `
		INSERT INTO pets (id, owner_id, name, breed, size, temperament, special_needs, medical_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`

	_, err := r.db.Exec(ctx, query,
		p.ID(), p.OwnerID(), p.Name(), p.Breed(), string(p.Size()),
		p.Temperament(), p.SpecialNeeds(), p.MedicalInfo(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create pet", err)
	}
	return nil
}

func (r *PetRepository) FindByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error) {
	const query = `
		SELECT id, owner_id, name, breed, size, temperament, special_needs, medical_info, created_at, updated_at
		FROM pets WHERE id = $1`

	var (
		petID, ownerID                         uuid.UUID
		name, breed, size                      string
		temperament, specialNeeds, medicalInfo string
		createdAt, updatedAt                   time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&petID, &ownerID, &name, &breed, &size,
		&temperament, &specialNeeds, &medicalInfo,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pet", err)
	}

	return pet.ReconstructPet(petID, ownerID, name, breed, pet.Size(size), temperament, specialNeeds, medicalInfo, createdAt, updatedAt), nil
}
