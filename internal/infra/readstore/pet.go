package readstore

import (
	"context"

	"walkies/internal/infra"
	"walkies/internal/infra/db"
	"walkies/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetReadStore struct {
	db db.DBTX
}

func NewPetReadStore(dbtx db.DBTX) *PetReadStore {
	return &PetReadStore{db: dbtx}
}

const petViewQuery = `
	SELECT id, owner_id, name, breed, size,
	       NULLIF(temperament, ''), NULLIF(special_needs, ''), NULLIF(medical_info, ''),
	       created_at
	FROM pets`

func (s *PetReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.PetView, error) {
	var view queries.PetView
	err := s.db.QueryRow(ctx, petViewQuery+` WHERE id = $1`, id).Scan(
		&view.ID, &view.OwnerID, &view.Name, &view.Breed, &view.Size,
		&view.Temperament, &view.SpecialNeeds, &view.MedicalInfo,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pet view", err)
	}
	return &view, nil
}

func (s *PetReadStore) FindViewsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.PetView, error) {
	rows, err := s.db.Query(ctx, petViewQuery+` WHERE owner_id = $1 ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pet views", err)
	}
	defer rows.Close()

	var views []*queries.PetView
	for rows.Next() {
		var view queries.PetView
		err := rows.Scan(
			&view.ID, &view.OwnerID, &view.Name, &view.Breed, &view.Size,
			&view.Temperament, &view.SpecialNeeds, &view.MedicalInfo,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pet view", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pet views", err)
	}
	return views, nil
}
