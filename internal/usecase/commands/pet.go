package commands

import (
	"context"

	"walkies/internal/domain/booking"
	"walkies/internal/domain/pet"
	"walkies/internal/domain/user"
	"walkies/internal/pkg/errs"
	"walkies/internal/usecase/queries"
	"walkies/internal/usecase/shared"
)

type CreatePetParams struct {
	Name         string
	Breed        string
	Size         string
	Temperament  string
	SpecialNeeds string
	MedicalInfo  string
}

type PetCommands interface {
	Create(ctx context.Context, actor booking.Actor, params CreatePetParams) (*queries.PetView, error)
}

type petCommandsImpl struct {
	uow        shared.UnitOfWork
	petQueries queries.PetQueries
}

func NewPetCommands(uow shared.UnitOfWork, petQueries queries.PetQueries) PetCommands {
	return &petCommandsImpl{uow: uow, petQueries: petQueries}
}

func (p *petCommandsImpl) Create(ctx context.Context, actor booking.Actor, params CreatePetParams) (*queries.PetView, error) {
	if actor.Role != user.RoleOwner {
		return nil, ErrForbidden
	}

	size, err := pet.NewSize(params.Size)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := pet.NewPet(actor.ID, params.Name, params.Breed, size, params.Temperament, params.SpecialNeeds, params.MedicalInfo)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Pets().Create(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return p.petQueries.GetByID(ctx, actor, entity.ID())
}
