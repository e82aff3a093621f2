package commands

import (
	"context"
	"errors"

	"walkies/internal/domain/booking"
	"walkies/internal/domain/user"
	"walkies/internal/domain/walker"
	"walkies/internal/infra"
	"walkies/internal/pkg/errs"
	"walkies/internal/usecase/queries"
	"walkies/internal/usecase/shared"
)

type UpdateProfileParams struct {
	Bio             string
	HourlyRateCents int64
	Experience      string
	Services        []string
}

type WalkerCommands interface {
	// UpdateProfile replaces the acting walker's listing, creating it if
	// registration predates the profile table.
	UpdateProfile(ctx context.Context, actor booking.Actor, params UpdateProfileParams) (*queries.WalkerView, error)
}

type walkerCommandsImpl struct {
	uow           shared.UnitOfWork
	walkerQueries queries.WalkerQueries
}

func NewWalkerCommands(uow shared.UnitOfWork, walkerQueries queries.WalkerQueries) WalkerCommands {
	return &walkerCommandsImpl{uow: uow, walkerQueries: walkerQueries}
}

func (w *walkerCommandsImpl) UpdateProfile(ctx context.Context, actor booking.Actor, params UpdateProfileParams) (*queries.WalkerView, error) {
	if actor.Role != user.RoleWalker {
		return nil, ErrForbidden
	}

	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		profile, err := tx.Walkers().FindByUserID(ctx, actor.ID)
		switch {
		case err == nil:
			if err := profile.Update(actor.ID, params.Bio, params.HourlyRateCents, params.Experience, params.Services); err != nil {
				return mapProfileErr(err)
			}
		case infra.IsKind(err, infra.KindNotFound):
			profile, err = walker.NewProfile(actor.ID, params.Bio, params.HourlyRateCents, params.Experience, params.Services)
			if err != nil {
				return mapProfileErr(err)
			}
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Walkers().Save(ctx, profile); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return w.walkerQueries.GetByID(ctx, actor.ID)
}

func mapProfileErr(err error) error {
	if errors.Is(err, walker.ErrNotProfileOwner) {
		return errs.Mark(err, ErrForbidden)
	}
	return errs.Mark(err, ErrDomainValidation)
}
