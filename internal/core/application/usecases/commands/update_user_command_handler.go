package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// UpdateUserCommandHandler handles user profile updates, rehashing the
// password when a new one is supplied.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserCommandHandler creates a handler for user updates.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user update command.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = existing.Update(cmd.Name(), cmd.Email()); err != nil {
		return err
	}

	if cmd.Password() != "" {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}

		if err = existing.ChangePasswordHash(string(hash)); err != nil {
			return err
		}
	}

	if err = uow.UserRepository().Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
