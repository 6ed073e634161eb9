package commands

import (
	"context"
)

// DeleteUserCommandHandler soft-deletes a user account.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeleteUserCommandHandler creates a handler for user deletion.
func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user deletion command.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
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

	if err = existing.Delete(); err != nil {
		return err
	}

	if err = uow.UserRepository().Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
