package queries

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrGetUserByIDQueryIsNotConstructed = errors.New(
	"GetUserByIDQuery must be created via NewGetUserByIDQuery constructor",
)

// GetUserByIDQuery retrieves a single back-office user. The password hash is
// never part of the read model.
type GetUserByIDQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserByIDQuery creates a query for one user.
func NewGetUserByIDQuery(userID kernel.UUID) (GetUserByIDQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserByIDQuery{}, err
	}

	return GetUserByIDQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByIDQueryIsNotConstructed)
}

// UserID returns the identifier of the requested user.
func (q GetUserByIDQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserByIDQueryResponse is the user read model.
type GetUserByIDQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Email   string
	Deleted bool
}
