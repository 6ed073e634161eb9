package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// GetUserByIDQueryHandler reads one user.
type GetUserByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByIDQueryHandler creates a handler for single-user queries.
func NewGetUserByIDQueryHandler(db *gorm.DB) GetUserByIDQueryHandler {
	return GetUserByIDQueryHandler{db: db}
}

type userRow struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Deleted bool
}

// Handle executes the query. Returns an ObjectNotFoundError when no user
// exists with the given ID.
func (h GetUserByIDQueryHandler) Handle(
	ctx context.Context,
	query GetUserByIDQuery,
) (GetUserByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserByIDQueryResponse{}, err
	}

	var row userRow
	err := h.db.WithContext(ctx).
		Table("users").
		Select("id, name, email, deleted").
		Where("id = ?", query.UserID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetUserByIDQueryResponse{},
				errs.NewObjectNotFoundError("user", query.UserID().String())
		}
		return GetUserByIDQueryResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetUserByIDQueryResponse{}, err
	}

	return GetUserByIDQueryResponse{
		ID:      userID,
		Name:    row.Name,
		Email:   row.Email,
		Deleted: row.Deleted,
	}, nil
}
