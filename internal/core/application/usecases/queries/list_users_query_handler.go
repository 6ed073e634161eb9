package queries

import (
	"context"

	"gorm.io/gorm"

	"rental/internal/core/domain/model/kernel"
)

// ListUsersQueryHandler reads a paginated page of non-deleted users.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for user list queries.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the query, returning the requested page and the totals for
// the full set.
func (h ListUsersQueryHandler) Handle(
	ctx context.Context,
	query ListUsersQuery,
) (ListUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListUsersQueryResponse{}, err
	}

	base := h.db.WithContext(ctx).
		Table("users").
		Where("deleted = false")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ListUsersQueryResponse{}, err
	}

	rows := make([]userRow, 0)
	err := base.Session(&gorm.Session{}).
		Select("id, name, email, deleted").
		Order(query.SortColumn()).
		Offset(query.Pagination().Offset()).
		Limit(query.Pagination().Size()).
		Find(&rows).Error
	if err != nil {
		return ListUsersQueryResponse{}, err
	}

	users := make([]GetUserByIDQueryResponse, 0, len(rows))
	for _, row := range rows {
		userID, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return ListUsersQueryResponse{}, idErr
		}

		users = append(users, GetUserByIDQueryResponse{
			ID:      userID,
			Name:    row.Name,
			Email:   row.Email,
			Deleted: row.Deleted,
		})
	}

	return ListUsersQueryResponse{
		Users:       users,
		Total:       total,
		Pages:       query.Pagination().Pages(total),
		CurrentPage: query.Pagination().Page(),
	}, nil
}
