package queries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// GetCustomerByIDQueryHandler reads one customer.
type GetCustomerByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerByIDQueryHandler creates a handler for single-customer queries.
func NewGetCustomerByIDQueryHandler(db *gorm.DB) GetCustomerByIDQueryHandler {
	return GetCustomerByIDQueryHandler{db: db}
}

type customerRow struct {
	ID          uuid.UUID
	Name        string
	DateOfBirth time.Time
	CPF         string
	Email       string
	Phone       string
	Deleted     bool
}

// Handle executes the query. Returns an ObjectNotFoundError when no customer
// exists with the given ID.
func (h GetCustomerByIDQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerByIDQuery,
) (GetCustomerByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerByIDQueryResponse{}, err
	}

	var row customerRow
	err := h.db.WithContext(ctx).
		Table("customers").
		Where("id = ?", query.CustomerID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetCustomerByIDQueryResponse{},
				errs.NewObjectNotFoundError("customer", query.CustomerID().String())
		}
		return GetCustomerByIDQueryResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetCustomerByIDQueryResponse{}, err
	}

	return GetCustomerByIDQueryResponse{
		CustomerSummary: CustomerSummary{
			ID:    customerID,
			Name:  row.Name,
			CPF:   row.CPF,
			Email: row.Email,
			Phone: row.Phone,
		},
		DateOfBirth: row.DateOfBirth,
		Deleted:     row.Deleted,
	}, nil
}
