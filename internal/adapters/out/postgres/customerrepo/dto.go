// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"rental/internal/core/domain/model/customer"
	"rental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. Partial unique indexes on cpf and email where deleted is false
// enforce uniqueness among living customers; they are created by the schema
// migrations.
type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:text"`
	DateOfBirth time.Time
	CPF         string `gorm:"type:text"`
	Email       string `gorm:"type:text"`
	Phone       string `gorm:"type:text"`
	Deleted     bool   `gorm:"index"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		DateOfBirth: aggregate.DateOfBirth(),
		CPF:         aggregate.CPF(),
		Email:       aggregate.Email(),
		Phone:       aggregate.Phone(),
		Deleted:     aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.DateOfBirth, dto.CPF, dto.Email, dto.Phone, dto.Deleted)
}
