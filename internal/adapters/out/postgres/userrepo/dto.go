// Package userrepo provides data transfer objects and mapping functions for
// user persistence.
package userrepo

import (
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// A partial unique index on email where deleted is false enforces login
// uniqueness among living users.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:text"`
	Email        string    `gorm:"type:text;index"`
	PasswordHash string    `gorm:"type:text"`
	Deleted      bool      `gorm:"index"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Deleted:      aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.PasswordHash, dto.Deleted)
}
