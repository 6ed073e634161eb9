package customer

import (
	"errors"
	"strings"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through the NewCustomer or RestoreCustomer factory methods.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")
)

// Customer represents a person renting cars. Customers are soft-deleted:
// a deleted customer stays in storage but cannot be modified or placed on
// new orders, and uniqueness of cpf and email applies only among the living.
type Customer struct {
	id            kernel.UUID
	name          string
	dateOfBirth   time.Time
	cpf           string
	email         string
	phone         string
	deleted       bool
	isConstructed bool
}

// NewCustomer creates a customer. The cpf is normalized to its eleven bare
// digits and the email is lowercased.
func NewCustomer(id kernel.UUID, name string, dateOfBirth time.Time, cpf, email, phone string) (*Customer, error) {
	customer := &Customer{isConstructed: true}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setDateOfBirth(dateOfBirth),
		customer.setCPF(cpf),
		customer.setEmail(email),
		customer.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistence, including the
// soft-delete flag.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	dateOfBirth time.Time,
	cpf, email, phone string,
	deleted bool,
) (*Customer, error) {
	customer, err := NewCustomer(id, name, dateOfBirth, cpf, email, phone)
	if err != nil {
		return nil, err
	}

	customer.deleted = deleted
	return customer, nil
}

// Validate ensures the Customer was properly constructed through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// Name returns the customer's full name.
func (c *Customer) Name() string { return c.name }

// DateOfBirth returns the customer's date of birth.
func (c *Customer) DateOfBirth() time.Time { return c.dateOfBirth }

// CPF returns the normalized eleven-digit cpf.
func (c *Customer) CPF() string { return c.cpf }

// Email returns the lowercased email address.
func (c *Customer) Email() string { return c.email }

// Phone returns the contact phone number.
func (c *Customer) Phone() string { return c.phone }

// IsDeleted reports whether the customer was soft-deleted.
func (c *Customer) IsDeleted() bool { return c.deleted }

// Update replaces the customer's attributes. Deleted customers are immutable.
func (c *Customer) Update(name string, dateOfBirth time.Time, cpf, email, phone string) error {
	if c.deleted {
		return errs.NewPreconditionFailedError("deleted customer cannot be modified")
	}

	return errors.Join(
		c.setName(name),
		c.setDateOfBirth(dateOfBirth),
		c.setCPF(cpf),
		c.setEmail(email),
		c.setPhone(phone),
	)
}

// Delete soft-deletes the customer. A repeated delete is rejected.
func (c *Customer) Delete() error {
	if c.deleted {
		return errs.NewPreconditionFailedError("customer is already deleted")
	}

	c.deleted = true
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setDateOfBirth(dateOfBirth time.Time) error {
	if dateOfBirth.IsZero() {
		return errs.NewValueIsRequiredError("dateOfBirth")
	}
	c.dateOfBirth = dateOfBirth
	return nil
}

func (c *Customer) setCPF(cpf string) error {
	normalized := strings.NewReplacer(".", "", "-", "", " ", "").Replace(cpf)
	if normalized == "" {
		return errs.NewValueIsRequiredError("cpf")
	}
	if len(normalized) != 11 {
		return errs.NewValueIsInvalidError("cpf")
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidError("cpf")
		}
	}

	c.cpf = normalized
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("email")
	}

	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
