package car

import (
	"errors"
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is an accessory attached to a car, such as an air conditioner or a GPS
// unit. Items belong to exactly one car and carry no state beyond their name.
type Item struct {
	id            kernel.UUID
	name          string
	isConstructed bool
}

// NewItem creates an accessory item with a fresh identifier.
func NewItem(id kernel.UUID, name string) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(item.setID(id), item.setName(name)); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an accessory item from persistence.
func RestoreItem(id kernel.UUID, name string) (*Item, error) {
	return NewItem(id, name)
}

// Validate checks that the Item came out of a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by identifier.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the accessory description.
func (i *Item) Name() string {
	return i.name
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}
