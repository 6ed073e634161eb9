package order

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a rental order in the system. It is the aggregate root that manages
// the order lifecycle from creation through approval to closing or cancellation.
//
// Order follows these invariants:
//   - Must reference a customer and a car by valid unique identifiers
//   - Status transitions follow the table in Status: Open -> Approved -> Closed,
//     or Open -> Cancelled; Closed and Cancelled are terminal
//   - Approval requires start date, end date, and cep to all be set
//   - The end date, when set, is strictly after the start date
//   - The start date, when set, is never earlier than the moment of the update
//   - The fine stays nil (not zero) until an overdue close computes it
//   - Can only be created through NewOrder or RestoreOrder
//
// Monetary fields (rentalFee, fine, totalValue) are derived values recomputed
// by the application layer through the pricing domain service; the aggregate
// only guards when they may be written.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	carID      kernel.UUID

	status Status

	// delivery address, set when a cep is resolved
	cep    *kernel.CEP
	city   *string
	region *string

	startDateTime *time.Time
	endDateTime   *time.Time

	rentalFee  decimal.Decimal
	fine       *decimal.Decimal
	totalValue decimal.Decimal

	cancellationDate *time.Time
	closingDate      *time.Time
	createdAt        time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Open status referencing a customer and a car.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: Identifier of the renting customer
//   - carID: Identifier of the rented car
//   - createdAt: Creation timestamp (must not be zero)
//
// The caller is responsible for having verified that the customer and car
// exist and are orderable; the aggregate holds only their identifiers.
func NewOrder(id, customerID, carID kernel.UUID, createdAt time.Time) (*Order, error) {
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	order := &Order{
		status:        Open,
		rentalFee:     decimal.Zero,
		totalValue:    decimal.Zero,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setCarID(carID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation-time checks. The status must be a valid lifecycle value.
func RestoreOrder(
	id, customerID, carID kernel.UUID,
	status Status,
	cep *kernel.CEP,
	city, region *string,
	startDateTime, endDateTime *time.Time,
	rentalFee decimal.Decimal,
	fine *decimal.Decimal,
	totalValue decimal.Decimal,
	cancellationDate, closingDate *time.Time,
	createdAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		status:           status,
		cep:              cep,
		city:             city,
		region:           region,
		startDateTime:    startDateTime,
		endDateTime:      endDateTime,
		rentalFee:        rentalFee,
		fine:             fine,
		totalValue:       totalValue,
		cancellationDate: cancellationDate,
		closingDate:      closingDate,
		createdAt:        createdAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setCarID(carID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the renting customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CarID returns the identifier of the rented car.
func (o *Order) CarID() kernel.UUID {
	return o.carID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CEP returns the delivery postal code, or nil when not set yet.
func (o *Order) CEP() *kernel.CEP {
	return o.cep
}

// City returns the locality resolved from the cep, or nil.
func (o *Order) City() *string {
	return o.city
}

// Region returns the region code resolved from the cep, or nil.
func (o *Order) Region() *string {
	return o.region
}

// StartDateTime returns the rental start, or nil when not scheduled yet.
func (o *Order) StartDateTime() *time.Time {
	return o.startDateTime
}

// EndDateTime returns the rental end, or nil when not scheduled yet.
func (o *Order) EndDateTime() *time.Time {
	return o.endDateTime
}

// RentalFee returns the region-dependent flat freight fee.
func (o *Order) RentalFee() decimal.Decimal {
	return o.rentalFee
}

// Fine returns the overdue fine, or nil when no fine was computed.
// A nil fine is distinct from a zero fine: it means "not computed".
func (o *Order) Fine() *decimal.Decimal {
	return o.fine
}

// TotalValue returns the derived total price of the order.
func (o *Order) TotalValue() decimal.Decimal {
	return o.totalValue
}

// CancellationDate returns when the order was cancelled, or nil.
func (o *Order) CancellationDate() *time.Time {
	return o.cancellationDate
}

// ClosingDate returns when the order was closed, or nil.
func (o *Order) ClosingDate() *time.Time {
	return o.closingDate
}

// CreatedAt returns the creation timestamp of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// HasRentalPeriod reports whether both start and end dates are set.
// The total value is recomputed whenever this holds.
func (o *Order) HasRentalPeriod() bool {
	return o.startDateTime != nil && o.endDateTime != nil
}

// ScheduleStart sets the rental start date.
//
// The start date must not be earlier than now at the moment of the update;
// a start exactly equal to now is accepted.
func (o *Order) ScheduleStart(start, now time.Time) error {
	if start.Before(now) {
		return errs.NewPreconditionFailedErrorWithCause("startDateTime",
			errors.New("start date cannot be in the past"))
	}

	o.startDateTime = &start
	return nil
}

// ScheduleEnd sets the rental end date.
//
// The end date must be strictly after the current start date, including a
// start date set earlier in the same update.
func (o *Order) ScheduleEnd(end time.Time) error {
	if o.startDateTime == nil || !end.After(*o.startDateTime) {
		return errs.NewPreconditionFailedErrorWithCause("endDateTime",
			errors.New("end date must be after the start date"))
	}

	o.endDateTime = &end
	return nil
}

// SetDeliveryAddress records a resolved postal code together with its
// locality, region code, and the freight fee looked up for that region.
// Re-applying the same address is idempotent: the same fee is derived again.
func (o *Order) SetDeliveryAddress(cep kernel.CEP, city, region string, freightFee decimal.Decimal) error {
	if err := cep.Validate(); err != nil {
		return err
	}

	o.cep = &cep
	o.city = &city
	o.region = &region
	o.rentalFee = freightFee
	return nil
}

// Approve transitions the order to Approved.
//
// Approval requires the order to be Open with startDateTime, endDateTime,
// and cep all set; a single rejection covers any unmet precondition,
// even when the fields supplied in the same update were individually valid.
func (o *Order) Approve() error {
	if o.status != Open || o.startDateTime == nil || o.endDateTime == nil || o.cep == nil {
		return errs.NewPreconditionFailedErrorWithCause("status",
			errors.New("cannot approve order: order must be open with start date, end date and cep set"))
	}

	newStatus, err := o.status.TransitionTo(Approved)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled and records the cancellation date.
// Only Open orders can be cancelled. Cancelled is a terminal logical state;
// orders are never physically deleted.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return errs.NewPreconditionFailedErrorWithCause("status",
			errors.New("cannot cancel order that is not open"))
	}

	o.status = newStatus
	o.cancellationDate = &now
	return nil
}

// Close transitions the order to Closed and records the closing date.
// Only Approved orders can be closed. Whether an overdue fine applies is
// decided by the caller via IsOverdueAt and ImposeFine, since the fine
// depends on the car's current daily price.
func (o *Order) Close(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Closed)
	if err != nil {
		return errs.NewPreconditionFailedErrorWithCause("status",
			errors.New("cannot close order that is not approved"))
	}

	o.status = newStatus
	o.closingDate = &now
	return nil
}

// IsOverdueAt reports whether the rental end date has passed at the given time.
func (o *Order) IsOverdueAt(t time.Time) bool {
	return o.endDateTime != nil && o.endDateTime.Before(t)
}

// ImposeFine records an overdue fine on a closed order.
func (o *Order) ImposeFine(fine decimal.Decimal) error {
	if o.status != Closed {
		return errs.NewPreconditionFailedErrorWithCause("fine",
			errors.New("fine can only be imposed on a closed order"))
	}

	o.fine = &fine
	return nil
}

// SetTotalValue overwrites the derived total price.
// The rental period must be set; the value itself is computed by the
// pricing domain service from the period, the car's current daily price,
// the rental fee, and the fine.
func (o *Order) SetTotalValue(total decimal.Decimal) error {
	if !o.HasRentalPeriod() {
		return errs.NewPreconditionFailedErrorWithCause("totalValue",
			errors.New("total value requires both start and end dates"))
	}

	o.totalValue = total
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer reference.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setCarID validates and sets the car reference.
func (o *Order) setCarID(carID kernel.UUID) error {
	if err := carID.Validate(); err != nil {
		return err
	}
	o.carID = carID
	return nil
}
