// Package order provides domain entities and business logic for rental order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, rental period,
//     delivery address, derived monetary values, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//     through an explicit transition table
//
// Key business rules:
//   - Orders reference exactly one customer and one car by identifier
//   - Order status follows a defined workflow: Open -> Approved -> Closed,
//     with cancellation only from Open; Closed and Cancelled are terminal
//   - Approval requires start date, end date, and cep to all be set
//   - The end date is strictly after the start date
//   - The fine is nil until an overdue close computes it; nil means
//     "not computed", which is distinct from a zero fine
//   - Orders are never physically deleted; cancellation is a logical state
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
