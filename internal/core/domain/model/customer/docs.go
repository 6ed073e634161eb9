// Package customer contains the Customer aggregate.
//
// Customers are only ever soft-deleted. The cpf and email must be unique
// among non-deleted customers, which is enforced by the persistence layer;
// this package only normalizes and validates the values themselves.
package customer
