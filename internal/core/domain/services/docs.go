// Package services provides domain services that implement business logic
// spanning multiple aggregates of the rental system.
//
// The package includes:
//   - OrderPricer: derives freight fees, overdue fines, and order totals from
//     the rental period and the car's daily price.
//
// Domain services stay free of infrastructure concerns; handlers in the
// application layer feed them the data they need.
package services
