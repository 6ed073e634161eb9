// Package car contains the Car aggregate of the rental fleet.
//
// A car moves between Active and Inactive while it is in service and ends up
// Deleted when removed from the fleet. Only Active cars can be placed on a
// rental order, and a deleted car rejects every further mutation. The car also
// owns up to five accessory items (air conditioner, GPS and the like) that are
// replaced as a whole set on update.
//
// The daily price lives here and is read by the order pricing calculator every
// time a total is computed, so price changes apply to totals derived after the
// change.
package car
