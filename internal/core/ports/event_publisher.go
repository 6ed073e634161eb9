package ports

import (
	"context"

	"rental/internal/core/domain/model/order"
)

// OrderEventPublisher announces order lifecycle changes to interested
// consumers (billing, fleet dashboards). Publication happens after the owning
// transaction commits; a publish failure is logged by the caller and never
// rolls the business operation back.
type OrderEventPublisher interface {
	// PublishOrderChanged emits the order's current state.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
