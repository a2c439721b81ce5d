package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
)

// PourService defines the contract for acquiring one of the shop's scarce
// pourers and running an order's pour on it.
type PourService interface {
	// Pour blocks until one pourer admits the request and the pour completes.
	// A request is admitted by exactly one pourer, never two, never silently
	// dropped. Returns the context error if ctx is canceled while waiting,
	// or the pool's closed error if the pool shuts down before admission.
	Pour(ctx context.Context, o order.Order) error
}
