package commands

import (
	"context"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"
)

// executeTransition is the shared guarded-transition path used by every
// status-changing handler. It re-reads the order's current persisted state
// inside a fresh transaction, applies the mutation, and persists the result
// together with the recorded lifecycle events. The version check in
// Update surfaces Conflict when a concurrent writer committed between the
// read and the write; a failed mutation leaves the order untouched.
func executeTransition(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(*order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = mutate(aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
