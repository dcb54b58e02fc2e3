// Package commands contains the write operations of the order lifecycle
// service. Every command follows the same pattern: a constructor-guarded
// command struct, validation, and a handler that re-reads the order inside a
// transaction before mutating it, so no transition ever acts on stale state.
package commands

import (
	"context"

	"vendororders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions keep the order record, its status index and
// its outbox events consistent within one transaction boundary.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances, one per
	// command execution.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
