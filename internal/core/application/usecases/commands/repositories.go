// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"packaging/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LabelRepoFactory provides access to the label repository within a transaction.
	LabelRepoFactory interface {
		LabelRepository() ports.LabelRepository
	}

	// SequenceFactory provides access to the sequence generator within a
	// transaction, so business numbers roll back with the command.
	SequenceFactory interface {
		SequenceGenerator() ports.SequenceGenerator
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LabelUoW manages transactions for label-only operations.
	LabelUoW interface {
		TxManager
		LabelRepoFactory
	}

	// LabelUoWFactory creates new label unit of work instances.
	LabelUoWFactory interface {
		Create() LabelUoW
	}

	// UoW manages transactions spanning orders, labels and sequences.
	// Used by commands that number aggregates or attach labels to orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   labelRepo := uow.LabelRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		LabelRepoFactory
		SequenceFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
