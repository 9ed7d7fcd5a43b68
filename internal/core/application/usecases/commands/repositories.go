// Package commands contains the business operations that modify pharmacy
// state. Every handler validates its command, opens a unit of work, locks the
// rows it is going to change, applies domain rules and commits. A handler
// never holds a transaction open across a network call to the messaging
// provider.
package commands

import (
	"context"

	"pharmacy/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each group of handlers touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	MedicineRepoFactory interface {
		MedicineRepository() ports.MedicineRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	FeedbackRepoFactory interface {
		FeedbackRepository() ports.FeedbackRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// CatalogUoW is used by admin catalog maintenance.
	CatalogUoW interface {
		TxManager
		CategoryRepoFactory
		MedicineRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CourierUoW is used for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// OrderUoW covers the order lifecycle and delivery flow: an order change
	// may touch stock, free a courier and queue a notification in the same
	// transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... apply domain rules
	//   return uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		MedicineRepoFactory
		OrderRepoFactory
		CourierRepoFactory
		NotificationRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FeedbackUoW is used when a customer rates a delivery.
	FeedbackUoW interface {
		TxManager
		OrderRepoFactory
		FeedbackRepoFactory
	}

	FeedbackUoWFactory interface {
		Create() FeedbackUoW
	}

	// NotificationUoW is used by the outbox dispatcher.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
