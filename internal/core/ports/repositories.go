// Package ports defines the contracts between the pharmacy core and its
// infrastructure: repositories bound to a unit of work, the messaging
// provider, the bot session store and the prescription image store.
package ports

import (
	"context"
	"time"

	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/courier"
	"pharmacy/internal/core/domain/model/feedback"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/domain/model/order"
)

// CategoryRepository persists catalog categories.
type CategoryRepository interface {
	// Add inserts the category and sets its store-assigned ID.
	Add(ctx context.Context, category *catalog.Category) error
	Get(ctx context.Context, id kernel.ID) (*catalog.Category, error)
}

// MedicineRepository persists medicines and their stock counters.
type MedicineRepository interface {
	// Add inserts the medicine and sets its store-assigned ID.
	Add(ctx context.Context, medicine *catalog.Medicine) error
	Update(ctx context.Context, medicine *catalog.Medicine) error
	Get(ctx context.Context, id kernel.ID) (*catalog.Medicine, error)

	// GetForUpdate loads the medicines and row-locks them until the unit of
	// work ends. Rows are locked in ascending ID order whatever the order of
	// ids, so two transactions locking overlapping sets cannot deadlock.
	// Duplicate ids are collapsed. A missing ID yields errs.ErrObjectNotFound.
	GetForUpdate(ctx context.Context, ids ...kernel.ID) (map[kernel.ID]*catalog.Medicine, error)
}

// OrderRepository persists orders.
type OrderRepository interface {
	// Add inserts the order and sets its store-assigned ID.
	Add(ctx context.Context, aggregate *order.Order) error
	Update(ctx context.Context, aggregate *order.Order) error
	Delete(ctx context.Context, id kernel.ID) error
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate loads the order and row-locks it until the unit of work ends.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)
}

// CourierRepository persists couriers.
type CourierRepository interface {
	// Add inserts the courier and sets its store-assigned ID. A duplicate
	// username yields errs.ErrInvalidState.
	Add(ctx context.Context, courier *courier.Courier) error
	Update(ctx context.Context, courier *courier.Courier) error
	Get(ctx context.Context, id kernel.ID) (*courier.Courier, error)
	GetForUpdate(ctx context.Context, id kernel.ID) (*courier.Courier, error)
	GetByUsername(ctx context.Context, username string) (*courier.Courier, error)

	// FindHoldingForUpdate returns the locked courier whose current order is
	// orderID, or nil when no courier holds it.
	FindHoldingForUpdate(ctx context.Context, orderID kernel.ID) (*courier.Courier, error)
}

// FeedbackRepository appends delivery ratings.
type FeedbackRepository interface {
	Add(ctx context.Context, feedback *feedback.Feedback) error
}

// NotificationRepository is the outbox of messages waiting to be sent.
type NotificationRepository interface {
	// Add inserts the notification and sets its store-assigned ID.
	Add(ctx context.Context, notification *notification.Notification) error
	Update(ctx context.Context, notification *notification.Notification) error

	// ClaimPending leases up to limit pending notifications, oldest first, so
	// other dispatchers skip them until lease expires. Sending happens after
	// the claiming transaction commits; Update ends the lease.
	ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]*notification.Notification, error)
}
