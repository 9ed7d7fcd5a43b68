package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repositories
// obtained after Begin run inside the transaction; the caller must end it
// with Commit or Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	CategoryRepository() CategoryRepository
	MedicineRepository() MedicineRepository
	OrderRepository() OrderRepository
	CourierRepository() CourierRepository
	FeedbackRepository() FeedbackRepository
	NotificationRepository() NotificationRepository
}
