// Package queries contains read operations for retrieving pharmacy state.
// Handlers read straight from the connection pool with raw SQL and return
// flat read models; they never lock rows or open a unit of work.
package queries

import (
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// storeDependency is the name reported when the store fails underneath a query.
const storeDependency = "postgres"

func storeFailure(err error) error {
	if err == nil {
		return nil
	}
	return errs.NewDependencyFailureError(storeDependency, err)
}

type CategoryView struct {
	ID          kernel.ID
	Name        string
	Description string
}

type MedicineView struct {
	ID          kernel.ID
	Name        string
	Description string
	CategoryID  kernel.ID
	Price       decimal.Decimal
	Stock       int
}

// OrderView is an order joined with the name and current price of its
// medicine. TotalPrice is the frozen total, UnitPrice is today's price.
type OrderView struct {
	ID                   kernel.ID
	CustomerName         string
	Address              string
	Phone                string
	MedicineID           kernel.ID
	MedicineName         string
	UnitPrice            decimal.Decimal
	Quantity             int
	Status               string
	PaymentStatus        string
	PrescriptionVerified bool
	PrescriptionImage    string
	TotalPrice           decimal.Decimal
	CourierID            *kernel.ID
	CreatedAt            time.Time
}

// CourierView is a courier with its current assignment, if any.
type CourierView struct {
	ID           kernel.ID
	Username     string
	Name         string
	Phone        string
	CurrentOrder *AssignmentView
}

type AssignmentView struct {
	OrderID      kernel.ID
	CustomerName string
	Address      string
	MedicineName string
	Status       string
}

type FeedbackView struct {
	ID          kernel.ID
	OrderID     kernel.ID
	CourierID   kernel.ID
	CourierName string
	Rating      int
	Comment     string
	CreatedAt   time.Time
}

// DashboardStats summarises all orders. Revenue counts the frozen total of
// every order that was not cancelled.
type DashboardStats struct {
	TotalOrders  int64
	TotalRevenue decimal.Decimal
}
