// Package services provides domain services that coordinate several
// aggregates of the pharmacy inside a single unit of work.
//
// The package includes:
//   - StockReconciler: keeps medicine stock and the units held by orders in
//     step when orders are placed, modified or released
//   - DeliveryCoordinator: binds an order to a courier and completes delivery
//
// Services mutate the aggregates they are given in memory. Persisting the
// result atomically is the caller's job.
package services
