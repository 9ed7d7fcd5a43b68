// Package kernel provides the shared domain primitives of the pharmacy backend.
//
// The package includes:
//   - ID: a positive integer identifier assigned by the store to every entity
//   - Money: a non-negative decimal amount used for medicine prices and frozen order totals
//   - Phone: a normalized customer or courier phone number
//
// These primitives validate on construction so that aggregates built from them
// never hold a negative price or a zero identifier.
package kernel
