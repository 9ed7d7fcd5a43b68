// Package errs holds the error taxonomy shared by the domain, the use cases
// and the adapters. Every typed error unwraps to one of the package sentinels,
// so callers classify with errors.Is and read details with errors.As.
//
// ErrPaymentRequired, ErrUnauthorized and ErrForbidden carry no detail and
// are returned as-is or wrapped with fmt.Errorf.
package errs
