// Package courier models the delivery staff ("delivery boys" in the admin
// dashboard). A courier logs in with a username and password and carries at
// most one order at a time.
package courier
