// Package catalog holds the read-mostly side of the pharmacy: categories and
// the medicines that belong to them.
//
// Medicine is the only entity in the package with behaviour worth guarding.
// Its stock is an inventory counter that must never become negative:
// Reserve rejects a request for more units than are on hand instead of
// clamping, and Restock only ever adds units back.
package catalog
