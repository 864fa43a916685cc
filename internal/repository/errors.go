// Package repository persists the booking state: the catalog of movies with
// their seat grids and the ledger of confirmed bookings.  The document
// format is produced by Encode/Decode; stores only move the bytes.
package repository

import "errors"

// ErrNoState is returned by a store that has nothing persisted yet.  It is
// not a failure: callers substitute the default catalog and an empty
// ledger.
var ErrNoState = errors.New("no persisted state")

// ErrCorruptState is returned when a persisted document is missing
// required fields or carries grids that are not 13x10 boolean matrices.
var ErrCorruptState = errors.New("corrupt state")
