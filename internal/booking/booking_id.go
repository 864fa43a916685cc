package booking

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// IDGenerator produces booking identifiers.
type IDGenerator interface {
	NewID(now time.Time) string
}

// DateSuffixIDs builds ids of the form YYYYMMDD-NNNN with a random four
// digit suffix.  The engine rejects ids already present in the ledger and
// asks again.
type DateSuffixIDs struct{}

// NewID implements IDGenerator.
func (DateSuffixIDs) NewID(now time.Time) string {
	return fmt.Sprintf("%s-%04d", now.Format("20060102"), 1000+rand.IntN(9000))
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func(now time.Time) string

// NewID implements IDGenerator.
func (f IDGeneratorFunc) NewID(now time.Time) string { return f(now) }
