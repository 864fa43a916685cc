package booking

import (
	"fmt"
	"sync"

	"github.com/iliyamo/cinebook/internal/model"
)

// Ledger is the append-only history of confirmed bookings.  Records are
// never removed or edited; readers always receive copies.
type Ledger struct {
	mu      sync.RWMutex
	records []model.BookingRecord
	byID    map[string]int
}

// NewLedger seeds a ledger with previously persisted records, preserving
// their order.
func NewLedger(records []model.BookingRecord) *Ledger {
	l := &Ledger{byID: make(map[string]int, len(records))}
	for _, r := range records {
		l.append(r)
	}
	return l
}

func (l *Ledger) append(r model.BookingRecord) {
	l.byID[r.BookingID] = len(l.records)
	l.records = append(l.records, r.Clone())
}

// Append adds a record to the end of the ledger.
func (l *Ledger) Append(r model.BookingRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.append(r)
}

// Has reports whether a booking with the id exists.
func (l *Ledger) Has(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.byID[id]
	return ok
}

// Find returns the record with the given booking id.
func (l *Ledger) Find(id string) (model.BookingRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.byID[id]
	if !ok {
		return model.BookingRecord{}, fmt.Errorf("%w: booking %q", model.ErrNotFound, id)
	}
	return l.records[i].Clone(), nil
}

// List returns every record in append order.
func (l *Ledger) List() []model.BookingRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.BookingRecord, len(l.records))
	for i, r := range l.records {
		out[i] = r.Clone()
	}
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
