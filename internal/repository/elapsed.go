package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/arbazmubasher1/TicketDashboard/internal/store"
)

// ElapsedDays returns the whole days between createdAt and now. Always
// recomputed from createdAt, never from a previously stored value.
func ElapsedDays(now, createdAt time.Time) int {
	return int(now.Sub(createdAt).Hours() / 24)
}

// Synchronizer persists recomputed elapsed-days values back to the sheet so
// that other readers see current numbers without recomputing. It runs once
// per load cycle, before filtering or rendering.
type Synchronizer struct {
	Store store.Store
	Now   func() time.Time
}

// Sync recomputes elapsed days for every ticket, updates the snapshot in
// place, and writes the whole column in exactly one call. An empty snapshot
// is a no-op: there is no zero-length range to write.
func (s *Synchronizer) Sync(ctx context.Context, snap *Snapshot) error {
	if snap == nil || len(snap.Tickets) == 0 {
		return nil
	}
	now := s.Now()
	values := make([]string, len(snap.Tickets))
	for i := range snap.Tickets {
		days := ElapsedDays(now, snap.Tickets[i].CreatedAt)
		snap.Tickets[i].ElapsedDays = days
		values[i] = strconv.Itoa(days)
	}
	return s.Store.BatchUpdateColumn(ctx, store.ElapsedColumn, values)
}
