package repository

import (
	"context"
	"sort"

	"github.com/arbazmubasher1/TicketDashboard/internal/models"
	"github.com/arbazmubasher1/TicketDashboard/internal/store"
)

// Snapshot is the repository's view of the sheet at one load: every ticket in
// physical order, RowIDs assigned by the adapter. RowIDs from one snapshot
// must be discarded after any delete.
type Snapshot struct {
	Tickets []models.Ticket
}

func Load(ctx context.Context, st store.Store) (*Snapshot, error) {
	tickets, err := st.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Tickets: tickets}, nil
}

// Filter returns tickets whose status and domain both match the selections.
// An empty selection on either axis matches everything, mirroring the
// dashboard's "select all" checkboxes.
func (s *Snapshot) Filter(statuses, domains []string) []models.Ticket {
	statusSet := toSet(statuses)
	domainSet := toSet(domains)
	out := make([]models.Ticket, 0, len(s.Tickets))
	for _, t := range s.Tickets {
		if matches(statusSet, t.Status) && matches(domainSet, t.Domain) {
			out = append(out, t)
		}
	}
	return out
}

// CountByStatus summarizes the full, unfiltered snapshot; active filters do
// not change the overview numbers.
func (s *Snapshot) CountByStatus() map[string]int {
	counts := make(map[string]int)
	for _, t := range s.Tickets {
		counts[t.Status]++
	}
	return counts
}

// DeadlineBucket is one bar of the deadlines chart: tickets due on one date,
// split by status.
type DeadlineBucket struct {
	Deadline string         `json:"deadline"`
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

// DeadlineHistogram buckets the unfiltered snapshot by deadline date, sorted
// ascending. Tickets with an unparsed (zero) deadline are skipped.
func (s *Snapshot) DeadlineHistogram() []DeadlineBucket {
	byDate := make(map[string]*DeadlineBucket)
	for _, t := range s.Tickets {
		if t.Deadline.IsZero() {
			continue
		}
		day := t.Deadline.Format("2006-01-02")
		b, ok := byDate[day]
		if !ok {
			b = &DeadlineBucket{Deadline: day, ByStatus: make(map[string]int)}
			byDate[day] = b
		}
		b.Total++
		b.ByStatus[t.Status]++
	}
	out := make([]DeadlineBucket, 0, len(byDate))
	for _, b := range byDate {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Deadline < out[j].Deadline })
	return out
}

func toSet(vals []string) map[string]struct{} {
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}

func matches(set map[string]struct{}, v string) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[v]
	return ok
}
