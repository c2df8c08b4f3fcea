package models

import (
	"slices"
	"time"
)

// Domains and Statuses are the fixed sets tickets are created with. Legacy
// rows may carry values outside these sets; such values are displayed as-is
// and only rejected on write.
var (
	Domains  = []string{"Leasing", "Design", "Equipment", "Construction", "Project Management"}
	Statuses = []string{"Initiated", "Partial", "Stuck", "Completed"}
)

func ValidDomain(d string) bool { return slices.Contains(Domains, d) }
func ValidStatus(s string) bool { return slices.Contains(Statuses, s) }

// Ticket is one data row of the backing sheet.
//
// RowID is the row's 1-based physical position; the header occupies row 1, so
// the first ticket has RowID 2. It is the sole addressing mechanism for
// updates and deletes, and it is only valid against the snapshot it was read
// from: deleting a row shifts every RowID below it up by one.
type Ticket struct {
	RowID       int       `json:"rowId"`
	Task        string    `json:"task"`
	Domain      string    `json:"domain"`
	CreatedAt   time.Time `json:"createdAt"`
	Deadline    time.Time `json:"deadline"`
	Status      string    `json:"status"`
	ElapsedDays int       `json:"elapsedDays"`
	Comments    string    `json:"comments"`
}
