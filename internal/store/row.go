package store

import (
	"strconv"
	"time"

	"github.com/arbazmubasher1/TicketDashboard/internal/models"
)

// Sheet layout. Row 1 is the header; tickets start at FirstDataRow.
const (
	FirstDataRow = 2

	// ElapsedColumn is the column holding the derived elapsed-days value,
	// the one column rewritten wholesale on every load.
	ElapsedColumn = "F"

	createdAtLayout = "2006-01-02 15:04:05"
	deadlineLayout  = "2006-01-02"
)

// Header is row 1 of the sheet, in column order.
var Header = []string{"Task", "Domain", "Created At", "Deadline", "Status", "Elapsed Days", "Comments"}

// EncodeRow renders a ticket as sheet cells, elapsed days included.
func EncodeRow(t models.Ticket) []string {
	return []string{
		t.Task,
		t.Domain,
		t.CreatedAt.Format(createdAtLayout),
		t.Deadline.Format(deadlineLayout),
		t.Status,
		strconv.Itoa(t.ElapsedDays),
		t.Comments,
	}
}

// EncodeNewRow renders a freshly created ticket. The elapsed-days cell is
// left empty; the next synchronizer pass writes the real value.
func EncodeNewRow(t models.Ticket) []string {
	cells := EncodeRow(t)
	cells[5] = ""
	return cells
}

// DecodeRow parses sheet cells into a ticket. Decoding never fails: short
// rows are padded, unparseable dates decode to the zero time, and a blank or
// garbage elapsed cell decodes to 0. Out-of-set status and domain values pass
// through unchanged.
func DecodeRow(cells []string, rowID int) models.Ticket {
	for len(cells) < len(Header) {
		cells = append(cells, "")
	}
	createdAt, _ := time.Parse(createdAtLayout, cells[2])
	deadline, _ := time.Parse(deadlineLayout, cells[3])
	elapsed, _ := strconv.Atoi(cells[5])
	return models.Ticket{
		RowID:       rowID,
		Task:        cells[0],
		Domain:      cells[1],
		CreatedAt:   createdAt,
		Deadline:    deadline,
		Status:      cells[4],
		ElapsedDays: elapsed,
		Comments:    cells[6],
	}
}
