package store

import (
	"context"
	"errors"

	"github.com/arbazmubasher1/TicketDashboard/internal/models"
)

var (
	// ErrUnavailable wraps any network, auth, or quota failure talking to
	// the backing sheet. It is propagated to the caller as-is; nothing in
	// this codebase retries a failed store call.
	ErrUnavailable = errors.New("store unavailable")

	// ErrRowNotFound reports an operation addressed at a row that does not
	// exist (anymore).
	ErrRowNotFound = errors.New("row not found")
)

// Store is the row-oriented backing sheet behind the dashboard. Rows are
// addressed purely by physical position; there is no locking and no conflict
// detection across sessions, so a RowID held across another session's delete
// silently targets the wrong row.
type Store interface {
	// ReadAll returns every ticket in physical order with RowIDs assigned.
	// An empty sheet yields an empty slice and no error.
	ReadAll(ctx context.Context) ([]models.Ticket, error)

	// ReadRow returns the ticket at one physical row. Update callers use it
	// to pick up the stored createdAt and elapsed-days values immediately
	// before writing.
	ReadRow(ctx context.Context, rowID int) (models.Ticket, error)

	// Append adds a new row at the end of the sheet. The elapsed-days cell
	// is written empty; the next synchronizer pass fills it. The assigned
	// RowID is not returned; a subsequent ReadAll learns it.
	Append(ctx context.Context, t models.Ticket) error

	// UpdateRow overwrites every cell of one row in a single call.
	UpdateRow(ctx context.Context, rowID int, t models.Ticket) error

	// DeleteRow physically removes one row. Every row below it shifts up,
	// invalidating all previously held RowIDs greater than rowID.
	DeleteRow(ctx context.Context, rowID int) error

	// BatchUpdateColumn writes values into one column over the contiguous
	// range starting at the first data row, in a single call. The elapsed
	// synchronizer depends on this being one write, not one per row.
	BatchUpdateColumn(ctx context.Context, column string, values []string) error
}
