// Package memory holds the sheet in process memory behind the same adapter
// contract as the Google Sheets store. It backs tests and the STORE=memory
// development mode.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/arbazmubasher1/TicketDashboard/internal/models"
	"github.com/arbazmubasher1/TicketDashboard/internal/store"
)

type Store struct {
	mu   sync.Mutex
	rows [][]string
}

func New() *Store { return &Store{} }

// Seed replaces the sheet contents with the given tickets, elapsed values
// included. Dev and test helper.
func (s *Store) Seed(tickets []models.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = make([][]string, len(tickets))
	for i, t := range tickets {
		s.rows[i] = store.EncodeRow(t)
	}
}

func (s *Store) ReadAll(ctx context.Context) ([]models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ticket, len(s.rows))
	for i, cells := range s.rows {
		out[i] = store.DecodeRow(cells, i+store.FirstDataRow)
	}
	return out, nil
}

func (s *Store) ReadRow(ctx context.Context, rowID int) (models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.index(rowID)
	if err != nil {
		return models.Ticket{}, err
	}
	return store.DecodeRow(s.rows[i], rowID), nil
}

func (s *Store) Append(ctx context.Context, t models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, store.EncodeNewRow(t))
	return nil
}

func (s *Store) UpdateRow(ctx context.Context, rowID int, t models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.index(rowID)
	if err != nil {
		return err
	}
	s.rows[i] = store.EncodeRow(t)
	return nil
}

func (s *Store) DeleteRow(ctx context.Context, rowID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.index(rowID)
	if err != nil {
		return err
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	return nil
}

func (s *Store) BatchUpdateColumn(ctx context.Context, column string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(values) > len(s.rows) {
		return fmt.Errorf("%w: column %s write spans %d rows, sheet has %d", store.ErrRowNotFound, column, len(values), len(s.rows))
	}
	col, err := columnIndex(column)
	if err != nil {
		return err
	}
	for i, v := range values {
		for len(s.rows[i]) <= col {
			s.rows[i] = append(s.rows[i], "")
		}
		s.rows[i][col] = v
	}
	return nil
}

func (s *Store) index(rowID int) (int, error) {
	i := rowID - store.FirstDataRow
	if i < 0 || i >= len(s.rows) {
		return 0, fmt.Errorf("%w: row %d", store.ErrRowNotFound, rowID)
	}
	return i, nil
}

func columnIndex(column string) (int, error) {
	if len(column) != 1 || column[0] < 'A' || column[0] > 'G' {
		return 0, fmt.Errorf("unknown column %q", column)
	}
	return int(column[0] - 'A'), nil
}
