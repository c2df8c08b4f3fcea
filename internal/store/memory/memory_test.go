package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arbazmubasher1/TicketDashboard/internal/models"
	"github.com/arbazmubasher1/TicketDashboard/internal/store"
)

func mkTicket(task, domain, status string) models.Ticket {
	return models.Ticket{
		Task:      task,
		Domain:    domain,
		CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		Deadline:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

func TestAppendAssignsPositionalRowIDs(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.Append(ctx, mkTicket("a", "Leasing", "Initiated")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := s.Append(ctx, mkTicket("b", "Design", "Stuck")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := s.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ReadAll returned %d tickets, want 2", len(got))
	}
	if got[0].RowID != 2 || got[1].RowID != 3 {
		t.Errorf("RowIDs = %d, %d; want 2, 3 (header is row 1)", got[0].RowID, got[1].RowID)
	}
	if got[0].Task != "a" || got[1].Task != "b" {
		t.Errorf("tickets out of physical order: %q, %q", got[0].Task, got[1].Task)
	}
	// Fresh rows carry no elapsed value until a sync pass.
	if got[0].ElapsedDays != 0 {
		t.Errorf("new ticket ElapsedDays = %d, want 0", got[0].ElapsedDays)
	}
}

func TestReadAllEmpty(t *testing.T) {
	got, err := New().ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll on empty store: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ReadAll on empty store returned %d tickets", len(got))
	}
}

func TestUpdateRow(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Seed([]models.Ticket{mkTicket("a", "Leasing", "Initiated")})

	next := mkTicket("a2", "Leasing", "Completed")
	next.ElapsedDays = 7
	if err := s.UpdateRow(ctx, 2, next); err != nil {
		t.Fatalf("UpdateRow: %v", err)
	}

	got, err := s.ReadRow(ctx, 2)
	if err != nil {
		t.Fatalf("ReadRow: %v", err)
	}
	if got.Task != "a2" || got.Status != "Completed" || got.ElapsedDays != 7 {
		t.Errorf("row after update = %+v", got)
	}

	if err := s.UpdateRow(ctx, 9, next); !errors.Is(err, store.ErrRowNotFound) {
		t.Errorf("UpdateRow on missing row = %v, want ErrRowNotFound", err)
	}
	if _, err := s.ReadRow(ctx, 1); !errors.Is(err, store.ErrRowNotFound) {
		t.Errorf("ReadRow on header row = %v, want ErrRowNotFound", err)
	}
}

func TestDeleteRowShiftsBelow(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Seed([]models.Ticket{
		mkTicket("a", "Leasing", "Initiated"),
		mkTicket("b", "Design", "Partial"),
		mkTicket("c", "Equipment", "Stuck"),
	})

	if err := s.DeleteRow(ctx, 3); err != nil {
		t.Fatalf("DeleteRow: %v", err)
	}

	got, err := s.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Task != "a" || got[0].RowID != 2 {
		t.Errorf("row 2 = %q (RowID %d)", got[0].Task, got[0].RowID)
	}
	// "c" was at row 4; after the delete it occupies row 3.
	if got[1].Task != "c" || got[1].RowID != 3 {
		t.Errorf("row 3 = %q (RowID %d), want shifted-up \"c\" at 3", got[1].Task, got[1].RowID)
	}

	if err := s.DeleteRow(ctx, 4); !errors.Is(err, store.ErrRowNotFound) {
		t.Errorf("DeleteRow past end = %v, want ErrRowNotFound", err)
	}
}

func TestBatchUpdateColumn(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Seed([]models.Ticket{
		mkTicket("a", "Leasing", "Initiated"),
		mkTicket("b", "Design", "Partial"),
	})

	if err := s.BatchUpdateColumn(ctx, store.ElapsedColumn, []string{"4", "7"}); err != nil {
		t.Fatalf("BatchUpdateColumn: %v", err)
	}
	got, _ := s.ReadAll(ctx)
	if got[0].ElapsedDays != 4 || got[1].ElapsedDays != 7 {
		t.Errorf("elapsed after column write = %d, %d; want 4, 7", got[0].ElapsedDays, got[1].ElapsedDays)
	}

	if err := s.BatchUpdateColumn(ctx, store.ElapsedColumn, []string{"1", "2", "3"}); !errors.Is(err, store.ErrRowNotFound) {
		t.Errorf("column write past last row = %v, want ErrRowNotFound", err)
	}
}
