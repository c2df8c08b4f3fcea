package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arbazmubasher1/TicketDashboard/internal/models"
	"github.com/arbazmubasher1/TicketDashboard/internal/policy"
	"github.com/arbazmubasher1/TicketDashboard/internal/repository"
	"github.com/arbazmubasher1/TicketDashboard/internal/store"
)

var (
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

// TicketService runs the load cycle and the three mutations against the
// backing sheet. Each mutation is a single store call; a failed call aborts
// the operation and surfaces to the caller, who decides whether to reload.
type TicketService struct {
	store store.Store
	sync  *repository.Synchronizer
	now   func() time.Time
}

func NewTicketService(st store.Store) *TicketService {
	return &TicketService{
		store: st,
		sync:  &repository.Synchronizer{Store: st, Now: time.Now},
		now:   time.Now,
	}
}

// Load reads the full sheet and runs the elapsed-days sync before anything
// is filtered or rendered. Every interactive cycle starts here.
func (s *TicketService) Load(ctx context.Context) (*repository.Snapshot, error) {
	snap, err := repository.Load(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if err := s.sync.Sync(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

type AddInput struct {
	Task     string
	Domain   string
	Deadline time.Time
	Status   string
	Comments string
}

// Add appends a new ticket. The domain is resolved through the access
// policy: a domain-bound user's choice is pinned to their own domain. The
// elapsed-days cell starts empty and is filled by the next load's sync pass.
func (s *TicketService) Add(ctx context.Context, id models.Identity, in AddInput) (models.Ticket, error) {
	task := strings.TrimSpace(in.Task)
	if task == "" {
		return models.Ticket{}, fmt.Errorf("%w: task is required", ErrInvalidInput)
	}
	if in.Deadline.IsZero() {
		return models.Ticket{}, fmt.Errorf("%w: deadline is required", ErrInvalidInput)
	}
	if !models.ValidStatus(in.Status) {
		return models.Ticket{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}
	domain, err := policy.CreationDomain(id, in.Domain)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	t := models.Ticket{
		Task:      task,
		Domain:    domain,
		CreatedAt: s.now(),
		Deadline:  in.Deadline,
		Status:    in.Status,
		Comments:  strings.TrimSpace(in.Comments),
	}
	if err := s.store.Append(ctx, t); err != nil {
		return models.Ticket{}, err
	}
	return t, nil
}

type UpdateInput struct {
	Task     string
	Domain   string
	Deadline time.Time
	Status   string
	Comments string
}

// Update overwrites one row. It re-reads the row immediately before writing
// so the stored createdAt and the persisted elapsed-days value are carried
// over unchanged, then issues one whole-row write. The permission check runs
// against the ticket as stored, not as submitted.
func (s *TicketService) Update(ctx context.Context, id models.Identity, rowID int, in UpdateInput) (models.Ticket, error) {
	cur, err := s.store.ReadRow(ctx, rowID)
	if err != nil {
		return models.Ticket{}, err
	}
	if !policy.CanModify(id, cur) {
		return models.Ticket{}, ErrForbidden
	}

	task := strings.TrimSpace(in.Task)
	if task == "" {
		return models.Ticket{}, fmt.Errorf("%w: task is required", ErrInvalidInput)
	}
	if in.Deadline.IsZero() {
		return models.Ticket{}, fmt.Errorf("%w: deadline is required", ErrInvalidInput)
	}
	if !models.ValidStatus(in.Status) {
		return models.Ticket{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}

	// Only admins may move a ticket between domains.
	domain := cur.Domain
	if id.Role == models.RoleAdmin {
		if !models.ValidDomain(in.Domain) {
			return models.Ticket{}, fmt.Errorf("%w: unknown domain %q", ErrInvalidInput, in.Domain)
		}
		domain = in.Domain
	}

	next := models.Ticket{
		RowID:       rowID,
		Task:        task,
		Domain:      domain,
		CreatedAt:   cur.CreatedAt,
		Deadline:    in.Deadline,
		Status:      in.Status,
		ElapsedDays: cur.ElapsedDays,
		Comments:    strings.TrimSpace(in.Comments),
	}
	if err := s.store.UpdateRow(ctx, rowID, next); err != nil {
		return models.Ticket{}, err
	}
	return next, nil
}

// Delete removes one physical row. Every RowID below it shifts up, so the
// caller must discard its snapshot and reload afterwards.
func (s *TicketService) Delete(ctx context.Context, id models.Identity, rowID int) error {
	cur, err := s.store.ReadRow(ctx, rowID)
	if err != nil {
		return err
	}
	if !policy.CanModify(id, cur) {
		return ErrForbidden
	}
	return s.store.DeleteRow(ctx, rowID)
}
