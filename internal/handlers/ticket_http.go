package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arbazmubasher1/TicketDashboard/internal/middleware"
	"github.com/arbazmubasher1/TicketDashboard/internal/models"
	"github.com/arbazmubasher1/TicketDashboard/internal/policy"
	"github.com/arbazmubasher1/TicketDashboard/internal/service"
	"github.com/arbazmubasher1/TicketDashboard/internal/store"
	"github.com/arbazmubasher1/TicketDashboard/internal/utils"
)

const dateLayout = "2006-01-02"

// TicketHTTP wires the ticket endpoints to the service layer.
type TicketHTTP struct {
	svc *service.TicketService
}

func NewTicketHTTP(svc *service.TicketService) *TicketHTTP {
	return &TicketHTTP{svc: svc}
}

// ticketView annotates a ticket with whether the caller may mutate it, so
// the frontend can show or hide the edit/delete controls per card.
type ticketView struct {
	models.Ticket
	CanModify bool `json:"canModify"`
}

// -----------------------------------------------------------------------------
// GET /api/tickets?status=a,b&domain=x,y
// Runs the full load cycle (read + elapsed sync), then filters. Empty filter
// params mean "select all".
// -----------------------------------------------------------------------------
func (h *TicketHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := middleware.IdentityFrom(r.Context())

		snap, err := h.svc.Load(r.Context())
		if err != nil {
			writeStoreErr(w, err)
			return
		}

		qv := r.URL.Query()
		items := snap.Filter(splitCSV(qv.Get("status")), splitCSV(qv.Get("domain")))

		views := make([]ticketView, len(items))
		for i, t := range items {
			views[i] = ticketView{Ticket: t, CanModify: policy.CanModify(id, t)}
		}
		w.Header().Set("X-Total-Count", strconv.Itoa(len(views)))
		utils.JSON(w, http.StatusOK, map[string]any{"items": views, "total": len(views)})
	}
}

// -----------------------------------------------------------------------------
// POST /api/tickets
// -----------------------------------------------------------------------------
func (h *TicketHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		Task     string `json:"task"`
		Domain   string `json:"domain"`
		Deadline string `json:"deadline"` // YYYY-MM-DD
		Status   string `json:"status"`
		Comments string `json:"comments"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := middleware.IdentityFrom(r.Context())

		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		deadline, err := time.Parse(dateLayout, strings.TrimSpace(in.Deadline))
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "deadline must be YYYY-MM-DD")
			return
		}

		t, err := h.svc.Add(r.Context(), id, service.AddInput{
			Task:     in.Task,
			Domain:   in.Domain,
			Deadline: deadline,
			Status:   in.Status,
			Comments: in.Comments,
		})
		if err != nil {
			writeServiceErr(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, t)
	}
}

// -----------------------------------------------------------------------------
// PUT /api/tickets/{rowId}
// Whole-record replace, as the edit form submits every editable field. The
// rowId must come from a snapshot the caller currently holds.
// -----------------------------------------------------------------------------
func (h *TicketHTTP) Update() http.HandlerFunc {
	type inDTO struct {
		Task     string `json:"task"`
		Domain   string `json:"domain"`
		Deadline string `json:"deadline"`
		Status   string `json:"status"`
		Comments string `json:"comments"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := middleware.IdentityFrom(r.Context())

		rowID, err := rowIDParam(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		deadline, err := time.Parse(dateLayout, strings.TrimSpace(in.Deadline))
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "deadline must be YYYY-MM-DD")
			return
		}

		t, err := h.svc.Update(r.Context(), id, rowID, service.UpdateInput{
			Task:     in.Task,
			Domain:   in.Domain,
			Deadline: deadline,
			Status:   in.Status,
			Comments: in.Comments,
		})
		if err != nil {
			writeServiceErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, t)
	}
}

// -----------------------------------------------------------------------------
// DELETE /api/tickets/{rowId}
// Rows below the deleted one shift up; the client must reload and discard
// every rowId it holds.
// -----------------------------------------------------------------------------
func (h *TicketHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := middleware.IdentityFrom(r.Context())

		rowID, err := rowIDParam(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := h.svc.Delete(r.Context(), id, rowID); err != nil {
			writeServiceErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func rowIDParam(r *http.Request) (int, error) {
	rowID, err := strconv.Atoi(chi.URLParam(r, "rowId"))
	if err != nil || rowID < store.FirstDataRow {
		return 0, errors.New("invalid rowId")
	}
	return rowID, nil
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func writeServiceErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		utils.Error(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrInvalidInput):
		utils.Error(w, http.StatusBadRequest, err.Error())
	default:
		writeStoreErr(w, err)
	}
}

func writeStoreErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrRowNotFound):
		utils.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrUnavailable):
		utils.Error(w, http.StatusBadGateway, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
