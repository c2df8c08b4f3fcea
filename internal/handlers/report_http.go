package handlers

import (
	"net/http"

	"github.com/arbazmubasher1/TicketDashboard/internal/service"
	"github.com/arbazmubasher1/TicketDashboard/internal/utils"
)

type ReportsHTTP struct {
	svc *service.TicketService
}

func NewReportsHTTP(svc *service.TicketService) *ReportsHTTP { return &ReportsHTTP{svc: svc} }

// GET /api/reports/summary
// Status counts over the full set, regardless of any filters the client has
// active in its ticket list.
func (h *ReportsHTTP) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := h.svc.Load(r.Context())
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"total":    len(snap.Tickets),
			"byStatus": snap.CountByStatus(),
		})
	}
}

// GET /api/reports/deadlines
// Feeds the deadlines-by-status bar chart.
func (h *ReportsHTTP) Deadlines() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := h.svc.Load(r.Context())
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"buckets": snap.DeadlineHistogram()})
	}
}
