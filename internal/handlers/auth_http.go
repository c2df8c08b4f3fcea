package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/arbazmubasher1/TicketDashboard/internal/auth"
	"github.com/arbazmubasher1/TicketDashboard/internal/middleware"
	"github.com/arbazmubasher1/TicketDashboard/internal/utils"
)

const sessionTTL = 24 * time.Hour

type AuthHTTP struct {
	table *auth.Table
}

func NewAuthHTTP(t *auth.Table) *AuthHTTP { return &AuthHTTP{table: t} }

// POST /api/auth/login
func (h *AuthHTTP) Login(secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Key      string `json:"key"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		id, err := h.table.Authenticate(in.Key, in.Password)
		if err != nil {
			// Inline failure, no lockout, no backoff.
			utils.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		token, err := utils.SignJWT(secret, id, sessionTTL)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not start session")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			// Set true behind HTTPS in prod
			Secure:  false,
			Expires: time.Now().Add(sessionTTL),
		})
		utils.JSON(w, http.StatusOK, id)
	}
}

// POST /api/auth/logout
// Drops the session cookie; no other state survives a session, so this is
// the whole logout.
func (h *AuthHTTP) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,              // expire immediately
			Expires:  time.Unix(0, 0), // for older browsers
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /api/auth/me
func (h *AuthHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.IdentityFrom(r.Context())
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		utils.JSON(w, http.StatusOK, id)
	}
}
