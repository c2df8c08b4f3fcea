package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arbazmubasher1/TicketDashboard/internal/config"
	"github.com/arbazmubasher1/TicketDashboard/internal/models"
	"github.com/arbazmubasher1/TicketDashboard/internal/utils"
)

type ctxKey string

const (
	CtxUserKey ctxKey = "key"
	CtxRole    ctxKey = "role"
	CtxDomain  ctxKey = "domain"
)

func WithAuth(log zerolog.Logger, cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Read JWT from cookie "session" or Authorization: Bearer
			var tok string
			if c, err := r.Cookie("session"); err == nil {
				tok = c.Value
			} else if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tok = strings.TrimPrefix(h, "Bearer ")
			}

			if tok == "" {
				next.ServeHTTP(w, r) // unauthenticated; handlers can decide
				return
			}

			claims, err := utils.ParseJWT(cfg.SessionSecret, tok)
			if err != nil {
				// Clear broken/expired cookie so it stops being sent.
				http.SetCookie(w, &http.Cookie{
					Name:     "session",
					Value:    "",
					Path:     "/",
					HttpOnly: true,
					MaxAge:   -1,
				})
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserKey, claims.Key)
			ctx = context.WithValue(ctx, CtxRole, claims.Role)
			ctx = context.WithValue(ctx, CtxDomain, claims.Domain)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom rebuilds the session identity placed in the context by
// WithAuth. ok is false for unauthenticated requests.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	key, ok := utils.GetString(ctx, CtxUserKey)
	if !ok || key == "" {
		return models.Identity{}, false
	}
	role, _ := utils.GetString(ctx, CtxRole)
	domain, _ := utils.GetString(ctx, CtxDomain)
	return models.Identity{Key: key, Role: role, Domain: domain}, true
}
