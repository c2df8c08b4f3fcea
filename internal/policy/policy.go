// Package policy decides what an authenticated identity may do to a ticket.
// Decisions are made per ticket at request time and never cached.
package policy

import (
	"errors"

	"github.com/arbazmubasher1/TicketDashboard/internal/models"
)

var ErrDomainNotAllowed = errors.New("domain not allowed")

// CanModify reports whether id may edit or delete t. Admins may touch every
// ticket; a domain-bound user only tickets in their own domain.
func CanModify(id models.Identity, t models.Ticket) bool {
	if id.Role == models.RoleAdmin {
		return true
	}
	return id.Role == models.RoleUser && id.Domain != "" && t.Domain == id.Domain
}

// CreationDomain resolves the domain for a new ticket. A domain-bound user is
// pinned to their own domain no matter what was requested; an admin picks
// freely among the known domains.
func CreationDomain(id models.Identity, requested string) (string, error) {
	if id.Role != models.RoleAdmin {
		if id.Domain == "" {
			return "", ErrDomainNotAllowed
		}
		return id.Domain, nil
	}
	if !models.ValidDomain(requested) {
		return "", ErrDomainNotAllowed
	}
	return requested, nil
}
