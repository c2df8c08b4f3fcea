// Package auth loads the static identity table and checks credentials
// against it. There is no lockout and no backoff; a bad login is just an
// inline error.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/arbazmubasher1/TicketDashboard/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type userEntry struct {
	Key      string `yaml:"key"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Domain   string `yaml:"domain"`
}

type usersFile struct {
	Users []userEntry `yaml:"users"`
}

// Table is the credential table the dashboard authenticates against: login
// key (email or username) → password, role, bound domain.
type Table struct {
	users map[string]userEntry
}

func LoadTable(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("auth: read users file: %w", err)
	}
	var f usersFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("auth: parse users file: %w", err)
	}
	if len(f.Users) == 0 {
		return nil, errors.New("auth: users file has no entries")
	}

	users := make(map[string]userEntry, len(f.Users))
	for _, u := range f.Users {
		if u.Role != models.RoleAdmin {
			u.Role = models.RoleUser
		}
		users[normalizeKey(u.Key)] = u
	}
	return &Table{users: users}, nil
}

// Authenticate checks key+password and returns the identity for the session.
// Keys match case-insensitively, as the login form lowercases its input.
func (t *Table) Authenticate(key, password string) (models.Identity, error) {
	u, ok := t.users[normalizeKey(key)]
	if !ok || !checkPassword(u.Password, password) {
		return models.Identity{}, ErrInvalidCredentials
	}
	return models.Identity{Key: normalizeKey(u.Key), Role: u.Role, Domain: u.Domain}, nil
}

// checkPassword compares in constant time. Entries carrying a bcrypt hash
// (the "$2" prefix) are verified as hashes, so the table can be upgraded
// entry by entry without a code change.
func checkPassword(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
