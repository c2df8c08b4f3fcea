package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/arbazmubasher1/TicketDashboard/internal/auth"
	"github.com/arbazmubasher1/TicketDashboard/internal/config"
	"github.com/arbazmubasher1/TicketDashboard/internal/models"
	"github.com/arbazmubasher1/TicketDashboard/internal/router"
	"github.com/arbazmubasher1/TicketDashboard/internal/service"
	"github.com/arbazmubasher1/TicketDashboard/internal/store/memory"
)

const testUsers = `users:
  - key: admin@example.com
    password: admin123
    role: admin
  - key: leasing
    password: L123
    role: user
    domain: Leasing
`

func newTestServer(t *testing.T, st *memory.Store) *httptest.Server {
	t.Helper()

	usersPath := filepath.Join(t.TempDir(), "users.yaml")
	if err := os.WriteFile(usersPath, []byte(testUsers), 0o600); err != nil {
		t.Fatalf("write users file: %v", err)
	}
	table, err := auth.LoadTable(usersPath)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}

	cfg := config.Config{
		Env:           "test",
		Origin:        "http://localhost",
		SessionSecret: "test-secret",
	}
	srv := httptest.NewServer(router.New(zerolog.Nop(), table, service.NewTicketService(st), cfg))
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, key, password string) *http.Cookie {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"key": key, "password": password})
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	t.Fatal("login response carries no session cookie")
	return nil
}

func doJSON(t *testing.T, method, url string, cookie *http.Cookie, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func TestLeasingUserEndToEnd(t *testing.T) {
	st := memory.New()
	st.Seed([]models.Ticket{{
		Task:      "Mockups",
		Domain:    "Design",
		CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		Deadline:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Status:    "Partial",
	}})
	srv := newTestServer(t, st)

	// Unauthenticated list is rejected.
	resp, err := http.Get(srv.URL + "/api/tickets")
	if err != nil {
		t.Fatalf("GET tickets: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated list status = %d, want 401", resp.StatusCode)
	}

	cookie := login(t, srv, "leasing", "L123")

	// Add a ticket, asking for a foreign domain; the bound domain wins.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/tickets", cookie, map[string]string{
		"task":     "Fix lease",
		"domain":   "Design",
		"deadline": "2024-06-01",
		"status":   "Initiated",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created models.Ticket
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	resp.Body.Close()
	if created.Domain != "Leasing" {
		t.Fatalf("created domain = %q, want Leasing regardless of the request", created.Domain)
	}

	// List: both tickets come back, annotated with the caller's permissions.
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/tickets", cookie, nil)
	var listed struct {
		Items []struct {
			models.Ticket
			CanModify bool `json:"canModify"`
		} `json:"items"`
		Total int `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("X-Total-Count"); got != "2" {
		t.Errorf("X-Total-Count = %q, want 2", got)
	}
	if listed.Total != 2 || len(listed.Items) != 2 {
		t.Fatalf("list = %+v, want 2 tickets", listed)
	}
	for _, item := range listed.Items {
		switch item.Task {
		case "Mockups":
			if item.CanModify {
				t.Error("leasing user must not be able to modify a Design ticket")
			}
		case "Fix lease":
			if !item.CanModify {
				t.Error("leasing user should be able to modify their own ticket")
			}
			if item.RowID != 3 {
				t.Errorf("appended ticket RowID = %d, want 3", item.RowID)
			}
		default:
			t.Errorf("unexpected ticket %q", item.Task)
		}
	}

	// Mutating the Design ticket (row 2) is forbidden.
	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/tickets/2", cookie, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("cross-domain delete status = %d, want 403", resp.StatusCode)
	}

	// Deleting their own works; the snapshot afterwards no longer has it.
	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/tickets/3", cookie, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("own delete status = %d, want 204", resp.StatusCode)
	}
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/tickets", cookie, nil)
	listed.Items = nil
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list after delete: %v", err)
	}
	resp.Body.Close()
	if listed.Total != 1 || listed.Items[0].Task != "Mockups" {
		t.Fatalf("list after delete = %+v", listed)
	}
}

func TestFilterParams(t *testing.T) {
	st := memory.New()
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	deadline := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	st.Seed([]models.Ticket{
		{Task: "a", Domain: "Design", CreatedAt: now, Deadline: deadline, Status: "Completed"},
		{Task: "b", Domain: "Design", CreatedAt: now, Deadline: deadline, Status: "Stuck"},
		{Task: "c", Domain: "Leasing", CreatedAt: now, Deadline: deadline, Status: "Completed"},
	})
	srv := newTestServer(t, st)
	cookie := login(t, srv, "admin@example.com", "admin123")

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/tickets?status=Completed&domain=Design", cookie, nil)
	var listed struct {
		Items []models.Ticket `json:"items"`
		Total int             `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	resp.Body.Close()
	if listed.Total != 1 || listed.Items[0].Task != "a" {
		t.Fatalf("filtered list = %+v, want only \"a\"", listed)
	}
}

func TestReportsSummary(t *testing.T) {
	st := memory.New()
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	deadline := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	st.Seed([]models.Ticket{
		{Task: "a", Domain: "Design", CreatedAt: now, Deadline: deadline, Status: "Completed"},
		{Task: "b", Domain: "Leasing", CreatedAt: now, Deadline: deadline, Status: "Completed"},
		{Task: "c", Domain: "Leasing", CreatedAt: now, Deadline: deadline, Status: "Stuck"},
	})
	srv := newTestServer(t, st)
	cookie := login(t, srv, "leasing", "L123")

	// The summary covers all domains, not just the caller's.
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/reports/summary", cookie, nil)
	var sum struct {
		Total    int            `json:"total"`
		ByStatus map[string]int `json:"byStatus"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sum); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	resp.Body.Close()
	if sum.Total != 3 || sum.ByStatus["Completed"] != 2 || sum.ByStatus["Stuck"] != 1 {
		t.Fatalf("summary = %+v", sum)
	}
}
