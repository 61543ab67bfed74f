package store

import (
	"testing"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

func TestAddServiceRequestDefaults(t *testing.T) {
	s := newSeededStore(t)
	notifsBefore := len(s.Notifications(false))

	r := s.AddServiceRequest(domain.ServiceRequest{
		Type: domain.RequestTypeVisa,
		Name: "Test Person",
	})
	if r.Status != domain.RequestNew {
		t.Fatalf("status = %q, want new", r.Status)
	}
	if r.Priority != domain.PriorityMedium {
		t.Fatalf("priority = %q, want medium", r.Priority)
	}
	if got := len(s.Notifications(false)); got != notifsBefore+1 {
		t.Fatalf("no lead notification appended")
	}
	if s.Notifications(false)[0].Type != domain.NotifyLead {
		t.Fatalf("notification type = %q, want lead", s.Notifications(false)[0].Type)
	}
}

func TestRequestStatusWorkflow(t *testing.T) {
	s := newSeededStore(t)

	// new -> in-progress -> pending-docs -> in-progress -> confirmed -> completed
	steps := []string{
		domain.RequestInProgress,
		domain.RequestPendingDocs,
		domain.RequestInProgress,
		domain.RequestConfirmed,
		domain.RequestCompleted,
	}
	for _, next := range steps {
		if _, err := s.SetRequestStatus(4002, next); err != nil {
			t.Fatalf("move to %s: %v", next, err)
		}
	}

	// completed is terminal
	if _, err := s.SetRequestStatus(4002, domain.RequestCancelled); err != ErrInvalidTransition {
		t.Fatalf("completed->cancelled err = %v, want ErrInvalidTransition", err)
	}
}

func TestRequestStatusRejectsJumps(t *testing.T) {
	s := newSeededStore(t)

	// new cannot go straight to confirmed or completed
	if _, err := s.SetRequestStatus(4002, domain.RequestConfirmed); err != ErrInvalidTransition {
		t.Fatalf("new->confirmed err = %v", err)
	}
	if _, err := s.SetRequestStatus(4002, domain.RequestCompleted); err != ErrInvalidTransition {
		t.Fatalf("new->completed err = %v", err)
	}
	// cancelled is terminal
	if _, err := s.SetRequestStatus(4004, domain.RequestInProgress); err != ErrInvalidTransition {
		t.Fatalf("cancelled->in-progress err = %v", err)
	}
	if _, err := s.SetRequestStatus(999999, domain.RequestInProgress); err != ErrNotFound {
		t.Fatalf("missing request err = %v, want ErrNotFound", err)
	}
}

func TestQueryServiceRequestsPrioritySort(t *testing.T) {
	s := newSeededStore(t)
	rows, total := s.QueryServiceRequests(RequestFilter{}, ListOptions{Sort: "priority", Order: "DESC"})
	if total != 4 {
		t.Fatalf("total = %d, want 4", total)
	}
	if rows[0].Priority != domain.PriorityHigh {
		t.Fatalf("first priority = %q, want high", rows[0].Priority)
	}

	_, total = s.QueryServiceRequests(RequestFilter{Type: domain.RequestTypeHajj}, ListOptions{})
	if total != 1 {
		t.Fatalf("hajj = %d, want 1", total)
	}
	_, total = s.QueryServiceRequests(RequestFilter{Status: domain.RequestNew}, ListOptions{})
	if total != 1 {
		t.Fatalf("new = %d, want 1", total)
	}
	_, total = s.QueryServiceRequests(RequestFilter{Query: "northstar"}, ListOptions{})
	if total != 1 {
		t.Fatalf("query northstar = %d, want 1", total)
	}
}
