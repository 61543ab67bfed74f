package store

import (
	"fmt"
	"sort"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

// ServiceRequests returns a snapshot of the whole collection.
func (s *Store) ServiceRequests() []domain.ServiceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ServiceRequest, len(s.st.requests))
	copy(out, s.st.requests)
	return out
}

func (s *Store) ServiceRequestByID(id int64) (domain.ServiceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.st.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.ServiceRequest{}, ErrNotFound
}

// AddServiceRequest stores a new inquiry and appends a lead notification.
// Status defaults to new, priority to medium.
func (s *Store) AddServiceRequest(r domain.ServiceRequest) domain.ServiceRequest {
	s.mu.Lock()
	now := s.nowFn()
	r.ID = s.nextID()
	if r.Status == "" {
		r.Status = domain.RequestNew
	}
	if r.Priority == "" {
		r.Priority = domain.PriorityMedium
	}
	r.CreatedAt = now
	r.UpdatedAt = now
	s.st.requests = append(s.st.requests, r)
	s.appendNotificationLocked(domain.NotifyLead, "New inquiry",
		fmt.Sprintf("%s inquiry from %s", r.Type, r.Name))
	s.mu.Unlock()

	s.publish(domain.EventRequestCreated, r.ID, fmt.Sprintf("%s request from %s", r.Type, r.Name))
	return r
}

// RequestPatch carries the optional fields of a partial update. Status moves
// only through SetRequestStatus.
type RequestPatch struct {
	Name       *string
	Email      *string
	Phone      *string
	Country    *string
	Details    *string
	Priority   *string
	AssignedTo *string
}

func (s *Store) UpdateServiceRequest(id int64, patch RequestPatch) (domain.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.requests {
		if s.st.requests[i].ID != id {
			continue
		}
		r := &s.st.requests[i]
		if patch.Name != nil {
			r.Name = *patch.Name
		}
		if patch.Email != nil {
			r.Email = *patch.Email
		}
		if patch.Phone != nil {
			r.Phone = *patch.Phone
		}
		if patch.Country != nil {
			r.Country = *patch.Country
		}
		if patch.Details != nil {
			r.Details = *patch.Details
		}
		if patch.Priority != nil {
			r.Priority = *patch.Priority
		}
		if patch.AssignedTo != nil {
			r.AssignedTo = *patch.AssignedTo
		}
		r.UpdatedAt = s.nowFn()
		return *r, nil
	}
	return domain.ServiceRequest{}, ErrNotFound
}

// SetRequestStatus moves a request through the transition table.
func (s *Store) SetRequestStatus(id int64, status string) (domain.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.requests {
		if s.st.requests[i].ID != id {
			continue
		}
		if !domain.CanTransitRequest(s.st.requests[i].Status, status) {
			return domain.ServiceRequest{}, ErrInvalidTransition
		}
		s.st.requests[i].Status = status
		s.st.requests[i].UpdatedAt = s.nowFn()
		return s.st.requests[i], nil
	}
	return domain.ServiceRequest{}, ErrNotFound
}

func (s *Store) DeleteServiceRequest(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.requests {
		if s.st.requests[i].ID == id {
			s.st.requests = append(s.st.requests[:i], s.st.requests[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// RequestFilter mirrors the service request page controls.
type RequestFilter struct {
	Query    string
	Type     string
	Status   string
	Priority string
}

func (s *Store) QueryServiceRequests(f RequestFilter, opt ListOptions) ([]domain.ServiceRequest, int) {
	opt = opt.normalize()
	rows := s.ServiceRequests()

	filtered := rows[:0]
	for _, r := range rows {
		if f.Type != "" && r.Type != f.Type {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.Priority != "" && r.Priority != f.Priority {
			continue
		}
		if !containsFold(f.Query, r.Name, r.Email, r.Phone, r.Country) {
			continue
		}
		filtered = append(filtered, r)
	}

	desc := opt.Order == "DESC"
	sort.SliceStable(filtered, func(i, j int) bool {
		if desc {
			i, j = j, i
		}
		a, b := filtered[i], filtered[j]
		switch opt.Sort {
		case "priority":
			return priorityRank(a.Priority) < priorityRank(b.Priority)
		case "created_at":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.ID < b.ID
		}
	})

	return paginate(filtered, opt), len(filtered)
}

func priorityRank(p string) int {
	switch p {
	case domain.PriorityHigh:
		return 2
	case domain.PriorityMedium:
		return 1
	default:
		return 0
	}
}
