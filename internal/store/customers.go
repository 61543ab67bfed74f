package store

import (
	"fmt"
	"sort"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

func cloneCustomer(c domain.Customer) domain.Customer {
	if c.Tags != nil {
		c.Tags = append([]string(nil), c.Tags...)
	}
	return c
}

// Customers returns a snapshot of the whole collection.
func (s *Store) Customers() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Customer, 0, len(s.st.customers))
	for _, c := range s.st.customers {
		out = append(out, cloneCustomer(c))
	}
	return out
}

func (s *Store) CustomerByID(id int64) (domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.st.customers {
		if c.ID == id {
			return cloneCustomer(c), nil
		}
	}
	return domain.Customer{}, ErrNotFound
}

// AddCustomer assigns identity and timestamps, appends and returns the
// stored record. Validation is the caller's business, as on the admin forms.
func (s *Store) AddCustomer(c domain.Customer) domain.Customer {
	s.mu.Lock()
	now := s.nowFn()
	c.ID = s.nextID()
	if c.Status == "" {
		c.Status = domain.CustomerActive
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	s.st.customers = append(s.st.customers, c)
	s.mu.Unlock()

	s.publish(domain.EventCustomerCreated, c.ID, fmt.Sprintf("customer %s created", c.Name))
	return cloneCustomer(c)
}

// CustomerPatch carries the optional fields of a partial update.
type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Status  *string
	Tags    *[]string
	Remark  *string
}

func (s *Store) UpdateCustomer(id int64, patch CustomerPatch) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.customers {
		if s.st.customers[i].ID != id {
			continue
		}
		c := &s.st.customers[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Email != nil {
			c.Email = *patch.Email
		}
		if patch.Phone != nil {
			c.Phone = *patch.Phone
		}
		if patch.Address != nil {
			c.Address = *patch.Address
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.Tags != nil {
			c.Tags = append([]string(nil), (*patch.Tags)...)
		}
		if patch.Remark != nil {
			c.Remark = *patch.Remark
		}
		c.UpdatedAt = s.nowFn()
		return cloneCustomer(*c), nil
	}
	return domain.Customer{}, ErrNotFound
}

// DeleteCustomer removes the record. Bookings and payments referencing the
// customer are left in place; they carry denormalized names for display.
func (s *Store) DeleteCustomer(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.customers {
		if s.st.customers[i].ID == id {
			s.st.customers = append(s.st.customers[:i], s.st.customers[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// CustomerFilter mirrors the customers page controls.
type CustomerFilter struct {
	Query  string
	Status string
	Tag    string
}

func (s *Store) QueryCustomers(f CustomerFilter, opt ListOptions) ([]domain.Customer, int) {
	opt = opt.normalize()
	rows := s.Customers()

	filtered := rows[:0]
	for _, c := range rows {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.Tag != "" && !hasTag(c.Tags, f.Tag) {
			continue
		}
		if !containsFold(f.Query, c.Name, c.Email, c.Phone) {
			continue
		}
		filtered = append(filtered, c)
	}

	desc := opt.Order == "DESC"
	sort.SliceStable(filtered, func(i, j int) bool {
		if desc {
			i, j = j, i
		}
		a, b := filtered[i], filtered[j]
		switch opt.Sort {
		case "name":
			return a.Name < b.Name
		case "total_spent":
			return a.TotalSpent < b.TotalSpent
		case "created_at":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.ID < b.ID
		}
	})

	return paginate(filtered, opt), len(filtered)
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
