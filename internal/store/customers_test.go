package store

import (
	"testing"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

func TestAddCustomerDefaults(t *testing.T) {
	s := newSeededStore(t)
	before := len(s.Customers())

	c := s.AddCustomer(domain.Customer{Name: "New Client"})
	if c.ID == 0 {
		t.Fatalf("no id assigned")
	}
	if c.Status != domain.CustomerActive {
		t.Fatalf("status = %q, want active", c.Status)
	}
	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set")
	}
	if got := len(s.Customers()); got != before+1 {
		t.Fatalf("customers = %d, want %d", got, before+1)
	}
}

func TestUpdateCustomerPartialPatch(t *testing.T) {
	s := newSeededStore(t)
	phone := "+8801999999999"
	tags := []string{"vip"}

	c, err := s.UpdateCustomer(1002, CustomerPatch{Phone: &phone, Tags: &tags})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if c.Phone != phone {
		t.Fatalf("phone = %q", c.Phone)
	}
	if len(c.Tags) != 1 || c.Tags[0] != "vip" {
		t.Fatalf("tags = %v", c.Tags)
	}
	// untouched fields survive
	if c.Name != "Sadia Akter" || c.Email != "sadia@example.com" {
		t.Fatalf("unrelated fields changed: %+v", c)
	}

	if _, err := s.UpdateCustomer(999999, CustomerPatch{Phone: &phone}); err != ErrNotFound {
		t.Fatalf("missing customer err = %v, want ErrNotFound", err)
	}
}

func TestCustomerSnapshotsAreCopies(t *testing.T) {
	s := newSeededStore(t)
	c, _ := s.CustomerByID(1001)
	c.Tags[0] = "mutated"

	again, _ := s.CustomerByID(1001)
	if again.Tags[0] != "vip" {
		t.Fatalf("snapshot mutation leaked into store: %v", again.Tags)
	}
}

func TestDeleteCustomerKeepsBookings(t *testing.T) {
	s := newSeededStore(t)
	if err := s.DeleteCustomer(1001); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.CustomerByID(1001); err != ErrNotFound {
		t.Fatalf("lookup err = %v, want ErrNotFound", err)
	}
	// the customer's bookings stay, renderable via denormalized names
	b, err := s.BookingByID(3001)
	if err != nil {
		t.Fatalf("booking gone: %v", err)
	}
	if b.CustomerName != "Rahim Uddin" {
		t.Fatalf("denormalized name lost: %q", b.CustomerName)
	}
}

func TestQueryCustomersFilters(t *testing.T) {
	s := newSeededStore(t)

	_, total := s.QueryCustomers(CustomerFilter{Status: domain.CustomerActive}, ListOptions{})
	if total != 2 {
		t.Fatalf("active = %d, want 2", total)
	}
	_, total = s.QueryCustomers(CustomerFilter{Tag: "corporate"}, ListOptions{})
	if total != 1 {
		t.Fatalf("corporate = %d, want 1", total)
	}
	_, total = s.QueryCustomers(CustomerFilter{Query: "TANVIR"}, ListOptions{})
	if total != 1 {
		t.Fatalf("case-insensitive query = %d, want 1", total)
	}

	rows, _ := s.QueryCustomers(CustomerFilter{}, ListOptions{Sort: "total_spent", Order: "DESC"})
	if rows[0].ID != 1001 {
		t.Fatalf("top spender = %d, want 1001", rows[0].ID)
	}
}
