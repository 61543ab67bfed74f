package store

import (
	"fmt"
	"sort"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

// Bookings returns a snapshot of the whole collection.
func (s *Store) Bookings() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Booking, len(s.st.bookings))
	copy(out, s.st.bookings)
	return out
}

func (s *Store) BookingByID(id int64) (domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.st.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Booking{}, ErrNotFound
}

// AddBooking stores a new booking and applies its side effects: the owning
// customer's running totals, the package sales counter and a booking
// notification. Status defaults to pending, payment status to unpaid.
func (s *Store) AddBooking(b domain.Booking) domain.Booking {
	s.mu.Lock()
	now := s.nowFn()
	b.ID = s.nextID()
	if b.Ref == "" {
		b.Ref = newRef()
	}
	if b.Status == "" {
		b.Status = domain.BookingPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = domain.PayStatusUnpaid
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	s.st.bookings = append(s.st.bookings, b)

	if b.CustomerID != 0 {
		for i := range s.st.customers {
			if s.st.customers[i].ID == b.CustomerID {
				s.st.customers[i].TotalBookings++
				s.st.customers[i].TotalSpent += b.Amount
				s.st.customers[i].UpdatedAt = now
				break
			}
		}
	}
	if b.PackageID != 0 {
		for i := range s.st.packages {
			if s.st.packages[i].ID == b.PackageID {
				s.st.packages[i].Bookings++
				s.st.packages[i].UpdatedAt = now
				break
			}
		}
	}
	s.appendNotificationLocked(domain.NotifyBooking, "New booking",
		fmt.Sprintf("%s booking %s for %s", b.Type, b.Ref, b.CustomerName))
	s.mu.Unlock()

	s.publish(domain.EventBookingCreated, b.ID, fmt.Sprintf("booking %s created (%s)", b.Ref, b.Type))
	return b
}

// BookingPatch carries the optional fields of a partial update. Status is
// deliberately absent: status moves only through SetBookingStatus.
type BookingPatch struct {
	Type          *string
	CustomerName  *string
	CustomerEmail *string
	Destination   *string
	TravelDate    *string
	Amount        *float64
	PaymentStatus *string
	Remark        *string
}

func (s *Store) UpdateBooking(id int64, patch BookingPatch) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.bookings {
		if s.st.bookings[i].ID != id {
			continue
		}
		b := &s.st.bookings[i]
		if patch.Type != nil {
			b.Type = *patch.Type
		}
		if patch.CustomerName != nil {
			b.CustomerName = *patch.CustomerName
		}
		if patch.CustomerEmail != nil {
			b.CustomerEmail = *patch.CustomerEmail
		}
		if patch.Destination != nil {
			b.Destination = *patch.Destination
		}
		if patch.TravelDate != nil {
			b.TravelDate = *patch.TravelDate
		}
		if patch.Amount != nil {
			b.Amount = *patch.Amount
		}
		if patch.PaymentStatus != nil {
			b.PaymentStatus = *patch.PaymentStatus
		}
		if patch.Remark != nil {
			b.Remark = *patch.Remark
		}
		b.UpdatedAt = s.nowFn()
		return *b, nil
	}
	return domain.Booking{}, ErrNotFound
}

// SetBookingStatus moves a booking through the transition table. Writing an
// arbitrary status is not possible; invalid moves return ErrInvalidTransition.
func (s *Store) SetBookingStatus(id int64, status string) (domain.Booking, error) {
	s.mu.Lock()
	var updated domain.Booking
	found := false
	for i := range s.st.bookings {
		if s.st.bookings[i].ID != id {
			continue
		}
		if !domain.CanTransitBooking(s.st.bookings[i].Status, status) {
			s.mu.Unlock()
			return domain.Booking{}, ErrInvalidTransition
		}
		s.st.bookings[i].Status = status
		s.st.bookings[i].UpdatedAt = s.nowFn()
		updated = s.st.bookings[i]
		found = true
		break
	}
	s.mu.Unlock()
	if !found {
		return domain.Booking{}, ErrNotFound
	}
	s.publish(domain.EventBookingStatus, updated.ID,
		fmt.Sprintf("booking %s moved to %s", updated.Ref, updated.Status))
	return updated, nil
}

// DeleteBooking removes the record. Customer totals and package counters are
// not reconciled, and payments keep their booking id.
func (s *Store) DeleteBooking(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.bookings {
		if s.st.bookings[i].ID == id {
			s.st.bookings = append(s.st.bookings[:i], s.st.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// BookingFilter mirrors the bookings page controls.
type BookingFilter struct {
	Query         string
	Type          string
	Status        string
	PaymentStatus string
	CustomerID    int64
}

func (s *Store) QueryBookings(f BookingFilter, opt ListOptions) ([]domain.Booking, int) {
	opt = opt.normalize()
	rows := s.Bookings()

	filtered := rows[:0]
	for _, b := range rows {
		if f.Type != "" && b.Type != f.Type {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.PaymentStatus != "" && b.PaymentStatus != f.PaymentStatus {
			continue
		}
		if f.CustomerID != 0 && b.CustomerID != f.CustomerID {
			continue
		}
		if !containsFold(f.Query, b.Ref, b.CustomerName, b.CustomerEmail, b.Destination) {
			continue
		}
		filtered = append(filtered, b)
	}

	desc := opt.Order == "DESC"
	sort.SliceStable(filtered, func(i, j int) bool {
		if desc {
			i, j = j, i
		}
		a, b := filtered[i], filtered[j]
		switch opt.Sort {
		case "amount":
			return a.Amount < b.Amount
		case "created_at":
			return a.CreatedAt.Before(b.CreatedAt)
		case "travel_date":
			return a.TravelDate < b.TravelDate
		default:
			return a.ID < b.ID
		}
	})

	return paginate(filtered, opt), len(filtered)
}
