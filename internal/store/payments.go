package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/labstack/gommon/random"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

// Payments returns a snapshot of the whole collection.
func (s *Store) Payments() []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Payment, len(s.st.payments))
	copy(out, s.st.payments)
	return out
}

func (s *Store) PaymentByID(id int64) (domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.st.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Payment{}, ErrNotFound
}

// nextInvoiceNoLocked issues PREFIX-YEAR-SEQ numbers from a store-owned
// sequence that restarts each year.
func (s *Store) nextInvoiceNoLocked(now time.Time) string {
	if now.Year() != s.invoiceYear {
		s.invoiceYear = now.Year()
		s.invoiceSeq = 0
	}
	s.invoiceSeq++
	prefix := s.st.settings.InvoicePrefix
	if prefix == "" {
		prefix = "INV"
	}
	return fmt.Sprintf("%s-%d-%04d", prefix, s.invoiceYear, s.invoiceSeq)
}

// AddPayment creates the invoice record for a booking, derives balance and
// status from the amounts, syncs the booking payment status and appends a
// payment notification.
func (s *Store) AddPayment(p domain.Payment) domain.Payment {
	s.mu.Lock()
	now := s.nowFn()
	p.ID = s.nextID()
	p.InvoiceNo = s.nextInvoiceNoLocked(now)
	p.Balance = p.Amount - p.PaidAmount
	if p.Balance < 0 {
		p.Balance = 0
	}
	switch {
	case p.PaidAmount <= 0:
		p.Status = domain.PaymentPending
	case p.Balance == 0:
		p.Status = domain.PaymentCompleted
	default:
		p.Status = domain.PaymentPartial
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	s.st.payments = append(s.st.payments, p)
	s.syncBookingPaymentLocked(p, now)
	s.appendNotificationLocked(domain.NotifyPayment, "Invoice issued",
		fmt.Sprintf("%s for %s, due %.2f", p.InvoiceNo, p.CustomerName, p.Balance))
	s.mu.Unlock()

	s.publish(domain.EventPaymentCreated, p.ID, fmt.Sprintf("invoice %s issued", p.InvoiceNo))
	return p
}

// RecordPayment applies an instalment: paid amount grows by amount, balance
// is clamped at zero and status becomes completed exactly when the balance
// reaches zero. Overpayment is allowed to accumulate as credit. A zero or
// negative amount is rejected.
func (s *Store) RecordPayment(id int64, amount float64, method, reference string) (domain.Payment, error) {
	if amount <= 0 {
		return domain.Payment{}, ErrInvalidAmount
	}
	s.mu.Lock()
	var updated domain.Payment
	found := false
	for i := range s.st.payments {
		if s.st.payments[i].ID != id {
			continue
		}
		now := s.nowFn()
		p := &s.st.payments[i]
		p.PaidAmount += amount
		p.Balance = p.Amount - p.PaidAmount
		if p.Balance < 0 {
			p.Balance = 0
		}
		if p.Balance == 0 {
			p.Status = domain.PaymentCompleted
		} else {
			p.Status = domain.PaymentPartial
		}
		if method != "" {
			p.Method = method
		}
		if reference == "" {
			reference = random.String(10, random.Uppercase, random.Numeric)
		}
		p.Reference = reference
		p.UpdatedAt = now
		s.syncBookingPaymentLocked(*p, now)
		s.appendNotificationLocked(domain.NotifyPayment, "Payment received",
			fmt.Sprintf("%.2f against %s", amount, p.InvoiceNo))
		updated = *p
		found = true
		break
	}
	s.mu.Unlock()
	if !found {
		return domain.Payment{}, ErrNotFound
	}
	s.publish(domain.EventPaymentRecorded, updated.ID,
		fmt.Sprintf("payment of %.2f on %s", amount, updated.InvoiceNo))
	return updated, nil
}

// syncBookingPaymentLocked mirrors invoice arithmetic onto the referenced
// booking's payment status. Must be called with the write lock held.
func (s *Store) syncBookingPaymentLocked(p domain.Payment, now time.Time) {
	if p.BookingID == 0 {
		return
	}
	for i := range s.st.bookings {
		if s.st.bookings[i].ID != p.BookingID {
			continue
		}
		switch {
		case p.PaidAmount >= p.Amount && p.Amount > 0:
			s.st.bookings[i].PaymentStatus = domain.PayStatusPaid
		case p.PaidAmount > 0:
			s.st.bookings[i].PaymentStatus = domain.PayStatusPartial
		default:
			s.st.bookings[i].PaymentStatus = domain.PayStatusUnpaid
		}
		s.st.bookings[i].UpdatedAt = now
		return
	}
}

// PaymentFilter mirrors the payments page controls.
type PaymentFilter struct {
	Query     string
	Status    string
	BookingID int64
}

func (s *Store) QueryPayments(f PaymentFilter, opt ListOptions) ([]domain.Payment, int) {
	opt = opt.normalize()
	rows := s.Payments()

	filtered := rows[:0]
	for _, p := range rows {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.BookingID != 0 && p.BookingID != f.BookingID {
			continue
		}
		if !containsFold(f.Query, p.InvoiceNo, p.CustomerName, p.Reference) {
			continue
		}
		filtered = append(filtered, p)
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
		case "balance":
			return a.Balance < b.Balance
		case "created_at":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.ID < b.ID
		}
	})

	return paginate(filtered, opt), len(filtered)
}
