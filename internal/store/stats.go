package store

import (
	"sort"

	"github.com/araddon/dateparse"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

// PackageRank is one row of the dashboard's best-seller list.
type PackageRank struct {
	ID       int64   `json:"id,string"`
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Price    float64 `json:"price"`
}

// Stats is the dashboard aggregate. Everything is recomputed from the live
// collections on each call; at this data scale that is cheaper than keeping
// caches honest.
type Stats struct {
	TotalBookings     int `json:"total_bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ConfirmedBookings int `json:"confirmed_bookings"`
	TicketedBookings  int `json:"ticketed_bookings"`
	CancelledBookings int `json:"cancelled_bookings"`
	BookingsToday     int `json:"bookings_today"`
	BookingsThisWeek  int `json:"bookings_this_week"`
	BookingsThisMonth int `json:"bookings_this_month"`

	TotalCustomers  int `json:"total_customers"`
	ActiveCustomers int `json:"active_customers"`

	TotalRequests int `json:"total_requests"`
	OpenRequests  int `json:"open_requests"`

	TotalRevenue       float64 `json:"total_revenue"`
	RevenueThisMonth   float64 `json:"revenue_this_month"`
	OutstandingBalance float64 `json:"outstanding_balance"`

	UnreadNotifications int `json:"unread_notifications"`

	TopPackages []PackageRank `json:"top_packages"`
}

// Stats computes the dashboard aggregate with day/week/month windows taken
// from the store clock at call time. Total revenue is exactly the sum of
// paid amounts across all invoices.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.nowFn()
	dayCut := now.AddDate(0, 0, -1)
	weekCut := now.AddDate(0, 0, -7)
	monthCut := now.AddDate(0, 0, -30)

	var out Stats
	out.TotalBookings = len(s.st.bookings)
	for _, b := range s.st.bookings {
		switch b.Status {
		case domain.BookingPending:
			out.PendingBookings++
		case domain.BookingConfirmed:
			out.ConfirmedBookings++
		case domain.BookingTicketed:
			out.TicketedBookings++
		case domain.BookingCancelled:
			out.CancelledBookings++
		}
		if b.CreatedAt.After(dayCut) {
			out.BookingsToday++
		}
		if b.CreatedAt.After(weekCut) {
			out.BookingsThisWeek++
		}
		if b.CreatedAt.After(monthCut) {
			out.BookingsThisMonth++
		}
	}

	out.TotalCustomers = len(s.st.customers)
	for _, c := range s.st.customers {
		if c.Status == domain.CustomerActive {
			out.ActiveCustomers++
		}
	}

	out.TotalRequests = len(s.st.requests)
	for _, r := range s.st.requests {
		switch r.Status {
		case domain.RequestCompleted, domain.RequestCancelled:
		default:
			out.OpenRequests++
		}
	}

	for _, p := range s.st.payments {
		out.TotalRevenue += p.PaidAmount
		out.OutstandingBalance += p.Balance
		if p.UpdatedAt.After(monthCut) {
			out.RevenueThisMonth += p.PaidAmount
		}
	}

	for _, n := range s.st.notifications {
		if !n.Read {
			out.UnreadNotifications++
		}
	}

	ranked := make([]domain.TravelPackage, len(s.st.packages))
	copy(ranked, s.st.packages)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Bookings > ranked[j].Bookings
	})
	for i, p := range ranked {
		if i == 5 {
			break
		}
		out.TopPackages = append(out.TopPackages, PackageRank{
			ID: p.ID, Name: p.Name, Bookings: p.Bookings, Price: p.Price,
		})
	}
	return out
}

// Report is the date-ranged business summary backing the reports page and
// its CSV/XLSX exports.
type Report struct {
	Start string `json:"start"`
	End   string `json:"end"`

	TotalBookings    int            `json:"total_bookings"`
	BookingsByType   map[string]int `json:"bookings_by_type"`
	BookingsByStatus map[string]int `json:"bookings_by_status"`

	BookedAmount      float64 `json:"booked_amount"`
	PaymentsCollected float64 `json:"payments_collected"`
	OutstandingAmount float64 `json:"outstanding_amount"`
	MeanBookingValue  float64 `json:"mean_booking_value"`
	MedianPayment     float64 `json:"median_payment"`

	Bookings []domain.Booking `json:"bookings"`
	Payments []domain.Payment `json:"payments"`
}

// NormalizeDate accepts anything dateparse understands and returns the ISO
// day. All range comparisons happen on the normalized form, so the lexical
// ordering trick stays sound.
func NormalizeDate(value string) (string, error) {
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return "", errors.Wrapf(err, "parse date %q", value)
	}
	return t.Format("2006-01-02"), nil
}

// ReportsData filters bookings and payments created within [start, end]
// (inclusive, whole days) and reduces them to the report figures.
func (s *Store) ReportsData(start, end string) (Report, error) {
	from, err := NormalizeDate(start)
	if err != nil {
		return Report{}, err
	}
	to, err := NormalizeDate(end)
	if err != nil {
		return Report{}, err
	}
	if to < from {
		from, to = to, from
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rep := Report{
		Start:            from,
		End:              to,
		BookingsByType:   map[string]int{},
		BookingsByStatus: map[string]int{},
	}

	var amounts []float64
	for _, b := range s.st.bookings {
		day := b.CreatedAt.Format("2006-01-02")
		if day < from || day > to {
			continue
		}
		rep.TotalBookings++
		rep.BookingsByType[b.Type]++
		rep.BookingsByStatus[b.Status]++
		rep.BookedAmount += b.Amount
		amounts = append(amounts, b.Amount)
		rep.Bookings = append(rep.Bookings, b)
	}

	var paid []float64
	for _, p := range s.st.payments {
		day := p.CreatedAt.Format("2006-01-02")
		if day < from || day > to {
			continue
		}
		rep.PaymentsCollected += p.PaidAmount
		rep.OutstandingAmount += p.Balance
		if p.PaidAmount > 0 {
			paid = append(paid, p.PaidAmount)
		}
		rep.Payments = append(rep.Payments, p)
	}

	if mean, err := stats.Mean(stats.Float64Data(amounts)); err == nil {
		rep.MeanBookingValue = mean
	}
	if median, err := stats.Median(stats.Float64Data(paid)); err == nil {
		rep.MedianPayment = median
	}
	return rep, nil
}
