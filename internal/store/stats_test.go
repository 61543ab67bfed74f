package store

import (
	"testing"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

func TestStatsConsistency(t *testing.T) {
	s := newSeededStore(t)
	st := s.Stats()

	byStatus := st.PendingBookings + st.ConfirmedBookings + st.TicketedBookings + st.CancelledBookings
	if byStatus != st.TotalBookings {
		t.Fatalf("status counts %d != total %d", byStatus, st.TotalBookings)
	}
	if st.TotalBookings != 4 {
		t.Fatalf("total bookings = %d, want 4", st.TotalBookings)
	}
	if st.BookingsToday > st.BookingsThisWeek || st.BookingsThisWeek > st.BookingsThisMonth {
		t.Fatalf("window counts not monotone: %d/%d/%d",
			st.BookingsToday, st.BookingsThisWeek, st.BookingsThisMonth)
	}

	var wantRevenue, wantOutstanding float64
	for _, p := range s.Payments() {
		wantRevenue += p.PaidAmount
		wantOutstanding += p.Balance
	}
	if st.TotalRevenue != wantRevenue {
		t.Fatalf("revenue = %v, want %v", st.TotalRevenue, wantRevenue)
	}
	if st.OutstandingBalance != wantOutstanding {
		t.Fatalf("outstanding = %v, want %v", st.OutstandingBalance, wantOutstanding)
	}

	if st.TotalCustomers != 3 || st.ActiveCustomers != 2 {
		t.Fatalf("customers = %d/%d, want 3/2", st.TotalCustomers, st.ActiveCustomers)
	}
	if st.OpenRequests != 3 {
		t.Fatalf("open requests = %d, want 3", st.OpenRequests)
	}
	if st.UnreadNotifications != 3 {
		t.Fatalf("unread = %d, want 3", st.UnreadNotifications)
	}
}

func TestStatsTopPackages(t *testing.T) {
	s := newSeededStore(t)
	st := s.Stats()

	if len(st.TopPackages) != 5 {
		t.Fatalf("top packages = %d, want 5", len(st.TopPackages))
	}
	if st.TopPackages[0].ID != 2003 {
		t.Fatalf("best seller = %d, want 2003", st.TopPackages[0].ID)
	}
	for i := 1; i < len(st.TopPackages); i++ {
		if st.TopPackages[i-1].Bookings < st.TopPackages[i].Bookings {
			t.Fatalf("ranking out of order at %d", i)
		}
	}
}

func TestStatsTracksMutations(t *testing.T) {
	s := newSeededStore(t)
	before := s.Stats()

	p := s.AddPayment(domain.Payment{CustomerName: "A", Amount: 1000})
	if _, err := s.RecordPayment(p.ID, 1000, "cash", "R1"); err != nil {
		t.Fatalf("record: %v", err)
	}

	after := s.Stats()
	if after.TotalRevenue != before.TotalRevenue+1000 {
		t.Fatalf("revenue = %v, want %v", after.TotalRevenue, before.TotalRevenue+1000)
	}
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("05/19/2024")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != "2024-05-19" {
		t.Fatalf("normalized = %q", got)
	}
	if _, err := NormalizeDate("not a date"); err == nil {
		t.Fatalf("garbage accepted")
	}
}

func TestReportsDataRange(t *testing.T) {
	s := newSeededStore(t)

	// last two weeks: bookings 3002 (12d), 3003 (5d), 3004 (1d)
	start := testNow.AddDate(0, 0, -14).Format("2006-01-02")
	end := testNow.Format("2006-01-02")
	rep, err := s.ReportsData(start, end)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if rep.TotalBookings != 3 {
		t.Fatalf("bookings in range = %d, want 3", rep.TotalBookings)
	}
	if rep.BookedAmount != 100000+68000+24000 {
		t.Fatalf("booked amount = %v", rep.BookedAmount)
	}
	if rep.BookingsByType[domain.BookingTypeFlight] != 1 ||
		rep.BookingsByType[domain.BookingTypeHotel] != 1 ||
		rep.BookingsByType[domain.BookingTypePackage] != 1 {
		t.Fatalf("by type = %v", rep.BookingsByType)
	}

	// payments 5002 (12d) and 5003 (5d) fall in range
	if rep.PaymentsCollected != 40000+68000 {
		t.Fatalf("collected = %v", rep.PaymentsCollected)
	}
	if rep.OutstandingAmount != 60000 {
		t.Fatalf("outstanding = %v", rep.OutstandingAmount)
	}

	wantMean := (100000.0 + 68000.0 + 24000.0) / 3
	if rep.MeanBookingValue != wantMean {
		t.Fatalf("mean = %v, want %v", rep.MeanBookingValue, wantMean)
	}
	// median of 40000 and 68000
	if rep.MedianPayment != 54000 {
		t.Fatalf("median = %v, want 54000", rep.MedianPayment)
	}
}

func TestReportsDataSwapsReversedBounds(t *testing.T) {
	s := newSeededStore(t)
	start := testNow.Format("2006-01-02")
	end := testNow.AddDate(0, 0, -14).Format("2006-01-02")

	rep, err := s.ReportsData(start, end)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if rep.Start != end || rep.End != start {
		t.Fatalf("bounds not swapped: %s..%s", rep.Start, rep.End)
	}
	if rep.TotalBookings != 3 {
		t.Fatalf("bookings = %d, want 3", rep.TotalBookings)
	}
}

func TestReportsDataAcceptsLooseDates(t *testing.T) {
	s := newSeededStore(t)
	if _, err := s.ReportsData("May 6, 2024", "2024-05-20"); err != nil {
		t.Fatalf("loose date rejected: %v", err)
	}
	if _, err := s.ReportsData("garbage", "2024-05-20"); err == nil {
		t.Fatalf("garbage start accepted")
	}
}
