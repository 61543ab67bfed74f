package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

func TestAddPaymentDerivesBalanceAndStatus(t *testing.T) {
	s := newSeededStore(t)

	p := s.AddPayment(domain.Payment{BookingID: 3004, CustomerName: "Walk-in Guest", Amount: 24000})
	if p.Status != domain.PaymentPending {
		t.Fatalf("status = %q, want pending", p.Status)
	}
	if p.Balance != 24000 {
		t.Fatalf("balance = %v, want 24000", p.Balance)
	}

	p2 := s.AddPayment(domain.Payment{CustomerName: "X", Amount: 1000, PaidAmount: 400})
	if p2.Status != domain.PaymentPartial || p2.Balance != 600 {
		t.Fatalf("partial invoice wrong: %+v", p2)
	}

	p3 := s.AddPayment(domain.Payment{CustomerName: "Y", Amount: 500, PaidAmount: 500})
	if p3.Status != domain.PaymentCompleted || p3.Balance != 0 {
		t.Fatalf("completed invoice wrong: %+v", p3)
	}
}

func TestInvoiceNumbersSequence(t *testing.T) {
	s := newSeededStore(t)

	// three seeded invoices, so the sequence picks up at four
	p := s.AddPayment(domain.Payment{CustomerName: "A", Amount: 100})
	want := fmt.Sprintf("INV-%d-0004", testNow.Year())
	if p.InvoiceNo != want {
		t.Fatalf("invoice = %q, want %q", p.InvoiceNo, want)
	}
	p = s.AddPayment(domain.Payment{CustomerName: "B", Amount: 100})
	want = fmt.Sprintf("INV-%d-0005", testNow.Year())
	if p.InvoiceNo != want {
		t.Fatalf("invoice = %q, want %q", p.InvoiceNo, want)
	}
}

func TestInvoiceSequenceResetsEachYear(t *testing.T) {
	now := testNow
	s, err := New(
		WithClock(func() time.Time { return now }),
		WithSeed(domain.DefaultSeed(testNow)),
	)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	p := s.AddPayment(domain.Payment{CustomerName: "A", Amount: 100})
	if p.InvoiceNo != fmt.Sprintf("INV-%d-0004", now.Year()) {
		t.Fatalf("invoice = %q", p.InvoiceNo)
	}

	now = now.AddDate(1, 0, 0)
	p = s.AddPayment(domain.Payment{CustomerName: "B", Amount: 100})
	if p.InvoiceNo != fmt.Sprintf("INV-%d-0001", now.Year()) {
		t.Fatalf("invoice after year roll = %q", p.InvoiceNo)
	}
}

func TestRecordPaymentArithmetic(t *testing.T) {
	s := newSeededStore(t)
	p := s.AddPayment(domain.Payment{BookingID: 3004, CustomerName: "Walk-in Guest", Amount: 24000})

	got, err := s.RecordPayment(p.ID, 10000, "bkash", "TXN1")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if got.PaidAmount != 10000 || got.Balance != 14000 || got.Status != domain.PaymentPartial {
		t.Fatalf("after first instalment: %+v", got)
	}
	if got.Method != "bkash" || got.Reference != "TXN1" {
		t.Fatalf("method/reference not applied: %+v", got)
	}

	b, _ := s.BookingByID(3004)
	if b.PaymentStatus != domain.PayStatusPartial {
		t.Fatalf("booking payment status = %q, want partial", b.PaymentStatus)
	}

	got, err = s.RecordPayment(p.ID, 14000, "", "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if got.Balance != 0 || got.Status != domain.PaymentCompleted {
		t.Fatalf("after settling: %+v", got)
	}
	if got.Reference == "" {
		t.Fatalf("reference not generated")
	}

	b, _ = s.BookingByID(3004)
	if b.PaymentStatus != domain.PayStatusPaid {
		t.Fatalf("booking payment status = %q, want paid", b.PaymentStatus)
	}
}

func TestRecordPaymentOverpaymentIsCredit(t *testing.T) {
	s := newSeededStore(t)
	p := s.AddPayment(domain.Payment{CustomerName: "A", Amount: 1000})

	got, err := s.RecordPayment(p.ID, 1500, "cash", "R1")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if got.PaidAmount != 1500 {
		t.Fatalf("paid = %v, want 1500", got.PaidAmount)
	}
	if got.Balance != 0 {
		t.Fatalf("balance = %v, want 0", got.Balance)
	}
	if got.Status != domain.PaymentCompleted {
		t.Fatalf("status = %q, want completed", got.Status)
	}
}

func TestRecordPaymentRejectsBadInput(t *testing.T) {
	s := newSeededStore(t)
	if _, err := s.RecordPayment(5002, 0, "", ""); err != ErrInvalidAmount {
		t.Fatalf("zero amount err = %v, want ErrInvalidAmount", err)
	}
	if _, err := s.RecordPayment(5002, -50, "", ""); err != ErrInvalidAmount {
		t.Fatalf("negative amount err = %v, want ErrInvalidAmount", err)
	}
	if _, err := s.RecordPayment(999999, 100, "", ""); err != ErrNotFound {
		t.Fatalf("missing invoice err = %v, want ErrNotFound", err)
	}
}

func TestQueryPaymentsFilters(t *testing.T) {
	s := newSeededStore(t)

	_, total := s.QueryPayments(PaymentFilter{Status: domain.PaymentCompleted}, ListOptions{})
	if total != 2 {
		t.Fatalf("completed = %d, want 2", total)
	}
	rows, total := s.QueryPayments(PaymentFilter{BookingID: 3002}, ListOptions{})
	if total != 1 || rows[0].ID != 5002 {
		t.Fatalf("booking filter wrong: %d rows", total)
	}
	_, total = s.QueryPayments(PaymentFilter{Query: "sadia"}, ListOptions{})
	if total != 1 {
		t.Fatalf("query sadia = %d, want 1", total)
	}
}
