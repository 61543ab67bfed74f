package store

import (
	"testing"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

func TestUpdateCMSSectionShallowMerge(t *testing.T) {
	s := newSeededStore(t)
	before := s.CMS()

	content, err := s.UpdateCMSSection("hero", map[string]interface{}{
		"title": "Fly further",
	})
	if err != nil {
		t.Fatalf("update hero: %v", err)
	}
	if content.Hero.Title != "Fly further" {
		t.Fatalf("title = %q", content.Hero.Title)
	}
	if content.Hero.Subtitle != before.Hero.Subtitle {
		t.Fatalf("subtitle lost in merge: %q", content.Hero.Subtitle)
	}
	if content.About != before.About {
		t.Fatalf("unrelated section changed")
	}
}

func TestUpdateCMSListSectionReplacesItems(t *testing.T) {
	s := newSeededStore(t)

	content, err := s.UpdateCMSSection("faqs", map[string]interface{}{
		"items": []map[string]interface{}{
			{"question": "Do you arrange visas?", "answer": "Yes."},
		},
	})
	if err != nil {
		t.Fatalf("update faqs: %v", err)
	}
	if len(content.FAQs) != 1 || content.FAQs[0].Question != "Do you arrange visas?" {
		t.Fatalf("faqs = %+v", content.FAQs)
	}
}

func TestUpdateCMSUnknownSection(t *testing.T) {
	s := newSeededStore(t)
	if _, err := s.UpdateCMSSection("sidebar", map[string]interface{}{}); err != ErrUnknownSection {
		t.Fatalf("err = %v, want ErrUnknownSection", err)
	}
}

func TestUpdateSettingsPartialMerge(t *testing.T) {
	s := newSeededStore(t)
	before := s.Settings()

	got, err := s.UpdateSettings(map[string]interface{}{
		"tax_rate":         7.5,
		"maintenance_mode": true,
	})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if got.TaxRate != 7.5 || !got.MaintenanceMode {
		t.Fatalf("merged values wrong: %+v", got)
	}
	if got.AgencyName != before.AgencyName || got.Currency != before.Currency {
		t.Fatalf("untouched keys changed: %+v", got)
	}

	// weakly typed input is accepted
	got, err = s.UpdateSettings(map[string]interface{}{"tax_rate": "10"})
	if err != nil {
		t.Fatalf("weak typed update: %v", err)
	}
	if got.TaxRate != 10 {
		t.Fatalf("tax rate = %v, want 10", got.TaxRate)
	}
}

func TestInvoicePrefixFollowsSettings(t *testing.T) {
	s := newSeededStore(t)
	if _, err := s.UpdateSettings(map[string]interface{}{"invoice_prefix": "TRP"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	p := s.AddPayment(domain.Payment{CustomerName: "A", Amount: 100})
	if p.InvoiceNo[:4] != "TRP-" {
		t.Fatalf("invoice = %q, want TRP prefix", p.InvoiceNo)
	}
}
