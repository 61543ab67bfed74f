package domain

// Settings is the single agency-wide configuration document. Updates are a
// shallow merge of the provided keys; mapstructure tags name the merge keys.
type Settings struct {
	AgencyName         string  `json:"agency_name" mapstructure:"agency_name"`
	Tagline            string  `json:"tagline" mapstructure:"tagline"`
	Currency           string  `json:"currency" mapstructure:"currency"`
	TaxRate            float64 `json:"tax_rate" mapstructure:"tax_rate"`
	InvoicePrefix      string  `json:"invoice_prefix" mapstructure:"invoice_prefix"`
	ContactEmail       string  `json:"contact_email" mapstructure:"contact_email"`
	ContactPhone       string  `json:"contact_phone" mapstructure:"contact_phone"`
	Address            string  `json:"address" mapstructure:"address"`
	EmailAlerts        bool    `json:"email_alerts" mapstructure:"email_alerts"`
	SMSAlerts          bool    `json:"sms_alerts" mapstructure:"sms_alerts"`
	BookingAutoConfirm bool    `json:"booking_auto_confirm" mapstructure:"booking_auto_confirm"`
	MaintenanceMode    bool    `json:"maintenance_mode" mapstructure:"maintenance_mode"`
}
