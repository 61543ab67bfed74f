package domain

// CMS content is a single keyed document; each section is updated with a
// shallow merge, list sections (faqs, announcements) are replaced wholesale.

type CMSHero struct {
	Title    string `json:"title" mapstructure:"title"`
	Subtitle string `json:"subtitle" mapstructure:"subtitle"`
	CTAText  string `json:"cta_text" mapstructure:"cta_text"`
	Image    string `json:"image" mapstructure:"image"`
}

type CMSAbout struct {
	Heading string `json:"heading" mapstructure:"heading"`
	Body    string `json:"body" mapstructure:"body"`
	Image   string `json:"image" mapstructure:"image"`
}

type CMSContact struct {
	Email   string `json:"email" mapstructure:"email"`
	Phone   string `json:"phone" mapstructure:"phone"`
	Hotline string `json:"hotline" mapstructure:"hotline"`
	Address string `json:"address" mapstructure:"address"`
	MapURL  string `json:"map_url" mapstructure:"map_url"`
}

type CMSSocial struct {
	Facebook  string `json:"facebook" mapstructure:"facebook"`
	Instagram string `json:"instagram" mapstructure:"instagram"`
	YouTube   string `json:"youtube" mapstructure:"youtube"`
	LinkedIn  string `json:"linkedin" mapstructure:"linkedin"`
	WhatsApp  string `json:"whatsapp" mapstructure:"whatsapp"`
}

type CMSFaq struct {
	Question string `json:"question" mapstructure:"question"`
	Answer   string `json:"answer" mapstructure:"answer"`
}

type CMSAnnouncement struct {
	Text   string `json:"text" mapstructure:"text"`
	Link   string `json:"link" mapstructure:"link"`
	Active bool   `json:"active" mapstructure:"active"`
}

type CMSContent struct {
	Hero          CMSHero           `json:"hero"`
	About         CMSAbout          `json:"about"`
	Contact       CMSContact        `json:"contact"`
	Social        CMSSocial         `json:"social"`
	FAQs          []CMSFaq          `json:"faqs"`
	Announcements []CMSAnnouncement `json:"announcements"`
}
