package store

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

func cloneCMS(c domain.CMSContent) domain.CMSContent {
	if c.FAQs != nil {
		c.FAQs = append([]domain.CMSFaq(nil), c.FAQs...)
	}
	if c.Announcements != nil {
		c.Announcements = append([]domain.CMSAnnouncement(nil), c.Announcements...)
	}
	return c
}

// CMS returns a snapshot of the site content document.
func (s *Store) CMS() domain.CMSContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCMS(s.st.cms)
}

// UpdateCMSSection shallow-merges the given fields into one section of the
// content document. The list sections (faqs, announcements) expect an
// "items" key and are replaced wholesale.
func (s *Store) UpdateCMSSection(section string, fields map[string]interface{}) (domain.CMSContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cms := s.st.cms
	var err error
	switch section {
	case "hero":
		err = decodeSection(fields, &cms.Hero)
	case "about":
		err = decodeSection(fields, &cms.About)
	case "contact":
		err = decodeSection(fields, &cms.Contact)
	case "social":
		err = decodeSection(fields, &cms.Social)
	case "faqs":
		var items []domain.CMSFaq
		if err = decodeSection(fields["items"], &items); err == nil {
			cms.FAQs = items
		}
	case "announcements":
		var items []domain.CMSAnnouncement
		if err = decodeSection(fields["items"], &items); err == nil {
			cms.Announcements = items
		}
	default:
		return domain.CMSContent{}, ErrUnknownSection
	}
	if err != nil {
		return domain.CMSContent{}, errors.Wrap(err, "decode content section")
	}
	s.st.cms = cms
	return cloneCMS(cms), nil
}

func decodeSection(input interface{}, target interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
