package store

import (
	"github.com/pkg/errors"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

// Settings returns the current agency configuration document.
func (s *Store) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.settings
}

// UpdateSettings shallow-merges the given keys into the settings document.
// Keys absent from the map keep their current value.
func (s *Store) UpdateSettings(fields map[string]interface{}) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.st.settings
	if err := decodeSection(fields, &cfg); err != nil {
		return domain.Settings{}, errors.Wrap(err, "decode settings")
	}
	s.st.settings = cfg
	return cfg, nil
}
