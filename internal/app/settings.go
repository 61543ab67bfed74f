package app

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"

	"github.com/tripdeskhq/tripdesk/internal/domain"
	"github.com/tripdeskhq/tripdesk/internal/store"
)

// SettingsManager wraps the agency settings document with typed accessors so
// callers do not have to pattern match on field names.
type SettingsManager struct {
	st *store.Store
}

func NewSettingsManager(st *store.Store) *SettingsManager {
	return &SettingsManager{st: st}
}

func (m *SettingsManager) Current() domain.Settings {
	return m.st.Settings()
}

// Update merges the given keys into the settings document.
func (m *SettingsManager) Update(fields map[string]interface{}) (domain.Settings, error) {
	return m.st.UpdateSettings(fields)
}

func (m *SettingsManager) asMap() map[string]interface{} {
	out := map[string]interface{}{}
	_ = mapstructure.Decode(m.st.Settings(), &out)
	return out
}

// StringValue returns the named settings field as a string.
func (m *SettingsManager) StringValue(name string) string {
	return cast.ToString(m.asMap()[name])
}

// BoolValue returns the named settings field as a bool.
func (m *SettingsManager) BoolValue(name string) bool {
	return cast.ToBool(m.asMap()[name])
}

// Float64Value returns the named settings field as a float64.
func (m *SettingsManager) Float64Value(name string) float64 {
	return cast.ToFloat64(m.asMap()[name])
}
