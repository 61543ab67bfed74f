package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"

	"github.com/tripdeskhq/tripdesk/config"
	"github.com/tripdeskhq/tripdesk/internal/prefs"
	"github.com/tripdeskhq/tripdesk/internal/store"
)

// StoreProvider provides access to the domain store
type StoreProvider interface {
	Store() *store.Store
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// PrefsProvider provides the persisted client flags
type PrefsProvider interface {
	Prefs() *prefs.Prefs
}

// SettingsProvider provides typed access to the agency settings document
type SettingsProvider interface {
	Settings() *SettingsManager
}

// BusProvider provides the application event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// SchedulerProvider provides the housekeeping scheduler
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces. Handlers should depend on the
// narrowest provider they need; the web server carries this combined form.
type AppContext interface {
	StoreProvider
	ConfigProvider
	PrefsProvider
	SettingsProvider
	BusProvider
	SchedulerProvider
}
