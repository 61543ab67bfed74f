package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tripdeskhq/tripdesk/config"
	"github.com/tripdeskhq/tripdesk/internal/domain"
	"github.com/tripdeskhq/tripdesk/internal/prefs"
	"github.com/tripdeskhq/tripdesk/internal/store"
)

type Application struct {
	appConfig *config.AppConfig
	st        *store.Store
	pf        *prefs.Prefs
	bus       EventBus.Bus
	sched     *cron.Cron
	settings  *SettingsManager
}

// Ensure Application implements all interfaces
var _ AppContext = (*Application)(nil)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig  { return a.appConfig }
func (a *Application) Store() *store.Store        { return a.st }
func (a *Application) Prefs() *prefs.Prefs        { return a.pf }
func (a *Application) Bus() EventBus.Bus          { return a.bus }
func (a *Application) Scheduler() *cron.Cron      { return a.sched }
func (a *Application) Settings() *SettingsManager { return a.settings }

// Init brings up the logger, the seeded store, the prefs database, the bus
// subscribers and the housekeeping jobs.
func (a *Application) Init() error {
	cfg := a.appConfig

	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger()

	a.bus = EventBus.New()

	a.st, err = store.New(
		store.WithBus(a.bus),
		store.WithSeed(domain.DefaultSeed(time.Now())),
	)
	if err != nil {
		return errors.Wrap(err, "init store")
	}
	zap.S().Infof("store seeded with demo dataset, workdir: %s", cfg.System.Workdir)

	a.pf, err = prefs.Open(cfg.System.Workdir)
	if err != nil {
		return errors.Wrap(err, "open prefs")
	}

	a.settings = NewSettingsManager(a.st)

	a.initSubscribers()
	a.initJobs()
	return nil
}

func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}
	zap.ReplaceGlobals(logger)
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.pf != nil {
		_ = a.pf.Close()
	}
	_ = zap.L().Sync()
}
