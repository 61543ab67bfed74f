package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	notificationRetention = 90 * 24 * time.Hour
	auditRetention        = 365 * 24 * time.Hour
)

// initJobs starts the housekeeping scheduler.
func (a *Application) initJobs() {
	a.sched = cron.New()

	_, err := a.sched.AddFunc("@daily", func() {
		n := a.st.PurgeReadNotifications(notificationRetention)
		if n > 0 {
			zap.S().Infof("purged %d read notifications", n)
		}
	})
	if err != nil {
		zap.S().Errorf("schedule notification purge: %s", err)
	}

	_, err = a.sched.AddFunc("@daily", func() {
		n := a.st.PurgeAudit(auditRetention)
		if n > 0 {
			zap.S().Infof("purged %d audit entries", n)
		}
	})
	if err != nil {
		zap.S().Errorf("schedule audit purge: %s", err)
	}

	a.sched.Start()
}
