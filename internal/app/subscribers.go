package app

import (
	"go.uber.org/zap"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

var auditTopics = []string{
	domain.EventCustomerCreated,
	domain.EventBookingCreated,
	domain.EventBookingStatus,
	domain.EventRequestCreated,
	domain.EventPaymentCreated,
	domain.EventPaymentRecorded,
	domain.EventUserLogin,
	domain.EventContactMessage,
}

// initSubscribers wires the activity trail. Every store event lands in the
// audit log and the structured log; the store publishes outside its lock so
// these callbacks may read and write the store.
func (a *Application) initSubscribers() {
	for _, topic := range auditTopics {
		t := topic
		err := a.bus.Subscribe(t, func(ev domain.Event) {
			actor := ev.Actor
			if actor == "" {
				actor = "system"
			}
			a.st.AppendAudit(domain.AuditEntry{
				Actor:    actor,
				Action:   ev.Topic,
				Detail:   ev.Summary,
				SourceIP: ev.SourceIP,
			})
			zap.S().Infof("activity %s: %s", ev.Topic, ev.Summary)
		})
		if err != nil {
			zap.S().Errorf("subscribe %s: %s", t, err)
		}
	}
}
