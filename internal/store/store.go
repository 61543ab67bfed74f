package store

import (
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrSelfDelete        = errors.New("cannot delete the signed-in account")
	ErrUnknownSection    = errors.New("unknown content section")
)

// state holds every collection. All access goes through the Store mutex and
// readers only ever see copies.
type state struct {
	customers     []domain.Customer
	bookings      []domain.Booking
	requests      []domain.ServiceRequest
	packages      []domain.TravelPackage
	payments      []domain.Payment
	notifications []domain.Notification
	adminUsers    []domain.AdminUser
	audit         []domain.AuditEntry
	cms           domain.CMSContent
	settings      domain.Settings
}

// Store is the single source of truth for the back office. Mutations commit
// under the lock and publish their event afterwards, so bus subscribers may
// call back into the store freely.
type Store struct {
	mu          sync.RWMutex
	st          state
	node        *snowflake.Node
	bus         EventBus.Bus
	nowFn       func() time.Time
	invoiceYear int
	invoiceSeq  int
}

type Option func(*Store)

// WithBus attaches the event bus mutations publish on.
func WithBus(bus EventBus.Bus) Option {
	return func(s *Store) { s.bus = bus }
}

// WithClock overrides the store clock (used in tests).
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.nowFn = fn }
}

// WithSeed loads the boot-time mock collections.
func WithSeed(seed domain.Seed) Option {
	return func(s *Store) {
		s.st.customers = seed.Customers
		s.st.bookings = seed.Bookings
		s.st.requests = seed.Requests
		s.st.packages = seed.Packages
		s.st.payments = seed.Payments
		s.st.notifications = seed.Notifications
		s.st.adminUsers = seed.AdminUsers
		s.st.cms = seed.CMS
		s.st.settings = seed.Settings
		s.invoiceSeq = len(seed.Payments)
	}
}

func New(opts ...Option) (*Store, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, errors.Wrap(err, "init id generator")
	}
	s := &Store{
		node:  node,
		nowFn: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.invoiceYear = s.nowFn().Year()
	return s, nil
}

func (s *Store) nextID() int64 {
	return s.node.Generate().Int64()
}

// newRef builds a short human-typable booking reference.
func newRef() string {
	return "TD-" + strings.ToUpper(uuid.New().String()[:6])
}

func (s *Store) publish(topic string, refID int64, summary string) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(topic, domain.Event{
		Topic:   topic,
		RefID:   refID,
		Summary: summary,
		At:      s.nowFn(),
	})
}

// appendNotificationLocked must be called with the write lock held.
func (s *Store) appendNotificationLocked(kind, title, message string) {
	s.st.notifications = append(s.st.notifications, domain.Notification{
		ID:        s.nextID(),
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: s.nowFn(),
	})
}
