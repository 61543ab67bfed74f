package store

import (
	"time"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

// Notifications returns a snapshot, newest first. With unreadOnly set, read
// items are skipped.
func (s *Store) Notifications(unreadOnly bool) []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Notification, 0, len(s.st.notifications))
	for i := len(s.st.notifications) - 1; i >= 0; i-- {
		n := s.st.notifications[i]
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.st.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

func (s *Store) MarkNotificationRead(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.notifications {
		if s.st.notifications[i].ID == id {
			s.st.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

// MarkAllNotificationsRead returns how many items flipped. Calling it again
// immediately is a no-op.
func (s *Store) MarkAllNotificationsRead() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	flipped := 0
	for i := range s.st.notifications {
		if !s.st.notifications[i].Read {
			s.st.notifications[i].Read = true
			flipped++
		}
	}
	return flipped
}

// ClearReadNotifications drops every read item and reports the count.
func (s *Store) ClearReadNotifications() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.st.notifications[:0]
	dropped := 0
	for _, n := range s.st.notifications {
		if n.Read {
			dropped++
			continue
		}
		kept = append(kept, n)
	}
	s.st.notifications = kept
	return dropped
}

// PurgeReadNotifications drops read items older than the retention window.
// Used by the daily housekeeping job.
func (s *Store) PurgeReadNotifications(olderThan time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.nowFn().Add(-olderThan)
	kept := s.st.notifications[:0]
	dropped := 0
	for _, n := range s.st.notifications {
		if n.Read && n.CreatedAt.Before(cutoff) {
			dropped++
			continue
		}
		kept = append(kept, n)
	}
	s.st.notifications = kept
	return dropped
}
