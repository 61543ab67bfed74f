package store

import (
	"time"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

// AppendAudit stores an audit entry. Entries are written by the event bus
// subscriber and by the auth/contact handlers.
func (s *Store) AppendAudit(e domain.AuditEntry) domain.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextID()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.nowFn()
	}
	if e.Actor == "" {
		e.Actor = "system"
	}
	s.st.audit = append(s.st.audit, e)
	return e
}

// AuditLog returns the newest entries, capped at limit (0 means all).
func (s *Store) AuditLog(limit int) []domain.AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.st.audit)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]domain.AuditEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.st.audit[i])
	}
	return out
}

// PurgeAudit drops entries older than the retention window.
func (s *Store) PurgeAudit(olderThan time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.nowFn().Add(-olderThan)
	kept := s.st.audit[:0]
	dropped := 0
	for _, e := range s.st.audit {
		if e.CreatedAt.Before(cutoff) {
			dropped++
			continue
		}
		kept = append(kept, e)
	}
	s.st.audit = kept
	return dropped
}
