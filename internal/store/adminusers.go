package store

import (
	"strings"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

func cloneAdminUser(u domain.AdminUser) domain.AdminUser {
	if u.Permissions != nil {
		u.Permissions = append([]string(nil), u.Permissions...)
	}
	return u
}

// AdminUsers returns a snapshot of the operator accounts.
func (s *Store) AdminUsers() []domain.AdminUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AdminUser, 0, len(s.st.adminUsers))
	for _, u := range s.st.adminUsers {
		out = append(out, cloneAdminUser(u))
	}
	return out
}

func (s *Store) AdminUserByID(id int64) (domain.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.st.adminUsers {
		if u.ID == id {
			return cloneAdminUser(u), nil
		}
	}
	return domain.AdminUser{}, ErrNotFound
}

func (s *Store) FindAdminByUsername(username string) (domain.AdminUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.st.adminUsers {
		if strings.EqualFold(u.Username, username) {
			return cloneAdminUser(u), true
		}
	}
	return domain.AdminUser{}, false
}

func (s *Store) AddAdminUser(u domain.AdminUser) domain.AdminUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.nowFn()
	u.ID = s.nextID()
	if u.Status == "" {
		u.Status = domain.UserActive
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	s.st.adminUsers = append(s.st.adminUsers, u)
	return cloneAdminUser(u)
}

// AdminUserPatch carries the optional fields of a partial update.
type AdminUserPatch struct {
	Realname    *string
	Email       *string
	Role        *string
	Permissions *[]string
	Status      *string
}

func (s *Store) UpdateAdminUser(id int64, patch AdminUserPatch) (domain.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.adminUsers {
		if s.st.adminUsers[i].ID != id {
			continue
		}
		u := &s.st.adminUsers[i]
		if patch.Realname != nil {
			u.Realname = *patch.Realname
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Permissions != nil {
			u.Permissions = append([]string(nil), (*patch.Permissions)...)
		}
		if patch.Status != nil {
			u.Status = *patch.Status
		}
		u.UpdatedAt = s.nowFn()
		return cloneAdminUser(*u), nil
	}
	return domain.AdminUser{}, ErrNotFound
}

// DeleteAdminUser removes an account. The signed-in operator can never
// delete themselves.
func (s *Store) DeleteAdminUser(id, currentID int64) error {
	if id == currentID {
		return ErrSelfDelete
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.adminUsers {
		if s.st.adminUsers[i].ID == id {
			s.st.adminUsers = append(s.st.adminUsers[:i], s.st.adminUsers[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// TouchLastLogin stamps the account's last login time.
func (s *Store) TouchLastLogin(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.adminUsers {
		if s.st.adminUsers[i].ID == id {
			s.st.adminUsers[i].LastLogin = s.nowFn()
			return
		}
	}
}
