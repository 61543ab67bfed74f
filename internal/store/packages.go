package store

import (
	"sort"

	"github.com/tripdeskhq/tripdesk/internal/domain"
)

// Packages returns a snapshot of the whole collection.
func (s *Store) Packages() []domain.TravelPackage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TravelPackage, len(s.st.packages))
	copy(out, s.st.packages)
	return out
}

func (s *Store) PackageByID(id int64) (domain.TravelPackage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.st.packages {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.TravelPackage{}, ErrNotFound
}

// ActivePackages is the public-site catalog view.
func (s *Store) ActivePackages() []domain.TravelPackage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TravelPackage, 0, len(s.st.packages))
	for _, p := range s.st.packages {
		if p.Status == domain.PackageActive {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) AddPackage(p domain.TravelPackage) domain.TravelPackage {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.nowFn()
	p.ID = s.nextID()
	if p.Status == "" {
		p.Status = domain.PackageDraft
	}
	p.Bookings = 0
	p.CreatedAt = now
	p.UpdatedAt = now
	s.st.packages = append(s.st.packages, p)
	return p
}

// PackagePatch carries the optional fields of a partial update. The sales
// counter is store-maintained and not patchable.
type PackagePatch struct {
	Name          *string
	Destination   *string
	Days          *int
	Price         *float64
	OriginalPrice *float64
	Status        *string
	Featured      *bool
	Image         *string
	Summary       *string
}

func (s *Store) UpdatePackage(id int64, patch PackagePatch) (domain.TravelPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.packages {
		if s.st.packages[i].ID != id {
			continue
		}
		p := &s.st.packages[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Destination != nil {
			p.Destination = *patch.Destination
		}
		if patch.Days != nil {
			p.Days = *patch.Days
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.OriginalPrice != nil {
			p.OriginalPrice = *patch.OriginalPrice
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Featured != nil {
			p.Featured = *patch.Featured
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.Summary != nil {
			p.Summary = *patch.Summary
		}
		p.UpdatedAt = s.nowFn()
		return *p, nil
	}
	return domain.TravelPackage{}, ErrNotFound
}

func (s *Store) DeletePackage(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.packages {
		if s.st.packages[i].ID == id {
			s.st.packages = append(s.st.packages[:i], s.st.packages[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// PackageFilter mirrors the packages page controls.
type PackageFilter struct {
	Query    string
	Status   string
	Featured *bool
}

func (s *Store) QueryPackages(f PackageFilter, opt ListOptions) ([]domain.TravelPackage, int) {
	opt = opt.normalize()
	rows := s.Packages()

	filtered := rows[:0]
	for _, p := range rows {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		if !containsFold(f.Query, p.Name, p.Destination) {
			continue
		}
		filtered = append(filtered, p)
	}

	desc := opt.Order == "DESC"
	sort.SliceStable(filtered, func(i, j int) bool {
		if desc {
			i, j = j, i
		}
		a, b := filtered[i], filtered[j]
		switch opt.Sort {
		case "name":
			return a.Name < b.Name
		case "price":
			return a.Price < b.Price
		case "bookings":
			return a.Bookings < b.Bookings
		case "created_at":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.ID < b.ID
		}
	})

	return paginate(filtered, opt), len(filtered)
}
