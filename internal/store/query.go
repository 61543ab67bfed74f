package store

import "strings"

// ListOptions mirror the admin list pages: free-text search plus whitelist
// sorted pagination. Collections are mock-scale, so everything is computed
// against a full snapshot on each call.
type ListOptions struct {
	Page    int
	PerPage int
	Sort    string
	Order   string
}

func (o ListOptions) normalize() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PerPage < 1 || o.PerPage > 500 {
		o.PerPage = 20
	}
	o.Order = strings.ToUpper(o.Order)
	if o.Order != "ASC" && o.Order != "DESC" {
		o.Order = "DESC"
	}
	return o
}

func paginate[T any](rows []T, opt ListOptions) []T {
	start := (opt.Page - 1) * opt.PerPage
	if start >= len(rows) {
		return []T{}
	}
	end := start + opt.PerPage
	if end > len(rows) {
		end = len(rows)
	}
	out := make([]T, end-start)
	copy(out, rows[start:end])
	return out
}

// containsFold reports whether any of the fields contains the needle,
// case-insensitively. An empty needle matches everything.
func containsFold(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
