package service

import (
	"sort"
	"strings"

	"stars_admin/internal/domain/user/model"
)

// Criteria is the transient filter state for the users list.
type Criteria struct {
	Search string
	Role   string
	Status string
}

// Matches evaluates the predicate conjunction against one user.
func (c Criteria) Matches(u *model.User) bool {
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(u.FullName()), q) &&
			!strings.Contains(strings.ToLower(u.Username), q) &&
			!strings.Contains(strings.ToLower(u.Email), q) {
			return false
		}
	}

	if c.Role != "" && c.Role != "all" && u.Role != c.Role {
		return false
	}

	if c.Status != "" && c.Status != "all" && u.Status != c.Status {
		return false
	}

	return true
}

// Filter returns the users passing every active criterion, preserving the
// input order.
func Filter(items []model.User, c Criteria) []model.User {
	out := make([]model.User, 0, len(items))
	for i := range items {
		if c.Matches(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// SortField selects the user attribute to order by.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByFollowers SortField = "followers"
)

// SortSpec is a total order over one field. Ties keep their input order.
type SortSpec struct {
	Field SortField
	Desc  bool
}

// Sort orders items in place, stably.
func Sort(items []model.User, s SortSpec) {
	if s.Field == "" {
		return
	}

	less := func(a, b *model.User) bool {
		if s.Field == SortByFollowers {
			return len(a.Followers) < len(b.Followers)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if s.Desc {
			return less(&items[j], &items[i])
		}
		return less(&items[i], &items[j])
	})
}
