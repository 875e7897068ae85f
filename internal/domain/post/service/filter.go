package service

import (
	"sort"
	"strings"
	"time"

	"stars_admin/internal/domain/post/model"
)

// Criteria is the transient filter state for the posts list. Zero values
// mean "no constraint": an item passes only when it matches every active
// criterion.
type Criteria struct {
	Search       string
	Status       string
	ReportedOnly bool
	From         time.Time
	To           time.Time
}

// Matches evaluates the predicate conjunction against one post.
func (c Criteria) Matches(p *model.Post) bool {
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Text()), q) &&
			!strings.Contains(strings.ToLower(p.Owner.FirstName), q) &&
			!strings.Contains(strings.ToLower(p.Owner.LastName), q) &&
			!strings.Contains(strings.ToLower(p.Owner.Username), q) {
			return false
		}
	}

	if c.Status != "" && c.Status != "all" && p.Status != c.Status {
		return false
	}

	if c.ReportedOnly && p.ReportCount == 0 {
		return false
	}

	if !c.From.IsZero() && p.CreatedAt.Before(c.From) {
		return false
	}
	if !c.To.IsZero() && p.CreatedAt.After(c.To) {
		return false
	}

	return true
}

// Filter returns the posts passing every active criterion, preserving the
// input order.
func Filter(items []model.Post, c Criteria) []model.Post {
	out := make([]model.Post, 0, len(items))
	for i := range items {
		if c.Matches(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// SortField selects the post attribute to order by.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByLikes     SortField = "likes"
	SortByComments  SortField = "comments"
	SortByReports   SortField = "reports"
)

// SortSpec is a total order over one field. Ties keep their input order.
type SortSpec struct {
	Field SortField
	Desc  bool
}

// Sort orders items in place, stably.
func Sort(items []model.Post, s SortSpec) {
	if s.Field == "" {
		return
	}

	less := func(a, b *model.Post) bool {
		switch s.Field {
		case SortByLikes:
			return a.Likes() < b.Likes()
		case SortByComments:
			return len(a.CommentIDs) < len(b.CommentIDs)
		case SortByReports:
			return a.ReportCount < b.ReportCount
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if s.Desc {
			return less(&items[j], &items[i])
		}
		return less(&items[i], &items[j])
	})
}
