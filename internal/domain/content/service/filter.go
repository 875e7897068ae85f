package service

import (
	"sort"
	"strings"
	"time"

	"stars_admin/internal/domain/content/model"
)

// Criteria is the transient filter state for the reels list. Zero values
// pass everything; an item must match every active criterion.
type Criteria struct {
	Search       string
	Status       string
	Label        string
	Score        model.ScoreBucket
	ReportedOnly bool
	From         time.Time
	To           time.Time
}

// Matches evaluates the predicate conjunction against one reel.
func (c Criteria) Matches(item *model.ContentItem) bool {
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(item.Description), q) &&
			!strings.Contains(strings.ToLower(item.Profile.Name), q) {
			return false
		}
	}

	if c.Status != "" && c.Status != "all" && item.Status != c.Status {
		return false
	}

	if c.Label != "" && c.Label != "all" && item.Label != c.Label {
		return false
	}

	if !c.Score.Matches(item.Score) {
		return false
	}

	if c.ReportedOnly && item.ReportCount == 0 {
		return false
	}

	if !c.From.IsZero() && item.CreatedAt.Before(c.From) {
		return false
	}
	if !c.To.IsZero() && item.CreatedAt.After(c.To) {
		return false
	}

	return true
}

// Filter returns the reels passing every active criterion, preserving the
// input order.
func Filter(items []model.ContentItem, c Criteria) []model.ContentItem {
	out := make([]model.ContentItem, 0, len(items))
	for i := range items {
		if c.Matches(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// SortField selects the reel attribute to order by.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByScore     SortField = "score"
	SortByLikes     SortField = "likes"
	SortByReports   SortField = "reports"
)

// SortSpec is a total order over one field. Ties keep their input order.
type SortSpec struct {
	Field SortField
	Desc  bool
}

// Sort orders items in place, stably.
func Sort(items []model.ContentItem, s SortSpec) {
	if s.Field == "" {
		return
	}

	less := func(a, b *model.ContentItem) bool {
		switch s.Field {
		case SortByScore:
			return a.Score < b.Score
		case SortByLikes:
			return a.Likes < b.Likes
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
