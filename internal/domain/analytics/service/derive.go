package service

import (
	"fmt"
	"sort"
	"time"

	postmodel "stars_admin/internal/domain/post/model"
	usermodel "stars_admin/internal/domain/user/model"
)

// TopCreator is one row of the top-creators ranking.
type TopCreator struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Posts    int    `json:"posts"`
	Likes    int    `json:"likes"`
}

// TopCreators groups posts by owner, sums likes and post count, and returns
// the top n creators ordered by total likes descending, ties broken by post
// count descending.
func TopCreators(posts []postmodel.Post, users []usermodel.User, n int) []TopCreator {
	byOwner := make(map[string]*TopCreator)
	order := make([]string, 0)

	for i := range posts {
		ownerID := posts[i].Owner.ID
		entry, ok := byOwner[ownerID]
		if !ok {
			entry = &TopCreator{UserID: ownerID}
			byOwner[ownerID] = entry
			order = append(order, ownerID)
		}
		entry.Posts++
		entry.Likes += posts[i].Likes()
	}

	for i := range users {
		if entry, ok := byOwner[users[i].ID]; ok {
			entry.Username = users[i].Username
			entry.Avatar = users[i].ProfilePic
		}
	}

	ranked := make([]TopCreator, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *byOwner[id])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Likes != ranked[j].Likes {
			return ranked[i].Likes > ranked[j].Likes
		}
		return ranked[i].Posts > ranked[j].Posts
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// ReportedItem is one row of the most-reported ranking.
type ReportedItem struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Reports int    `json:"reports"`
}

// MostReportedPosts returns the n posts with the most reports, skipping
// unreported posts entirely.
func MostReportedPosts(posts []postmodel.Post, n int) []ReportedItem {
	items := make([]ReportedItem, 0)
	for i := range posts {
		if posts[i].ReportCount == 0 {
			continue
		}
		title := posts[i].Text()
		if title == "" {
			title = "Untitled Post"
		}
		items = append(items, ReportedItem{
			ID:      posts[i].ID,
			Type:    "Post",
			Title:   title,
			Reports: posts[i].ReportCount,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Reports > items[j].Reports
	})

	if len(items) > n {
		items = items[:n]
	}
	return items
}

// BucketCount is one histogram bucket. Buckets with zero members are still
// reported so chart axes stay stable.
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// GenderDistribution counts users per gender. The canonical buckets are
// always present; unexpected values get their own buckets appended in
// alphabetical order.
func GenderDistribution(users []usermodel.User) []BucketCount {
	canonical := []string{"male", "female", "other", "unknown"}
	counts := make(map[string]int, len(canonical))
	for _, label := range canonical {
		counts[label] = 0
	}

	var extras []string
	for i := range users {
		gender := users[i].Gender
		if gender == "" {
			gender = "unknown"
		}
		if _, ok := counts[gender]; !ok {
			extras = append(extras, gender)
		}
		counts[gender]++
	}
	sort.Strings(extras)

	out := make([]BucketCount, 0, len(canonical)+len(extras))
	for _, label := range append(canonical, extras...) {
		out = append(out, BucketCount{Label: label, Count: counts[label]})
	}
	return out
}

// FollowerRanges buckets users by follower count: 0-10, 11-50, 51+.
func FollowerRanges(users []usermodel.User) []BucketCount {
	buckets := []BucketCount{
		{Label: "0-10"},
		{Label: "11-50"},
		{Label: "51+"},
	}
	for i := range users {
		n := len(users[i].Followers)
		switch {
		case n <= 10:
			buckets[0].Count++
		case n <= 50:
			buckets[1].Count++
		default:
			buckets[2].Count++
		}
	}
	return buckets
}

// ReportRanges buckets posts by report count: 0, 1-3, 4+.
func ReportRanges(posts []postmodel.Post) []BucketCount {
	buckets := []BucketCount{
		{Label: "0"},
		{Label: "1-3"},
		{Label: "4+"},
	}
	for i := range posts {
		n := posts[i].ReportCount
		switch {
		case n == 0:
			buckets[0].Count++
		case n <= 3:
			buckets[1].Count++
		default:
			buckets[2].Count++
		}
	}
	return buckets
}

// MonthlyRegistrations counts new accounts per calendar month, in
// chronological order. Only observed months appear.
func MonthlyRegistrations(users []usermodel.User) []BucketCount {
	type monthKey struct {
		year  int
		month time.Month
	}
	counts := make(map[monthKey]int)
	for i := range users {
		t := users[i].CreatedAt
		counts[monthKey{t.Year(), t.Month()}]++
	}

	keys := make([]monthKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	out := make([]BucketCount, 0, len(keys))
	for _, k := range keys {
		label := fmt.Sprintf("%s %d", k.month.String()[:3], k.year)
		out = append(out, BucketCount{Label: label, Count: counts[k]})
	}
	return out
}
