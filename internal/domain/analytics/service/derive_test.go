package service

import (
	"testing"
	"time"

	postmodel "stars_admin/internal/domain/post/model"
	usermodel "stars_admin/internal/domain/user/model"

	"github.com/stretchr/testify/assert"
)

func postBy(owner string, likes int, reports int) postmodel.Post {
	likedBy := make([]string, likes)
	for i := range likedBy {
		likedBy[i] = "liker"
	}
	text := "post by " + owner
	return postmodel.Post{
		ID:          owner + "-post",
		Content:     &text,
		LikedBy:     likedBy,
		Owner:       postmodel.Owner{ID: owner, Username: owner},
		ReportCount: reports,
	}
}

func TestTopCreatorsOrdering(t *testing.T) {
	// B and C tie on total likes; C posted more items and ranks first.
	posts := []postmodel.Post{
		postBy("a", 30, 0),
		postBy("b", 20, 0),
		{ID: "c-1", Owner: postmodel.Owner{ID: "c"}, LikedBy: make([]string, 10)},
		{ID: "c-2", Owner: postmodel.Owner{ID: "c"}, LikedBy: make([]string, 10)},
	}

	ranked := TopCreators(posts, nil, 5)
	assert.Len(t, ranked, 3)
	assert.Equal(t, "a", ranked[0].UserID)
	assert.Equal(t, "c", ranked[1].UserID)
	assert.Equal(t, "b", ranked[2].UserID)
	assert.Equal(t, 2, ranked[1].Posts)
	assert.Equal(t, 20, ranked[1].Likes)
}

func TestTopCreatorsCapsAtN(t *testing.T) {
	var posts []postmodel.Post
	for _, owner := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		posts = append(posts, postBy(owner, 1, 0))
	}

	ranked := TopCreators(posts, nil, 5)
	assert.Len(t, ranked, 5)
}

func TestTopCreatorsEnrichesFromUsers(t *testing.T) {
	posts := []postmodel.Post{postBy("u1", 3, 0)}
	users := []usermodel.User{{ID: "u1", Username: "stargazer", ProfilePic: "pic.png"}}

	ranked := TopCreators(posts, users, 5)
	assert.Equal(t, "stargazer", ranked[0].Username)
	assert.Equal(t, "pic.png", ranked[0].Avatar)
}

func TestMostReportedSkipsUnreported(t *testing.T) {
	posts := []postmodel.Post{
		postBy("a", 0, 0),
		postBy("b", 0, 4),
		postBy("c", 0, 1),
		postBy("d", 0, 9),
	}

	items := MostReportedPosts(posts, 3)
	assert.Len(t, items, 3)
	assert.Equal(t, "d-post", items[0].ID)
	assert.Equal(t, "b-post", items[1].ID)
	assert.Equal(t, "c-post", items[2].ID)
}

func TestMostReportedUntitledFallback(t *testing.T) {
	post := postmodel.Post{ID: "p1", ReportCount: 2}

	items := MostReportedPosts([]postmodel.Post{post}, 5)
	assert.Len(t, items, 1)
	assert.Equal(t, "Untitled Post", items[0].Title)
}

func TestGenderDistributionKeepsZeroBuckets(t *testing.T) {
	users := []usermodel.User{
		{ID: "1", Gender: "female"},
		{ID: "2", Gender: "female"},
		{ID: "3"},
	}

	buckets := GenderDistribution(users)
	byLabel := map[string]int{}
	for _, b := range buckets {
		byLabel[b.Label] = b.Count
	}

	assert.Equal(t, 2, byLabel["female"])
	assert.Equal(t, 1, byLabel["unknown"])
	// Empty buckets are still present for stable chart axes.
	assert.Contains(t, byLabel, "male")
	assert.Equal(t, 0, byLabel["male"])
	assert.Equal(t, 0, byLabel["other"])
}

func TestFollowerRangeBoundaries(t *testing.T) {
	mk := func(n int) usermodel.User {
		return usermodel.User{Followers: make([]string, n)}
	}
	users := []usermodel.User{mk(0), mk(10), mk(11), mk(50), mk(51)}

	buckets := FollowerRanges(users)
	assert.Equal(t, 2, buckets[0].Count) // 0-10
	assert.Equal(t, 2, buckets[1].Count) // 11-50
	assert.Equal(t, 1, buckets[2].Count) // 51+
}

func TestReportRangeBoundaries(t *testing.T) {
	posts := []postmodel.Post{
		postBy("a", 0, 0),
		postBy("b", 0, 1),
		postBy("c", 0, 3),
		postBy("d", 0, 4),
	}

	buckets := ReportRanges(posts)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, 2, buckets[1].Count)
	assert.Equal(t, 1, buckets[2].Count)
}

func TestMonthlyRegistrationsChronological(t *testing.T) {
	users := []usermodel.User{
		{ID: "1", CreatedAt: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "2", CreatedAt: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "3", CreatedAt: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "4", CreatedAt: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	buckets := MonthlyRegistrations(users)
	assert.Equal(t, []BucketCount{
		{Label: "Dec 2024", Count: 1},
		{Label: "Jan 2025", Count: 1},
		{Label: "Mar 2025", Count: 2},
	}, buckets)
}
