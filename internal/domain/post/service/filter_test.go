package service

import (
	"testing"
	"time"

	"stars_admin/internal/domain/post/model"

	"github.com/stretchr/testify/assert"
)

func testPost(id, content string, likes, reports int, created time.Time) model.Post {
	text := content
	likedBy := make([]string, likes)
	for i := range likedBy {
		likedBy[i] = "liker"
	}
	return model.Post{
		ID:          id,
		Content:     &text,
		LikedBy:     likedBy,
		Owner:       model.Owner{ID: "owner-" + id, FirstName: "Ada", LastName: "Lovelace", Username: "ada_" + id},
		Status:      model.StatusApproved,
		ReportCount: reports,
		CreatedAt:   created,
	}
}

func TestPostFilterBySearch(t *testing.T) {
	now := time.Now()
	posts := []model.Post{
		testPost("a", "Morning coffee", 0, 0, now),
		testPost("b", "Trail run", 0, 0, now),
	}

	got := Filter(posts, Criteria{Search: "coffee"})
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	// Search also covers the owner's name and username.
	got = Filter(posts, Criteria{Search: "ada_b"})
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	got = Filter(posts, Criteria{Search: "lovelace"})
	assert.Len(t, got, 2)
}

func TestPostFilterByStatusAndReports(t *testing.T) {
	now := time.Now()
	posts := []model.Post{
		testPost("a", "x", 0, 2, now),
		testPost("b", "y", 0, 0, now),
	}
	posts[1].Status = model.StatusPending

	got := Filter(posts, Criteria{Status: model.StatusPending})
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	got = Filter(posts, Criteria{ReportedOnly: true})
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestPostFilterNilContent(t *testing.T) {
	now := time.Now()
	post := testPost("a", "", 0, 0, now)
	post.Content = nil

	got := Filter([]model.Post{post}, Criteria{Search: "anything"})
	assert.Empty(t, got)

	got = Filter([]model.Post{post}, Criteria{})
	assert.Len(t, got, 1)
}

func TestPostSortByLikesDesc(t *testing.T) {
	now := time.Now()
	posts := []model.Post{
		testPost("a", "x", 1, 0, now),
		testPost("b", "y", 8, 0, now),
		testPost("c", "z", 3, 0, now),
	}

	Sort(posts, SortSpec{Field: SortByLikes, Desc: true})
	assert.Equal(t, "b", posts[0].ID)
	assert.Equal(t, "c", posts[1].ID)
	assert.Equal(t, "a", posts[2].ID)
}

func TestPostSortByCreatedAtDefault(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	posts := []model.Post{
		testPost("a", "x", 0, 0, base.AddDate(0, 0, 2)),
		testPost("b", "y", 0, 0, base),
	}

	Sort(posts, SortSpec{Field: SortByCreatedAt, Desc: false})
	assert.Equal(t, "b", posts[0].ID)
	assert.Equal(t, "a", posts[1].ID)
}
