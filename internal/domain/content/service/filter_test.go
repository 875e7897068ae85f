package service

import (
	"testing"
	"time"

	"stars_admin/internal/domain/content/model"

	"github.com/stretchr/testify/assert"
)

func testReel(id string, score float64, likes, reports int, created time.Time) model.ContentItem {
	return model.ContentItem{
		ID:          id,
		Profile:     model.Profile{ID: "owner-" + id, Name: "Creator " + id},
		Description: "reel " + id,
		Score:       score,
		Likes:       likes,
		ReportCount: reports,
		Status:      "APPROVED",
		Label:       "Neutral",
		CreatedAt:   created,
	}
}

func TestScoreBucketPartition(t *testing.T) {
	cases := []struct {
		score float64
		want  model.ScoreBucket
	}{
		{0, model.ScoreLow},
		{0.49, model.ScoreLow},
		{0.5, model.ScoreMedium},
		{0.8, model.ScoreMedium},
		{0.81, model.ScoreHigh},
		{1, model.ScoreHigh},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, model.BucketFor(tc.score), "score %v", tc.score)
	}
}

func TestFilterByScoreBucket(t *testing.T) {
	now := time.Now()
	items := []model.ContentItem{
		testReel("a", 0.2, 5, 0, now),
		testReel("b", 0.5, 9, 1, now),
		testReel("c", 0.95, 2, 3, now),
	}

	low := Filter(items, Criteria{Score: model.ScoreLow})
	assert.Len(t, low, 1)
	assert.Equal(t, "a", low[0].ID)

	medium := Filter(items, Criteria{Score: model.ScoreMedium})
	assert.Len(t, medium, 1)
	assert.Equal(t, "b", medium[0].ID)

	all := Filter(items, Criteria{})
	assert.Len(t, all, 3)
}

func TestFilterIsConjunction(t *testing.T) {
	now := time.Now()
	items := []model.ContentItem{
		testReel("a", 0.9, 5, 2, now),
		testReel("b", 0.9, 9, 0, now),
	}

	got := Filter(items, Criteria{Score: model.ScoreHigh, ReportedOnly: true})
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestFilterSearchMatchesDescriptionAndCreator(t *testing.T) {
	now := time.Now()
	items := []model.ContentItem{
		testReel("a", 0.1, 0, 0, now),
		testReel("b", 0.1, 0, 0, now),
	}
	items[0].Description = "Sunset timelapse"
	items[1].Profile.Name = "SUNSET studio"

	got := Filter(items, Criteria{Search: "sunset"})
	assert.Len(t, got, 2)

	got = Filter(items, Criteria{Search: "timelapse"})
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestFilterDateWindow(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []model.ContentItem{
		testReel("a", 0.1, 0, 0, base.AddDate(0, 0, -5)),
		testReel("b", 0.1, 0, 0, base),
		testReel("c", 0.1, 0, 0, base.AddDate(0, 0, 5)),
	}

	got := Filter(items, Criteria{From: base.AddDate(0, 0, -1), To: base.AddDate(0, 0, 1)})
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestSortPreservesTies(t *testing.T) {
	now := time.Now()
	items := []model.ContentItem{
		testReel("a", 0.3, 7, 0, now),
		testReel("b", 0.3, 7, 0, now),
		testReel("c", 0.9, 1, 0, now),
	}

	Sort(items, SortSpec{Field: SortByScore, Desc: true})
	assert.Equal(t, "c", items[0].ID)
	// Equal scores keep their input order.
	assert.Equal(t, "a", items[1].ID)
	assert.Equal(t, "b", items[2].ID)
}

func TestSortByLikesAscending(t *testing.T) {
	now := time.Now()
	items := []model.ContentItem{
		testReel("a", 0, 9, 0, now),
		testReel("b", 0, 1, 0, now),
		testReel("c", 0, 5, 0, now),
	}

	Sort(items, SortSpec{Field: SortByLikes, Desc: false})
	assert.Equal(t, []string{items[0].ID, items[1].ID, items[2].ID}, []string{"b", "c", "a"})
}
