package model

import "time"

// ScoreBucket partitions the AI moderation score into three ranges:
// low [0,0.5), medium [0.5,0.8], high (0.8,1]. Every score falls in exactly
// one bucket.
type ScoreBucket string

const (
	ScoreAny    ScoreBucket = ""
	ScoreLow    ScoreBucket = "low"
	ScoreMedium ScoreBucket = "medium"
	ScoreHigh   ScoreBucket = "high"
)

// BucketFor returns the bucket a score falls into.
func BucketFor(score float64) ScoreBucket {
	switch {
	case score < 0.5:
		return ScoreLow
	case score <= 0.8:
		return ScoreMedium
	default:
		return ScoreHigh
	}
}

// Matches reports whether the score falls in this bucket. The zero bucket
// matches everything.
func (b ScoreBucket) Matches(score float64) bool {
	return b == ScoreAny || BucketFor(score) == b
}

// Profile is the denormalized owner subset embedded in a reel.
type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Transcription is the AI-derived speech analysis of a reel.
type Transcription struct {
	Text      string `json:"text"`
	Label     string `json:"label"`
	Sentiment string `json:"sentiment"`
}

// Settings are the per-reel content flags.
type Settings struct {
	Premium       bool `json:"premium"`
	AllowComments bool `json:"allowComments"`
	AllowSave     bool `json:"allowSave"`
	Watermark     bool `json:"watermark"`
}

// ContentItem is a short-form video (reel) as returned by the reel service.
type ContentItem struct {
	ID            string         `json:"id"`
	Profile       Profile        `json:"profile"`
	VideoURL      string         `json:"videoUrl"`
	Description   string         `json:"description"`
	Hashtags      []string       `json:"hashtags"`
	Likes         int            `json:"likes"`
	FavoriteCount int            `json:"favoriteCount"`
	ShareCount    int            `json:"shareCount"`
	Score         float64        `json:"score"`
	Label         string         `json:"label"`
	Transcription *Transcription `json:"transcription,omitempty"`
	Status        string         `json:"status"`
	ReportCount   int            `json:"reportCount"`
	Settings      Settings       `json:"contentSettings"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
