package model

import (
	"path"
	"strings"
	"time"
)

// Moderation status of a post.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Owner is the denormalized subset of the author the social service embeds.
type Owner struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Picture   string `json:"picture"`
}

// FullName joins first and last name.
func (o *Owner) FullName() string {
	if o.FirstName == "" {
		return o.LastName
	}
	if o.LastName == "" {
		return o.FirstName
	}
	return o.FirstName + " " + o.LastName
}

// Post is a text/image post as returned by the social service.
type Post struct {
	ID          string    `json:"id"`
	Content     *string   `json:"content"`
	Files       []string  `json:"files"`
	CommentIDs  []string  `json:"commentIds"`
	LikedBy     []string  `json:"likedBy"`
	Owner       Owner     `json:"owner"`
	Status      string    `json:"status"`
	ReportCount int       `json:"reportCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Text returns the post content, empty when absent.
func (p *Post) Text() string {
	if p.Content == nil {
		return ""
	}
	return *p.Content
}

// Likes returns the like count.
func (p *Post) Likes() int {
	return len(p.LikedBy)
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".webm": true,
	".avi":  true,
	".mkv":  true,
}

// MediaType infers image/video from a file URL extension.
func MediaType(fileURL string) string {
	ext := strings.ToLower(path.Ext(fileURL))
	if videoExtensions[ext] {
		return "video"
	}
	return "image"
}

// PostsResponse is the paginated envelope of the posts endpoint.
type PostsResponse struct {
	Data  []Post `json:"data"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// Stats is the platform-wide count summary from GET /social/stats.
type Stats struct {
	Posts    int `json:"posts"`
	Reels    int `json:"reels"`
	Comments int `json:"comments"`
	Users    int `json:"users"`
}
