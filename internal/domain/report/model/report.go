package model

import "time"

// Report status values.
const (
	StatusPending  = "PENDING"
	StatusResolved = "RESOLVED"
	StatusRejected = "REJECTED"
)

// Reported entity types.
const (
	EntityPost = "post"
	EntityReel = "reel"
)

// ReasonDetails classifies why an entity was reported.
type ReasonDetails struct {
	MainReason string `json:"mainReason"`
	SubReason  string `json:"subReason"`
	Details    string `json:"details"`
}

// Report is a user report against a post or reel. Reports are read-only
// from the dashboard's perspective; resolution happens elsewhere.
type Report struct {
	ID                 string        `json:"id"`
	ReporterID         string        `json:"reporterId"`
	ReportedEntityType string        `json:"reportedEntityType"`
	ReportedEntityID   string        `json:"reportedEntityId"`
	ReasonDetails      ReasonDetails `json:"reasonDetails"`
	Status             string        `json:"status"`
	ResolutionDetails  string        `json:"resolutionDetails"`
	ResolutionDate     *time.Time    `json:"resolutionDate"`
	ResolverID         string        `json:"resolverId"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// ReportsResponse is the list envelope for report queries.
type ReportsResponse struct {
	Data  []Report `json:"data"`
	Total int      `json:"total"`
}
