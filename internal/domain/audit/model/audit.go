package model

import (
	"time"

	"github.com/google/uuid"
)

// Outcome values for a recorded moderation action.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// ActionRecord is one row of the moderation audit trail.
type ActionRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ActorID   string    `gorm:"size:64;index" json:"actorId"`
	Entity    string    `gorm:"size:16;not null" json:"entity"`
	EntityID  string    `gorm:"size:64;not null;index" json:"entityId"`
	Action    string    `gorm:"size:32;not null" json:"action"`
	Outcome   string    `gorm:"size:16;not null" json:"outcome"`
	Detail    string    `gorm:"size:512" json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName keeps the historical table name.
func (ActionRecord) TableName() string {
	return "moderation_audit"
}
