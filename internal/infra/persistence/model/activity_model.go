package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLogModel is the GORM-specific struct for the 'activity_logs' table.
// Actor and entity IDs are opaque backend identifiers, so they are stored as text.
type ActivityLogModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key"`
	ActorID    string         `gorm:"type:text;not null;index"`
	ActorRole  string         `gorm:"type:text;not null"`
	Action     string         `gorm:"type:text;not null;index"`
	EntityType string         `gorm:"type:text;not null"`
	EntityID   string         `gorm:"type:text;not null"`
	IP         string         `gorm:"type:text"`
	UserAgent  string         `gorm:"type:text"`
	Metadata   datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt  time.Time      `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
