package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreImageModel is the GORM-specific struct for the 'store_images' table.
type StoreImageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	StoreID     string    `gorm:"type:text;not null;index"`
	Kind        string    `gorm:"type:text;not null"`
	ObjectKey   string    `gorm:"type:text;not null;uniqueIndex"`
	URL         string    `gorm:"type:text;not null"`
	ContentType string    `gorm:"type:text;not null"`
	Size        int64     `gorm:"not null"`
	UploadedBy  string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (StoreImageModel) TableName() string {
	return "store_images"
}
