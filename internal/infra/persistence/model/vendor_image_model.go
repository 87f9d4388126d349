package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorImageModel mirrors the 'vendor_images' table. The bytes live in the
// object storage bucket under ObjectKey; this row is the metadata.
type VendorImageModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	VendorUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	ObjectKey    string    `gorm:"type:varchar(255);not null;unique"`
	URL          string    `gorm:"type:text;not null"`
	ContentType  string    `gorm:"type:varchar(100)"`
	SizeBytes    int64
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorImageModel) TableName() string {
	return "vendor_images"
}
