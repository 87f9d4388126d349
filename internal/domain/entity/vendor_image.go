// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VendorImage is the metadata record for an image a vendor uploaded to the
// object storage bucket. The bytes live in the bucket under ObjectKey; only
// the metadata lives in the credential store database.
type VendorImage struct {
	ID           uuid.UUID `json:"id"`
	VendorUserID uuid.UUID `json:"vendor_user_id"`
	ObjectKey    string    `json:"object_key"`
	URL          string    `json:"url"`
	ContentType  string    `json:"content_type"`
	SizeBytes    int64     `json:"size_bytes"`
	CreatedAt    time.Time `json:"created_at"`
}
