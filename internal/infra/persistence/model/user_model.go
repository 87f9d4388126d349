// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The primary key is NOT generated
// locally; it is the user ID assigned by the identity provider, so both
// systems share one identifier.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CustomerProfile *CustomerProfileModel `gorm:"foreignKey:UserID"`
	VendorProfile   *VendorProfileModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CustomerProfileModel mirrors the 'customers' table. UserID references users.id (UUID).
type CustomerProfileModel struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Phone     string    `gorm:"type:varchar(10);not null"`
	Gender    string    `gorm:"type:varchar(20)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerProfileModel) TableName() string {
	return "customers"
}

// VendorProfileModel mirrors the 'vendors' table. UserID references users.id (UUID).
// Categories is stored as a JSONB array.
type VendorProfileModel struct {
	UserID       uuid.UUID `gorm:"primaryKey"`
	VendorName   string    `gorm:"type:varchar(100);not null"`
	BusinessName string    `gorm:"type:varchar(150);not null"`
	Phone        string    `gorm:"type:varchar(10);not null"`
	PAN          string    `gorm:"column:pan;type:varchar(10);not null"`
	Aadhaar      string    `gorm:"type:varchar(12);not null"`
	GST          string    `gorm:"column:gst;type:varchar(15)"`
	Categories   []byte    `gorm:"type:jsonb;not null;default:'[]'"`
	Address      string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendors"
}
