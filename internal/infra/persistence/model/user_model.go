// Package model defines the GORM representations of the domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Emails are stored lowercased so the
// unique index doubles as the case-insensitive uniqueness guarantee.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	Name            string    `gorm:"type:varchar(255);not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Role            string    `gorm:"type:varchar(20);not null"`
	PatientProfile  *PatientProfileModel  `gorm:"foreignKey:UserID"`
	ProviderProfile *ProviderProfileModel `gorm:"foreignKey:UserID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PatientProfileModel mirrors the 'patient_profiles' table.
type PatientProfileModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Age       int       `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientProfileModel) TableName() string {
	return "patient_profiles"
}

// ProviderProfileModel mirrors the 'provider_profiles' table.
type ProviderProfileModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Specialty     string    `gorm:"type:varchar(100)"`
	LicenseNumber string    `gorm:"type:varchar(100)"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderProfileModel) TableName() string {
	return "provider_profiles"
}
