package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsentRecordModel mirrors the 'consent_records' table.
type ConsentRecordModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_consent_user_type"`
	ConsentType string     `gorm:"type:varchar(50);not null;index:idx_consent_user_type"`
	Version     string     `gorm:"type:varchar(20);not null"`
	Granted     bool       `gorm:"not null"`
	GrantedAt   time.Time  `gorm:"not null"`
	RevokedAt   *time.Time
	Method      string `gorm:"type:varchar(50)"`
	IPAddress   string `gorm:"type:varchar(45)"`
}

// TableName explicitly sets the table name for GORM.
func (ConsentRecordModel) TableName() string {
	return "consent_records"
}
