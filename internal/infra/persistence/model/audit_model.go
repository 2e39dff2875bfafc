package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntryModel mirrors the 'audit_entries' table. Rows are insert-only.
type AuditEntryModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       *uuid.UUID `gorm:"type:uuid;index"`
	UserEmail    *string    `gorm:"type:varchar(255)"`
	UserRole     *string    `gorm:"type:varchar(20)"`
	Action       string     `gorm:"type:varchar(50);not null;index"`
	ResourceType string     `gorm:"type:varchar(50)"`
	ResourceID   *string    `gorm:"type:varchar(100)"`
	Method       string     `gorm:"type:varchar(10)"`
	Endpoint     string     `gorm:"type:varchar(255)"`
	IPAddress    string     `gorm:"type:varchar(45)"`
	UserAgent    string     `gorm:"type:varchar(512)"`
	Details      string     `gorm:"type:text"`
	Success      bool       `gorm:"not null"`
	ErrorMessage *string    `gorm:"type:text"`
	Timestamp    time.Time  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditEntryModel) TableName() string {
	return "audit_entries"
}
