package models

import "time"

// AuditLog records the outcome of every initiation and confirmation attempt.
// Trust rejections land here with enough detail to investigate later.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Action     string    `gorm:"size:100;not null;index" json:"action"`
	Reason     string    `gorm:"size:100;index" json:"reason"`
	UserID     string    `gorm:"size:128;index" json:"user_id"`
	DocumentID string    `gorm:"size:128;index" json:"document_id"`
	GatewayRef string    `gorm:"size:128;index" json:"gateway_ref"`
	Amount     int64     `json:"amount"`
	IP         string    `gorm:"size:45" json:"ip"`
	CreatedAt  time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
