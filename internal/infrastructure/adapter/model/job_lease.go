package model

import (
	"time"
)

// JobLease marks which instance currently runs a named background job
type JobLease struct {
	Name      string    `gorm:"primaryKey;size:100"`
	Holder    string    `gorm:"not null;size:255"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for JobLease
func (JobLease) TableName() string {
	return "job_leases"
}
