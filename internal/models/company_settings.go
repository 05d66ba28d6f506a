package models

import (
	"time"

	"field-service-api/pkg/timeslot"
)

// CompanySettings is a single-row table with company-wide scheduling policy.
type CompanySettings struct {
	ID                        uint      `gorm:"primarykey" json:"id"`
	DefaultDrivingTimeMinutes int       `gorm:"not null;default:0" json:"default_driving_time_minutes"`
	MinSlotMinutes            int       `gorm:"not null;default:15" json:"min_slot_minutes"`
	CreatedAt                 time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                 time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CompanySettings) TableName() string {
	return "company_settings"
}

// IsValid checks the settings data.
func (s *CompanySettings) IsValid() bool {
	if s.DefaultDrivingTimeMinutes < 0 || s.DefaultDrivingTimeMinutes > timeslot.MinutesPerDay {
		return false
	}
	if s.MinSlotMinutes < 0 || s.MinSlotMinutes > timeslot.MinutesPerDay {
		return false
	}
	return true
}
