package models

import (
	"time"

	"field-service-api/pkg/timeslot"
)

const (
	JobStatusScheduled = "scheduled"
	JobStatusCompleted = "completed"
	JobStatusCancelled = "cancelled"
)

// Job is a visit assigned to a worker on one calendar date. Duration is
// always explicit; jobs without a positive duration are rejected at the
// boundary instead of falling back to an implicit default.
type Job struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	WorkerID        uint      `gorm:"not null;index" json:"worker_id"`
	Date            string    `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	StartMinute     int       `gorm:"not null" json:"start_minute"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Title           string    `json:"title"`
	Status          string    `gorm:"default:'scheduled'" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Worker Worker `gorm:"foreignKey:WorkerID" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}

// EndMinute returns the minute the job finishes.
func (j *Job) EndMinute() int {
	return j.StartMinute + j.DurationMinutes
}

// Interval returns the job's busy window as a half-open interval.
func (j *Job) Interval() timeslot.Interval {
	return timeslot.Interval{Start: j.StartMinute, End: j.EndMinute()}
}

// IsValid checks the job data.
func (j *Job) IsValid() bool {
	if j.WorkerID == 0 {
		return false
	}
	if _, err := time.Parse(DateLayout, j.Date); err != nil {
		return false
	}
	if j.StartMinute < 0 || j.StartMinute >= timeslot.MinutesPerDay {
		return false
	}
	if j.DurationMinutes <= 0 || j.EndMinute() > timeslot.MinutesPerDay {
		return false
	}
	return true
}
