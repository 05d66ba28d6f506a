package models

type WorkerRole string

const (
	RoleTechnician string = "technician"
	RoleDispatcher string = "dispatcher"
)

type Worker struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
	Name      string `gorm:"not null" json:"name"`
	Phone     string `json:"phone"`
	Email     string `gorm:"uniqueIndex" json:"email"`
	Role      string `gorm:"default:'technician'" json:"role"`

	// Availability is the schedule payload exactly as received from the
	// client: weekly working hours, date overrides and the optional
	// driving-time override, JSON-encoded. Decoded and validated through
	// availability.NormalizeScheduleConfig, never read directly.
	Availability string `json:"availability"`
}

// IsDispatcher reports whether the worker can manage other workers' jobs.
func (w *Worker) IsDispatcher() bool {
	return w.Role == RoleDispatcher
}

// SetRole sets the worker role.
func (w *Worker) SetRole(role WorkerRole) {
	w.Role = string(role)
}

// TableName sets the database table name.
func (Worker) TableName() string {
	return "workers"
}
