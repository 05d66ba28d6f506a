package repository

import (
	"errors"

	"field-service-api/internal/models"

	"gorm.io/gorm"
)

type JobRepository interface {
	Create(job *models.Job) error
	Delete(id string) error
	GetByID(id string) (*models.Job, error)
	GetByWorkerAndDate(workerID uint, date string) ([]models.Job, error)
	GetByDate(date string) ([]models.Job, error)
	GetByWorker(workerID uint) ([]models.Job, error)
	UpdateStatus(id string, status string) error
}

type GormJobRepository struct {
	db *gorm.DB
}

func NewGormJobRepository(db *gorm.DB) (JobRepository, error) {
	if err := db.AutoMigrate(&models.Job{}); err != nil {
		return nil, err
	}

	return &GormJobRepository{db: db}, nil
}

func (r *GormJobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *GormJobRepository) Delete(id string) error {
	result := r.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("job not found")
	}
	return nil
}

func (r *GormJobRepository) GetByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByWorkerAndDate returns the worker's non-cancelled jobs for a date,
// ordered by start time. This is the snapshot the availability engine reads.
func (r *GormJobRepository) GetByWorkerAndDate(workerID uint, date string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("worker_id = ? AND date = ? AND status <> ?", workerID, date, models.JobStatusCancelled).
		Order("start_minute ASC").
		Find(&jobs).Error
	return jobs, err
}

func (r *GormJobRepository) GetByDate(date string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("date = ? AND status <> ?", date, models.JobStatusCancelled).
		Order("worker_id ASC, start_minute ASC").
		Find(&jobs).Error
	return jobs, err
}

func (r *GormJobRepository) GetByWorker(workerID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("worker_id = ?", workerID).
		Order("date ASC, start_minute ASC").
		Find(&jobs).Error
	return jobs, err
}

func (r *GormJobRepository) UpdateStatus(id string, status string) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("job not found")
	}
	return nil
}
