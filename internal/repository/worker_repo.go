package repository

import (
	"errors"
	"time"

	"field-service-api/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type WorkerRepository interface {
	Create(worker *models.Worker) error
	Update(worker *models.Worker) error
	Delete(id uint) error
	GetByID(id uint) (*models.Worker, error)
	GetByEmail(email string) (*models.Worker, error)
	GetAll() ([]*models.Worker, error)
	UpdateAvailability(id uint, payload string) error
}

type GormWorkerRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormWorkerRepository(db *gorm.DB) (*GormWorkerRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.Worker{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate workers table")
		return nil, err
	}

	logger.Info("Worker repository initialized")

	return &GormWorkerRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormWorkerRepository) Create(worker *models.Worker) error {
	r.logger.WithFields(logrus.Fields{
		"name": worker.Name,
		"role": worker.Role,
	}).Info("Creating worker")

	if worker.Name == "" {
		r.logger.Warn("Worker name is required")
		return errors.New("worker name is required")
	}

	now := time.Now().Unix()
	worker.CreatedAt = now
	worker.UpdatedAt = now

	result := r.db.Create(worker)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create worker")
		return result.Error
	}

	r.logger.WithField("id", worker.ID).Info("Worker created successfully")
	return nil
}

func (r *GormWorkerRepository) Update(worker *models.Worker) error {
	r.logger.WithField("id", worker.ID).Info("Updating worker")

	existing, err := r.GetByID(worker.ID)
	if err != nil {
		r.logger.WithError(err).Error("Failed to get worker for update")
		return err
	}
	if existing == nil {
		r.logger.WithField("id", worker.ID).Warn("Worker not found for update")
		return errors.New("worker not found")
	}

	worker.UpdatedAt = time.Now().Unix()

	result := r.db.Save(worker)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update worker")
		return result.Error
	}

	r.logger.WithField("id", worker.ID).Info("Worker updated successfully")
	return nil
}

func (r *GormWorkerRepository) Delete(id uint) error {
	r.logger.WithField("id", id).Info("Deleting worker")

	result := r.db.Delete(&models.Worker{}, id)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete worker")
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.WithField("id", id).Warn("Worker not found for deletion")
		return errors.New("worker not found")
	}

	r.logger.WithField("id", id).Info("Worker deleted successfully")
	return nil
}

func (r *GormWorkerRepository) GetByID(id uint) (*models.Worker, error) {
	var worker models.Worker
	result := r.db.First(&worker, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("Worker not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get worker by ID")
		return nil, result.Error
	}

	return &worker, nil
}

func (r *GormWorkerRepository) GetByEmail(email string) (*models.Worker, error) {
	var worker models.Worker
	result := r.db.Where("email = ?", email).First(&worker)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get worker by email")
		return nil, result.Error
	}

	return &worker, nil
}

func (r *GormWorkerRepository) GetAll() ([]*models.Worker, error) {
	var workers []*models.Worker
	result := r.db.Order("name ASC").Find(&workers)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get all workers")
		return nil, result.Error
	}

	r.logger.WithField("count", len(workers)).Debug("Retrieved all workers")
	return workers, nil
}

func (r *GormWorkerRepository) UpdateAvailability(id uint, payload string) error {
	r.logger.WithField("id", id).Info("Updating worker availability")

	result := r.db.Model(&models.Worker{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"availability": payload,
			"updated_at":   time.Now().Unix(),
		})

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update worker availability")
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.WithField("id", id).Warn("Worker not found for availability update")
		return errors.New("worker not found")
	}

	return nil
}
