package service

import (
	"context"
	"fmt"

	"field-service-api/internal/availability"
	"field-service-api/internal/models"
	"field-service-api/internal/repository"

	"github.com/sirupsen/logrus"
)

type WorkerService struct {
	workerRepo          repository.WorkerRepository
	availabilityService *AvailabilityService
	logger              *logrus.Logger
}

func NewWorkerService(
	workerRepo repository.WorkerRepository,
	availabilityService *AvailabilityService,
) *WorkerService {
	return &WorkerService{
		workerRepo:          workerRepo,
		availabilityService: availabilityService,
		logger:              logrus.New(),
	}
}

// CreateWorker registers a new worker. A schedule payload, when supplied,
// is validated up front so bad data never reaches storage.
func (s *WorkerService) CreateWorker(name, phone, email, role, scheduleJSON string) (*models.Worker, error) {
	s.logger.WithFields(logrus.Fields{
		"name": name,
		"role": role,
	}).Info("Creating worker")

	if role == "" {
		role = models.RoleTechnician
	}
	if role != models.RoleTechnician && role != models.RoleDispatcher {
		return nil, fmt.Errorf("unknown worker role %q", role)
	}

	if scheduleJSON != "" {
		if _, err := availability.NormalizeScheduleConfig([]byte(scheduleJSON)); err != nil {
			s.logger.WithError(err).Warn("Rejecting worker with invalid schedule payload")
			return nil, err
		}
	}

	worker := &models.Worker{
		Name:         name,
		Phone:        phone,
		Email:        email,
		Role:         role,
		Availability: scheduleJSON,
	}

	if err := s.workerRepo.Create(worker); err != nil {
		s.logger.WithError(err).Error("Failed to create worker")
		return nil, err
	}

	return worker, nil
}

func (s *WorkerService) GetWorker(id uint) (*models.Worker, error) {
	worker, err := s.workerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}
	return worker, nil
}

func (s *WorkerService) ListWorkers() ([]*models.Worker, error) {
	return s.workerRepo.GetAll()
}

func (s *WorkerService) DeleteWorker(ctx context.Context, id uint) error {
	s.logger.WithField("id", id).Info("Deleting worker")

	if err := s.workerRepo.Delete(id); err != nil {
		return err
	}

	s.availabilityService.InvalidateWorker(ctx, id)
	return nil
}

// UpdateSchedule replaces a worker's availability payload. The payload is
// normalized first: this is where malformed shapes and time strings are
// rejected, in every format the normalizer accepts.
func (s *WorkerService) UpdateSchedule(ctx context.Context, workerID uint, scheduleJSON string) (*models.WorkerScheduleConfig, error) {
	s.logger.WithField("worker_id", workerID).Info("Updating worker schedule")

	config, err := availability.NormalizeScheduleConfig([]byte(scheduleJSON))
	if err != nil {
		s.logger.WithError(err).WithField("worker_id", workerID).Warn("Invalid schedule payload")
		return nil, err
	}

	if err := s.workerRepo.UpdateAvailability(workerID, scheduleJSON); err != nil {
		s.logger.WithError(err).Error("Failed to store worker schedule")
		return nil, err
	}

	// Any cached day may be stale now.
	s.availabilityService.InvalidateWorker(ctx, workerID)

	return config, nil
}

// GetScheduleConfig returns the decoded canonical schedule for a worker.
func (s *WorkerService) GetScheduleConfig(workerID uint) (*models.WorkerScheduleConfig, error) {
	worker, err := s.GetWorker(workerID)
	if err != nil {
		return nil, err
	}
	return availability.NormalizeScheduleConfig([]byte(worker.Availability))
}
