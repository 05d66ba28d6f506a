package service

import (
	"context"
	"fmt"

	"field-service-api/internal/models"
	"field-service-api/internal/repository"
	"field-service-api/pkg/timeslot"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Notifier pushes dispatch notifications; implemented by pkg/telegram.
type Notifier interface {
	Notify(text string) error
}

type JobService struct {
	jobRepo             repository.JobRepository
	workerRepo          repository.WorkerRepository
	availabilityService *AvailabilityService
	notifier            Notifier
	logger              *logrus.Logger
}

func NewJobService(
	jobRepo repository.JobRepository,
	workerRepo repository.WorkerRepository,
	availabilityService *AvailabilityService,
	notifier Notifier,
) *JobService {
	return &JobService{
		jobRepo:             jobRepo,
		workerRepo:          workerRepo,
		availabilityService: availabilityService,
		notifier:            notifier,
		logger:              logrus.New(),
	}
}

// AssignJob creates a job for a worker after checking that it fits the
// worker's remaining availability (working hours minus existing jobs minus
// driving buffers). Assignments that do not fit fail with
// ErrScheduleConflict; there is no force path here.
func (s *JobService) AssignJob(ctx context.Context, workerID uint, date string, startMinute, durationMinutes int, title string) (*models.Job, error) {
	s.logger.WithFields(logrus.Fields{
		"worker_id": workerID,
		"date":      date,
		"start":     startMinute,
		"duration":  durationMinutes,
	}).Info("Assigning job")

	job := &models.Job{
		ID:              uuid.NewString(),
		WorkerID:        workerID,
		Date:            date,
		StartMinute:     startMinute,
		DurationMinutes: durationMinutes,
		Title:           title,
		Status:          models.JobStatusScheduled,
	}

	if !job.IsValid() {
		return nil, fmt.Errorf("invalid job: date must be YYYY-MM-DD, start 0-1439, duration > 0 and within the day")
	}

	worker, err := s.workerRepo.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}

	candidate := &models.Candidate{
		StartMinute:     startMinute,
		DurationMinutes: durationMinutes,
	}
	result, err := s.availabilityService.WorkerDay(ctx, workerID, date, candidate)
	if err != nil {
		return nil, err
	}

	if !result.IsAvailableForCandidate {
		s.logger.WithFields(logrus.Fields{
			"worker_id": workerID,
			"date":      date,
		}).Warn("Job assignment conflicts with worker availability")
		s.notify(fmt.Sprintf("Conflict: %q does not fit %s's schedule on %s at %s",
			title, worker.Name, date, timeslot.FormatTime12(startMinute)))
		return nil, ErrScheduleConflict
	}

	if err := s.jobRepo.Create(job); err != nil {
		s.logger.WithError(err).Error("Failed to create job")
		return nil, err
	}

	s.availabilityService.Invalidate(ctx, workerID, date)

	s.logger.WithField("id", job.ID).Info("Job assigned successfully")
	s.notify(fmt.Sprintf("%s: %q assigned to %s, %s", date, title, worker.Name, job.Interval().Label()))

	return job, nil
}

// CancelJob marks a job cancelled; cancelled jobs stop counting as busy time.
func (s *JobService) CancelJob(ctx context.Context, id string) error {
	job, err := s.jobRepo.GetByID(id)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("job %s not found", id)
	}

	if err := s.jobRepo.UpdateStatus(id, models.JobStatusCancelled); err != nil {
		s.logger.WithError(err).Error("Failed to cancel job")
		return err
	}

	s.availabilityService.Invalidate(ctx, job.WorkerID, job.Date)

	s.logger.WithField("id", id).Info("Job cancelled")
	return nil
}

func (s *JobService) GetJob(id string) (*models.Job, error) {
	return s.jobRepo.GetByID(id)
}

func (s *JobService) ListForWorkerDate(workerID uint, date string) ([]models.Job, error) {
	return s.jobRepo.GetByWorkerAndDate(workerID, date)
}

func (s *JobService) ListForDate(date string) ([]models.Job, error) {
	return s.jobRepo.GetByDate(date)
}

// notify sends asynchronously; dispatch notifications must never block or
// fail an assignment.
func (s *JobService) notify(text string) {
	if s.notifier == nil {
		return
	}
	go func() {
		if err := s.notifier.Notify(text); err != nil {
			s.logger.WithError(err).Error("Failed to send dispatch notification")
		}
	}()
}
