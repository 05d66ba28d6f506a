package service

import (
	"context"
	"errors"
	"sync"

	"field-service-api/internal/availability"
	"field-service-api/internal/models"
	"field-service-api/internal/repository"
	"field-service-api/pkg/timeslot"

	"github.com/sirupsen/logrus"
)

var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrScheduleConflict = errors.New("job does not fit the worker's remaining availability")
)

// ParseErrorPolicy controls what happens when a worker's stored schedule
// payload cannot be parsed. The engine never substitutes defaults on its
// own; the choice is made explicitly here, per service instance.
type ParseErrorPolicy int

const (
	// ParseErrorFail surfaces the parse error to the caller.
	ParseErrorFail ParseErrorPolicy = iota
	// ParseErrorDefaultOpen falls back to a 09:00-18:00 day, the default
	// the legacy call sites assumed.
	ParseErrorDefaultOpen
)

var defaultOpenHours = timeslot.Interval{Start: 540, End: 1080}

type AvailabilityService struct {
	workerRepo   repository.WorkerRepository
	jobRepo      repository.JobRepository
	settingsRepo repository.CompanySettingsRepository
	cache        *AvailabilityCache
	policy       ParseErrorPolicy
	logger       *logrus.Logger
}

func NewAvailabilityService(
	workerRepo repository.WorkerRepository,
	jobRepo repository.JobRepository,
	settingsRepo repository.CompanySettingsRepository,
	cache *AvailabilityCache,
	policy ParseErrorPolicy,
) *AvailabilityService {
	return &AvailabilityService{
		workerRepo:   workerRepo,
		jobRepo:      jobRepo,
		settingsRepo: settingsRepo,
		cache:        cache,
		policy:       policy,
		logger:       logrus.New(),
	}
}

// WorkerDay computes the availability picture for one worker on one date,
// optionally testing a candidate job for fit.
//
// RemainingIntervals come back filtered by the company's minimum bookable
// slot; the totals still reflect unfiltered time, since a sliver shorter
// than the minimum is free time even when it is not bookable.
func (s *AvailabilityService) WorkerDay(ctx context.Context, workerID uint, date string, candidate *models.Candidate) (*models.AvailabilityResult, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load company settings")
		return nil, err
	}

	// Candidate-less lookups are the hot path (calendar grids); only those
	// are cached.
	if candidate == nil && s.cache != nil {
		if cached, ok := s.cache.Get(ctx, workerID, date); ok {
			return cached, nil
		}
	}

	worker, err := s.workerRepo.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}

	result, err := s.computeForWorker(worker, date, settings, candidate)
	if err != nil {
		return nil, err
	}

	if candidate == nil && s.cache != nil {
		s.cache.Set(ctx, workerID, date, result)
	}

	return result, nil
}

// TeamDay computes availability for every worker on one date, one goroutine
// per worker (the engine is pure, so no locking beyond the join). A worker
// whose schedule fails to compute is logged and omitted so one bad payload
// does not take down the whole team view.
func (s *AvailabilityService) TeamDay(ctx context.Context, date string) (map[uint]*models.AvailabilityResult, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.GetAll()
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[uint]*models.AvailabilityResult, len(workers))
	)

	for _, worker := range workers {
		wg.Add(1)
		go func(worker *models.Worker) {
			defer wg.Done()

			result, err := s.computeForWorker(worker, date, settings, nil)
			if err != nil {
				s.logger.WithError(err).WithFields(logrus.Fields{
					"worker_id": worker.ID,
					"date":      date,
				}).Warn("Skipping worker with uncomputable availability")
				return
			}

			mu.Lock()
			results[worker.ID] = result
			mu.Unlock()
		}(worker)
	}

	wg.Wait()
	return results, nil
}

// Invalidate drops any cached result for the worker/date.
func (s *AvailabilityService) Invalidate(ctx context.Context, workerID uint, date string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, workerID, date)
	}
}

// InvalidateWorker drops every cached date for the worker.
func (s *AvailabilityService) InvalidateWorker(ctx context.Context, workerID uint) {
	if s.cache != nil {
		s.cache.InvalidateWorker(ctx, workerID)
	}
}

func (s *AvailabilityService) computeForWorker(worker *models.Worker, date string, settings *models.CompanySettings, candidate *models.Candidate) (*models.AvailabilityResult, error) {
	base, drivingMinutes, err := s.baseFor(worker, date, settings)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.GetByWorkerAndDate(worker.ID, date)
	if err != nil {
		return nil, err
	}

	result, err := availability.ComputeRemaining(base, jobs, drivingMinutes, candidate)
	if err != nil {
		return nil, err
	}

	result.RemainingIntervals = availability.FilterShortSlots(result.RemainingIntervals, settings.MinSlotMinutes)
	return &result, nil
}

// baseFor resolves a worker's base availability and effective driving time,
// applying the configured parse-error policy at this boundary only.
func (s *AvailabilityService) baseFor(worker *models.Worker, date string, settings *models.CompanySettings) (models.BaseAvailability, int, error) {
	config, err := availability.NormalizeScheduleConfig([]byte(worker.Availability))
	if err != nil {
		var parseErr *timeslot.ParseError
		if errors.As(err, &parseErr) && s.policy == ParseErrorDefaultOpen {
			s.logger.WithError(err).WithField("worker_id", worker.ID).
				Warn("Unparseable schedule payload, assuming default open hours")
			base := models.BaseAvailability{
				Available: true,
				Intervals: []timeslot.Interval{defaultOpenHours},
			}
			return base, settings.DefaultDrivingTimeMinutes, nil
		}
		return models.BaseAvailability{}, 0, err
	}

	base, err := availability.ResolveBaseAvailability(*config, date)
	if err != nil {
		return models.BaseAvailability{}, 0, err
	}

	return base, config.DrivingMinutes(settings.DefaultDrivingTimeMinutes), nil
}
