package handler

import (
	"errors"
	"net/http"

	"field-service-api/internal/repository"
	"field-service-api/internal/service"
	"field-service-api/pkg/timeslot"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	workerService       *service.WorkerService
	jobService          *service.JobService
	availabilityService *service.AvailabilityService
	settingsRepo        repository.CompanySettingsRepository
	logger              *logrus.Logger
}

func NewHandler(
	workerService *service.WorkerService,
	jobService *service.JobService,
	availabilityService *service.AvailabilityService,
	settingsRepo repository.CompanySettingsRepository,
) *Handler {
	return &Handler{
		workerService:       workerService,
		jobService:          jobService,
		availabilityService: availabilityService,
		settingsRepo:        settingsRepo,
		logger:              logrus.New(),
	}
}

// RegisterRoutes wires every endpoint onto the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/workers", h.ListWorkersHandler)
		api.POST("/workers", h.CreateWorkerHandler)
		api.GET("/workers/:id", h.GetWorkerHandler)
		api.DELETE("/workers/:id", h.DeleteWorkerHandler)
		api.GET("/workers/:id/schedule", h.GetWorkerScheduleHandler)
		api.PUT("/workers/:id/schedule", h.UpdateWorkerScheduleHandler)

		api.POST("/jobs", h.AssignJobHandler)
		api.GET("/jobs", h.ListJobsHandler)
		api.DELETE("/jobs/:id", h.CancelJobHandler)

		api.GET("/availability", h.TeamAvailabilityHandler)
		api.GET("/availability/:id", h.WorkerAvailabilityHandler)

		api.GET("/settings", h.GetSettingsHandler)
		api.PUT("/settings", h.UpdateSettingsHandler)
	}
}

// respondError maps service errors onto HTTP status codes.
func (h *Handler) respondError(c *gin.Context, err error) {
	var parseErr *timeslot.ParseError
	var invalidErr *timeslot.InvalidIntervalError

	switch {
	case errors.Is(err, service.ErrWorkerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrScheduleConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &parseErr), errors.As(err, &invalidErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
