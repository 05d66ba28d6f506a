package handler

import (
	"net/http"
	"strconv"

	"field-service-api/internal/models"
	"field-service-api/pkg/timeslot"

	"github.com/gin-gonic/gin"
)

// WorkerAvailabilityHandler returns one worker's availability for a date.
// When "start" (HH:MM) and "duration" (minutes) are both given, the result
// also answers whether that candidate job fits.
func (h *Handler) WorkerAvailabilityHandler(c *gin.Context) {
	id, ok := workerIDParam(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}

	var candidate *models.Candidate
	startParam := c.Query("start")
	durationParam := c.Query("duration")
	if startParam != "" || durationParam != "" {
		if startParam == "" || durationParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Candidate check needs both start and duration"})
			return
		}

		start, err := timeslot.ParseTime(startParam)
		if err != nil {
			h.respondError(c, err)
			return
		}

		duration, err := strconv.Atoi(durationParam)
		if err != nil || duration <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Duration must be a positive number of minutes"})
			return
		}

		candidate = &models.Candidate{StartMinute: start, DurationMinutes: duration}
	}

	result, err := h.availabilityService.WorkerDay(c.Request.Context(), id, date, candidate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": result})
}

// TeamAvailabilityHandler returns the availability of every worker for a
// date, keyed by worker id. Workers whose schedule cannot be computed are
// omitted rather than failing the whole view.
func (h *Handler) TeamAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}

	results, err := h.availabilityService.TeamDay(c.Request.Context(), date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "availability": results})
}
