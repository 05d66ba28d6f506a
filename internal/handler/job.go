package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type assignJobRequest struct {
	WorkerID        uint   `json:"worker_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	StartMinute     *int   `json:"start_minute" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	Title           string `json:"title"`
}

func (h *Handler) AssignJobHandler(c *gin.Context) {
	var req assignJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	job, err := h.jobService.AssignJob(c.Request.Context(), req.WorkerID, req.Date, *req.StartMinute, req.DurationMinutes, req.Title)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"job": job})
}

// ListJobsHandler returns jobs for a date, optionally narrowed to one worker.
func (h *Handler) ListJobsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}

	if workerParam := c.Query("worker"); workerParam != "" {
		workerID, err := strconv.ParseUint(workerParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker query parameter"})
			return
		}

		jobs, err := h.jobService.ListForWorkerDate(uint(workerID), date)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"jobs": jobs})
		return
	}

	jobs, err := h.jobService.ListForDate(date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *Handler) CancelJobHandler(c *gin.Context) {
	if err := h.jobService.CancelJob(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job cancelled"})
}
