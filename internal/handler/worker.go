package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type createWorkerRequest struct {
	Name     string          `json:"name" binding:"required"`
	Phone    string          `json:"phone"`
	Email    string          `json:"email"`
	Role     string          `json:"role"`
	Schedule json.RawMessage `json:"schedule"`
}

func (h *Handler) CreateWorkerHandler(c *gin.Context) {
	var req createWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	worker, err := h.workerService.CreateWorker(req.Name, req.Phone, req.Email, req.Role, string(req.Schedule))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"worker": worker})
}

func (h *Handler) ListWorkersHandler(c *gin.Context) {
	workers, err := h.workerService.ListWorkers()
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workers": workers})
}

func (h *Handler) GetWorkerHandler(c *gin.Context) {
	id, ok := workerIDParam(c)
	if !ok {
		return
	}

	worker, err := h.workerService.GetWorker(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"worker": worker})
}

func (h *Handler) DeleteWorkerHandler(c *gin.Context) {
	id, ok := workerIDParam(c)
	if !ok {
		return
	}

	if err := h.workerService.DeleteWorker(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Worker deleted"})
}

func (h *Handler) GetWorkerScheduleHandler(c *gin.Context) {
	id, ok := workerIDParam(c)
	if !ok {
		return
	}

	config, err := h.workerService.GetScheduleConfig(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": config})
}

// UpdateWorkerScheduleHandler accepts the schedule payload in any shape the
// normalizer understands and echoes back the canonical form it decoded to.
func (h *Handler) UpdateWorkerScheduleHandler(c *gin.Context) {
	id, ok := workerIDParam(c)
	if !ok {
		return
	}

	var payload json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	config, err := h.workerService.UpdateSchedule(c.Request.Context(), id, string(payload))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": config})
}

func workerIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID"})
		return 0, false
	}
	return uint(id), true
}
