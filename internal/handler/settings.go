package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.settingsRepo.Get()
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type updateSettingsRequest struct {
	DefaultDrivingTimeMinutes *int `json:"default_driving_time_minutes"`
	MinSlotMinutes            *int `json:"min_slot_minutes"`
}

func (h *Handler) UpdateSettingsHandler(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	settings, err := h.settingsRepo.Get()
	if err != nil {
		h.respondError(c, err)
		return
	}

	if req.DefaultDrivingTimeMinutes != nil {
		settings.DefaultDrivingTimeMinutes = *req.DefaultDrivingTimeMinutes
	}
	if req.MinSlotMinutes != nil {
		settings.MinSlotMinutes = *req.MinSlotMinutes
	}

	if err := h.settingsRepo.Update(settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
