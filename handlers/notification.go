package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"urbanauto/models"
	"urbanauto/services/notification"
	"urbanauto/services/tasks"
)

// RegisterDeviceHandler stores a device token for future broadcasts.
func RegisterDeviceHandler(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.DeviceToken
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid device registration request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.RegisterDevice(c.Request.Context(), req); err != nil {
			logger.Error("Device registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register device"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// BroadcastHandler sends a push to every registered device and reports
// how many were reached.
func BroadcastHandler(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.BroadcastRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid broadcast request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		count, err := svc.Broadcast(c.Request.Context(), req.Title, req.Body)
		if err != nil {
			logger.Error("Broadcast failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Broadcast failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
	}
}

// BroadcastAsyncHandler enqueues the broadcast for the background worker
// instead of sending inline. Useful when the device pool is large.
func BroadcastAsyncHandler(queue *asynq.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.BroadcastRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid broadcast request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		task, err := tasks.NewBroadcastTask(req.Title, req.Body)
		if err != nil {
			logger.Error("Failed to build broadcast task", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue broadcast"})
			return
		}
		info, err := queue.Enqueue(task)
		if err != nil {
			logger.Error("Failed to enqueue broadcast task", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue broadcast"})
			return
		}

		c.JSON(http.StatusAccepted, gin.H{"success": true, "taskId": info.ID})
	}
}
