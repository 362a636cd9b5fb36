package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/geo_sector_dispatch/internal/config"
	"github.com/shenikar/geo_sector_dispatch/internal/models"
	"github.com/shenikar/geo_sector_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dispatchService     service.DispatchService
	notificationService service.NotificationService
	sectors             service.SectorCatalog
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(
	dispatchService service.DispatchService,
	notificationService service.NotificationService,
	sectors service.SectorCatalog,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		dispatchService:     dispatchService,
		notificationService: notificationService,
		sectors:             sectors,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// @Summary Dispatch an upload
// @Description Resolve the sector of an uploaded image and notify its provider. Without coordinates the configured default location is used. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param upload body DispatchRequest true "Upload with location"
// @Success 201 {object} DispatchResponse "Provider notified"
// @Success 200 {object} DispatchResponse "Location not covered"
// @Failure 400 {object} map[string]string "Invalid request body, validation error or invalid location"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dispatch [post]
func (h *Handler) dispatch(c *gin.Context) {
	var input DispatchRequest
	log := h.logger.WithField("method", "dispatch")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fallback := models.GeoPoint{Latitude: h.cfg.DefaultLatitude, Longitude: h.cfg.DefaultLongitude}
	result, err := h.dispatchService.Dispatch(c.Request.Context(), DTOToDispatchModel(input, fallback))
	if err != nil {
		if errors.Is(err, service.ErrInvalidLocation) {
			log.WithError(err).Warn("Invalid location")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location"})
			return
		}
		log.WithError(err).Error("Failed to dispatch upload in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := http.StatusOK
	if result.Notified() {
		status = http.StatusCreated
	}
	c.JSON(status, ModelToDispatchResponse(result))
}

// @Summary List sectors
// @Description List sectors of the boundary registry in load order. Requires API key.
// @Tags Sectors
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} SectorResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /sectors [get]
func (h *Handler) listSectors(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToSectorResponses(h.sectors.Sectors()))
}

// @Summary Resolve a location
// @Description Find the sector that owns a point. Requires API key.
// @Tags Sectors
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} SectorResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not covered"
// @Router /sectors/resolve [get]
func (h *Handler) resolveSector(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	point := models.GeoPoint{Latitude: lat, Longitude: lon}
	if latErr != nil || lonErr != nil || !point.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	sector, ok := h.sectors.Resolve(point)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not covered"})
		return
	}
	c.JSON(http.StatusOK, ModelToSectorResponse(sector))
}

// @Summary List notifications
// @Description List notifications newest first, filtered by the viewer's sector. Without a sector all notifications are returned. Requires API key.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Param sector query string false "Viewer sector"
// @Success 200 {array} NotificationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	sector := c.Query("sector")

	var notifications []models.Notification
	if sector == "" {
		notifications = h.notificationService.All()
	} else {
		notifications = h.notificationService.ForSector(sector)
	}
	c.JSON(http.StatusOK, ModelsToNotificationResponses(notifications))
}

// @Summary Notification counters
// @Description Total and unread notifications for a sector (all sectors when omitted). Requires API key.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Param sector query string false "Viewer sector"
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications/stats [get]
func (h *Handler) notificationStats(c *gin.Context) {
	sector := c.Query("sector")
	stats := h.notificationService.Stats(sector)
	c.JSON(http.StatusOK, StatsResponse{Sector: sector, Total: stats.Total, Unread: stats.Unread})
}

// @Summary Mark a notification as read
// @Description Mark a notification as read. Unknown ids are ignored. Requires API key.
// @Tags Notifications
// @Security ApiKeyAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid notification ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications/{id}/read [put]
func (h *Handler) markAsRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification ID"})
		return
	}

	h.notificationService.MarkAsRead(id)
	c.Status(http.StatusNoContent)
}

// @Summary Reload notifications
// @Description Replace in-memory notifications with the persisted snapshot. Requires API key.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReloadResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications/reload [post]
func (h *Handler) reloadNotifications(c *gin.Context) {
	h.notificationService.Reload(c.Request.Context())
	c.JSON(http.StatusOK, ReloadResponse{Count: len(h.notificationService.All())})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
