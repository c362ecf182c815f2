package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/eagle_eye/internal/config"
	"github.com/shenikar/eagle_eye/internal/models"
	"github.com/shenikar/eagle_eye/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	forensicService service.ForensicService
	cameraService   service.CameraService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	forensicService service.ForensicService,
	cameraService service.CameraService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		forensicService: forensicService,
		cameraService:   cameraService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary List cameras
// @Description Get the camera registry. Requires API key.
// @Tags Cameras
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} CameraResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /cameras [get]
func (h *Handler) listCameras(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToCameraResponses(h.cameraService.ListCameras(c.Request.Context())))
}

// @Summary Get camera telemetry
// @Description Get live telemetry and the latest on-frame marker of a camera. Requires API key.
// @Tags Cameras
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Camera ID"
// @Success 200 {object} TelemetryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Camera not found"
// @Router /cameras/{id}/telemetry [get]
func (h *Handler) getTelemetry(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getTelemetry").WithField("camera_id", id)

	telemetry, err := h.cameraService.Telemetry(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCameraNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "camera not found"})
			return
		}
		log.WithError(err).Error("Failed to get telemetry from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToTelemetryResponse(telemetry))
}

// @Summary Focus a camera
// @Description Switch a camera to focused mode, the previously focused camera returns to compact mode. Requires API key.
// @Tags Cameras
// @Security ApiKeyAuth
// @Param id path string true "Camera ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Camera not found"
// @Router /cameras/{id}/focus [put]
func (h *Handler) focusCamera(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithFields(logrus.Fields{"method": "focusCamera", "camera_id": id, "operator": operatorFrom(c)})

	if err := h.cameraService.Focus(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCameraNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "camera not found"})
			return
		}
		log.WithError(err).Error("Failed to focus camera")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Unfocus cameras
// @Description Return every camera to compact mode. Requires API key.
// @Tags Cameras
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /cameras/focus [delete]
func (h *Handler) unfocusCameras(c *gin.Context) {
	h.cameraService.Unfocus(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// @Summary Get recent incidents
// @Description Get the recent-history log, newest first. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param predictive query bool false "Only predictive incidents"
// @Param limit query int false "Maximum number of incidents" default(100)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	predictive, err := strconv.ParseBool(c.DefaultQuery("predictive", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid predictive flag"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), predictive, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get current alert
// @Description Get the critical alert currently presented to the operator. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} AlertResponse
// @Success 204 "No alert pending"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/current [get]
func (h *Handler) getCurrentAlert(c *gin.Context) {
	log := h.logger.WithField("method", "getCurrentAlert")

	alert, err := h.incidentService.CurrentAlert(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get current alert from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if alert == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Dismiss current alert
// @Description Remove the head of the critical queue. Dismissing while idle is a no-op. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param dismiss body DismissRequest false "Optional guard and resolution"
// @Success 200 {object} DismissResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Alert is no longer current"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/current/dismiss [post]
func (h *Handler) dismissAlert(c *gin.Context) {
	var input DismissRequest
	log := h.logger.WithField("method", "dismissAlert").WithField("operator", operatorFrom(c))

	// тело необязательно: пустое тело, в том числе chunked, означает снятие без проверки
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var incidentID *uuid.UUID
	if input.IncidentID != "" {
		id := uuid.MustParse(input.IncidentID)
		incidentID = &id
	}

	result, err := h.incidentService.DismissAlert(c.Request.Context(), incidentID, models.IncidentStatus(input.Resolution))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlertMismatch):
			log.WithField("incident_id", input.IncidentID).Warn("Operator dismissed a stale alert")
			c.JSON(http.StatusConflict, gin.H{"error": "alert is no longer current"})
		case errors.Is(err, service.ErrInvalidResolution):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.WithError(err).Error("Failed to dismiss alert in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	if result.Dismissed != nil {
		log.WithFields(logrus.Fields{
			"incident_id": result.Dismissed.ID,
			"resolution":  result.Dismissed.Status,
		}).Info("Operator dismissed alert")
	}
	c.JSON(http.StatusOK, ModelToDismissResponse(result))
}

// @Summary Get threat level
// @Description Get the global threat level in [15,100]. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ThreatResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /threat [get]
func (h *Handler) getThreat(c *gin.Context) {
	c.JSON(http.StatusOK, ThreatResponse{ThreatLevel: h.incidentService.ThreatLevel(c.Request.Context())})
}

// @Summary Get dashboard statistics
// @Description Get threat level, queue length and per-type counts of the recent history. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToStatsResponse(h.incidentService.Stats(c.Request.Context())))
}

// @Summary Search plate history
// @Description Reconstruct the route of a plate over a period. Clears the current selection. Requires API key.
// @Tags Forensic
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param search body ForensicSearchRequest true "Plate search request"
// @Success 200 {object} ForensicCaseResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /forensic/search [post]
func (h *Handler) searchPlate(c *gin.Context) {
	var input ForensicSearchRequest
	log := h.logger.WithField("method", "searchPlate").WithField("operator", operatorFrom(c))

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

	fc, err := h.forensicService.Search(c.Request.Context(), input.Plate, input.Period)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPlate) || errors.Is(err, service.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to search plate in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToForensicCaseResponse(fc))
}

// @Summary Get current forensic case
// @Description Get the latest investigation with its selection. Requires API key.
// @Tags Forensic
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ForensicCaseResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No investigation yet"
// @Router /forensic/case [get]
func (h *Handler) getCase(c *gin.Context) {
	fc, err := h.forensicService.CurrentCase(c.Request.Context())
	if err != nil {
		h.writeForensicError(c, "getCase", err)
		return
	}
	c.JSON(http.StatusOK, ModelToForensicCaseResponse(fc))
}

// @Summary Select a sighting
// @Description Select a record of the current investigation by index. Requires API key.
// @Tags Forensic
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param selection body SelectionRequest true "Record index"
// @Success 200 {object} ForensicCaseResponse
// @Failure 400 {object} map[string]string "Invalid request body or index out of range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No investigation yet"
// @Router /forensic/selection [put]
func (h *Handler) selectSighting(c *gin.Context) {
	var input SelectionRequest
	log := h.logger.WithField("method", "selectSighting")

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

	fc, err := h.forensicService.Select(c.Request.Context(), *input.Index)
	if err != nil {
		h.writeForensicError(c, "selectSighting", err)
		return
	}
	c.JSON(http.StatusOK, ModelToForensicCaseResponse(fc))
}

// @Summary Deselect sighting
// @Description Clear the selection of the current investigation. Requires API key.
// @Tags Forensic
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ForensicCaseResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No investigation yet"
// @Router /forensic/selection [delete]
func (h *Handler) deselectSighting(c *gin.Context) {
	fc, err := h.forensicService.Deselect(c.Request.Context())
	if err != nil {
		h.writeForensicError(c, "deselectSighting", err)
		return
	}
	c.JSON(http.StatusOK, ModelToForensicCaseResponse(fc))
}

func (h *Handler) writeForensicError(c *gin.Context, method string, err error) {
	switch {
	case errors.Is(err, service.ErrNoForensicCase):
		c.JSON(http.StatusNotFound, gin.H{"error": "no forensic case"})
	case errors.Is(err, service.ErrSelectionOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.WithField("method", method).WithError(err).Error("Forensic service failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
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
