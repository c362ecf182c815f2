package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/eagle_eye/internal/config"
	"github.com/shenikar/eagle_eye/internal/models"
	"github.com/shenikar/eagle_eye/internal/service"
	"github.com/shenikar/eagle_eye/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKey = map[string]string{"X-API-Key": "test-api-key"}

type testMocks struct {
	incidents *mocks.MockIncidentService
	forensic  *mocks.MockForensicService
	cameras   *mocks.MockCameraService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		incidents: mocks.NewMockIncidentService(ctrl),
		forensic:  mocks.NewMockForensicService(ctrl),
		cameras:   mocks.NewMockCameraService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(m.incidents, m.forensic, m.cameras, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func weaponIncident() models.Incident {
	return models.Incident{
		ID:         uuid.New(),
		Timestamp:  time.Date(2026, 2, 14, 21, 30, 0, 0, time.UTC),
		Location:   "Campo de Marte - Sector 1",
		CameraID:   "NODE-004",
		Type:       models.DetectionWeapon,
		Confidence: 0.91,
		Status:     models.StatusDetected,
	}
}

func TestHealthCheck_NoAuth(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuth(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.incidents.EXPECT().ThreatLevel(gomock.Any()).Return(40).Times(1)

	w := makeRequest(router, "GET", "/api/v1/threat", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, "GET", "/api/v1/threat", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")

	w = makeRequest(router, "GET", "/api/v1/threat", nil, map[string]string{"Authorization": "Bearer test-api-key"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"threat_level":40}`, w.Body.String())
}

func TestListIncidents(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	inc := weaponIncident()
	predicted := weaponIncident()
	predicted.Type = models.DetectionPredictedCrime

	// Ожидания
	m.incidents.EXPECT().
		ListIncidents(gomock.Any(), true, 5).
		Return([]models.Incident{predicted, inc}, nil).
		Times(1)

	// Действие
	w := makeRequest(router, "GET", "/api/v1/incidents?predictive=true&limit=5", nil, apiKey)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.True(t, resp[0].IsPredictive)
	assert.False(t, resp[1].IsPredictive)
	assert.Equal(t, "WEAPON", resp[1].Type)
}

func TestListIncidents_BadQuery(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.incidents.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/incidents?limit=-3", nil, apiKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "GET", "/api/v1/incidents?predictive=maybe", nil, apiKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCurrentAlert(t *testing.T) {
	_, m, router := newTestHandler(t)
	inc := weaponIncident()

	m.incidents.EXPECT().CurrentAlert(gomock.Any()).Return(&models.AlertView{
		Incident:       inc,
		QueueLength:    3,
		PendingAlerts:  2,
		Narrative:      "Detection: WEAPON at Campo de Marte - Sector 1.",
		NarrativeReady: true,
		Fallback:       true,
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/current", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, inc.ID, resp.Incident.ID)
	assert.Equal(t, 2, resp.PendingAlerts)
	assert.True(t, resp.Fallback)
}

func TestGetCurrentAlert_Idle(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.incidents.EXPECT().CurrentAlert(gomock.Any()).Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/current", nil, apiKey)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDismissAlert_NoBody(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	dismissed := weaponIncident()
	dismissed.Status = models.StatusNeutralized

	// Ожидания
	m.incidents.EXPECT().
		DismissAlert(gomock.Any(), (*uuid.UUID)(nil), models.IncidentStatus("")).
		Return(&models.DismissResult{Dismissed: &dismissed, ThreatLevel: 28}, nil).
		Times(1)

	// Действие
	w := makeRequest(router, "POST", "/api/v1/alerts/current/dismiss", nil, apiKey)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp DismissResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Dismissed)
	assert.Equal(t, "neutralized", resp.Dismissed.Status)
	assert.Nil(t, resp.Next)
	assert.Equal(t, 28, resp.ThreatLevel)
}

func TestDismissAlert_ChunkedEmptyBody(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	dismissed := weaponIncident()
	dismissed.Status = models.StatusNeutralized

	// Ожидания
	m.incidents.EXPECT().
		DismissAlert(gomock.Any(), (*uuid.UUID)(nil), models.IncidentStatus("")).
		Return(&models.DismissResult{Dismissed: &dismissed, ThreatLevel: 28}, nil).
		Times(1)

	// Действие: длина тела неизвестна, само тело пустое
	req := httptest.NewRequest("POST", "/api/v1/alerts/current/dismiss", bytes.NewReader(nil))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "test-api-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp DismissResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Dismissed)
	assert.Equal(t, dismissed.ID, resp.Dismissed.ID)
}

func TestDismissAlert_WithGuard(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.incidents.EXPECT().
		DismissAlert(gomock.Any(), &id, models.StatusPoliceNotified).
		Return(nil, fmt.Errorf("service: could not dismiss %s: %w", id, service.ErrAlertMismatch)).
		Times(1)

	body := fmt.Sprintf(`{"incident_id":%q,"resolution":"police_notified"}`, id)
	w := makeRequest(router, "POST", "/api/v1/alerts/current/dismiss", bytes.NewBufferString(body), apiKey)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDismissAlert_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.incidents.EXPECT().DismissAlert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/alerts/current/dismiss", bytes.NewBufferString(`{"resolution":"ignored"}`), apiKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Resolution' failed on the 'oneof' tag")

	w = makeRequest(router, "POST", "/api/v1/alerts/current/dismiss", bytes.NewBufferString(`{"incident_id":"nope"}`), apiKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "POST", "/api/v1/alerts/current/dismiss", bytes.NewBufferString(`{"incident_id":`), apiKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestGetStats(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.incidents.EXPECT().Stats(gomock.Any()).Return(models.DashboardStats{
		ThreatLevel: 52,
		Presenter:   models.PresenterPresenting,
		QueueLength: 1,
		HistorySize: 12,
		Predictive:  4,
		ByType:      map[models.DetectionType]int{models.DetectionPredictedCrime: 4, models.DetectionCar: 8},
	}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "presenting", resp.Presenter)
	assert.Equal(t, 8, resp.ByType["CAR"])
	assert.Equal(t, 52, resp.ThreatLevel)
}

func TestCameras(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.cameras.EXPECT().ListCameras(gomock.Any()).Return([]models.Camera{
		{ID: "NODE-001", Name: "Av. Salaverry - Sector 1", Mode: models.SensorThermal},
	}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/cameras", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"NODE-001","name":"Av. Salaverry - Sector 1","mode":"thermal"}]`, w.Body.String())
}

func TestGetTelemetry(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.cameras.EXPECT().Telemetry(gomock.Any(), "NODE-002").Return(&models.Telemetry{
		CameraID: "NODE-002",
		FPS:      24,
		Marker:   &models.Marker{ID: "m1", X: 40, Y: 30, Type: models.DetectionCar, Confidence: 0.9},
	}, nil).Times(1)
	m.cameras.EXPECT().Telemetry(gomock.Any(), "NODE-404").
		Return(nil, fmt.Errorf("service: telemetry for NODE-404: %w", service.ErrCameraNotFound)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/cameras/NODE-002/telemetry", nil, apiKey)
	require.Equal(t, http.StatusOK, w.Code)
	var resp TelemetryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Marker)
	assert.Equal(t, "CAR", resp.Marker.Type)

	w = makeRequest(router, "GET", "/api/v1/cameras/NODE-404/telemetry", nil, apiKey)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFocusCamera(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.cameras.EXPECT().Focus(gomock.Any(), "NODE-003").Return(nil).Times(1)
	m.cameras.EXPECT().Focus(gomock.Any(), "NODE-404").Return(service.ErrCameraNotFound).Times(1)
	m.cameras.EXPECT().Unfocus(gomock.Any()).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/cameras/NODE-003/focus", nil, apiKey)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, "PUT", "/api/v1/cameras/NODE-404/focus", nil, apiKey)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = makeRequest(router, "DELETE", "/api/v1/cameras/focus", nil, apiKey)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSearchPlate(t *testing.T) {
	// Подготовка
	_, m, router := newTestHandler(t)
	fc := &models.ForensicCase{
		Plate:  "BKA-902",
		Period: "7d",
		Sightings: []models.Sighting{{
			ID:          "DET-BKA-902-7",
			Plate:       "BKA-902",
			NodeID:      "NODE-011",
			Location:    "Av. Arequipa / Cdra 15",
			Coordinates: models.Coordinates{Lat: -12.0810, Lng: -77.0350},
			SpeedKmh:    41,
		}},
	}

	// Ожидания
	m.forensic.EXPECT().Search(gomock.Any(), "bka-902", "7d").Return(fc, nil).Times(1)

	// Действие
	w := makeRequest(router, "POST", "/api/v1/forensic/search", bytes.NewBufferString(`{"plate":"bka-902","period":"7d"}`), apiKey)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp ForensicCaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Sightings, 1)
	assert.InDelta(t, -12.0810, resp.Sightings[0].Lat, 1e-9)
	assert.Nil(t, resp.Selected)
}

func TestSearchPlate_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.forensic.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/forensic/search", bytes.NewBufferString(`{"plate":"BKA-902","period":"1y"}`), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Period' failed on the 'oneof' tag")
}

func TestSelection(t *testing.T) {
	_, m, router := newTestHandler(t)
	selected := 2
	fc := &models.ForensicCase{Plate: "BKA-902", Period: "24h", Sightings: make([]models.Sighting, 8), Selected: &selected}

	m.forensic.EXPECT().Select(gomock.Any(), 2).Return(fc, nil).Times(1)
	m.forensic.EXPECT().Select(gomock.Any(), 9).
		Return(nil, fmt.Errorf("service: %w: 9 of 8", service.ErrSelectionOutOfRange)).Times(1)
	m.forensic.EXPECT().Deselect(gomock.Any()).Return(nil, service.ErrNoForensicCase).Times(1)
	m.forensic.EXPECT().CurrentCase(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/forensic/selection", bytes.NewBufferString(`{"index":2}`), apiKey)
	require.Equal(t, http.StatusOK, w.Code)
	var resp ForensicCaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Selected)
	assert.Equal(t, 2, *resp.Selected)

	w = makeRequest(router, "PUT", "/api/v1/forensic/selection", bytes.NewBufferString(`{"index":9}`), apiKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "PUT", "/api/v1/forensic/selection", bytes.NewBufferString(`{}`), apiKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "DELETE", "/api/v1/forensic/selection", nil, apiKey)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = makeRequest(router, "GET", "/api/v1/forensic/case", nil, apiKey)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAPIKeyAuthMiddleware_Operator(t *testing.T) {
	// Подготовка
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{APIKeys: []string{"", "dispatch-key", "night-shift-key"}}

	router := gin.New()
	router.GET("/whoami", APIKeyAuthMiddleware(cfg, logger), func(c *gin.Context) {
		c.String(http.StatusOK, operatorFrom(c))
	})

	// Действие и проверки
	w := makeRequest(router, "GET", "/whoami", nil, map[string]string{"X-API-Key": "night-shift-key"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "operator-3", w.Body.String())

	w = makeRequest(router, "GET", "/whoami", nil, map[string]string{"Authorization": "Bearer dispatch-key"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "operator-2", w.Body.String())

	// пустой ключ в конфигурации не дает доступа
	w = makeRequest(router, "GET", "/whoami", nil, map[string]string{"Authorization": "Bearer "})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, "GET", "/whoami", nil, map[string]string{"Authorization": "Basic dispatch-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMatchOperator(t *testing.T) {
	keys := []string{"alpha", "bravo"}

	operator, ok := matchOperator(keys, "bravo")
	assert.True(t, ok)
	assert.Equal(t, "operator-2", operator)

	_, ok = matchOperator(keys, "brav")
	assert.False(t, ok)

	_, ok = matchOperator(nil, "alpha")
	assert.False(t, ok)
}
