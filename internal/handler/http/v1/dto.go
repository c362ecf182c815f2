package v1

import (
	"time"

	"github.com/google/uuid"
)

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID           uuid.UUID `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Location     string    `json:"location"`
	CameraID     string    `json:"camera_id"`
	Type         string    `json:"type"`
	Confidence   float64   `json:"confidence"`
	Status       string    `json:"status"`
	IsPredictive bool      `json:"is_predictive"`
}

// AlertResponse DTO текущей тревоги
// @Description DTO текущей тревоги
type AlertResponse struct {
	Incident       IncidentResponse `json:"incident"`
	QueueLength    int              `json:"queue_length"`
	PendingAlerts  int              `json:"pending_alerts"`
	Narrative      string           `json:"narrative,omitempty"`
	NarrativeReady bool             `json:"narrative_ready"`
	Fallback       bool             `json:"fallback"`
}

// DismissRequest DTO для снятия тревоги; тело запроса необязательно
// @Description DTO для снятия тревоги
type DismissRequest struct {
	IncidentID string `json:"incident_id,omitempty" validate:"omitempty,uuid"`
	Resolution string `json:"resolution,omitempty" validate:"omitempty,oneof=neutralized police_notified"`
}

// DismissResponse DTO результата снятия тревоги
// @Description DTO результата снятия тревоги
type DismissResponse struct {
	Dismissed   *IncidentResponse `json:"dismissed,omitempty"`
	Next        *AlertResponse    `json:"next,omitempty"`
	ThreatLevel int               `json:"threat_level"`
}

// ThreatResponse DTO уровня угрозы
type ThreatResponse struct {
	ThreatLevel int `json:"threat_level"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	ThreatLevel int            `json:"threat_level"`
	Presenter   string         `json:"presenter"`
	QueueLength int            `json:"queue_length"`
	HistorySize int            `json:"history_size"`
	Predictive  int            `json:"predictive"`
	ByType      map[string]int `json:"by_type"`
}

// CameraResponse DTO камеры
type CameraResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mode string `json:"mode"`
}

// MarkerResponse DTO отметки на кадре
type MarkerResponse struct {
	ID         string  `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// TelemetryResponse DTO телеметрии камеры
// @Description DTO телеметрии камеры
type TelemetryResponse struct {
	CameraID   string          `json:"camera_id"`
	Focused    bool            `json:"focused"`
	FPS        int             `json:"fps"`
	BitrateKbs int             `json:"bitrate_kbps"`
	Anomaly    int             `json:"anomaly"`
	LastPlate  string          `json:"last_plate"`
	LastObject string          `json:"last_object"`
	RiskLabel  string          `json:"risk_label"`
	Marker     *MarkerResponse `json:"marker,omitempty"`
}

// ForensicSearchRequest DTO поиска по номеру
// @Description DTO поиска по номеру
type ForensicSearchRequest struct {
	Plate  string `json:"plate" validate:"required,min=2,max=16"`
	Period string `json:"period" validate:"required,oneof=24h 7d 30d"`
}

// SelectionRequest DTO выбора записи расследования
type SelectionRequest struct {
	Index *int `json:"index" validate:"required,gte=0"`
}

// SightingResponse DTO фиксации номера
type SightingResponse struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Timestamp time.Time `json:"timestamp"`
	NodeID    string    `json:"node_id"`
	Location  string    `json:"location"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	SpeedKmh  int       `json:"speed_kmh"`
}

// ForensicCaseResponse DTO расследования
// @Description DTO расследования
type ForensicCaseResponse struct {
	Plate     string             `json:"plate"`
	Period    string             `json:"period"`
	Sightings []SightingResponse `json:"sightings"`
	Selected  *int               `json:"selected,omitempty"`
	Cached    bool               `json:"cached"`
}
