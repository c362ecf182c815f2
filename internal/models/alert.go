package models

import (
	"github.com/google/uuid"
)

// Narrative - тактический отчет по инциденту, живой или шаблонный
type Narrative struct {
	IncidentID uuid.UUID `json:"incident_id"`
	Text       string    `json:"text"`
	Fallback   bool      `json:"fallback"`
	Attempts   int       `json:"attempts"`
}

// PresenterState - состояние модального окна тревоги
type PresenterState string

const (
	PresenterIdle       PresenterState = "idle"
	PresenterPresenting PresenterState = "presenting"
)

// AlertView - текущая тревога в голове очереди
type AlertView struct {
	Incident       Incident `json:"incident"`
	QueueLength    int      `json:"queue_length"`
	PendingAlerts  int      `json:"pending_alerts"`
	Narrative      string   `json:"narrative,omitempty"`
	NarrativeReady bool     `json:"narrative_ready"`
	Fallback       bool     `json:"fallback"`
}

// DismissResult - итог снятия тревоги оператором
type DismissResult struct {
	Dismissed   *Incident  `json:"dismissed,omitempty"`
	Next        *AlertView `json:"next,omitempty"`
	ThreatLevel int        `json:"threat_level"`
}

// DashboardStats - сводка состояния панели
type DashboardStats struct {
	ThreatLevel int                   `json:"threat_level"`
	Presenter   PresenterState        `json:"presenter"`
	QueueLength int                   `json:"queue_length"`
	HistorySize int                   `json:"history_size"`
	Predictive  int                   `json:"predictive"`
	ByType      map[DetectionType]int `json:"by_type"`
}
