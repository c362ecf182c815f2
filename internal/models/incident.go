package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DetectionType - тип обнаружения, который может выдать камера
type DetectionType string

const (
	DetectionLicensePlate       DetectionType = "LICENSE_PLATE"
	DetectionMotorcycle         DetectionType = "MOTORCYCLE"
	DetectionCar                DetectionType = "CAR"
	DetectionOtherVehicle       DetectionType = "OTHER_VEHICLE"
	DetectionWeapon             DetectionType = "WEAPON"
	DetectionSuspiciousBehavior DetectionType = "SUSPICIOUS_BEHAVIOR"
	DetectionPredictedCrime     DetectionType = "PREDICTED_CRIME"
	DetectionCrowdAnomaly       DetectionType = "CROWD_ANOMALY"
)

// DetectionTypes перечисляет все допустимые типы в фиксированном порядке
var DetectionTypes = []DetectionType{
	DetectionLicensePlate,
	DetectionMotorcycle,
	DetectionCar,
	DetectionOtherVehicle,
	DetectionWeapon,
	DetectionSuspiciousBehavior,
	DetectionPredictedCrime,
	DetectionCrowdAnomaly,
}

// Valid сообщает, входит ли тип в перечисление
func (t DetectionType) Valid() bool {
	for _, known := range DetectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Predictive - тип описывает упреждающий вывод, а не наблюдаемый объект
func (t DetectionType) Predictive() bool {
	return t == DetectionSuspiciousBehavior || t == DetectionPredictedCrime
}

// Critical - инцидент такого типа попадает в очередь критических тревог
func (t DetectionType) Critical() bool {
	return t == DetectionWeapon || t == DetectionPredictedCrime
}

// IncidentStatus - статус инцидента
type IncidentStatus string

const (
	StatusDetected       IncidentStatus = "detected"
	StatusPoliceNotified IncidentStatus = "police_notified"
	StatusNeutralized    IncidentStatus = "neutralized"
)

// Resolution сообщает, может ли статус быть итогом действия оператора
func (s IncidentStatus) Resolution() bool {
	return s == StatusPoliceNotified || s == StatusNeutralized
}

var (
	ErrUnknownDetectionType = errors.New("unknown detection type")
	ErrConfidenceOutOfRange = errors.New("confidence out of range [0,1]")
)

// Incident - зафиксированное значимое обнаружение.
// Признак упреждения не хранится отдельно и всегда вычисляется из Type.
type Incident struct {
	ID         uuid.UUID      `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	Location   string         `json:"location"`
	CameraID   string         `json:"camera_id"`
	Type       DetectionType  `json:"type"`
	Confidence float64        `json:"confidence"`
	Status     IncidentStatus `json:"status"`
}

// NewIncident создает инцидент в статусе detected, отклоняя неизвестный тип и уверенность вне [0,1]
func NewIncident(cameraID, location string, detectionType DetectionType, confidence float64, at time.Time) (Incident, error) {
	if !detectionType.Valid() {
		return Incident{}, fmt.Errorf("%w: %q", ErrUnknownDetectionType, detectionType)
	}
	if confidence < 0 || confidence > 1 {
		return Incident{}, fmt.Errorf("%w: %v", ErrConfidenceOutOfRange, confidence)
	}
	return Incident{
		ID:         uuid.New(),
		Timestamp:  at,
		Location:   location,
		CameraID:   cameraID,
		Type:       detectionType,
		Confidence: confidence,
		Status:     StatusDetected,
	}, nil
}

// IsPredictive - true тогда и только тогда, когда тип SUSPICIOUS_BEHAVIOR или PREDICTED_CRIME
func (i Incident) IsPredictive() bool {
	return i.Type.Predictive()
}

// IsCritical - инцидент требует подтверждения оператором
func (i Incident) IsCritical() bool {
	return i.Type.Critical()
}
