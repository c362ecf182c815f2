package simulator

import (
	"math/rand/v2"

	"github.com/shenikar/eagle_eye/internal/models"
)

var (
	telemetryPlates  = []string{"BKA-902", "LMA-118", "P0X-442", "Z9I-001", "AXE-772"}
	telemetryObjects = []string{"AUTO", "MOTO", "BUS", "PERSON", "TRUCK"}
)

func initialTelemetry(cameraID string) models.Telemetry {
	return models.Telemetry{
		CameraID:   cameraID,
		Anomaly:    12,
		LastPlate:  "---",
		LastObject: "SCANNING",
		RiskLabel:  "LOW",
	}
}

// NextTelemetry обновляет косметическую телеметрию камеры.
// Номер обновляется при аномалии выше 70, объект при аномалии выше 30.
func NextTelemetry(rng *rand.Rand, prev models.Telemetry) models.Telemetry {
	anomaly := rng.IntN(100)
	next := prev
	next.FPS = 22 + rng.IntN(8)
	next.BitrateKbs = 1100 + rng.IntN(600)
	next.Anomaly = anomaly

	if anomaly > 70 {
		next.LastPlate = telemetryPlates[rng.IntN(len(telemetryPlates))]
	}
	if anomaly > 30 {
		next.LastObject = telemetryObjects[rng.IntN(len(telemetryObjects))]
	}

	switch {
	case anomaly > 85:
		next.RiskLabel = "CRITICAL"
	case anomaly > 60:
		next.RiskLabel = "MED"
	default:
		next.RiskLabel = "LOW"
	}
	return next
}
