package v1

import "github.com/shenikar/eagle_eye/internal/models"

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:           model.ID,
		Timestamp:    model.Timestamp,
		Location:     model.Location,
		CameraID:     model.CameraID,
		Type:         string(model.Type),
		Confidence:   model.Confidence,
		Status:       string(model.Status),
		IsPredictive: model.IsPredictive(),
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func ModelToAlertResponse(view *models.AlertView) *AlertResponse {
	if view == nil {
		return nil
	}
	return &AlertResponse{
		Incident:       ModelToIncidentResponse(view.Incident),
		QueueLength:    view.QueueLength,
		PendingAlerts:  view.PendingAlerts,
		Narrative:      view.Narrative,
		NarrativeReady: view.NarrativeReady,
		Fallback:       view.Fallback,
	}
}

func ModelToDismissResponse(result *models.DismissResult) DismissResponse {
	resp := DismissResponse{
		Next:        ModelToAlertResponse(result.Next),
		ThreatLevel: result.ThreatLevel,
	}
	if result.Dismissed != nil {
		dismissed := ModelToIncidentResponse(*result.Dismissed)
		resp.Dismissed = &dismissed
	}
	return resp
}

func ModelToStatsResponse(stats models.DashboardStats) StatsResponse {
	byType := make(map[string]int, len(stats.ByType))
	for t, n := range stats.ByType {
		byType[string(t)] = n
	}
	return StatsResponse{
		ThreatLevel: stats.ThreatLevel,
		Presenter:   string(stats.Presenter),
		QueueLength: stats.QueueLength,
		HistorySize: stats.HistorySize,
		Predictive:  stats.Predictive,
		ByType:      byType,
	}
}

func ModelsToCameraResponses(cameras []models.Camera) []CameraResponse {
	responses := make([]CameraResponse, len(cameras))
	for i, cam := range cameras {
		responses[i] = CameraResponse{ID: cam.ID, Name: cam.Name, Mode: string(cam.Mode)}
	}
	return responses
}

func ModelToTelemetryResponse(t *models.Telemetry) TelemetryResponse {
	resp := TelemetryResponse{
		CameraID:   t.CameraID,
		Focused:    t.Focused,
		FPS:        t.FPS,
		BitrateKbs: t.BitrateKbs,
		Anomaly:    t.Anomaly,
		LastPlate:  t.LastPlate,
		LastObject: t.LastObject,
		RiskLabel:  t.RiskLabel,
	}
	if t.Marker != nil {
		resp.Marker = &MarkerResponse{
			ID:         t.Marker.ID,
			X:          t.Marker.X,
			Y:          t.Marker.Y,
			Type:       string(t.Marker.Type),
			Confidence: t.Marker.Confidence,
		}
	}
	return resp
}

func ModelToForensicCaseResponse(fc *models.ForensicCase) ForensicCaseResponse {
	sightings := make([]SightingResponse, len(fc.Sightings))
	for i, s := range fc.Sightings {
		sightings[i] = SightingResponse{
			ID:        s.ID,
			Plate:     s.Plate,
			Timestamp: s.Timestamp,
			NodeID:    s.NodeID,
			Location:  s.Location,
			Lat:       s.Coordinates.Lat,
			Lng:       s.Coordinates.Lng,
			SpeedKmh:  s.SpeedKmh,
		}
	}
	return ForensicCaseResponse{
		Plate:     fc.Plate,
		Period:    fc.Period,
		Sightings: sightings,
		Selected:  fc.Selected,
		Cached:    fc.Cached,
	}
}
