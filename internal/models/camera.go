package models

// SensorMode - режим сенсора камеры
type SensorMode string

const (
	SensorStandard SensorMode = "standard"
	SensorNight    SensorMode = "night"
	SensorThermal  SensorMode = "thermal"
)

// Valid сообщает, известен ли режим
func (m SensorMode) Valid() bool {
	switch m {
	case SensorStandard, SensorNight, SensorThermal:
		return true
	}
	return false
}

// Camera - виртуальная камера из реестра
type Camera struct {
	ID   string     `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`
	Mode SensorMode `json:"mode" yaml:"mode"`
}

// Marker - кратковременная отметка обнаружения на кадре
type Marker struct {
	ID         string        `json:"id"`
	X          float64       `json:"x"`
	Y          float64       `json:"y"`
	Type       DetectionType `json:"type"`
	Confidence float64       `json:"confidence"`
}

// Telemetry - косметическая телеметрия камеры, не связана с инцидентами
type Telemetry struct {
	CameraID   string  `json:"camera_id"`
	Focused    bool    `json:"focused"`
	FPS        int     `json:"fps"`
	BitrateKbs int     `json:"bitrate_kbps"`
	Anomaly    int     `json:"anomaly"`
	LastPlate  string  `json:"last_plate"`
	LastObject string  `json:"last_object"`
	RiskLabel  string  `json:"risk_label"`
	Marker     *Marker `json:"marker,omitempty"`
}
