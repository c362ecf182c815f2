package simulator

import (
	"math/rand/v2"
	"time"

	"github.com/shenikar/eagle_eye/internal/models"
)

// Mode - режим отображения камеры, от него зависит частота срабатываний
type Mode string

const (
	ModeCompact Mode = "compact"
	ModeFocused Mode = "focused"
)

// Config - параметры симуляции
type Config struct {
	CompactBase       time.Duration
	CompactJitter     time.Duration
	FocusedBase       time.Duration
	FocusedJitter     time.Duration
	TelemetryInterval time.Duration
	CompactMarkerTTL  time.Duration
	FocusedMarkerTTL  time.Duration
	PredictiveChance  float64
	ConfidenceMin     float64
	ConfidenceMax     float64
	ForwardThreshold  float64
	Seed              uint64
}

// DefaultConfig возвращает параметры штатного режима
func DefaultConfig() Config {
	return Config{
		CompactBase:       8 * time.Second,
		CompactJitter:     12 * time.Second,
		FocusedBase:       4 * time.Second,
		FocusedJitter:     6 * time.Second,
		TelemetryInterval: 2500 * time.Millisecond,
		CompactMarkerTTL:  1500 * time.Millisecond,
		FocusedMarkerTTL:  3 * time.Second,
		PredictiveChance:  0.12,
		ConfidenceMin:     0.82,
		ConfidenceMax:     0.99,
		ForwardThreshold:  0.95,
		Seed:              uint64(time.Now().UnixNano()),
	}
}

// Interval - пауза до следующего срабатывания: base + U[0, jitter)
func (c Config) Interval(rng *rand.Rand, mode Mode) time.Duration {
	base, jitter := c.CompactBase, c.CompactJitter
	if mode == ModeFocused {
		base, jitter = c.FocusedBase, c.FocusedJitter
	}
	if jitter <= 0 {
		return base
	}
	return base + time.Duration(rng.Int64N(int64(jitter)))
}

// MarkerTTL - сколько отметка остается на кадре
func (c Config) MarkerTTL(mode Mode) time.Duration {
	if mode == ModeFocused {
		return c.FocusedMarkerTTL
	}
	return c.CompactMarkerTTL
}

// Synthesize генерирует кандидата в инциденты: тип выбирается равномерно,
// с вероятностью PredictiveChance подменяется на PREDICTED_CRIME.
// Ошибка означает нарушение контракта конфигурации, такой кандидат не должен дойти до маршрутизатора.
func Synthesize(rng *rand.Rand, cam models.Camera, cfg Config, now time.Time) (models.Incident, error) {
	detectionType := models.DetectionTypes[rng.IntN(len(models.DetectionTypes))]
	if rng.Float64() < cfg.PredictiveChance {
		detectionType = models.DetectionPredictedCrime
	}
	confidence := cfg.ConfidenceMin + rng.Float64()*(cfg.ConfidenceMax-cfg.ConfidenceMin)

	return models.NewIncident(cam.ID, cam.Name, detectionType, confidence, now)
}

// ShouldForward - только заметные события уходят дальше локального кадра
func ShouldForward(inc models.Incident, threshold float64) bool {
	return inc.Confidence > threshold ||
		inc.Type == models.DetectionWeapon ||
		inc.Type == models.DetectionPredictedCrime
}

// newMarker размещает отметку в пределах кадра
func newMarker(rng *rand.Rand, inc models.Incident) models.Marker {
	return models.Marker{
		ID:         inc.ID.String(),
		X:          10 + rng.Float64()*80,
		Y:          10 + rng.Float64()*70,
		Type:       inc.Type,
		Confidence: inc.Confidence,
	}
}
