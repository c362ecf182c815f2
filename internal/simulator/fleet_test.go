package simulator

import (
	"context"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/eagle_eye/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testCameras() []models.Camera {
	return []models.Camera{
		{ID: "NODE-001", Name: "Av. Salaverry - Sector 1", Mode: models.SensorThermal},
		{ID: "NODE-002", Name: "Av. Brasil - Sector 1", Mode: models.SensorStandard},
		{ID: "NODE-003", Name: "Res. San Felipe - Sector 1", Mode: models.SensorStandard},
	}
}

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.CompactBase = time.Millisecond
	cfg.CompactJitter = time.Millisecond
	cfg.FocusedBase = time.Millisecond
	cfg.FocusedJitter = time.Millisecond
	cfg.TelemetryInterval = 5 * time.Millisecond
	cfg.ForwardThreshold = 0
	cfg.Seed = 7
	return cfg
}

func TestSynthesize(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	cfg := DefaultConfig()
	cam := testCameras()[0]
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	predictive, predictedCrime := 0, 0
	const total = 5000
	for range total {
		inc, err := Synthesize(rng, cam, cfg, now)
		require.NoError(t, err)

		assert.True(t, inc.Type.Valid())
		assert.GreaterOrEqual(t, inc.Confidence, 0.82)
		assert.Less(t, inc.Confidence, 0.99)
		assert.Equal(t, cam.ID, inc.CameraID)
		assert.Equal(t, cam.Name, inc.Location)
		assert.Equal(t, models.StatusDetected, inc.Status)
		assert.Equal(t, inc.Type.Predictive(), inc.IsPredictive())
		if inc.IsPredictive() {
			predictive++
		}
		if inc.Type == models.DetectionPredictedCrime {
			predictedCrime++
		}
	}

	// PREDICTED_CRIME: 0.12 + 0.88/8 ~ 0.23
	assert.InDelta(t, 0.23, float64(predictedCrime)/total, 0.03)
	// вместе с SUSPICIOUS_BEHAVIOR: 0.12 + 0.88*2/8 ~ 0.34
	assert.InDelta(t, 0.34, float64(predictive)/total, 0.03)
}

func TestSynthesize_BadConfig(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	cfg := DefaultConfig()
	cfg.ConfidenceMin = 1.2
	cfg.ConfidenceMax = 1.5

	_, err := Synthesize(rng, testCameras()[0], cfg, time.Now())

	assert.ErrorIs(t, err, models.ErrConfidenceOutOfRange)
}

func TestShouldForward(t *testing.T) {
	cases := []struct {
		name       string
		typ        models.DetectionType
		confidence float64
		want       bool
	}{
		{"high confidence", models.DetectionLicensePlate, 0.96, true},
		{"at threshold", models.DetectionLicensePlate, 0.95, false},
		{"weapon low confidence", models.DetectionWeapon, 0.83, true},
		{"predicted low confidence", models.DetectionPredictedCrime, 0.83, true},
		{"routine", models.DetectionCrowdAnomaly, 0.90, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inc := models.Incident{ID: uuid.New(), Type: tc.typ, Confidence: tc.confidence}
			assert.Equal(t, tc.want, ShouldForward(inc, 0.95))
		})
	}
}

func TestConfig_Interval(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	cfg := DefaultConfig()

	for range 1000 {
		compact := cfg.Interval(rng, ModeCompact)
		assert.GreaterOrEqual(t, compact, 8*time.Second)
		assert.Less(t, compact, 20*time.Second)

		focused := cfg.Interval(rng, ModeFocused)
		assert.GreaterOrEqual(t, focused, 4*time.Second)
		assert.Less(t, focused, 10*time.Second)
	}

	cfg.CompactJitter = 0
	assert.Equal(t, 8*time.Second, cfg.Interval(rng, ModeCompact))
}

func TestNextTelemetry(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	prev := initialTelemetry("NODE-001")

	for range 500 {
		next := NextTelemetry(rng, prev)
		assert.Equal(t, "NODE-001", next.CameraID)
		assert.GreaterOrEqual(t, next.FPS, 22)
		assert.Less(t, next.FPS, 30)
		if next.Anomaly <= 70 {
			assert.Equal(t, prev.LastPlate, next.LastPlate)
		}
		switch {
		case next.Anomaly > 85:
			assert.Equal(t, "CRITICAL", next.RiskLabel)
		case next.Anomaly > 60:
			assert.Equal(t, "MED", next.RiskLabel)
		default:
			assert.Equal(t, "LOW", next.RiskLabel)
		}
		prev = next
	}
}

func TestFleet_StartEmitsAndCloses(t *testing.T) {
	// Подготовка
	fleet := NewFleet(testCameras(), fastConfig(), quietLogger())
	ctx, cancel := context.WithCancel(context.Background())

	// Действие
	out := fleet.Start(ctx)

	// Проверки
	seen := make(map[string]bool)
	deadline := time.After(5 * time.Second)
	for len(seen) < 3 {
		select {
		case inc := <-out:
			assert.True(t, inc.Type.Valid())
			seen[inc.CameraID] = true
		case <-deadline:
			t.Fatalf("cameras did not emit in time, seen %v", seen)
		}
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-out:
			return !ok
		default:
			return false
		}
	}, 5*time.Second, time.Millisecond)
}

func TestFleet_Focus(t *testing.T) {
	fleet := NewFleet(testCameras(), fastConfig(), quietLogger())

	assert.ErrorIs(t, fleet.Focus("NODE-999"), ErrCameraNotFound)

	require.NoError(t, fleet.Focus("NODE-002"))
	assert.Equal(t, "NODE-002", fleet.Focused())
	assert.Equal(t, ModeFocused, fleet.mode("NODE-002"))
	assert.Equal(t, ModeCompact, fleet.mode("NODE-001"))

	telemetry, err := fleet.Telemetry("NODE-002")
	require.NoError(t, err)
	assert.True(t, telemetry.Focused)

	require.NoError(t, fleet.Focus("NODE-003"))
	assert.Equal(t, ModeCompact, fleet.mode("NODE-002"))

	fleet.Unfocus()
	assert.Empty(t, fleet.Focused())
	assert.Equal(t, ModeCompact, fleet.mode("NODE-003"))
}

func TestFleet_TelemetryMarkerExpires(t *testing.T) {
	// Подготовка
	cfg := fastConfig()
	fleet := NewFleet(testCameras(), cfg, quietLogger())
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fleet.now = func() time.Time { return now }
	rng := rand.New(rand.NewPCG(1, 2))

	// Действие
	inc, forwarded := fleet.fire(rng, testCameras()[1])

	// Проверки
	require.True(t, forwarded)
	telemetry, err := fleet.Telemetry("NODE-002")
	require.NoError(t, err)
	require.NotNil(t, telemetry.Marker)
	assert.Equal(t, inc.ID.String(), telemetry.Marker.ID)
	assert.Equal(t, inc.Type, telemetry.Marker.Type)

	now = now.Add(cfg.CompactMarkerTTL)
	telemetry, err = fleet.Telemetry("NODE-002")
	require.NoError(t, err)
	assert.Nil(t, telemetry.Marker)

	_, err = fleet.Telemetry("NODE-404")
	assert.ErrorIs(t, err, ErrCameraNotFound)
}

func TestFleet_CamerasCopy(t *testing.T) {
	fleet := NewFleet(testCameras(), fastConfig(), quietLogger())

	cameras := fleet.Cameras()
	cameras[0].Name = "changed"

	assert.Equal(t, "Av. Salaverry - Sector 1", fleet.Cameras()[0].Name)
}

func TestReschedule(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(10 * time.Second)

	assert.Equal(t, now.Add(4*time.Second), reschedule(deadline, now, 4*time.Second))
	assert.Equal(t, deadline, reschedule(deadline, now, 15*time.Second))
	assert.Equal(t, deadline, reschedule(deadline, now, 10*time.Second))
}

func TestFleet_FocusTogglingDoesNotStarveCamera(t *testing.T) {
	// Подготовка
	cfg := fastConfig()
	cfg.CompactBase = 100 * time.Millisecond
	cfg.CompactJitter = 0
	cfg.FocusedBase = 100 * time.Millisecond
	cfg.FocusedJitter = 0
	cameras := testCameras()[:1]
	fleet := NewFleet(cameras, cfg, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Действие: переключаем фокус заметно чаще базового интервала
	out := fleet.Start(ctx)
	toggleDone := make(chan struct{})
	go func() {
		defer close(toggleDone)
		ticker := time.NewTicker(5 * time.Millisecond)
		defer ticker.Stop()
		focused := false
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if focused {
					fleet.Unfocus()
				} else {
					assert.NoError(t, fleet.Focus(cameras[0].ID))
				}
				focused = !focused
			}
		}
	}()

	// Проверки
	select {
	case inc := <-out:
		assert.Equal(t, cameras[0].ID, inc.CameraID)
	case <-time.After(3 * time.Second):
		t.Fatal("camera never fired while focus was toggled")
	}
	cancel()
	<-toggleDone
}
