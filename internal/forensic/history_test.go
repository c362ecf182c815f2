package forensic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_History(t *testing.T) {
	// Подготовка
	g := NewGenerator(11)
	now := time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return now }

	// Действие
	sightings := g.History(" abc-123 ")

	// Проверки
	require.Len(t, sightings, RouteLength)
	assert.Equal(t, "DET-ABC-123-7", sightings[0].ID)
	assert.Equal(t, "Av. Arequipa / Cdra 15", sightings[0].Location)
	assert.Equal(t, now.Add(-3*time.Hour+110*time.Minute), sightings[0].Timestamp)
	assert.Equal(t, "Av. Brasil / Jr. Huamachuco", sightings[RouteLength-1].Location)
	assert.Equal(t, now.Add(-3*time.Hour), sightings[RouteLength-1].Timestamp)

	for i, s := range sightings {
		assert.Equal(t, "ABC-123", s.Plate)
		assert.GreaterOrEqual(t, s.SpeedKmh, 20)
		assert.Less(t, s.SpeedKmh, 50)
		assert.Regexp(t, `^NODE-0[0-4]\d$`, s.NodeID)
		if i > 0 {
			assert.True(t, s.Timestamp.Before(sightings[i-1].Timestamp))
		}
	}
}

func TestValidPeriod(t *testing.T) {
	assert.True(t, ValidPeriod(Period24h))
	assert.True(t, ValidPeriod(Period7d))
	assert.True(t, ValidPeriod(Period30d))
	assert.False(t, ValidPeriod("1y"))
	assert.False(t, ValidPeriod(""))
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "BKA-902", NormalizePlate("  bka-902"))
}
