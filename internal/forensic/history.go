package forensic

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/shenikar/eagle_eye/internal/models"
)

// Периоды поиска
const (
	Period24h = "24h"
	Period7d  = "7d"
	Period30d = "30d"
)

// NodeCount - сколько узлов может зафиксировать номер
const NodeCount = 48

// ValidPeriod проверяет период поиска
func ValidPeriod(period string) bool {
	switch period {
	case Period24h, Period7d, Period30d:
		return true
	}
	return false
}

type waypoint struct {
	name   string
	lat    float64
	lng    float64
	offset time.Duration
}

// route - типовой маршрут по Хесус Мария
var route = []waypoint{
	{"Av. Brasil / Jr. Huamachuco", -12.0723, -77.0512, 0},
	{"Plaza San José", -12.0715, -77.0438, 12 * time.Minute},
	{"Campo de Marte (Puerta 4)", -12.0689, -77.0421, 25 * time.Minute},
	{"Av. Cuba / Jr. Pachacutec", -12.0782, -77.0445, 38 * time.Minute},
	{"Av. Salaverry / San Felipe", -12.0845, -77.0482, 55 * time.Minute},
	{"Residencial San Felipe - Torre A", -12.0861, -77.0504, 72 * time.Minute},
	{"Metro Garzón", -12.0750, -77.0490, 90 * time.Minute},
	{"Av. Arequipa / Cdra 15", -12.0810, -77.0350, 110 * time.Minute},
}

// RouteLength - число фиксаций в одном расследовании
var RouteLength = len(route)

// Generator синтезирует историю перемещений номера
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, 0x5eed)),
		now: time.Now,
	}
}

// NormalizePlate приводит номер к каноничному виду
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// History возвращает фиксации номера вдоль маршрута, новые первыми.
// Маршрут начинается за три часа до текущего момента.
func (g *Generator) History(plate string) []models.Sighting {
	plate = NormalizePlate(plate)
	base := g.now().Add(-3 * time.Hour)

	g.mu.Lock()
	defer g.mu.Unlock()

	sightings := make([]models.Sighting, len(route))
	for i, point := range route {
		sightings[len(route)-1-i] = models.Sighting{
			ID:          fmt.Sprintf("DET-%s-%d", plate, i),
			Plate:       plate,
			Timestamp:   base.Add(point.offset),
			NodeID:      fmt.Sprintf("NODE-%03d", g.rng.IntN(NodeCount)),
			Location:    point.name,
			Coordinates: models.Coordinates{Lat: point.lat, Lng: point.lng},
			SpeedKmh:    20 + g.rng.IntN(30),
		}
	}
	return sightings
}
