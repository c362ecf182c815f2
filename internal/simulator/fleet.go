package simulator

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shenikar/eagle_eye/internal/models"
	"github.com/sirupsen/logrus"
)

var ErrCameraNotFound = errors.New("camera not found")

type markerEntry struct {
	marker    models.Marker
	expiresAt time.Time
}

// Fleet - набор симулируемых камер. У каждой камеры своя горутина
// и свой генератор случайных чисел, все кандидаты сходятся в один канал.
type Fleet struct {
	cfg     Config
	logger  *logrus.Logger
	cameras []models.Camera
	index   map[string]int
	retune  []chan struct{}

	mu        sync.RWMutex
	focused   string
	telemetry map[string]models.Telemetry
	markers   map[string]markerEntry

	now func() time.Time
}

func NewFleet(cameras []models.Camera, cfg Config, logger *logrus.Logger) *Fleet {
	f := &Fleet{
		cfg:       cfg,
		logger:    logger,
		cameras:   cameras,
		index:     make(map[string]int, len(cameras)),
		retune:    make([]chan struct{}, len(cameras)),
		telemetry: make(map[string]models.Telemetry, len(cameras)),
		markers:   make(map[string]markerEntry),
		now:       time.Now,
	}
	for i, cam := range cameras {
		f.index[cam.ID] = i
		f.retune[i] = make(chan struct{}, 1)
		f.telemetry[cam.ID] = initialTelemetry(cam.ID)
	}
	return f
}

// Start запускает все камеры. Канал закрывается, когда ctx отменен
// и все горутины камер завершились. Вызывается один раз.
func (f *Fleet) Start(ctx context.Context) <-chan models.Incident {
	out := make(chan models.Incident, len(f.cameras))
	var wg sync.WaitGroup

	for i := range f.cameras {
		wg.Add(2)
		go f.runCamera(ctx, i, rand.New(rand.NewPCG(f.cfg.Seed, uint64(i))), out, &wg)
		go f.runTelemetry(ctx, i, rand.New(rand.NewPCG(f.cfg.Seed, uint64(i)|1<<32)), &wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	f.logger.WithFields(logrus.Fields{
		"component": "simulator",
		"cameras":   len(f.cameras),
	}).Info("Camera fleet started")

	return out
}

func (f *Fleet) runCamera(ctx context.Context, idx int, rng *rand.Rand, out chan<- models.Incident, wg *sync.WaitGroup) {
	defer wg.Done()
	cam := f.cameras[idx]

	for {
		if !f.waitTick(ctx, idx, rng) {
			return
		}

		inc, ok := f.fire(rng, cam)
		if !ok {
			continue
		}

		select {
		case out <- inc:
		case <-ctx.Done():
			return
		}
	}
}

// waitTick ждет следующего срабатывания камеры. Смена режима может только
// приблизить срабатывание, иначе частые переключения фокуса откладывали бы его бесконечно.
// Возвращает false, если ctx отменен.
func (f *Fleet) waitTick(ctx context.Context, idx int, rng *rand.Rand) bool {
	id := f.cameras[idx].ID
	deadline := time.Now().Add(f.cfg.Interval(rng, f.mode(id)))
	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-f.retune[idx]:
			now := time.Now()
			next := reschedule(deadline, now, f.cfg.Interval(rng, f.mode(id)))
			if next.Before(deadline) {
				deadline = next
				timer.Reset(deadline.Sub(now))
			}
		case <-timer.C:
			return true
		}
	}
}

// reschedule возвращает более ранний из моментов: текущий deadline или now+interval
func reschedule(deadline, now time.Time, interval time.Duration) time.Time {
	if candidate := now.Add(interval); candidate.Before(deadline) {
		return candidate
	}
	return deadline
}

// fire генерирует одно срабатывание камеры и ставит отметку на кадр.
// Возвращает инцидент и признак того, что его нужно передать дальше.
func (f *Fleet) fire(rng *rand.Rand, cam models.Camera) (models.Incident, bool) {
	now := f.now()
	inc, err := Synthesize(rng, cam, f.cfg, now)
	if err != nil {
		f.logger.WithFields(logrus.Fields{
			"component": "simulator",
			"camera_id": cam.ID,
			"error":     err,
		}).Error("Rejected malformed detection")
		return models.Incident{}, false
	}

	mode := f.mode(cam.ID)
	f.mu.Lock()
	f.markers[cam.ID] = markerEntry{
		marker:    newMarker(rng, inc),
		expiresAt: now.Add(f.cfg.MarkerTTL(mode)),
	}
	f.mu.Unlock()

	if !ShouldForward(inc, f.cfg.ForwardThreshold) {
		return models.Incident{}, false
	}

	f.logger.WithFields(logrus.Fields{
		"component":   "simulator",
		"camera_id":   cam.ID,
		"incident_id": inc.ID,
		"type":        inc.Type,
		"confidence":  inc.Confidence,
	}).Debug("Detection forwarded")

	return inc, true
}

func (f *Fleet) runTelemetry(ctx context.Context, idx int, rng *rand.Rand, wg *sync.WaitGroup) {
	defer wg.Done()
	if f.cfg.TelemetryInterval <= 0 {
		return
	}

	id := f.cameras[idx].ID
	ticker := time.NewTicker(f.cfg.TelemetryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.mu.Lock()
			f.telemetry[id] = NextTelemetry(rng, f.telemetry[id])
			f.mu.Unlock()
		}
	}
}

func (f *Fleet) mode(cameraID string) Mode {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.focused == cameraID {
		return ModeFocused
	}
	return ModeCompact
}

// Cameras возвращает копию реестра камер
func (f *Fleet) Cameras() []models.Camera {
	out := make([]models.Camera, len(f.cameras))
	copy(out, f.cameras)
	return out
}

// Focused возвращает ID камеры в фокусе или пустую строку
func (f *Fleet) Focused() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.focused
}

// Telemetry возвращает текущую телеметрию и неистекшую отметку камеры
func (f *Fleet) Telemetry(cameraID string) (models.Telemetry, error) {
	if _, ok := f.index[cameraID]; !ok {
		return models.Telemetry{}, ErrCameraNotFound
	}

	now := f.now()
	f.mu.RLock()
	defer f.mu.RUnlock()

	t := f.telemetry[cameraID]
	t.Focused = f.focused == cameraID
	if entry, ok := f.markers[cameraID]; ok && now.Before(entry.expiresAt) {
		marker := entry.marker
		t.Marker = &marker
	}
	return t, nil
}

// Focus переводит камеру в фокусный режим, предыдущая возвращается в компактный
func (f *Fleet) Focus(cameraID string) error {
	idx, ok := f.index[cameraID]
	if !ok {
		return ErrCameraNotFound
	}

	f.mu.Lock()
	prev := f.focused
	f.focused = cameraID
	f.mu.Unlock()

	if prev == cameraID {
		return nil
	}
	if prevIdx, ok := f.index[prev]; ok {
		f.kick(prevIdx)
	}
	f.kick(idx)
	return nil
}

// Unfocus возвращает все камеры в компактный режим
func (f *Fleet) Unfocus() {
	f.mu.Lock()
	prev := f.focused
	f.focused = ""
	f.mu.Unlock()

	if idx, ok := f.index[prev]; ok {
		f.kick(idx)
	}
}

func (f *Fleet) kick(idx int) {
	select {
	case f.retune[idx] <- struct{}{}:
	default:
	}
}
