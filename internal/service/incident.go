package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/eagle_eye/internal/dashboard"
	"github.com/shenikar/eagle_eye/internal/models"
	"github.com/shenikar/eagle_eye/internal/webhook"
	"github.com/sirupsen/logrus"
)

// NarrativeGenerator определяет контракт генератора оперативных сводок.
// Generate никогда не завершается ошибкой: при сбое возвращается шаблонный отчет.
type NarrativeGenerator interface {
	Generate(ctx context.Context, inc models.Incident) models.Narrative
}

// IncidentService определяет контракт маршрутизации инцидентов и работы с тревогами
type IncidentService interface {
	Run(ctx context.Context, incidents <-chan models.Incident)
	Route(ctx context.Context, inc models.Incident) error
	ListIncidents(ctx context.Context, predictiveOnly bool, limit int) ([]models.Incident, error)
	CurrentAlert(ctx context.Context) (*models.AlertView, error)
	DismissAlert(ctx context.Context, incidentID *uuid.UUID, resolution models.IncidentStatus) (*models.DismissResult, error)
	ThreatLevel(ctx context.Context) int
	Stats(ctx context.Context) models.DashboardStats
	Close()
}

type incidentService struct {
	state     *dashboard.State
	generator NarrativeGenerator
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger

	// ctx ограничивает время жизни фоновых запросов сводок
	ctx      context.Context
	cancel   context.CancelFunc
	inflight sync.WaitGroup
	now      func() time.Time
}

// NewIncidentService создает сервис. publisher может быть nil, тогда оповещения не отправляются.
func NewIncidentService(state *dashboard.State, generator NarrativeGenerator, publisher webhook.WebhookPublisher, logger *logrus.Logger) IncidentService {
	ctx, cancel := context.WithCancel(context.Background())
	return &incidentService{
		state:     state,
		generator: generator,
		publisher: publisher,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		now:       time.Now,
	}
}

// Run - цикл маршрутизатора: каждый инцидент из канала проходит Route ровно один раз
func (s *incidentService) Run(ctx context.Context, incidents <-chan models.Incident) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "Run",
	})
	log.Info("Incident router started")
	defer log.Info("Incident router stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case inc, ok := <-incidents:
			if !ok {
				return
			}
			if err := s.Route(ctx, inc); err != nil {
				log.WithError(err).Error("Failed to route incident")
			}
		}
	}
}

// Route применяет инцидент к журналу, очереди и уровню угрозы одним шагом
func (s *incidentService) Route(ctx context.Context, inc models.Incident) error {
	if !inc.Type.Valid() {
		return fmt.Errorf("service: could not route incident %s: %w", inc.ID, models.ErrUnknownDetectionType)
	}
	if inc.Confidence < 0 || inc.Confidence > 1 {
		return fmt.Errorf("service: could not route incident %s: %w", inc.ID, models.ErrConfidenceOutOfRange)
	}

	outcome := s.state.Route(inc)

	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "Route",
		"incident_id":  inc.ID,
		"camera_id":    inc.CameraID,
		"type":         inc.Type,
		"threat_level": outcome.ThreatLevel,
	})
	log.Debug("Incident routed")

	if !outcome.Escalated {
		return nil
	}

	log.WithField("queue_length", outcome.QueueLength).Warn("Critical alert enqueued")
	s.publish(ctx, webhook.AlertEvent{
		Event:         webhook.EventCriticalAlert,
		Incident:      inc,
		ThreatLevel:   outcome.ThreatLevel,
		PendingAlerts: outcome.QueueLength - 1,
		Timestamp:     s.now(),
	})

	if outcome.HeadChanged {
		s.requestNarrative(*outcome.Head)
	}
	return nil
}

// ListIncidents возвращает журнал, новые первыми
func (s *incidentService) ListIncidents(ctx context.Context, predictiveOnly bool, limit int) ([]models.Incident, error) {
	if limit < 1 || limit > dashboard.HistoryLimit {
		limit = dashboard.HistoryLimit
	}

	history := s.state.Snapshot().History()
	incidents := make([]models.Incident, 0, min(limit, len(history)))
	for _, inc := range history {
		if len(incidents) == limit {
			break
		}
		if predictiveOnly && !inc.IsPredictive() {
			continue
		}
		incidents = append(incidents, inc)
	}
	return incidents, nil
}

// CurrentAlert возвращает тревогу в голове очереди или nil в состоянии Idle
func (s *incidentService) CurrentAlert(ctx context.Context) (*models.AlertView, error) {
	view, ok := s.state.Snapshot().Alert()
	if !ok {
		return nil, nil
	}
	return &view, nil
}

// DismissAlert снимает текущую тревогу. Если передан incidentID, снимается только совпадающая голова.
func (s *incidentService) DismissAlert(ctx context.Context, incidentID *uuid.UUID, resolution models.IncidentStatus) (*models.DismissResult, error) {
	if resolution == "" {
		resolution = models.StatusNeutralized
	}
	if !resolution.Resolution() {
		return nil, ErrInvalidResolution
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":    "incident",
		"method":     "DismissAlert",
		"resolution": resolution,
	})

	var (
		outcome   dashboard.DismissOutcome
		dismissed bool
		err       error
	)
	if incidentID != nil {
		outcome, dismissed, err = s.state.DismissHead(*incidentID, resolution)
		if errors.Is(err, dashboard.ErrHeadMismatch) {
			log.WithField("incident_id", *incidentID).Warn("Attempted to dismiss an alert that is no longer current")
			return nil, fmt.Errorf("service: could not dismiss %s: %w", *incidentID, ErrAlertMismatch)
		}
	} else {
		outcome, dismissed = s.state.Dismiss(resolution)
	}

	result := &models.DismissResult{ThreatLevel: outcome.ThreatLevel}
	if !dismissed {
		log.Debug("Dismiss requested while idle")
		return result, nil
	}

	result.Dismissed = outcome.Dismissed
	log.WithFields(logrus.Fields{
		"incident_id":  outcome.Dismissed.ID,
		"threat_level": outcome.ThreatLevel,
		"remaining":    outcome.QueueLength,
	}).Info("Alert dismissed")

	s.publish(ctx, webhook.AlertEvent{
		Event:         webhook.EventAlertDismissed,
		Incident:      *outcome.Dismissed,
		ThreatLevel:   outcome.ThreatLevel,
		PendingAlerts: outcome.QueueLength,
		Timestamp:     s.now(),
	})

	if outcome.Next != nil {
		s.requestNarrative(*outcome.Next)
		if view, ok := s.state.Snapshot().Alert(); ok {
			result.Next = &view
		}
	}
	return result, nil
}

func (s *incidentService) ThreatLevel(ctx context.Context) int {
	return s.state.Snapshot().ThreatLevel()
}

func (s *incidentService) Stats(ctx context.Context) models.DashboardStats {
	return s.state.Snapshot().Stats()
}

// Close отменяет незавершенные запросы сводок и дожидается их
func (s *incidentService) Close() {
	s.cancel()
	s.inflight.Wait()
}

// requestNarrative запрашивает сводку для новой головы очереди в фоне.
// Ответ для уже снятой тревоги отбрасывается.
func (s *incidentService) requestNarrative(inc models.Incident) {
	if s.generator == nil {
		return
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		narrative := s.generator.Generate(s.ctx, inc)
		log := s.logger.WithFields(logrus.Fields{
			"service":     "incident",
			"method":      "requestNarrative",
			"incident_id": inc.ID,
			"fallback":    narrative.Fallback,
			"attempts":    narrative.Attempts,
		})

		if !s.state.ApplyNarrative(narrative) {
			log.Debug("Discarded stale narrative")
			return
		}
		log.Info("Narrative attached to alert")
	}()
}

func (s *incidentService) publish(ctx context.Context, event webhook.AlertEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":     "incident",
			"event":       event.Event,
			"incident_id": event.Incident.ID,
		}).WithError(err).Error("Failed to publish alert event")
	}
}
