package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/eagle_eye/internal/forensic"
	"github.com/shenikar/eagle_eye/internal/models"
	"github.com/sirupsen/logrus"
)

// SightingRepository определяет контракт кэша результатов поиска
type SightingRepository interface {
	GetSightings(ctx context.Context, plate, period string) ([]models.Sighting, error)
	SetSightings(ctx context.Context, plate, period string, sightings []models.Sighting) error
}

// HistorySource строит историю перемещений номера
type HistorySource interface {
	History(plate string) []models.Sighting
}

// ForensicService определяет контракт расследования по номеру.
// Оператор один, поэтому хранится только последнее расследование.
type ForensicService interface {
	Search(ctx context.Context, plate, period string) (*models.ForensicCase, error)
	CurrentCase(ctx context.Context) (*models.ForensicCase, error)
	Select(ctx context.Context, index int) (*models.ForensicCase, error)
	Deselect(ctx context.Context) (*models.ForensicCase, error)
}

type forensicService struct {
	repo    SightingRepository
	history HistorySource
	logger  *logrus.Logger

	mu      sync.Mutex
	current *models.ForensicCase
}

// NewForensicService создает сервис. repo может быть nil, тогда результаты не кэшируются.
func NewForensicService(repo SightingRepository, history HistorySource, logger *logrus.Logger) ForensicService {
	return &forensicService{
		repo:    repo,
		history: history,
		logger:  logger,
	}
}

// Search ищет перемещения номера за период, сначала в кэше. Сбрасывает выбор записи.
func (s *forensicService) Search(ctx context.Context, plate, period string) (*models.ForensicCase, error) {
	plate = forensic.NormalizePlate(plate)
	if plate == "" {
		return nil, ErrEmptyPlate
	}
	if !forensic.ValidPeriod(period) {
		return nil, fmt.Errorf("service: %w: %q", ErrInvalidPeriod, period)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "forensic",
		"method":  "Search",
		"plate":   plate,
		"period":  period,
	})
	log.Info("Searching plate history")

	fc := &models.ForensicCase{Plate: plate, Period: period}

	if s.repo != nil {
		cached, err := s.repo.GetSightings(ctx, plate, period)
		if err != nil {
			log.WithError(err).Warn("Failed to read sightings from cache")
		}
		if cached != nil {
			fc.Sightings = cached
			fc.Cached = true
		}
	}

	if !fc.Cached {
		fc.Sightings = s.history.History(plate)
		if s.repo != nil {
			if err := s.repo.SetSightings(ctx, plate, period, fc.Sightings); err != nil {
				log.WithError(err).Warn("Failed to cache sightings")
			}
		}
	}

	s.mu.Lock()
	s.current = fc
	out := copyCase(fc)
	s.mu.Unlock()

	log.WithFields(logrus.Fields{
		"count":  len(fc.Sightings),
		"cached": fc.Cached,
	}).Info("Plate history ready")
	return out, nil
}

func (s *forensicService) CurrentCase(ctx context.Context) (*models.ForensicCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoForensicCase
	}
	return copyCase(s.current), nil
}

// Select выделяет запись расследования по индексу
func (s *forensicService) Select(ctx context.Context, index int) (*models.ForensicCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoForensicCase
	}
	if index < 0 || index >= len(s.current.Sightings) {
		return nil, fmt.Errorf("service: %w: %d of %d", ErrSelectionOutOfRange, index, len(s.current.Sightings))
	}

	selected := index
	s.current.Selected = &selected
	return copyCase(s.current), nil
}

func (s *forensicService) Deselect(ctx context.Context) (*models.ForensicCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoForensicCase
	}
	s.current.Selected = nil
	return copyCase(s.current), nil
}

func copyCase(fc *models.ForensicCase) *models.ForensicCase {
	out := *fc
	out.Sightings = make([]models.Sighting, len(fc.Sightings))
	copy(out.Sightings, fc.Sightings)
	if fc.Selected != nil {
		selected := *fc.Selected
		out.Selected = &selected
	}
	return &out
}
