package service

import (
	"context"
	"fmt"

	"github.com/shenikar/eagle_eye/internal/models"
	"github.com/sirupsen/logrus"
)

// CameraFleet определяет контракт набора симулируемых камер
type CameraFleet interface {
	Cameras() []models.Camera
	Telemetry(cameraID string) (models.Telemetry, error)
	Focus(cameraID string) error
	Unfocus()
	Focused() string
}

// CameraService определяет контракт работы с сеткой камер
type CameraService interface {
	ListCameras(ctx context.Context) []models.Camera
	Telemetry(ctx context.Context, cameraID string) (*models.Telemetry, error)
	Focus(ctx context.Context, cameraID string) error
	Unfocus(ctx context.Context)
}

type cameraService struct {
	fleet  CameraFleet
	logger *logrus.Logger
}

func NewCameraService(fleet CameraFleet, logger *logrus.Logger) CameraService {
	return &cameraService{
		fleet:  fleet,
		logger: logger,
	}
}

func (s *cameraService) ListCameras(ctx context.Context) []models.Camera {
	return s.fleet.Cameras()
}

func (s *cameraService) Telemetry(ctx context.Context, cameraID string) (*models.Telemetry, error) {
	t, err := s.fleet.Telemetry(cameraID)
	if err != nil {
		return nil, fmt.Errorf("service: telemetry for %s: %w", cameraID, err)
	}
	return &t, nil
}

// Focus переводит камеру в фокусный режим
func (s *cameraService) Focus(ctx context.Context, cameraID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "camera",
		"method":    "Focus",
		"camera_id": cameraID,
	})

	previous := s.fleet.Focused()
	if err := s.fleet.Focus(cameraID); err != nil {
		log.WithError(err).Warn("Attempted to focus an unknown camera")
		return fmt.Errorf("service: could not focus %s: %w", cameraID, err)
	}

	log.WithField("previous", previous).Info("Camera focused")
	return nil
}

func (s *cameraService) Unfocus(ctx context.Context) {
	s.fleet.Unfocus()
	s.logger.WithFields(logrus.Fields{
		"service": "camera",
		"method":  "Unfocus",
	}).Info("All cameras returned to compact mode")
}
