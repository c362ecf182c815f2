package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/eagle_eye/internal/models"
	"github.com/shenikar/eagle_eye/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestForensicService(t *testing.T) (*forensicService, *mocks.MockSightingRepository, *mocks.MockHistorySource) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSightingRepository(ctrl)
	historyMock := mocks.NewMockHistorySource(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewForensicService(repoMock, historyMock, logger)
	return service.(*forensicService), repoMock, historyMock
}

func testSightings(plate string, n int) []models.Sighting {
	sightings := make([]models.Sighting, n)
	for i := range sightings {
		sightings[i] = models.Sighting{
			ID:        plate + "-" + string(rune('a'+i)),
			Plate:     plate,
			Timestamp: testNow.Add(-time.Duration(i) * time.Minute),
			NodeID:    "NODE-001",
			Location:  "Metro Garzón",
			SpeedKmh:  30,
		}
	}
	return sightings
}

func TestSearch_CacheMiss(t *testing.T) {
	// Подготовка
	service, repoMock, historyMock := newTestForensicService(t)
	ctx := context.Background()
	sightings := testSightings("BKA-902", 8)

	// Ожидания
	repoMock.EXPECT().GetSightings(ctx, "BKA-902", "24h").Return(nil, nil).Times(1)
	historyMock.EXPECT().History("BKA-902").Return(sightings).Times(1)
	repoMock.EXPECT().SetSightings(ctx, "BKA-902", "24h", sightings).Return(nil).Times(1)

	// Действие
	fc, err := service.Search(ctx, " bka-902 ", "24h")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "BKA-902", fc.Plate)
	assert.False(t, fc.Cached)
	assert.Len(t, fc.Sightings, 8)
	assert.Nil(t, fc.Selected)
}

func TestSearch_CacheHit(t *testing.T) {
	service, repoMock, _ := newTestForensicService(t)
	ctx := context.Background()
	sightings := testSightings("LMA-118", 8)

	repoMock.EXPECT().GetSightings(ctx, "LMA-118", "7d").Return(sightings, nil).Times(1)

	fc, err := service.Search(ctx, "LMA-118", "7d")

	require.NoError(t, err)
	assert.True(t, fc.Cached)
	assert.Equal(t, sightings, fc.Sightings)
}

func TestSearch_CacheErrorFallsBack(t *testing.T) {
	service, repoMock, historyMock := newTestForensicService(t)
	ctx := context.Background()
	sightings := testSightings("AXE-772", 8)

	repoMock.EXPECT().GetSightings(ctx, "AXE-772", "30d").Return(nil, errors.New("connection refused")).Times(1)
	historyMock.EXPECT().History("AXE-772").Return(sightings).Times(1)
	repoMock.EXPECT().SetSightings(ctx, "AXE-772", "30d", sightings).Return(errors.New("connection refused")).Times(1)

	fc, err := service.Search(ctx, "AXE-772", "30d")

	require.NoError(t, err)
	assert.False(t, fc.Cached)
	assert.Len(t, fc.Sightings, 8)
}

func TestSearch_Validation(t *testing.T) {
	service, _, _ := newTestForensicService(t)
	ctx := context.Background()

	_, err := service.Search(ctx, "   ", "24h")
	assert.ErrorIs(t, err, ErrEmptyPlate)

	_, err = service.Search(ctx, "BKA-902", "1y")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestSelection(t *testing.T) {
	// Подготовка
	service, repoMock, historyMock := newTestForensicService(t)
	ctx := context.Background()
	sightings := testSightings("Z9I-001", 8)

	_, err := service.Select(ctx, 0)
	assert.ErrorIs(t, err, ErrNoForensicCase)
	_, err = service.CurrentCase(ctx)
	assert.ErrorIs(t, err, ErrNoForensicCase)

	repoMock.EXPECT().GetSightings(ctx, "Z9I-001", "24h").Return(nil, nil).Times(2)
	historyMock.EXPECT().History("Z9I-001").Return(sightings).Times(2)
	repoMock.EXPECT().SetSightings(ctx, "Z9I-001", "24h", sightings).Return(nil).Times(2)
	_, err = service.Search(ctx, "Z9I-001", "24h")
	require.NoError(t, err)

	// Действие
	fc, err := service.Select(ctx, 3)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, fc.Selected)
	assert.Equal(t, 3, *fc.Selected)

	_, err = service.Select(ctx, 8)
	assert.ErrorIs(t, err, ErrSelectionOutOfRange)
	_, err = service.Select(ctx, -1)
	assert.ErrorIs(t, err, ErrSelectionOutOfRange)

	current, err := service.CurrentCase(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, *current.Selected)

	// изменение копии не затрагивает сохраненное расследование
	*current.Selected = 5
	current.Sightings[0].Plate = "CHANGED"
	again, err := service.CurrentCase(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, *again.Selected)
	assert.Equal(t, "Z9I-001", again.Sightings[0].Plate)

	fc, err = service.Deselect(ctx)
	require.NoError(t, err)
	assert.Nil(t, fc.Selected)

	_, err = service.Select(ctx, 1)
	require.NoError(t, err)
	fc, err = service.Search(ctx, "Z9I-001", "24h")
	require.NoError(t, err)
	assert.Nil(t, fc.Selected)
}
