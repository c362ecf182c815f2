package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shenikar/eagle_eye/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cameras := Default(DefaultCameraCount)

	require.Len(t, cameras, 48)
	assert.Equal(t, models.Camera{ID: "NODE-001", Name: "Av. Salaverry - Sector 1", Mode: models.SensorThermal}, cameras[0])
	assert.Equal(t, models.SensorStandard, cameras[1].Mode)
	assert.Equal(t, models.SensorNight, cameras[3].Mode)
	assert.Equal(t, models.SensorThermal, cameras[15].Mode)
	assert.Equal(t, "NODE-021", cameras[20].ID)
	assert.Equal(t, "Av. Salaverry - Sector 6", cameras[20].Name)
	assert.Equal(t, "NODE-048", cameras[47].ID)
}

func TestLoad(t *testing.T) {
	// Подготовка
	path := filepath.Join(t.TempDir(), "cameras.yaml")
	content := `cameras:
  - id: CAM-A
    name: Av. Brasil north
    mode: night
  - id: CAM-B
    name: Plaza San José
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// Действие
	cameras, err := Load(path)

	// Проверки
	require.NoError(t, err)
	require.Len(t, cameras, 2)
	assert.Equal(t, models.SensorNight, cameras[0].Mode)
	assert.Equal(t, models.SensorStandard, cameras[1].Mode)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":        "cameras: []",
		"missing name": "cameras:\n  - id: A\n",
		"duplicate":    "cameras:\n  - {id: A, name: a}\n  - {id: A, name: b}\n",
		"bad mode":     "cameras:\n  - {id: A, name: a, mode: infrared}\n",
		"bad yaml":     "cameras: [",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorContains(t, err, "read camera registry")
}
