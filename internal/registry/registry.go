package registry

import (
	"errors"
	"fmt"
	"os"

	"github.com/shenikar/eagle_eye/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultCameraCount - размер штатной сетки камер
const DefaultCameraCount = 48

var ErrEmptyRegistry = errors.New("camera registry is empty")

var locations = []string{
	"Av. Salaverry", "Av. Brasil", "Res. San Felipe", "Campo de Marte",
	"Av. San Felipe", "Jr. Huamachuco", "Plaza San José", "Av. Cuba",
	"Jr. Pachacutec", "Av. Pershing", "Parque Habich", "Jr. Urteaga",
	"Metro Garzón", "Av. Arequipa", "C. Militar", "Real Plaza",
	"Hosp. Rebagliati", "Min. Salud", "Canal 2", "Parque Bomberos",
}

// file - формат YAML файла реестра
type file struct {
	Cameras []models.Camera `yaml:"cameras"`
}

// Default строит штатную сетку: NODE-001.., сектор на каждые четыре камеры,
// каждая пятая камера тепловизионная, каждая третья ночная
func Default(count int) []models.Camera {
	cameras := make([]models.Camera, count)
	for i := range cameras {
		mode := models.SensorStandard
		switch {
		case i%5 == 0:
			mode = models.SensorThermal
		case i%3 == 0:
			mode = models.SensorNight
		}
		cameras[i] = models.Camera{
			ID:   fmt.Sprintf("NODE-%03d", i+1),
			Name: fmt.Sprintf("%s - Sector %d", locations[i%len(locations)], i/4+1),
			Mode: mode,
		}
	}
	return cameras
}

// Load читает реестр из YAML файла
func Load(path string) ([]models.Camera, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read camera registry: %w", err)
	}
	return Parse(data)
}

// Parse разбирает и проверяет реестр; режим по умолчанию standard
func Parse(data []byte) ([]models.Camera, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse camera registry: %w", err)
	}
	if len(f.Cameras) == 0 {
		return nil, ErrEmptyRegistry
	}

	seen := make(map[string]struct{}, len(f.Cameras))
	for i := range f.Cameras {
		cam := &f.Cameras[i]
		if cam.ID == "" || cam.Name == "" {
			return nil, fmt.Errorf("camera #%d: id and name are required", i+1)
		}
		if _, dup := seen[cam.ID]; dup {
			return nil, fmt.Errorf("camera %s: duplicate id", cam.ID)
		}
		seen[cam.ID] = struct{}{}

		if cam.Mode == "" {
			cam.Mode = models.SensorStandard
		}
		if !cam.Mode.Valid() {
			return nil, fmt.Errorf("camera %s: unknown sensor mode %q", cam.ID, cam.Mode)
		}
	}
	return f.Cameras, nil
}
