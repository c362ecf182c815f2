package models

import (
	"time"
)

// Coordinates - географическая точка
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Sighting - историческая фиксация номера на узле
type Sighting struct {
	ID          string      `json:"id"`
	Plate       string      `json:"plate"`
	Timestamp   time.Time   `json:"timestamp"`
	NodeID      string      `json:"node_id"`
	Location    string      `json:"location"`
	Coordinates Coordinates `json:"coordinates"`
	SpeedKmh    int         `json:"speed_kmh"`
}

// ForensicCase - результат последнего расследования оператора
type ForensicCase struct {
	Plate     string     `json:"plate"`
	Period    string     `json:"period"`
	Sightings []Sighting `json:"sightings"`
	Selected  *int       `json:"selected,omitempty"`
	Cached    bool       `json:"cached"`
}
