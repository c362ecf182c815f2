package service

import (
	"errors"

	"github.com/shenikar/eagle_eye/internal/simulator"
)

var (
	// ErrAlertMismatch - оператор снимает тревогу, которая уже не текущая
	ErrAlertMismatch       = errors.New("alert is no longer current")
	ErrInvalidResolution   = errors.New("resolution must be neutralized or police_notified")
	ErrInvalidPeriod       = errors.New("period must be one of 24h, 7d, 30d")
	ErrEmptyPlate          = errors.New("plate is required")
	ErrSelectionOutOfRange = errors.New("selection index out of range")
	ErrNoForensicCase      = errors.New("no forensic case")
	ErrCameraNotFound      = simulator.ErrCameraNotFound
)
