package mode

import (
	"fmt"
)

// Mode is the display unit the gun is currently reporting speeds in.
type Mode int

const (
	KilometersPerHour Mode = iota
	MilesPerHour
	MetersPerSecond
)

func (m Mode) String() string {
	switch m {
	case KilometersPerHour:
		return "kmh"
	case MilesPerHour:
		return "mph"
	case MetersPerSecond:
		return "mps"
	}
	return "N/A"
}

// Unit is the label shown next to a reading on the display.
func (m Mode) Unit() string {
	switch m {
	case KilometersPerHour:
		return "km/h"
	case MilesPerHour:
		return "mph"
	case MetersPerSecond:
		return "m/s"
	}
	return "?"
}

// FromMetersPerSecond converts a raw trap measurement into this mode's unit.
func (m Mode) FromMetersPerSecond(v float64) float64 {
	switch m {
	case KilometersPerHour:
		return v * 3.6
	case MilesPerHour:
		return v * 2.2369362920544
	}
	return v
}

func Parse(s string) (Mode, error) {
	switch s {
	case "kmh":
		return KilometersPerHour, nil
	case "mph":
		return MilesPerHour, nil
	case "mps":
		return MetersPerSecond, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}
