package waterheater

import (
	"fmt"
	"math"
	"strings"
)

type Unit string

const (
	Celsius    Unit = "°C"
	Fahrenheit Unit = "°F"
)

// ParseUnit parses a configured temperature unit.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "°c", "celsius", "":
		return Celsius, nil
	case "f", "°f", "fahrenheit":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("invalid temperature unit: %q", s)
	}
}

// SpaUnit maps the unit reported by the spa. The API's "°C" is sometimes decoded as latin-1, i.e. "Â°C".
func SpaUnit(unit string) Unit {
	if unit == "°C" || unit == "Â°C" {
		return Celsius
	}
	return Fahrenheit
}

// Convert converts a temperature between units.
func Convert(temperature float64, from, to Unit) float64 {
	if from == to {
		return temperature
	}
	if from == Celsius {
		return temperature*1.8 + 32
	}
	return (temperature - 32) / 1.8
}

type Precision float64

const (
	PrecisionTenths Precision = 0.1
	PrecisionHalves Precision = 0.5
	PrecisionWhole  Precision = 1.0
)

// DisplayTemp converts a temperature to the display unit and rounds it to the provided precision.
// Rounding is half-to-even. A missing temperature remains missing.
func DisplayTemp(temperature *float64, from, to Unit, precision Precision) *float64 {
	if temperature == nil {
		return nil
	}
	t := Convert(*temperature, from, to)
	switch precision {
	case PrecisionHalves:
		t = math.RoundToEven(t*2) / 2
	case PrecisionTenths:
		t = math.RoundToEven(t*10) / 10
	default:
		t = math.RoundToEven(t)
	}
	return &t
}
