package units

import "strings"

// Unit is the temperature unit selected for display. Unspecified means the
// user made no selection; everywhere it matters it behaves as Kelvin.
type Unit int

const (
	Unspecified Unit = iota
	Celsius
	Fahrenheit
	Kelvin
)

// Parse maps user input to a Unit. Accepts the single-letter forms used by
// the UI radio buttons and the spelled-out names, case-insensitively.
// Empty or unrecognized input yields Unspecified.
func Parse(s string) Unit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius
	case "f", "fahrenheit":
		return Fahrenheit
	case "k", "kelvin":
		return Kelvin
	default:
		return Unspecified
	}
}

// FromKelvin converts an absolute Kelvin temperature to this unit.
// Kelvin is canonical upstream, so Kelvin (and Unspecified) is identity.
func (u Unit) FromKelvin(k float64) float64 {
	switch u {
	case Celsius:
		return k - 273.15
	case Fahrenheit:
		return (k-273.15)*9/5 + 32
	default:
		return k
	}
}

// Label returns the display suffix appended to converted temperatures.
func (u Unit) Label() string {
	switch u {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	default:
		return "K"
	}
}

// String returns the spelled-out unit name, mostly for logs.
func (u Unit) String() string {
	switch u {
	case Celsius:
		return "celsius"
	case Fahrenheit:
		return "fahrenheit"
	case Kelvin:
		return "kelvin"
	default:
		return "unspecified"
	}
}
