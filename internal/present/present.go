// Package present renders a WeatherReading into the fixed multi-line summary
// shown to the user. Formatting is pure: no I/O, no state, identical output
// for identical input.
package present

import (
	"fmt"
	"strconv"
	"strings"

	"weatherpanel/internal/models"
	"weatherpanel/internal/units"
)

// FailureText is shown whenever a fetch fails, whatever the cause. No partial
// information is ever rendered alongside it.
const FailureText = "Failed to fetch weather data. Please check the location and try again."

// FormatReading converts the Kelvin-canonical reading into the selected unit
// and renders the fixed summary template. Temperatures get two decimals,
// humidity is an integer percentage, wind speed keeps the precision the API
// delivered.
func FormatReading(r models.WeatherReading, unit units.Unit) string {
	label := unit.Label()

	var b strings.Builder
	b.WriteString("Weather Information:\n")
	fmt.Fprintf(&b, "Location: %s\n", r.Name)
	fmt.Fprintf(&b, "Weather: %s\n", r.Description)
	fmt.Fprintf(&b, "Temperature: %.2f %s\n", unit.FromKelvin(r.TempKelvin), label)
	fmt.Fprintf(&b, "Feels Like: %.2f %s\n", unit.FromKelvin(r.FeelsLikeKelvin), label)
	fmt.Fprintf(&b, "Min Temperature: %.2f %s\n", unit.FromKelvin(r.MinKelvin), label)
	fmt.Fprintf(&b, "Max Temperature: %.2f %s\n", unit.FromKelvin(r.MaxKelvin), label)
	fmt.Fprintf(&b, "Humidity: %d%%\n", r.Humidity)
	fmt.Fprintf(&b, "Wind Speed: %s m/s", strconv.FormatFloat(r.WindSpeed, 'f', -1, 64))
	return b.String()
}
