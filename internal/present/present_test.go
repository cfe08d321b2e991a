package present

import (
	"strings"
	"testing"

	"weatherpanel/internal/models"
	"weatherpanel/internal/units"
)

func londonReading() models.WeatherReading {
	return models.WeatherReading{
		Name:            "London",
		Description:     "clear sky",
		TempKelvin:      280.0,
		FeelsLikeKelvin: 279.0,
		MinKelvin:       278.0,
		MaxKelvin:       282.0,
		Humidity:        60,
		WindSpeed:       3.5,
	}
}

func TestFormatReading_Celsius(t *testing.T) {
	got := FormatReading(londonReading(), units.Celsius)

	for _, want := range []string{
		"Weather Information:",
		"Location: London",
		"Weather: clear sky",
		"Temperature: 6.85 °C",
		"Feels Like: 5.85 °C",
		"Min Temperature: 4.85 °C",
		"Max Temperature: 8.85 °C",
		"Humidity: 60%",
		"Wind Speed: 3.5 m/s",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestFormatReading_TemplateLineOrder(t *testing.T) {
	lines := strings.Split(FormatReading(londonReading(), units.Kelvin), "\n")

	wantPrefixes := []string{
		"Weather Information:",
		"Location:",
		"Weather:",
		"Temperature:",
		"Feels Like:",
		"Min Temperature:",
		"Max Temperature:",
		"Humidity:",
		"Wind Speed:",
	}
	if len(lines) != len(wantPrefixes) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(wantPrefixes), strings.Join(lines, "\n"))
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}

func TestFormatReading_KelvinNoConversion(t *testing.T) {
	got := FormatReading(londonReading(), units.Kelvin)
	if !strings.Contains(got, "Temperature: 280.00 K") {
		t.Errorf("kelvin output should keep raw value:\n%s", got)
	}
}

func TestFormatReading_UnspecifiedDefaultsToKelvin(t *testing.T) {
	kelvin := FormatReading(londonReading(), units.Kelvin)
	unspecified := FormatReading(londonReading(), units.Unspecified)
	if kelvin != unspecified {
		t.Errorf("unspecified unit should render identically to kelvin:\n%s\nvs\n%s", unspecified, kelvin)
	}
}

func TestFormatReading_Fahrenheit(t *testing.T) {
	got := FormatReading(londonReading(), units.Fahrenheit)
	if !strings.Contains(got, "Temperature: 44.33 °F") {
		t.Errorf("fahrenheit conversion wrong:\n%s", got)
	}
}

func TestFormatReading_Idempotent(t *testing.T) {
	r := londonReading()
	first := FormatReading(r, units.Celsius)
	second := FormatReading(r, units.Celsius)
	if first != second {
		t.Errorf("formatting is not idempotent:\n%s\nvs\n%s", first, second)
	}
}

func TestFormatReading_WindSpeedNativePrecision(t *testing.T) {
	r := londonReading()
	r.WindSpeed = 3.57
	if got := FormatReading(r, units.Kelvin); !strings.Contains(got, "Wind Speed: 3.57 m/s") {
		t.Errorf("wind speed should not be rounded:\n%s", got)
	}
}
