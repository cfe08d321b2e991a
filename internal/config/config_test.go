package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// chdirTemp runs the test from an empty temp dir so no config/ directory or
// .env from the repository leaks into Load.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_MissingAPIKey(t *testing.T) {
	chdirTemp(t)
	t.Setenv("OPENWEATHER_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error when OPENWEATHER_API_KEY is unset")
	}
	if !strings.Contains(err.Error(), "OPENWEATHER_API_KEY") {
		t.Errorf("error should name the missing variable, got: %v", err)
	}
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	chdirTemp(t)
	t.Setenv("OPENWEATHER_API_KEY", "test-key-1234567890")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("OPENWEATHER_API_URL", "")
	t.Setenv("ENV_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.WeatherAPIURL != "https://api.openweathermap.org/data/2.5/weather" {
		t.Errorf("WeatherAPIURL = %q, want OpenWeather default", cfg.WeatherAPIURL)
	}
	if cfg.WeatherAPITimeout != 5*time.Second {
		t.Errorf("WeatherAPITimeout = %v, want 5s", cfg.WeatherAPITimeout)
	}
	if cfg.RequestTimeout <= cfg.WeatherAPITimeout {
		t.Errorf("RequestTimeout %v must exceed WeatherAPITimeout %v", cfg.RequestTimeout, cfg.WeatherAPITimeout)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		t.Errorf("rate limit defaults not applied: rps=%d burst=%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.DegradedErrorPct <= 0 {
		t.Errorf("DegradedErrorPct default not applied: %d", cfg.DegradedErrorPct)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("OPENWEATHER_API_KEY", "test-key-1234567890")
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("OPENWEATHER_API_URL", "http://localhost:1234/weather")
	t.Setenv("ENV_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServerPort != "9191" {
		t.Errorf("ServerPort = %q, want 9191", cfg.ServerPort)
	}
	if cfg.WeatherAPIURL != "http://localhost:1234/weather" {
		t.Errorf("WeatherAPIURL = %q, want env override", cfg.WeatherAPIURL)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("OPENWEATHER_API_KEY", "test-key-1234567890")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("OPENWEATHER_API_URL", "")
	t.Setenv("ENV_NAME", "test")

	yaml := `
server:
  port: "7070"
weather_api:
  timeout: 2s
reliability:
  rate_limit_rps: 3
  rate_limit_burst: 6
health:
  degraded_window: 30s
  degraded_error_pct: 25
`
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatalf("mkdir config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config", "test.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServerPort != "7070" {
		t.Errorf("ServerPort = %q, want 7070", cfg.ServerPort)
	}
	if cfg.WeatherAPITimeout != 2*time.Second {
		t.Errorf("WeatherAPITimeout = %v, want 2s", cfg.WeatherAPITimeout)
	}
	if cfg.RateLimitRPS != 3 || cfg.RateLimitBurst != 6 {
		t.Errorf("rate limits = %d/%d, want 3/6", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.DegradedWindow != 30*time.Second || cfg.DegradedErrorPct != 25 {
		t.Errorf("degraded = %v/%d, want 30s/25", cfg.DegradedWindow, cfg.DegradedErrorPct)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   time.Duration
		want  time.Duration
	}{
		{name: "valid", input: "3s", def: time.Second, want: 3 * time.Second},
		{name: "empty uses default", input: "", def: time.Second, want: time.Second},
		{name: "invalid uses default", input: "soon", def: time.Second, want: time.Second},
		{name: "negative uses default", input: "-1s", def: time.Second, want: time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseDuration(tt.input, tt.def); got != tt.want {
				t.Errorf("parseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
