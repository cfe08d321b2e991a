package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"weatherpanel/internal/client"
	"weatherpanel/internal/lifecycle"
	"weatherpanel/internal/service"
	"weatherpanel/internal/traffic"
	"weatherpanel/internal/units"
	"weatherpanel/internal/validation"
)

// HealthConfig holds thresholds for the health handler.
type HealthConfig struct {
	DegradedWindow   time.Duration
	DegradedErrorPct int
	StartTime        time.Time
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	lookup           *service.LookupService
	healthConfig     *HealthConfig
	logger           *zap.Logger
	rateLimiter      *rate.Limiter
	locationMaxLen   int
	healthStatusMu   sync.Mutex
	healthStatusPrev string
}

// NewHandler returns a new Handler.
func NewHandler(lookup *service.LookupService, healthConfig *HealthConfig, logger *zap.Logger, rateLimiter *rate.Limiter, locationMaxLen int) *Handler {
	return &Handler{
		lookup:         lookup,
		healthConfig:   healthConfig,
		logger:         logger,
		rateLimiter:    rateLimiter,
		locationMaxLen: locationMaxLen,
	}
}

// GetPanel handles GET /. Without a location parameter it renders the empty
// form; with one it performs the lookup and re-renders the page with the
// display text below the form. The whole result is replaced on every attempt.
func (h *Handler) GetPanel(w http.ResponseWriter, r *http.Request) {
	data := panelData{
		Location: r.URL.Query().Get("location"),
		Unit:     r.URL.Query().Get("unit"),
	}

	if r.URL.Query().Has("location") {
		if h.rateLimiter != nil && !h.rateLimiter.Allow() {
			recordRateLimitDenied(r)
			data.Result = "Too many requests. Please wait a moment and try again."
			renderPanel(w, http.StatusTooManyRequests, data)
			return
		}
		q := service.Query{
			Location: data.Location,
			Unit:     units.Parse(data.Unit),
		}
		data.Result = h.lookup.LookupText(r.Context(), q)
	}

	renderPanel(w, http.StatusOK, data)
}

// weatherResponse is the JSON shape served by /api/weather/{location}.
// Temperatures are already converted to the requested unit.
type weatherResponse struct {
	Location       string  `json:"location"`
	Description    string  `json:"description"`
	Temperature    float64 `json:"temperature"`
	FeelsLike      float64 `json:"feelsLike"`
	MinTemperature float64 `json:"minTemperature"`
	MaxTemperature float64 `json:"maxTemperature"`
	Unit           string  `json:"unit"`
	Humidity       int     `json:"humidity"`
	WindSpeed      float64 `json:"windSpeed"`
}

// GetWeather handles GET /api/weather/{location}?unit=.
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request) {
	location := mux.Vars(r)["location"]
	unit := units.Parse(r.URL.Query().Get("unit"))

	reading, err := h.lookup.Lookup(r.Context(), service.Query{Location: location, Unit: unit})
	if err != nil {
		h.writeLookupError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, weatherResponse{
		Location:       reading.Name,
		Description:    reading.Description,
		Temperature:    unit.FromKelvin(reading.TempKelvin),
		FeelsLike:      unit.FromKelvin(reading.FeelsLikeKelvin),
		MinTemperature: unit.FromKelvin(reading.MinKelvin),
		MaxTemperature: unit.FromKelvin(reading.MaxKelvin),
		Unit:           unit.Label(),
		Humidity:       reading.Humidity,
		WindSpeed:      reading.WindSpeed,
	})
}

// writeLookupError maps lookup failures to API status codes. The web form
// collapses everything into one sentence; the JSON surface is allowed to
// distinguish, but upstream detail still stays in the logs.
func (h *Handler) writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, validation.ErrLocationEmpty), errors.Is(err, validation.ErrLocationTooLong):
		writeError(w, r, http.StatusBadRequest, "INVALID_LOCATION", err.Error())
	case errors.Is(err, client.ErrLocationNotFound), errors.Is(err, client.ErrMalformedResponse):
		writeError(w, r, http.StatusNotFound, "LOCATION_NOT_FOUND", "Unable to find weather for that location")
	default:
		writeError(w, r, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Unable to fetch weather data")
	}
	if logger, ok := r.Context().Value("logger").(*zap.Logger); ok && logger != nil {
		logger.Debug("lookup error", zap.Error(err))
	}
}

// healthResult holds the computed health status and metadata for logging.
type healthResult struct {
	status     string
	statusCode int
	reason     string
}

// GetHealth handles GET /health.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	result := h.computeHealthStatus()

	h.healthStatusMu.Lock()
	prev := h.healthStatusPrev
	if prev != "" && prev != result.status {
		h.logger.Info("health status transition",
			zap.String("previous_status", prev),
			zap.String("current_status", result.status),
			zap.String("reason", result.reason))
	}
	h.healthStatusPrev = result.status
	h.healthStatusMu.Unlock()

	resp := map[string]interface{}{
		"status":    result.status,
		"service":   "weatherpanel",
		"version":   "dev",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, result.statusCode, resp)
}

// computeHealthStatus evaluates health conditions in priority order:
// shutting-down > degraded (recent fetch error rate) > healthy.
func (h *Handler) computeHealthStatus() healthResult {
	if lifecycle.IsShuttingDown() {
		return healthResult{"shutting-down", http.StatusServiceUnavailable, "signal"}
	}
	if h.healthConfig != nil && h.healthConfig.DegradedWindow > 0 && h.healthConfig.DegradedErrorPct > 0 {
		errors, total := traffic.ErrorRate(h.healthConfig.DegradedWindow)
		if total > 0 {
			pct := float64(errors) * 100 / float64(total)
			if pct >= float64(h.healthConfig.DegradedErrorPct) {
				return healthResult{"degraded", http.StatusServiceUnavailable, "error_rate_breach"}
			}
		}
	}
	return healthResult{"healthy", http.StatusOK, ""}
}

// writeJSON writes a JSON response with the specified HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response in the standard error format with code,
// message, and requestId (correlation ID) if available in request context.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	corrID := ""
	if v := r.Context().Value("correlation_id"); v != nil {
		corrID = v.(string)
	}
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]string{
			"code":      code,
			"message":   message,
			"requestId": corrID,
		},
	})
}
