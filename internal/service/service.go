// Package service ties the input snapshot, the weather fetcher, and the
// presenter into one lookup flow shared by the web form, the JSON API, and
// the CLI.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"weatherpanel/internal/client"
	"weatherpanel/internal/models"
	"weatherpanel/internal/observability"
	"weatherpanel/internal/present"
	"weatherpanel/internal/traffic"
	"weatherpanel/internal/units"
	"weatherpanel/internal/validation"
)

// Query is the input snapshot taken at the moment the user triggers a fetch:
// the free-text location and the selected unit. An unspecified unit formats
// as Kelvin.
type Query struct {
	Location string
	Unit     units.Unit
}

// LookupService orchestrates one weather lookup per request. It owns no
// state between lookups; readings are fetched fresh and discarded after
// formatting.
type LookupService struct {
	fetcher        client.WeatherFetcher
	locationMaxLen int
}

// NewLookupService creates a LookupService. locationMaxLen bounds the input
// text (0 = default).
func NewLookupService(fetcher client.WeatherFetcher, locationMaxLen int) *LookupService {
	return &LookupService{
		fetcher:        fetcher,
		locationMaxLen: locationMaxLen,
	}
}

// loggerFromContext extracts a zap.Logger from request context if present.
func loggerFromContext(ctx context.Context) *zap.Logger {
	if v := ctx.Value("logger"); v != nil {
		if l, ok := v.(*zap.Logger); ok && l != nil {
			return l
		}
	}
	return nil
}

// Lookup validates the snapshot's location, fetches a fresh reading, and
// records the outcome for health tracking and metrics. The reading keeps its
// raw Kelvin values; conversion belongs to the presenter.
func (s *LookupService) Lookup(ctx context.Context, q Query) (models.WeatherReading, error) {
	start := time.Now()
	logger := loggerFromContext(ctx)

	observability.WeatherQueriesTotal.Inc()
	observability.UnitSelectionsTotal.WithLabelValues(effectiveUnit(q.Unit).String()).Inc()

	location, err := validation.ValidateLocation(q.Location, s.locationMaxLen)
	if err != nil {
		observability.FetchFailuresTotal.WithLabelValues(string(client.CategorizeError(err))).Inc()
		return models.WeatherReading{}, fmt.Errorf("validate location: %w", err)
	}

	reading, err := s.fetcher.CurrentWeather(ctx, location)
	if err != nil {
		traffic.RecordError()
		observability.FetchFailuresTotal.WithLabelValues(string(client.CategorizeError(err))).Inc()
		if logger != nil {
			logger.Warn("weather fetch failed",
				zap.String("location", location),
				zap.String("category", string(client.CategorizeError(err))),
				zap.Error(err))
		}
		return models.WeatherReading{}, fmt.Errorf("fetch weather for %s: %w", location, err)
	}

	traffic.RecordSuccess()
	if logger != nil {
		logger.Debug("weather served",
			zap.String("location", location),
			zap.String("unit", effectiveUnit(q.Unit).String()),
			zap.Duration("duration", time.Since(start)))
	}
	return reading, nil
}

// LookupText runs Lookup and renders the DisplayText: the fixed eight-line
// summary on success, or the single fixed failure sentence for any failure.
// Callers never see partial information.
func (s *LookupService) LookupText(ctx context.Context, q Query) string {
	reading, err := s.Lookup(ctx, q)
	if err != nil {
		return present.FailureText
	}
	return present.FormatReading(reading, q.Unit)
}

// effectiveUnit resolves the unset selection to Kelvin for logs and metrics,
// mirroring what the presenter does at format time.
func effectiveUnit(u units.Unit) units.Unit {
	if u == units.Unspecified {
		return units.Kelvin
	}
	return u
}
