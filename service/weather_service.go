package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
	"skycast.app/forecast"
	"skycast.app/metrics"
	"skycast.app/models"
	"skycast.app/store"
)

// Placeholder names applied when the city directory has no record.
const (
	unknownCityEn    = "Unknown City"
	unknownCityHe    = "עיר לא ידועה"
	unknownCountryEn = "Unknown"
	unknownCountryHe = "לא ידוע"
)

// WeatherService is the cache-aside layer over the fetch/resolve/project
// pipeline. Fresh records are served without a provider call; a miss or stale
// record triggers exactly one bounded refresh attempt, and any refresh failure
// degrades to the last persisted payload.
type WeatherService struct {
	provider  WeatherProvider
	directory CityDirectory
	cache     store.Store
	ttl       time.Duration
	metrics   *metrics.CacheMetrics
	flight    singleflight.Group
	now       func() time.Time
}

// NewWeatherService creates the weather pipeline service.
func NewWeatherService(provider WeatherProvider, directory CityDirectory, cache store.Store, ttl time.Duration, backend string) *WeatherService {
	return &WeatherService{
		provider:  provider,
		directory: directory,
		cache:     cache,
		ttl:       ttl,
		metrics:   metrics.NewCacheMetrics(backend),
		now:       time.Now,
	}
}

// Get returns the canonical weather payload for a city, or nil when no data
// can be served at all, fresh or stale. Refresh failures never surface as
// errors past this layer.
func (s *WeatherService) Get(ctx context.Context, cityID string, lat, lon float64, lang string) *models.CanonicalWeather {
	record, err := s.cache.Load(ctx, cityID)
	if err == nil && s.isFresh(record) {
		if payload := decodePayload(record); payload != nil {
			s.metrics.RecordHit()
			slog.Info("cache hit", "city_id", cityID)
			return payload
		}
	}

	s.metrics.RecordMiss()
	slog.Info("cache miss", "city_id", cityID)

	// Concurrent stale callers for the same city share one upstream fetch.
	// The refresh is detached from the caller's cancellation: a dropped
	// request must not abort the shared fetch, which still populates the
	// cache for the next reader. The provider's own timeout bounds it.
	result, err, _ := s.flight.Do(cityID, func() (interface{}, error) {
		return s.refresh(context.WithoutCancel(ctx), cityID, lat, lon, lang)
	})
	if err == nil {
		return result.(*models.CanonicalWeather)
	}

	s.metrics.RecordRefreshFailure()
	slog.Error("weather refresh failed", "city_id", cityID, "error", err)

	return s.staleFallback(ctx, cityID)
}

// refresh runs the full pipeline: provider fetch, current-hour resolution,
// projection, directory enrichment, then a cache upsert.
func (s *WeatherService) refresh(ctx context.Context, cityID string, lat, lon float64, lang string) (*models.CanonicalWeather, error) {
	bundle, err := s.provider.Fetch(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	now := s.now()
	bundle.Meta.CurrentHourIndex = forecast.ResolveCurrentHourIndex(hourlyTimes(bundle.Hourly), bundle.Meta.Timezone, now)

	name, country, err := s.cityNames(cityID)
	if err != nil {
		return nil, err
	}

	payload := forecast.Assemble(bundle, cityID, name, country, lang, now)

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	record := &store.Record{
		CityID:        cityID,
		Payload:       data,
		SchemaVersion: models.CanonicalWeatherSchemaVersion,
		UpdatedAt:     now,
	}
	if err := s.cache.Save(ctx, record); err != nil {
		// The payload in hand is still valid; persisting it is best effort.
		slog.Warn("cache upsert failed, serving unpersisted payload", "city_id", cityID, "error", err)
	}

	return payload, nil
}

// staleFallback re-reads the store after a refresh failure and serves whatever
// payload is there, regardless of age. Nothing persisted means nothing served.
func (s *WeatherService) staleFallback(ctx context.Context, cityID string) *models.CanonicalWeather {
	record, err := s.cache.Load(ctx, cityID)
	if err != nil || record == nil {
		return nil
	}

	payload := decodePayload(record)
	if payload == nil {
		return nil
	}

	s.metrics.RecordStaleServed()
	slog.Warn("serving stale weather payload", "city_id", cityID, "age", s.now().Sub(record.UpdatedAt).String())
	return payload
}

func (s *WeatherService) cityNames(cityID string) (models.LocalizedText, models.LocalizedText, error) {
	city, err := s.directory.FindByID(cityID)
	if err != nil {
		return models.LocalizedText{}, models.LocalizedText{}, err
	}
	if city == nil {
		return models.LocalizedText{En: unknownCityEn, He: unknownCityHe},
			models.LocalizedText{En: unknownCountryEn, He: unknownCountryHe}, nil
	}
	return models.LocalizedText{En: city.NameEn, He: city.NameHe},
		models.LocalizedText{En: city.CountryEn, He: city.CountryHe}, nil
}

// isFresh reports whether a record can be served without a refresh. Records
// written under an older payload schema are treated as stale.
func (s *WeatherService) isFresh(record *store.Record) bool {
	if record == nil {
		return false
	}
	if record.SchemaVersion != models.CanonicalWeatherSchemaVersion {
		return false
	}
	return s.now().Sub(record.UpdatedAt) < s.ttl
}

func decodePayload(record *store.Record) *models.CanonicalWeather {
	var payload models.CanonicalWeather
	if err := json.Unmarshal(record.Payload, &payload); err != nil {
		slog.Error("cache payload decode failed", "city_id", record.CityID, "error", err)
		return nil
	}
	return &payload
}

func hourlyTimes(hourly []models.HourlyPoint) []string {
	times := make([]string, len(hourly))
	for i, h := range hourly {
		times[i] = h.Time
	}
	return times
}
