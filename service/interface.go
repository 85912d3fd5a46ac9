package service

import (
	"context"

	"skycast.app/models"
)

// WeatherProvider is the outbound port to the external forecast provider.
type WeatherProvider interface {
	Fetch(ctx context.Context, lat, lon float64) (*models.RawBundle, error)
}

// CityDirectory is the collaborator that resolves localized city names.
// Absence of a record is tolerated and returns (nil, nil).
type CityDirectory interface {
	FindByID(cityID string) (*models.City, error)
}

// WeatherServiceInterface is the sole inbound entry point of the pipeline.
// A nil payload means "weather temporarily unavailable"; callers must not
// distinguish why at this layer.
type WeatherServiceInterface interface {
	Get(ctx context.Context, cityID string, lat, lon float64, lang string) *models.CanonicalWeather
}
