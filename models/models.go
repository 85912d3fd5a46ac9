// Package models defines data structures used throughout the application
package models

import (
	"time"
)

// CanonicalWeatherSchemaVersion tags persisted payloads so a future shape change
// can invalidate old cache records instead of misreading them.
const CanonicalWeatherSchemaVersion = 1

// RawCurrent holds the provider's current-conditions block.
type RawCurrent struct {
	Time          string
	Temperature   float64
	WindSpeed     float64
	WindDirection float64
	WeatherCode   int
}

// HourlyPoint is one entry of the provider's hourly series. Time is a local
// wall-clock timestamp (YYYY-MM-DDTHH:MM, no offset) in the bundle's timezone.
type HourlyPoint struct {
	Time                     string
	Temperature              float64
	ApparentTemperature      float64
	Humidity                 float64
	Pressure                 float64
	Clouds                   float64
	PrecipitationProbability float64
	WindSpeed                float64
	WindGust                 float64
	UVIndex                  float64
	DewPoint                 float64
	Visibility               float64
	WeatherCode              int
	IsDay                    bool
}

// DailyPoint is one entry of the provider's daily series. Sunrise and Sunset are
// kept as provider-local strings; only the current block reconstructs them to epoch.
type DailyPoint struct {
	Date             string
	TempMin          float64
	TempMax          float64
	FeelsLikeMin     float64
	FeelsLikeMax     float64
	PrecipitationSum float64
	WindSpeedMax     float64
	WindGustMax      float64
	Sunrise          string
	Sunset           string
	UVIndexMax       float64
	WeatherCode      int
}

// BundleMeta carries location and time metadata for a fetched bundle.
// UTCOffsetSeconds is a single snapshot value applied to the whole bundle,
// a known simplification around DST transition days.
type BundleMeta struct {
	Latitude         float64
	Longitude        float64
	Timezone         string
	CurrentHourIndex int
	UTCOffsetSeconds int
}

// RawBundle is the intermediate, provider-facing representation of one fetch.
type RawBundle struct {
	Current RawCurrent
	Hourly  []HourlyPoint
	Daily   []DailyPoint
	Meta    BundleMeta
}

// LocalizedText is a bilingual display string pair.
type LocalizedText struct {
	En string `json:"en"`
	He string `json:"he"`
}

// CurrentConditions is the normalized "now" block of a canonical payload.
type CurrentConditions struct {
	WeatherCodeID            int     `json:"weather_code_id"`
	Temperature              float64 `json:"temp"`
	FeelsLike                float64 `json:"feels_like"`
	TempMin                  float64 `json:"temp_min"`
	TempMax                  float64 `json:"temp_max"`
	Description              string  `json:"description"`
	Icon                     string  `json:"icon"`
	Humidity                 float64 `json:"humidity"`
	WindSpeed                float64 `json:"wind_speed"`
	WindDirection            float64 `json:"wind_direction"`
	Pressure                 float64 `json:"pressure"`
	Visibility               float64 `json:"visibility"`
	Clouds                   float64 `json:"clouds"`
	SunriseEpoch             int64   `json:"sunrise"`
	SunsetEpoch              int64   `json:"sunset"`
	Timezone                 string  `json:"timezone"`
	UVIndex                  float64 `json:"uv_index"`
	PrecipitationProbability float64 `json:"precipitation_probability"`
}

// DailyForecast is one externally exposed daily entry. Sunrise/Sunset remain
// provider-local strings at this layer.
type DailyForecast struct {
	DateEpoch   int64   `json:"date"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"wind_speed"`
	Sunrise     string  `json:"sunrise"`
	Sunset      string  `json:"sunset"`
}

// HourlyForecast is one externally exposed hourly entry. TimeEpoch is always a
// real UTC instant in milliseconds, never a naive local string.
type HourlyForecast struct {
	TimeEpoch   int64   `json:"time"`
	Temperature float64 `json:"temp"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"wind_speed"`
	Humidity    float64 `json:"humidity"`
}

// CanonicalWeather is the externally exposed, bilingual-ready weather payload.
type CanonicalWeather struct {
	ID               string            `json:"id"`
	Latitude         float64           `json:"lat"`
	Longitude        float64           `json:"lon"`
	Name             LocalizedText     `json:"name"`
	Country          LocalizedText     `json:"country"`
	Current          CurrentConditions `json:"current"`
	ForecastDaily    []DailyForecast   `json:"forecast_daily"`
	ForecastHourly   []HourlyForecast  `json:"forecast_hourly"`
	LastUpdatedEpoch int64             `json:"last_updated"`
	Unit             string            `json:"unit"`
}

// WeatherCacheRecord is the durable cache row: one record per city, overwritten
// on every successful refresh and never deleted by this subsystem.
type WeatherCacheRecord struct {
	CityID        string    `json:"city_id" gorm:"primaryKey"`
	Payload       []byte    `json:"payload" gorm:"not null"`
	SchemaVersion int       `json:"schema_version" gorm:"not null;default:1"`
	// The refresh time is set by the service, not by the ORM.
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime:false;autoCreateTime:false"`
}

// City is a directory row used to enrich payloads with localized names.
type City struct {
	CityID    string `json:"city_id" gorm:"primaryKey"`
	NameEn    string `json:"name_en" gorm:"not null"`
	NameHe    string `json:"name_he" gorm:"not null"`
	CountryEn string `json:"country_en"`
	CountryHe string `json:"country_he"`
}

// WeatherRequest binds the inbound query parameters for a weather lookup.
// Coordinates are pointers so that 0 (equator, prime meridian) passes the
// required check.
type WeatherRequest struct {
	CityID    string   `form:"city_id" binding:"required"`
	Latitude  *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"lon" binding:"required,min=-180,max=180"`
	Lang      string   `form:"lang" binding:"omitempty,oneof=en he"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
