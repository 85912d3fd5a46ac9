// Package providers implements clients for external weather data providers.
package providers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"skycast.app/config"
	"skycast.app/errors"
	"skycast.app/metrics"
	"skycast.app/models"
)

// Field lists requested from the provider. The hourly and daily shapes of
// RawBundle depend on these staying in sync with the wire struct below.
const (
	hourlyFields = "time,temperature_2m,apparent_temperature,relativehumidity_2m," +
		"surface_pressure,cloudcover,precipitation_probability,windspeed_10m," +
		"windgusts_10m,uv_index,dewpoint_2m,visibility,weathercode,is_day"
	dailyFields = "time,temperature_2m_min,temperature_2m_max,apparent_temperature_min," +
		"apparent_temperature_max,precipitation_sum,windspeed_10m_max,windgusts_10m_max," +
		"sunrise,sunset,uv_index_max,weathercode"
)

// OpenMeteoClient issues a single bounded forecast request per call. It holds
// no state across calls and performs no retries.
type OpenMeteoClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	metrics    *metrics.ProviderMetrics
}

// NewOpenMeteoClient creates a provider client from configuration.
func NewOpenMeteoClient(cfg *config.ProviderConfig) *OpenMeteoClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &OpenMeteoClient{
		baseURL:    cfg.BaseURL,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    metrics.NewProviderMetrics("openmeteo"),
	}
}

// openMeteoResponse mirrors the provider's JSON schema: scalar current block
// plus parallel arrays for the hourly and daily series.
type openMeteoResponse struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Timezone         string  `json:"timezone"`
	UTCOffsetSeconds int     `json:"utc_offset_seconds"`
	CurrentWeather   struct {
		Temperature   float64 `json:"temperature"`
		WindSpeed     float64 `json:"windspeed"`
		WindDirection float64 `json:"winddirection"`
		WeatherCode   int     `json:"weathercode"`
		Time          string  `json:"time"`
	} `json:"current_weather"`
	Hourly struct {
		Time                     []string  `json:"time"`
		Temperature2m            []float64 `json:"temperature_2m"`
		ApparentTemperature      []float64 `json:"apparent_temperature"`
		RelativeHumidity2m       []float64 `json:"relativehumidity_2m"`
		SurfacePressure          []float64 `json:"surface_pressure"`
		CloudCover               []float64 `json:"cloudcover"`
		PrecipitationProbability []float64 `json:"precipitation_probability"`
		WindSpeed10m             []float64 `json:"windspeed_10m"`
		WindGusts10m             []float64 `json:"windgusts_10m"`
		UVIndex                  []float64 `json:"uv_index"`
		DewPoint2m               []float64 `json:"dewpoint_2m"`
		Visibility               []float64 `json:"visibility"`
		WeatherCode              []int     `json:"weathercode"`
		IsDay                    []int     `json:"is_day"`
	} `json:"hourly"`
	Daily struct {
		Time                   []string  `json:"time"`
		Temperature2mMin       []float64 `json:"temperature_2m_min"`
		Temperature2mMax       []float64 `json:"temperature_2m_max"`
		ApparentTemperatureMin []float64 `json:"apparent_temperature_min"`
		ApparentTemperatureMax []float64 `json:"apparent_temperature_max"`
		PrecipitationSum       []float64 `json:"precipitation_sum"`
		WindSpeed10mMax        []float64 `json:"windspeed_10m_max"`
		WindGusts10mMax        []float64 `json:"windgusts_10m_max"`
		Sunrise                []string  `json:"sunrise"`
		Sunset                 []string  `json:"sunset"`
		UVIndexMax             []float64 `json:"uv_index_max"`
		WeatherCode            []int     `json:"weathercode"`
	} `json:"daily"`
}

// Fetch retrieves a forecast bundle for the given coordinates. The call is
// bounded by the configured timeout; exceeding it surfaces as a provider
// timeout error. Coordinate validation is the caller's responsibility.
func (c *OpenMeteoClient) Fetch(ctx context.Context, lat, lon float64) (*models.RawBundle, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestURL := c.buildURL(lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ProviderHTTPError, "build provider request", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.RecordRequestDuration(time.Since(start).Seconds())
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, errors.NewProviderTimeoutError("provider request exceeded timeout", err)
		}
		return nil, errors.Wrap(errors.ProviderHTTPError, "provider request failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewProviderHTTPError(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var wire openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, errors.NewProviderParseError("decode provider response", err)
	}

	return c.toRawBundle(&wire), nil
}

func (c *OpenMeteoClient) buildURL(lat, lon float64) string {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%.4f", lat))
	values.Set("longitude", fmt.Sprintf("%.4f", lon))
	values.Set("current_weather", "true")
	values.Set("timezone", "auto")
	values.Set("hourly", hourlyFields)
	values.Set("daily", dailyFields)
	return fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
}

// toRawBundle converts the provider's parallel arrays into per-entry points.
// Missing tail values are tolerated and come through zero-valued.
func (c *OpenMeteoClient) toRawBundle(wire *openMeteoResponse) *models.RawBundle {
	hourly := make([]models.HourlyPoint, len(wire.Hourly.Time))
	for i, ts := range wire.Hourly.Time {
		hourly[i] = models.HourlyPoint{
			Time:                     ts,
			Temperature:              floatAt(wire.Hourly.Temperature2m, i),
			ApparentTemperature:      floatAt(wire.Hourly.ApparentTemperature, i),
			Humidity:                 floatAt(wire.Hourly.RelativeHumidity2m, i),
			Pressure:                 floatAt(wire.Hourly.SurfacePressure, i),
			Clouds:                   floatAt(wire.Hourly.CloudCover, i),
			PrecipitationProbability: floatAt(wire.Hourly.PrecipitationProbability, i),
			WindSpeed:                floatAt(wire.Hourly.WindSpeed10m, i),
			WindGust:                 floatAt(wire.Hourly.WindGusts10m, i),
			UVIndex:                  floatAt(wire.Hourly.UVIndex, i),
			DewPoint:                 floatAt(wire.Hourly.DewPoint2m, i),
			Visibility:               floatAt(wire.Hourly.Visibility, i),
			WeatherCode:              intAt(wire.Hourly.WeatherCode, i),
			IsDay:                    intAt(wire.Hourly.IsDay, i) == 1,
		}
	}

	daily := make([]models.DailyPoint, len(wire.Daily.Time))
	for i, date := range wire.Daily.Time {
		daily[i] = models.DailyPoint{
			Date:             date,
			TempMin:          floatAt(wire.Daily.Temperature2mMin, i),
			TempMax:          floatAt(wire.Daily.Temperature2mMax, i),
			FeelsLikeMin:     floatAt(wire.Daily.ApparentTemperatureMin, i),
			FeelsLikeMax:     floatAt(wire.Daily.ApparentTemperatureMax, i),
			PrecipitationSum: floatAt(wire.Daily.PrecipitationSum, i),
			WindSpeedMax:     floatAt(wire.Daily.WindSpeed10mMax, i),
			WindGustMax:      floatAt(wire.Daily.WindGusts10mMax, i),
			Sunrise:          stringAt(wire.Daily.Sunrise, i),
			Sunset:           stringAt(wire.Daily.Sunset, i),
			UVIndexMax:       floatAt(wire.Daily.UVIndexMax, i),
			WeatherCode:      intAt(wire.Daily.WeatherCode, i),
		}
	}

	return &models.RawBundle{
		Current: models.RawCurrent{
			Time:          wire.CurrentWeather.Time,
			Temperature:   wire.CurrentWeather.Temperature,
			WindSpeed:     wire.CurrentWeather.WindSpeed,
			WindDirection: wire.CurrentWeather.WindDirection,
			WeatherCode:   wire.CurrentWeather.WeatherCode,
		},
		Hourly: hourly,
		Daily:  daily,
		Meta: models.BundleMeta{
			Latitude:         wire.Latitude,
			Longitude:        wire.Longitude,
			Timezone:         wire.Timezone,
			UTCOffsetSeconds: wire.UTCOffsetSeconds,
		},
	}
}

// isTimeout covers both the request context deadline and the HTTP client's
// own timeout, which fire interchangeably at the boundary.
func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() == context.DeadlineExceeded || stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

func floatAt(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}

func intAt(values []int, i int) int {
	if i < len(values) {
		return values[i]
	}
	return 0
}

func stringAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
