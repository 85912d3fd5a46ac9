package forecast

import (
	"log/slog"
	"time"

	"skycast.app/models"
)

const (
	maxDailyEntries  = 5
	maxHourlyEntries = 24
)

// ProjectDaily reshapes the raw daily series into the exposed daily forecast.
// Index 0 is always dropped: today is represented by the current block, never
// by the daily array. Daily summaries always use the daytime icon.
func ProjectDaily(daily []models.DailyPoint, lang string) []models.DailyForecast {
	out := make([]models.DailyForecast, 0, maxDailyEntries)

	for i := 1; i < len(daily) && len(out) < maxDailyEntries; i++ {
		d := daily[i]

		dateEpoch, err := EpochFromLocalDate(d.Date)
		if err != nil {
			slog.Warn("skipping daily entry with unparseable date", "date", d.Date, "error", err)
			continue
		}

		icon, descEn, descHe := MapCode(d.WeatherCode, nil)
		out = append(out, models.DailyForecast{
			DateEpoch:   dateEpoch,
			TempMin:     d.TempMin,
			TempMax:     d.TempMax,
			Icon:        icon,
			Description: Description(lang, descEn, descHe),
			WindSpeed:   d.WindSpeedMax,
			Sunrise:     d.Sunrise,
			Sunset:      d.Sunset,
		})
	}

	return out
}

// ProjectHourly reshapes the raw hourly series into the exposed hourly
// forecast: up to 24 entries starting at the current hour, each stamped with a
// real UTC epoch. An index past the end of the series yields an empty slice.
func ProjectHourly(hourly []models.HourlyPoint, currentHourIndex, utcOffsetSeconds int, lang string) []models.HourlyForecast {
	start := currentHourIndex
	if start < 0 {
		start = 0
	}

	out := make([]models.HourlyForecast, 0, maxHourlyEntries)
	for i := start; i < len(hourly) && len(out) < maxHourlyEntries; i++ {
		h := hourly[i]

		timeEpoch, err := EpochFromLocal(h.Time, utcOffsetSeconds)
		if err != nil {
			slog.Warn("skipping hourly entry with unparseable time", "time", h.Time, "error", err)
			continue
		}

		isDay := h.IsDay
		icon, descEn, descHe := MapCode(h.WeatherCode, &isDay)
		out = append(out, models.HourlyForecast{
			TimeEpoch:   timeEpoch,
			Temperature: h.Temperature,
			Icon:        icon,
			Description: Description(lang, descEn, descHe),
			WindSpeed:   h.WindSpeed,
			Humidity:    h.Humidity,
		})
	}

	return out
}

// Assemble builds the canonical payload for one fetched bundle. The current
// block merges the provider's current-conditions snapshot with the hourly entry
// at the resolved index and today's daily entry.
func Assemble(bundle *models.RawBundle, cityID string, name, country models.LocalizedText, lang string, now time.Time) *models.CanonicalWeather {
	meta := bundle.Meta

	var nowHour models.HourlyPoint
	var isDay *bool
	if meta.CurrentHourIndex >= 0 && meta.CurrentHourIndex < len(bundle.Hourly) {
		nowHour = bundle.Hourly[meta.CurrentHourIndex]
		isDay = &nowHour.IsDay
	}

	var today models.DailyPoint
	if len(bundle.Daily) > 0 {
		today = bundle.Daily[0]
	}

	icon, descEn, descHe := MapCode(bundle.Current.WeatherCode, isDay)

	var sunriseEpoch, sunsetEpoch int64
	if today.Sunrise != "" {
		if v, err := EpochFromLocal(today.Sunrise, meta.UTCOffsetSeconds); err == nil {
			sunriseEpoch = v
		}
	}
	if today.Sunset != "" {
		if v, err := EpochFromLocal(today.Sunset, meta.UTCOffsetSeconds); err == nil {
			sunsetEpoch = v
		}
	}

	return &models.CanonicalWeather{
		ID:        cityID,
		Latitude:  meta.Latitude,
		Longitude: meta.Longitude,
		Name:      name,
		Country:   country,
		Current: models.CurrentConditions{
			WeatherCodeID:            bundle.Current.WeatherCode,
			Temperature:              bundle.Current.Temperature,
			FeelsLike:                nowHour.ApparentTemperature,
			TempMin:                  today.TempMin,
			TempMax:                  today.TempMax,
			Description:              Description(lang, descEn, descHe),
			Icon:                     icon,
			Humidity:                 nowHour.Humidity,
			WindSpeed:                bundle.Current.WindSpeed,
			WindDirection:            bundle.Current.WindDirection,
			Pressure:                 nowHour.Pressure,
			Visibility:               nowHour.Visibility,
			Clouds:                   nowHour.Clouds,
			SunriseEpoch:             sunriseEpoch,
			SunsetEpoch:              sunsetEpoch,
			Timezone:                 meta.Timezone,
			UVIndex:                  nowHour.UVIndex,
			PrecipitationProbability: nowHour.PrecipitationProbability,
		},
		ForecastDaily:    ProjectDaily(bundle.Daily, lang),
		ForecastHourly:   ProjectHourly(bundle.Hourly, meta.CurrentHourIndex, meta.UTCOffsetSeconds, lang),
		LastUpdatedEpoch: now.UnixMilli(),
		Unit:             "metric",
	}
}
