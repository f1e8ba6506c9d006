package models

// Place is a resolved geocoding result.
type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CurrentConditions holds the instantaneous readings for a location.
// Pointer fields are nil when the provider omitted the value.
type CurrentConditions struct {
	TemperatureC *float64 `json:"temperature_c"`
	ApparentC    *float64 `json:"apparent_c"`
	HumidityPct  *float64 `json:"humidity_pct"`
	PrecipMM     *float64 `json:"precip_mm"`
	RainMM       *float64 `json:"rain_mm"`
	SnowMM       *float64 `json:"snow_mm"`
	WindKmh      *float64 `json:"wind_kmh"`
	WeatherCode  *int     `json:"weather_code"`
	Time         string   `json:"time"`
}

// DailyEntry is one per-day aggregate, starting at today.
type DailyEntry struct {
	Date          string   `json:"date"`
	TminC         *float64 `json:"tmin_c"`
	TmaxC         *float64 `json:"tmax_c"`
	WeatherCode   *int     `json:"weather_code"`
	PrecipProbMax *float64 `json:"precip_prob_max"`
	RainMM        float64  `json:"rain_mm"`
	SnowMM        float64  `json:"snow_mm"`
}

// HourlyEntry is one per-hour reading. DateOffset counts days from today
// (0 = today, 1 = tomorrow) so part-of-day windows can be filtered without
// re-deriving dates downstream.
type HourlyEntry struct {
	Time        string   `json:"time"`
	DateOffset  int      `json:"date_offset"`
	Hour        int      `json:"hour"`
	PrecipProb  float64  `json:"precip_prob"`
	RainMM      float64  `json:"rain_mm"`
	SnowMM      float64  `json:"snow_mm"`
	WeatherCode *int     `json:"weather_code"`
	WindKmh     *float64 `json:"wind_kmh"`
	HumidityPct *float64 `json:"humidity_pct"`
}

// ForecastBundle is the normalized forecast for one location. Daily holds
// at most 7 entries; Daily and Hourly are chronologically ordered starting
// at today.
type ForecastBundle struct {
	Current CurrentConditions `json:"current"`
	Daily   []DailyEntry      `json:"daily"`
	Hourly  []HourlyEntry     `json:"hourly"`
}
