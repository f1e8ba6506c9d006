package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatherchat/models"
	"weatherchat/utils"
)

// ErrPlaceNotFound reports a geocoding query with no results, as opposed
// to a transport or provider failure.
var ErrPlaceNotFound = errors.New("place not found")

// Service resolves place names and fetches forecast bundles. Failures are
// returned as errors; the HTTP layer decides the user-facing wording.
type Service interface {
	Geocode(ctx context.Context, query string) (*models.Place, error)
	Forecast(ctx context.Context, lat, lon float64) (*models.ForecastBundle, error)
}

// OpenMeteoService is the production Service backed by the Open-Meteo
// geocoding and forecast APIs. Both calls go through the injected Cache
// with a short TTL so repeated questions about the same place don't
// hammer the provider.
type OpenMeteoService struct {
	GeocodeURL  string
	ForecastURL string
	Client      *http.Client
	Cache       Cache
	TTL         time.Duration
}

func NewOpenMeteoService(geocodeURL, forecastURL string, cache Cache, ttl time.Duration) *OpenMeteoService {
	return &OpenMeteoService{
		GeocodeURL:  geocodeURL,
		ForecastURL: forecastURL,
		Client:      &http.Client{Timeout: utils.WeatherRequestTimeout},
		Cache:       cache,
		TTL:         ttl,
	}
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// Geocode returns the top result for a place query, labeled "Name, Country".
func (s *OpenMeteoService) Geocode(ctx context.Context, query string) (*models.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("geocode: %w", ErrPlaceNotFound)
	}

	key := "geo:" + strings.ToLower(query)
	if raw, ok := s.Cache.Get(ctx, key); ok {
		var place models.Place
		if err := json.Unmarshal(raw, &place); err == nil {
			return &place, nil
		}
	}

	params := url.Values{}
	params.Set("name", query)
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")

	var resp geocodeResponse
	if err := s.fetchJSON(ctx, s.GeocodeURL+"?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("geocode %q: %w", query, ErrPlaceNotFound)
	}

	top := resp.Results[0]
	place := &models.Place{
		Name:      fmt.Sprintf("%s, %s", top.Name, top.Country),
		Latitude:  top.Latitude,
		Longitude: top.Longitude,
	}
	if raw, err := json.Marshal(place); err == nil {
		s.Cache.Set(ctx, key, raw, s.TTL)
	}
	return place, nil
}

type forecastResponse struct {
	Current struct {
		Time          string   `json:"time"`
		Temperature   *float64 `json:"temperature_2m"`
		Apparent      *float64 `json:"apparent_temperature"`
		Humidity      *float64 `json:"relative_humidity_2m"`
		Precipitation *float64 `json:"precipitation"`
		Rain          *float64 `json:"rain"`
		Snowfall      *float64 `json:"snowfall"`
		WindSpeed     *float64 `json:"wind_speed_10m"`
		WeatherCode   *int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		Time          []string   `json:"time"`
		TempMax       []*float64 `json:"temperature_2m_max"`
		TempMin       []*float64 `json:"temperature_2m_min"`
		WeatherCode   []*int     `json:"weather_code"`
		PrecipProbMax []*float64 `json:"precipitation_probability_max"`
		RainSum       []*float64 `json:"rain_sum"`
		SnowfallSum   []*float64 `json:"snowfall_sum"`
	} `json:"daily"`
	Hourly struct {
		Time        []string   `json:"time"`
		PrecipProb  []*float64 `json:"precipitation_probability"`
		Rain        []*float64 `json:"rain"`
		Snowfall    []*float64 `json:"snowfall"`
		WeatherCode []*int     `json:"weather_code"`
		WindSpeed   []*float64 `json:"wind_speed_10m"`
		Humidity    []*float64 `json:"relative_humidity_2m"`
	} `json:"hourly"`
}

// Forecast fetches and normalizes a 7-day bundle for the coordinates.
func (s *OpenMeteoService) Forecast(ctx context.Context, lat, lon float64) (*models.ForecastBundle, error) {
	key := fmt.Sprintf("wx:%.4f,%.4f", lat, lon)
	if raw, ok := s.Cache.Get(ctx, key); ok {
		var bundle models.ForecastBundle
		if err := json.Unmarshal(raw, &bundle); err == nil {
			return &bundle, nil
		}
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("timezone", "auto")
	params.Set("current", "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,rain,snowfall,wind_speed_10m,weather_code")
	params.Set("hourly", "temperature_2m,precipitation_probability,rain,snowfall,relative_humidity_2m,wind_speed_10m,weather_code")
	params.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max,rain_sum,snowfall_sum")
	params.Set("forecast_days", "7")

	var resp forecastResponse
	if err := s.fetchJSON(ctx, s.ForecastURL+"?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("forecast %.4f,%.4f: %w", lat, lon, err)
	}

	bundle := parseBundle(&resp)
	if raw, err := json.Marshal(bundle); err == nil {
		s.Cache.Set(ctx, key, raw, s.TTL)
	}
	return bundle, nil
}

func (s *OpenMeteoService) fetchJSON(ctx context.Context, rawURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider status %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// parseBundle normalizes the provider payload. Daily is capped at 7
// entries; hourly rows get a date offset relative to today so the
// formatter can filter part-of-day windows.
func parseBundle(resp *forecastResponse) *models.ForecastBundle {
	bundle := &models.ForecastBundle{
		Current: models.CurrentConditions{
			TemperatureC: resp.Current.Temperature,
			ApparentC:    resp.Current.Apparent,
			HumidityPct:  resp.Current.Humidity,
			PrecipMM:     resp.Current.Precipitation,
			RainMM:       resp.Current.Rain,
			SnowMM:       resp.Current.Snowfall,
			WindKmh:      resp.Current.WindSpeed,
			WeatherCode:  resp.Current.WeatherCode,
			Time:         resp.Current.Time,
		},
	}

	days := len(resp.Daily.Time)
	if days > 7 {
		days = 7
	}
	for i := 0; i < days; i++ {
		bundle.Daily = append(bundle.Daily, models.DailyEntry{
			Date:          resp.Daily.Time[i],
			TminC:         floatAt(resp.Daily.TempMin, i),
			TmaxC:         floatAt(resp.Daily.TempMax, i),
			WeatherCode:   intAt(resp.Daily.WeatherCode, i),
			PrecipProbMax: floatAt(resp.Daily.PrecipProbMax, i),
			RainMM:        floatOrZero(resp.Daily.RainSum, i),
			SnowMM:        floatOrZero(resp.Daily.SnowfallSum, i),
		})
	}

	today := dateOf(resp.Current.Time)
	if today == "" && len(resp.Hourly.Time) > 0 {
		today = dateOf(resp.Hourly.Time[0])
	}
	for i, ts := range resp.Hourly.Time {
		date, hour := splitISO(ts)
		bundle.Hourly = append(bundle.Hourly, models.HourlyEntry{
			Time:        ts,
			DateOffset:  dayOffset(today, date),
			Hour:        hour,
			PrecipProb:  floatOrZero(resp.Hourly.PrecipProb, i),
			RainMM:      floatOrZero(resp.Hourly.Rain, i),
			SnowMM:      floatOrZero(resp.Hourly.Snowfall, i),
			WeatherCode: intAt(resp.Hourly.WeatherCode, i),
			WindKmh:     floatAt(resp.Hourly.WindSpeed, i),
			HumidityPct: floatAt(resp.Hourly.Humidity, i),
		})
	}
	return bundle
}

func floatAt(vals []*float64, i int) *float64 {
	if i < len(vals) {
		return vals[i]
	}
	return nil
}

func floatOrZero(vals []*float64, i int) float64 {
	if v := floatAt(vals, i); v != nil {
		return *v
	}
	return 0
}

func intAt(vals []*int, i int) *int {
	if i < len(vals) {
		return vals[i]
	}
	return nil
}

func dateOf(ts string) string {
	date, _ := splitISO(ts)
	return date
}

// splitISO splits an ISO-8601 stamp like "2026-08-30T14:00" into its date
// part and hour. Bare dates yield hour 0.
func splitISO(ts string) (string, int) {
	if i := strings.IndexByte(ts, 'T'); i >= 0 {
		hour := 0
		if len(ts) >= i+3 {
			if h, err := strconv.Atoi(ts[i+1 : i+3]); err == nil {
				hour = h
			}
		}
		return ts[:i], hour
	}
	if len(ts) >= 10 {
		return ts[:10], 0
	}
	return ts, 0
}

func dayOffset(today, date string) int {
	if today == "" || date == "" {
		return 0
	}
	t1, err1 := time.Parse("2006-01-02", today)
	t2, err2 := time.Parse("2006-01-02", date)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(t2.Sub(t1).Hours() / 24)
}
