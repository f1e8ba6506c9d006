package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestService(t *testing.T, handler http.Handler) (*OpenMeteoService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	svc := NewOpenMeteoService(srv.URL+"/geocode", srv.URL+"/forecast", NewMemoryCache(0), time.Minute)
	return svc, srv
}

func TestGeocode(t *testing.T) {
	var calls int32
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if got := r.URL.Query().Get("name"); got != "Berlin" {
			t.Errorf("name param = %q", got)
		}
		if got := r.URL.Query().Get("count"); got != "1" {
			t.Errorf("count param = %q", got)
		}
		w.Write([]byte(`{"results":[{"name":"Berlin","country":"Germany","latitude":52.52,"longitude":13.41}]}`))
	}))

	place, err := svc.Geocode(context.Background(), "Berlin")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if place.Name != "Berlin, Germany" {
		t.Errorf("Name = %q", place.Name)
	}
	if place.Latitude != 52.52 || place.Longitude != 13.41 {
		t.Errorf("coords = %v, %v", place.Latitude, place.Longitude)
	}

	// Second lookup is served from cache.
	if _, err := svc.Geocode(context.Background(), "berlin"); err != nil {
		t.Fatalf("cached Geocode: %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("provider called %d times, want 1", n)
	}
}

func TestGeocodeNotFound(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	_, err := svc.Geocode(context.Background(), "nowhere at all")
	if !errors.Is(err, ErrPlaceNotFound) {
		t.Errorf("err = %v, want ErrPlaceNotFound", err)
	}

	_, err = svc.Geocode(context.Background(), "   ")
	if !errors.Is(err, ErrPlaceNotFound) {
		t.Errorf("blank query err = %v, want ErrPlaceNotFound", err)
	}
}

func TestGeocodeProviderError(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	_, err := svc.Geocode(context.Background(), "Berlin")
	if err == nil {
		t.Fatal("expected error on 502")
	}
	if errors.Is(err, ErrPlaceNotFound) {
		t.Errorf("provider failure must not be ErrPlaceNotFound: %v", err)
	}
}

const forecastPayload = `{
  "current": {
    "time": "2026-08-30T14:00",
    "temperature_2m": 21.4,
    "apparent_temperature": 20.1,
    "relative_humidity_2m": 60,
    "precipitation": 0.0,
    "rain": 0.0,
    "snowfall": 0.0,
    "wind_speed_10m": 11.0,
    "weather_code": 2
  },
  "daily": {
    "time": ["2026-08-30","2026-08-31","2026-09-01","2026-09-02","2026-09-03","2026-09-04","2026-09-05"],
    "temperature_2m_max": [22,23,21,20,19,18,17],
    "temperature_2m_min": [12,13,11,10,9,8,7],
    "weather_code": [2,61,3,0,1,2,3],
    "precipitation_probability_max": [10,70,30,0,5,10,20],
    "rain_sum": [0,4.5,1.1,0,0,0.2,0.8],
    "snowfall_sum": [0,0,0,0,0,0,0]
  },
  "hourly": {
    "time": ["2026-08-30T23:00","2026-08-31T00:00","2026-08-31T09:00"],
    "precipitation_probability": [5,40,60],
    "rain": [0,0.4,1.2],
    "snowfall": [0,0,0],
    "weather_code": [2,61,61],
    "wind_speed_10m": [10,12,14],
    "relative_humidity_2m": [55,70,80]
  }
}`

func TestForecast(t *testing.T) {
	var calls int32
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if got := r.URL.Query().Get("forecast_days"); got != "7" {
			t.Errorf("forecast_days = %q", got)
		}
		w.Write([]byte(forecastPayload))
	}))

	bundle, err := svc.Forecast(context.Background(), 52.52, 13.41)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}

	if bundle.Current.TemperatureC == nil || *bundle.Current.TemperatureC != 21.4 {
		t.Errorf("Current.TemperatureC = %v", bundle.Current.TemperatureC)
	}
	if bundle.Current.WeatherCode == nil || *bundle.Current.WeatherCode != 2 {
		t.Errorf("Current.WeatherCode = %v", bundle.Current.WeatherCode)
	}

	if len(bundle.Daily) != 7 {
		t.Fatalf("len(Daily) = %d", len(bundle.Daily))
	}
	tomorrow := bundle.Daily[1]
	if tomorrow.Date != "2026-08-31" || tomorrow.RainMM != 4.5 {
		t.Errorf("Daily[1] = %+v", tomorrow)
	}
	if tomorrow.PrecipProbMax == nil || *tomorrow.PrecipProbMax != 70 {
		t.Errorf("Daily[1].PrecipProbMax = %v", tomorrow.PrecipProbMax)
	}

	if len(bundle.Hourly) != 3 {
		t.Fatalf("len(Hourly) = %d", len(bundle.Hourly))
	}
	if h := bundle.Hourly[0]; h.DateOffset != 0 || h.Hour != 23 {
		t.Errorf("Hourly[0] offset/hour = %d/%d", h.DateOffset, h.Hour)
	}
	if h := bundle.Hourly[2]; h.DateOffset != 1 || h.Hour != 9 || h.PrecipProb != 60 {
		t.Errorf("Hourly[2] = %+v", h)
	}

	// Second fetch for the same coordinates is a cache hit.
	if _, err := svc.Forecast(context.Background(), 52.52, 13.41); err != nil {
		t.Fatalf("cached Forecast: %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("provider called %d times, want 1", n)
	}
}

func TestForecastProviderError(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))

	if _, err := svc.Forecast(context.Background(), 1, 2); err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestSplitISO(t *testing.T) {
	tests := []struct {
		in       string
		wantDate string
		wantHour int
	}{
		{"2026-08-30T14:00", "2026-08-30", 14},
		{"2026-08-30T05:00", "2026-08-30", 5},
		{"2026-08-30", "2026-08-30", 0},
		{"", "", 0},
	}
	for _, tt := range tests {
		date, hour := splitISO(tt.in)
		if date != tt.wantDate || hour != tt.wantHour {
			t.Errorf("splitISO(%q) = %q, %d", tt.in, date, hour)
		}
	}
}
