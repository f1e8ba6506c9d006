package models

// Intent is the discrete category of weather information a user asks for.
type Intent string

const (
	IntentTemperatureNow Intent = "temperature_now"
	IntentConditionsNow  Intent = "conditions_now"
	IntentWindNow        Intent = "wind_now"
	IntentHumidityNow    Intent = "humidity_now"
	IntentRainNow        Intent = "rain_now"
	IntentSnowNow        Intent = "snow_now"
	IntentTomorrow       Intent = "tomorrow_summary"
	IntentTomorrowRain   Intent = "tomorrow_rain"
	IntentNext3Days      Intent = "next3days_summary"
	IntentWeek           Intent = "week_summary"
	IntentHelp           Intent = "help"
)

// AllIntents lists every intent in a fixed order. The training job and the
// loaded model both rely on this order to map class indexes back to intents,
// so it must not be reordered between training and serving.
var AllIntents = []Intent{
	IntentTemperatureNow,
	IntentConditionsNow,
	IntentWindNow,
	IntentHumidityNow,
	IntentRainNow,
	IntentSnowNow,
	IntentTomorrow,
	IntentTomorrowRain,
	IntentNext3Days,
	IntentWeek,
	IntentHelp,
}

// Horizon is the requested forecast window.
type Horizon string

const (
	HorizonNow       Horizon = "now"
	HorizonTomorrow  Horizon = "tomorrow"
	HorizonNext3Days Horizon = "next3days"
	HorizonWeek      Horizon = "week"
)

// TimeOfDay is an optional part-of-day window within a forecast day.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// HourRange returns the half-open [start, end) hour window for the bucket.
func (t TimeOfDay) HourRange() (int, int) {
	switch t {
	case Morning:
		return 6, 12
	case Afternoon:
		return 12, 18
	case Evening:
		return 18, 24
	case Night:
		return 0, 6
	}
	return 0, 24
}

// Sentiment is a coarse polarity tag for the incoming message.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Coordinates is an explicit geolocation supplied with a request.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ParsedMessage is the result of interpreting one incoming chat message.
// Interpretation is total: malformed input never produces a Go error, only
// a user-facing prompt in Error. When Error is empty, at least one of
// Coords and LocationLabel identifies the place to resolve.
type ParsedMessage struct {
	Intent        Intent       `json:"intent"`
	Horizon       Horizon      `json:"horizon"`
	TimeOfDay     TimeOfDay    `json:"time_of_day,omitempty"`
	Coords        *Coordinates `json:"coords,omitempty"`
	LocationLabel string       `json:"location_label,omitempty"`
	Sentiment     Sentiment    `json:"sentiment,omitempty"`
	Error         string       `json:"error,omitempty"`
}
