package reply

import (
	"fmt"
	"strings"

	"weatherchat/models"
)

// Fixed reply fragments. The fallback wording is pinned by tests.
const (
	tomorrowFallback = "Sorry, I couldn't get tomorrow's forecast. Please try again later."
	next3Fallback    = "Sorry, I couldn't get the 3-day forecast. Please try again later."
	weekFallback     = "Sorry, I couldn't get the weekly forecast. Please try again later."

	empatheticLead = "Sorry to hear that. Hopefully a weather update helps:\n\n"

	helpText = `I'm a weather assistant. Try asking me things like:
- "What's the weather in Tokyo?"
- "Temperature in Lisbon"
- "Will it rain tomorrow in Paris?"
- "Forecast for the next 3 days in Berlin"
- "Weekly forecast for New York"
You can also share your location and just ask "Will it rain today?".`

	genericFallback = "I can tell you about current conditions, tomorrow's outlook, the next 3 days, or the weekly forecast for any place. Ask me about the weather in a city to get started."
)

// Format renders the reply for one parsed message. It is a pure function
// of its inputs: identical arguments always produce an identical string.
// A negative sentiment tag prefixes every non-help, non-fallback reply
// with a fixed empathetic lead-in.
func Format(parsed models.ParsedMessage, bundle *models.ForecastBundle, location string) string {
	text, prefixable := selectReply(parsed, bundle, location)
	if prefixable && parsed.Sentiment == models.SentimentNegative {
		return empatheticLead + text
	}
	return text
}

// selectReply picks a template in fixed order. The second return value is
// false for help, fallback and capability texts, which never take the
// empathetic prefix.
func selectReply(parsed models.ParsedMessage, bundle *models.ForecastBundle, location string) (string, bool) {
	switch {
	case isNowIntent(parsed.Intent) && parsed.Horizon == models.HorizonNow:
		return formatNow(parsed.Intent, bundle, location), true
	case parsed.Horizon == models.HorizonTomorrow:
		return formatTomorrow(parsed, bundle, location)
	case parsed.Horizon == models.HorizonNext3Days:
		return formatNext3Days(bundle, location)
	case parsed.Horizon == models.HorizonWeek:
		return formatWeek(bundle, location)
	case parsed.Intent == models.IntentHelp:
		return helpText, false
	}
	return genericFallback, false
}

func isNowIntent(intent models.Intent) bool {
	switch intent {
	case models.IntentTemperatureNow, models.IntentConditionsNow,
		models.IntentWindNow, models.IntentHumidityNow,
		models.IntentRainNow, models.IntentSnowNow:
		return true
	}
	return false
}

// formatNow builds the bulleted "right now" block. Temperature and
// conditions always appear together; the other variables only when their
// specific intent asked for them. Missing readings are omitted.
func formatNow(intent models.Intent, bundle *models.ForecastBundle, location string) string {
	cur := bundle.Current
	var b strings.Builder
	fmt.Fprintf(&b, "Right now in %s:\n", location)
	fmt.Fprintf(&b, "- Conditions: %s\n", Describe(cur.WeatherCode))
	if cur.TemperatureC != nil {
		if cur.ApparentC != nil {
			fmt.Fprintf(&b, "- Temperature: %.1f°C (feels like %.1f°C)\n", *cur.TemperatureC, *cur.ApparentC)
		} else {
			fmt.Fprintf(&b, "- Temperature: %.1f°C\n", *cur.TemperatureC)
		}
	}
	switch intent {
	case models.IntentWindNow:
		if cur.WindKmh != nil {
			fmt.Fprintf(&b, "- Wind: %.0f km/h\n", *cur.WindKmh)
		}
	case models.IntentHumidityNow:
		if cur.HumidityPct != nil {
			fmt.Fprintf(&b, "- Humidity: %.0f%%\n", *cur.HumidityPct)
		}
	case models.IntentRainNow:
		if cur.RainMM != nil {
			fmt.Fprintf(&b, "- Rain: %.1f mm\n", *cur.RainMM)
		}
	case models.IntentSnowNow:
		if cur.SnowMM != nil {
			fmt.Fprintf(&b, "- Snow: %.1f mm\n", *cur.SnowMM)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatTomorrow(parsed models.ParsedMessage, bundle *models.ForecastBundle, location string) (string, bool) {
	if len(bundle.Daily) < 2 {
		return tomorrowFallback, false
	}
	day := bundle.Daily[1]

	if parsed.Intent == models.IntentTomorrowRain {
		if day.PrecipProbMax != nil {
			return fmt.Sprintf("Tomorrow in %s: up to %.0f%% chance of precipitation, with around %.1f mm of rain expected.",
				location, *day.PrecipProbMax, day.RainMM), true
		}
		// Probability missing from the provider: report the amount alone.
		return fmt.Sprintf("Tomorrow in %s: around %.1f mm of rain expected.", location, day.RainMM), true
	}

	if parsed.TimeOfDay != "" && len(bundle.Hourly) > 0 {
		start, end := parsed.TimeOfDay.HourRange()
		var probSum, rainSum float64
		matched := 0
		for _, h := range bundle.Hourly {
			if h.DateOffset == 1 && h.Hour >= start && h.Hour < end {
				probSum += h.PrecipProb
				rainSum += h.RainMM
				matched++
			}
		}
		if matched > 0 {
			return fmt.Sprintf("Tomorrow %s in %s: about %.0f%% chance of precipitation and %.1f mm of rain in that window.",
				parsed.TimeOfDay, location, probSum/float64(matched), rainSum), true
		}
		// No hourly rows in the window; fall through to the full-day summary.
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tomorrow in %s: %s.", location, Describe(day.WeatherCode))
	if day.TminC != nil && day.TmaxC != nil {
		fmt.Fprintf(&b, " Temperatures between %.1f°C and %.1f°C.", *day.TminC, *day.TmaxC)
	}
	fmt.Fprintf(&b, " Rain: %.1f mm, snow: %.1f mm.", day.RainMM, day.SnowMM)
	if day.PrecipProbMax != nil {
		fmt.Fprintf(&b, " Chance of precipitation up to %.0f%%.", *day.PrecipProbMax)
	}
	return b.String(), true
}

func formatNext3Days(bundle *models.ForecastBundle, location string) (string, bool) {
	if len(bundle.Daily) < 3 {
		return next3Fallback, false
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Next 3 days in %s:\n", location)
	for _, day := range bundle.Daily[:3] {
		fmt.Fprintf(&b, "- %s: %s, %s, rain %.1f mm\n", day.Date, Describe(day.WeatherCode), tempRange(day), day.RainMM)
	}
	return strings.TrimRight(b.String(), "\n"), true
}

func formatWeek(bundle *models.ForecastBundle, location string) (string, bool) {
	if len(bundle.Daily) < 7 {
		return weekFallback, false
	}
	var b strings.Builder
	fmt.Fprintf(&b, "This week in %s:\n", location)
	for _, day := range bundle.Daily[:7] {
		fmt.Fprintf(&b, "- %s: %s, %s\n", day.Date, Describe(day.WeatherCode), tempRange(day))
	}
	return strings.TrimRight(b.String(), "\n"), true
}

func tempRange(day models.DailyEntry) string {
	if day.TminC == nil || day.TmaxC == nil {
		return "temperature n/a"
	}
	return fmt.Sprintf("%.1f°C to %.1f°C", *day.TminC, *day.TmaxC)
}
