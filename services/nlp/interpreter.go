package nlp

import (
	"strconv"
	"strings"

	"weatherchat/models"
)

// NeedLocationPrompt is the reply sent when a message names no place and
// the session has no remembered one.
const NeedLocationPrompt = `Which location should I use? Try asking something like "What's the weather in Berlin?"`

// Interpreter turns one raw chat message into a ParsedMessage.
type Interpreter interface {
	Interpret(message, lastLocation, lat, lon string) models.ParsedMessage
}

// DefaultInterpreter is the production implementation.
type DefaultInterpreter struct {
	Classifier *Classifier
	// Sentiment is nil when the analyzer is disabled.
	Sentiment *SentimentAnalyzer
}

// Interpret never fails: classification and slot extraction are total, and
// a missing location is reported through the Error field, with the other
// slots still populated best-effort.
func (i *DefaultInterpreter) Interpret(message, lastLocation, lat, lon string) models.ParsedMessage {
	parsed := models.ParsedMessage{
		Intent:    i.Classifier.Classify(message),
		Horizon:   ExtractHorizon(message),
		TimeOfDay: ExtractTimeOfDay(message),
	}
	if i.Sentiment != nil {
		parsed.Sentiment = i.Sentiment.Score(message)
	}

	if coords, ok := parseCoords(lat, lon); ok {
		parsed.Coords = &coords
	}
	if loc := ExtractLocation(message); loc != "" {
		parsed.LocationLabel = loc
	} else {
		parsed.LocationLabel = lastLocation
	}

	if parsed.Coords == nil && parsed.LocationLabel == "" {
		parsed.Error = NeedLocationPrompt
	}
	return parsed
}

// parseCoords treats malformed values as absent rather than as errors.
func parseCoords(lat, lon string) (models.Coordinates, bool) {
	lat, lon = strings.TrimSpace(lat), strings.TrimSpace(lon)
	if lat == "" || lon == "" {
		return models.Coordinates{}, false
	}
	latF, errLat := strconv.ParseFloat(lat, 64)
	lonF, errLon := strconv.ParseFloat(lon, 64)
	if errLat != nil || errLon != nil {
		return models.Coordinates{}, false
	}
	return models.Coordinates{Lat: latF, Lon: lonF}, true
}
