package nlp

import (
	"strings"

	"weatherchat/models"
)

// Rule-cascade trigger phrases. The cascade is the tested fallback
// contract: both the cue lists and the order they are checked in are
// frozen, so treat any edit here as a behavior change. The cues are
// substrings, so "3 day" also matches "3 days" and "precip" matches
// "precipitation".
var (
	helpCues        = []string{"help", "what can you do", "commands", "examples"}
	temperatureCues = []string{"temperature", "temp", "how hot", "how cold", "degrees"}
	windCues        = []string{"wind", "windy", "gust"}
	humidityCues    = []string{"humidity", "humid"}
	snowCues        = []string{"snow", "snowfall"}
	rainCues        = []string{"rain", "raining", "precip", "shower"}
	conditionCues   = []string{"condition", "weather like", "sunny", "cloudy", "clear", "overcast"}

	tomorrowCues = []string{"tomorrow"}
	next3Cues    = []string{"next 3", "3 day", "three day", "next three"}
	weekCues     = []string{"this week", "next 7", "7 day", "week forecast", "weekly"}
)

// Classifier resolves intents. It consults the trained model first and
// falls back to the deterministic rule cascade, so it always produces
// exactly one intent for any input.
type Classifier struct {
	// Model is nil when no trained artifact could be loaded at startup.
	Model *IntentModel
}

// Classify returns the intent for a raw message.
func (c *Classifier) Classify(text string) models.Intent {
	if c.Model != nil {
		if intent, err := c.Model.Predict(FeatureSet(Normalize(text))); err == nil {
			return intent
		}
	}
	return classifyByRules(text)
}

func classifyByRules(text string) models.Intent {
	t := strings.ToLower(text)

	if containsAny(t, helpCues) {
		return models.IntentHelp
	}

	tomorrow := containsAny(t, tomorrowCues)
	switch {
	case containsAny(t, temperatureCues):
		return models.IntentTemperatureNow
	case containsAny(t, windCues):
		return models.IntentWindNow
	case containsAny(t, humidityCues):
		return models.IntentHumidityNow
	case containsAny(t, snowCues):
		if tomorrow {
			return models.IntentTomorrow
		}
		return models.IntentSnowNow
	case containsAny(t, rainCues):
		if tomorrow {
			return models.IntentTomorrowRain
		}
		return models.IntentRainNow
	case containsAny(t, conditionCues):
		return models.IntentConditionsNow
	}

	// No variable keyword matched; fall back to horizon-only cues.
	if tomorrow {
		return models.IntentTomorrow
	}
	if containsAny(t, next3Cues) {
		return models.IntentNext3Days
	}
	if containsAny(t, weekCues) {
		return models.IntentWeek
	}
	return models.IntentConditionsNow
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
