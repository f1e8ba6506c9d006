package nlp

import (
	"testing"

	"weatherchat/models"
)

// All rule-cascade tests use a classifier without a trained model, which
// is exactly the deployment the cascade exists for.
func ruleOnly() *Classifier {
	return &Classifier{}
}

func TestClassifyRulePrecedence(t *testing.T) {
	tests := []struct {
		in   string
		want models.Intent
	}{
		{"help me please", models.IntentHelp},
		{"what can you do", models.IntentHelp},
		{"temperature in Lisbon", models.IntentTemperatureNow},
		{"how hot is it", models.IntentTemperatureNow},
		{"how windy is it", models.IntentWindNow},
		{"what's the humidity", models.IntentHumidityNow},
		{"is it snowing", models.IntentSnowNow},
		{"will it snow tomorrow", models.IntentTomorrow},
		{"is it raining", models.IntentRainNow},
		{"rain tomorrow morning", models.IntentTomorrowRain},
		{"will it rain tomorrow", models.IntentTomorrowRain},
		{"precipitation tomorrow in Berlin", models.IntentTomorrowRain},
		{"what's the weather like", models.IntentConditionsNow},
		{"forecast for tomorrow", models.IntentTomorrow},
		{"next 3 days", models.IntentNext3Days},
		{"3 day forecast", models.IntentNext3Days},
		{"weekly outlook", models.IntentWeek},
		{"7 day forecast", models.IntentWeek},
		{"week forecast for Berlin", models.IntentWeek},
		{"show me some examples", models.IntentHelp},
		{"what commands do you support", models.IntentHelp},
		{"blah blah", models.IntentConditionsNow},
		{"", models.IntentConditionsNow},
	}
	c := ruleOnly()
	for _, tt := range tests {
		if got := c.Classify(tt.in); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassifyTotality(t *testing.T) {
	known := make(map[models.Intent]struct{}, len(models.AllIntents))
	for _, intent := range models.AllIntents {
		known[intent] = struct{}{}
	}

	inputs := []string{
		"",
		" ",
		"xyz",
		"???",
		"☃☃☃",
		"a very long message without any weather words at all whatsoever",
		"TEMPERATURE",
		"WiLl It SnOw ToMoRrOw",
	}
	c := ruleOnly()
	for _, in := range inputs {
		got := c.Classify(in)
		if _, ok := known[got]; !ok {
			t.Errorf("Classify(%q) = %q, not a defined intent", in, got)
		}
	}
}

func TestClassifyIsPure(t *testing.T) {
	c := ruleOnly()
	in := "will it rain tomorrow in Paris"
	first := c.Classify(in)
	for i := 0; i < 10; i++ {
		if got := c.Classify(in); got != first {
			t.Fatalf("Classify(%q) changed between calls: %q vs %q", in, first, got)
		}
	}
}
