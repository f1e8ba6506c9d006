package nlp

import (
	"regexp"
	"strings"

	"weatherchat/models"
)

// Location heuristics, tried in order. The capitalized-run heuristic is
// last because sentence-initial words are capitalized too; the temporal
// blocklist keeps "Tomorrow" and friends from being read as place names.
var (
	trailingPrepPattern = regexp.MustCompile(`(?i)\b(?:in|at|for)\s+([a-zA-Z][a-zA-Z' ,.-]*?)\s*[?!.]*\s*$`)
	weatherInPattern    = regexp.MustCompile(`(?i)weather\s+in\s+([a-zA-Z][a-zA-Z' ,.-]*[a-zA-Z])`)
	capitalizedPattern  = regexp.MustCompile(`([A-Z][a-z']+(?:\s+[A-Z][a-z']+){0,3}(?:,\s*[A-Z][a-z']+)?)\s*[?!.]*\s*$`)
)

var temporalBlocklist = map[string]struct{}{
	"tomorrow": {}, "today": {}, "week": {}, "morning": {}, "evening": {},
}

// ExtractLocation pulls a free-text location phrase out of a message.
// It returns "" when no heuristic matches; the caller falls back to the
// session's remembered location.
func ExtractLocation(message string) string {
	if m := trailingPrepPattern.FindStringSubmatch(message); m != nil {
		if loc := cleanLocation(m[1]); loc != "" {
			return loc
		}
	}
	if m := weatherInPattern.FindStringSubmatch(message); m != nil {
		if loc := cleanLocation(m[1]); loc != "" {
			return loc
		}
	}
	if len(strings.Fields(message)) >= 2 {
		if m := capitalizedPattern.FindStringSubmatch(message); m != nil {
			if loc := cleanLocation(m[1]); loc != "" && !anyTemporal(loc) {
				return loc
			}
		}
	}
	return ""
}

// cleanLocation trims punctuation and strips trailing temporal words such
// as "tomorrow" that the regexes can drag into the capture.
func cleanLocation(raw string) string {
	words := strings.Fields(strings.Trim(strings.TrimSpace(raw), "?!. "))
	for len(words) > 0 {
		last := strings.ToLower(strings.Trim(words[len(words)-1], ",."))
		if _, temporal := temporalBlocklist[last]; !temporal {
			break
		}
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

func anyTemporal(phrase string) bool {
	for _, w := range strings.Fields(phrase) {
		if _, temporal := temporalBlocklist[strings.ToLower(strings.Trim(w, ",."))]; temporal {
			return true
		}
	}
	return false
}

// Horizon cue sets. These are deliberately not shared with the
// classifier's lists: the horizon slot matches bare "week" while the
// intent cascade requires the stronger week phrasings.
var (
	horizonNext3Cues = []string{"next 3", "3 day", "three day"}
	horizonWeekCues  = []string{"week", "7 day", "next 7"}
)

// ExtractHorizon scans for horizon cues; tomorrow wins over the 3-day
// cues, which win over week cues, with "now" as the default.
func ExtractHorizon(message string) models.Horizon {
	t := strings.ToLower(message)
	switch {
	case containsAny(t, tomorrowCues):
		return models.HorizonTomorrow
	case containsAny(t, horizonNext3Cues):
		return models.HorizonNext3Days
	case containsAny(t, horizonWeekCues):
		return models.HorizonWeek
	}
	return models.HorizonNow
}

var timeOfDayOrder = []models.TimeOfDay{
	models.Morning, models.Afternoon, models.Evening, models.Night,
}

// ExtractTimeOfDay returns the first matching part-of-day bucket, or ""
// when the message names none.
func ExtractTimeOfDay(message string) models.TimeOfDay {
	t := strings.ToLower(message)
	for _, tod := range timeOfDayOrder {
		if strings.Contains(t, string(tod)) {
			return tod
		}
	}
	return ""
}
