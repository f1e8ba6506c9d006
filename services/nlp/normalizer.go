package nlp

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

var tokenPattern = regexp.MustCompile(`[a-zA-Z']+`)

// stopwords are dropped before stemming. The set is shared by training and
// prediction; changing it invalidates any previously trained model.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "and": {},
	"or": {}, "please": {}, "tell": {}, "me": {}, "what": {}, "whats": {},
	"what's": {}, "give": {}, "show": {}, "can": {}, "could": {}, "will": {},
}

// Normalize lowercases text, splits it into maximal runs of letters and
// apostrophes, drops stopwords and reduces each remaining token to its
// English stem. It is total: any input, including empty, yields a slice.
func Normalize(text string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	stems := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, skip := stopwords[tok]; skip {
			continue
		}
		stem, err := snowball.Stem(tok, "english", true)
		if err != nil {
			stem = tok
		}
		stems = append(stems, stem)
	}
	return stems
}

// FeatureSet dedupes stems into an ordered presence set, mirroring the
// bag-of-words features the training job builds.
func FeatureSet(stems []string) []string {
	seen := make(map[string]struct{}, len(stems))
	features := make([]string, 0, len(stems))
	for _, s := range stems {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		features = append(features, s)
	}
	return features
}
