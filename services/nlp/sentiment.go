package nlp

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"

	"weatherchat/models"
)

// Compound polarity at or beyond this magnitude counts as non-neutral.
const polarityThreshold = 0.35

// SentimentAnalyzer scores message polarity with the VADER lexicon.
// The capability is optional: a nil *SentimentAnalyzer means sentiment is
// disabled and callers leave the sentiment slot empty.
type SentimentAnalyzer struct{}

func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{}
}

// Score maps the compound polarity onto the coarse sentiment tags.
func (a *SentimentAnalyzer) Score(text string) models.Sentiment {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	polarity := sentitext.PolarityScore(parsed)
	switch {
	case polarity.Compound >= polarityThreshold:
		return models.SentimentPositive
	case polarity.Compound <= -polarityThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
