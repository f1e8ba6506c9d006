package nlp

import (
	"errors"
	"fmt"

	"github.com/jbrukh/bayesian"

	"weatherchat/models"
)

// IntentClasses returns the classifier classes in the canonical intent
// order shared by the training job and the serving path.
func IntentClasses() []bayesian.Class {
	classes := make([]bayesian.Class, len(models.AllIntents))
	for i, intent := range models.AllIntents {
		classes[i] = bayesian.Class(intent)
	}
	return classes
}

// IntentModel wraps the trained naive-Bayes intent classifier produced by
// the offline training job.
type IntentModel struct {
	classifier *bayesian.Classifier
}

// LoadIntentModel reads the gob artifact at path. Callers treat a load
// failure as "model unavailable" and fall back to rule-based classification.
func LoadIntentModel(path string) (*IntentModel, error) {
	classifier, err := bayesian.NewClassifierFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load intent model %s: %w", path, err)
	}
	return &IntentModel{classifier: classifier}, nil
}

// Predict returns the most likely intent for a feature presence set.
func (m *IntentModel) Predict(features []string) (models.Intent, error) {
	if len(features) == 0 {
		return "", errors.New("no features to classify")
	}
	_, inx, _ := m.classifier.LogScores(features)
	if inx < 0 || inx >= len(models.AllIntents) {
		return "", fmt.Errorf("model returned class index %d", inx)
	}
	return models.AllIntents[inx], nil
}
