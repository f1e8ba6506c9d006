// Offline trainer for the intent model. Reads the labeled corpus, trains a
// naive-Bayes classifier on stem presence sets and writes the gob artifact
// the server loads at startup.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/jbrukh/bayesian"

	"weatherchat/services/nlp"
)

// minSamples guards against training on a corpus too small to mean anything.
const minSamples = 20

type sample struct {
	features []string
	intent   bayesian.Class
}

func main() {
	dataPath := flag.String("data", "data/training_intents.json", "path to the labeled corpus")
	outPath := flag.String("out", "models/intent_model.gob", "path for the trained model artifact")
	seed := flag.Int64("seed", time.Now().UnixNano(), "shuffle seed for the train/test split")
	flag.Parse()

	samples, err := loadDataset(*dataPath)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	if len(samples) < minSamples {
		log.Fatalf("not enough training samples (%d, need at least %d); add more examples to %s",
			len(samples), minSamples, *dataPath)
	}

	rng := rand.New(rand.NewSource(*seed))
	rng.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})

	split := int(0.8 * float64(len(samples)))
	trainSet, testSet := samples[:split], samples[split:]

	classes := nlp.IntentClasses()
	classifier := bayesian.NewClassifier(classes...)
	for _, s := range trainSet {
		classifier.Learn(s.features, s.intent)
	}

	accuracy := 1.0
	if len(testSet) > 0 {
		correct := 0
		for _, s := range testSet {
			_, inx, _ := classifier.LogScores(s.features)
			if inx >= 0 && inx < len(classes) && classes[inx] == s.intent {
				correct++
			}
		}
		accuracy = float64(correct) / float64(len(testSet))
	}

	if dir := filepath.Dir(*outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create model directory: %v", err)
		}
	}
	if err := classifier.WriteToFile(*outPath); err != nil {
		log.Fatalf("write model: %v", err)
	}

	fmt.Printf("Saved model to %s\n", *outPath)
	fmt.Printf("Trained on %d samples, validated on %d\n", len(trainSet), len(testSet))
	fmt.Printf("Validation accuracy (80/20 split): %.2f\n", accuracy)
}

func loadDataset(path string) ([]sample, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var corpus map[string][]string
	if err := json.Unmarshal(raw, &corpus); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	known := make(map[string]struct{}, len(nlp.IntentClasses()))
	for _, class := range nlp.IntentClasses() {
		known[string(class)] = struct{}{}
	}

	var samples []sample
	for intent, examples := range corpus {
		if _, ok := known[intent]; !ok {
			return nil, fmt.Errorf("unknown intent %q in corpus", intent)
		}
		for _, example := range examples {
			samples = append(samples, sample{
				features: nlp.FeatureSet(nlp.Normalize(example)),
				intent:   bayesian.Class(intent),
			})
		}
	}
	return samples, nil
}
