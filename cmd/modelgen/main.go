package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"cognovoid/internal/predictor"
)

// Writes a sample model artifact for local development and smoke testing.
// The weights are hand-tuned, not fitted; real deployments export the
// artifact from the training pipeline.
func main() {
	kind := flag.String("kind", "classifier", "artifact kind: classifier or regressor")
	out := flag.String("out", "model.json", "output path")
	flag.Parse()

	var artifact *predictor.Artifact
	switch predictor.Kind(*kind) {
	case predictor.KindClassifier:
		artifact = sampleClassifier()
	case predictor.KindRegressor:
		artifact = sampleRegressor()
	default:
		log.Fatalf("unknown kind %q", *kind)
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0644); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s artifact to %s", artifact.Kind, *out)
}

func sampleClassifier() *predictor.Artifact {
	// label vocabulary in fitted (alphabetical) order
	return &predictor.Artifact{
		Kind:           predictor.KindClassifier,
		Labels:         []string{"Angry", "Calm", "Impulsive", "Stressed"},
		FeatureColumns: []string{"sleep", "stress", "mood", "focus", "screen", "anxiety", "fatigue"},
		Coefficients: [][]float64{
			{-0.2, 0.8, -0.6, -0.2, 0.1, 0.5, 0.3},  // Angry
			{0.5, -0.8, 0.9, 0.6, -0.1, -0.7, -0.4}, // Calm
			{-0.3, 0.3, -0.2, -0.7, 0.4, 0.2, 0.1},  // Impulsive
			{-0.4, 0.9, -0.5, -0.3, 0.2, 0.8, 0.5},  // Stressed
		},
		Intercepts: []float64{-2.0, 1.0, -1.5, -1.0},
	}
}

func sampleRegressor() *predictor.Artifact {
	return &predictor.Artifact{
		Kind: predictor.KindRegressor,
		FeatureColumns: []string{
			"sleep", "screen", "exercise", "pendingTasks", "interruptions",
			"fatigue", "socialHours", "coffee", "mood",
			"diet_average", "diet_good", "diet_poor",
			"weather_cloudy", "weather_rainy", "weather_stormy", "weather_sunny",
		},
		Coefficients: [][]float64{
			{-0.3, 0.15, -0.01, 0.12, 0.05, 0.5, -0.2, 0.1, -0.4,
				0.2, -0.3, 0.8,
				0.1, 0.3, 0.6, -0.2},
		},
		Intercepts:  []float64{5.0},
		OutputRange: [2]float64{0, 10},
	}
}
