package artifact

// Strategy combines base-model outputs into one estimate. The variant is
// chosen once when the artifact is installed, never branched on per request.
type Strategy interface {
	// Estimate returns the combined price estimate and the individual base
	// model predictions (for uncertainty estimation; may be empty).
	Estimate(scaled []float64) (float64, []float64, error)
}

// Strategy returns the combiner the artifact prescribes: the dedicated
// ensemble model when present, otherwise a weighted average of base models.
func (a *Artifact) Strategy() Strategy {
	if a.EnsembleModel != nil {
		return dedicatedModel{artifact: a}
	}
	return weightedAverage{artifact: a}
}

type dedicatedModel struct {
	artifact *Artifact
}

func (d dedicatedModel) Estimate(scaled []float64) (float64, []float64, error) {
	base, err := d.artifact.basePredictions(scaled)
	if err != nil {
		return 0, nil, err
	}
	est, err := d.artifact.EnsembleModel.Predict(scaled)
	if err != nil {
		return 0, nil, err
	}
	return est, base, nil
}

type weightedAverage struct {
	artifact *Artifact
}

func (w weightedAverage) Estimate(scaled []float64) (float64, []float64, error) {
	base, err := w.artifact.basePredictions(scaled)
	if err != nil {
		return 0, nil, err
	}
	weights := w.artifact.ModelWeights
	var sum, totalWeight float64
	for i, pred := range base {
		weight := 1.0
		if len(weights) == len(base) {
			weight = weights[i]
		}
		sum += pred * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0, base, ErrNotReady
	}
	return sum / totalWeight, base, nil
}

// basePredictions runs every base model on the scaled vector, in ModelNames
// order so that results line up with ModelWeights.
func (a *Artifact) basePredictions(scaled []float64) ([]float64, error) {
	preds := make([]float64, 0, len(a.modelNames))
	for _, name := range a.modelNames {
		p, err := a.Models[name].Predict(scaled)
		if err != nil {
			return nil, &ModelError{Model: name, Err: err}
		}
		preds = append(preds, p)
	}
	return preds, nil
}

// ModelError reports a failed invocation of one named base or ensemble model.
type ModelError struct {
	Model string
	Err   error
}

func (e *ModelError) Error() string {
	return "model " + e.Model + ": " + e.Err.Error()
}

func (e *ModelError) Unwrap() error {
	return e.Err
}
