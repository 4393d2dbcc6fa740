package artifact

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotReady means no complete artifact is resident: the scaler is missing,
// or neither base models nor a dedicated ensemble model are present.
var ErrNotReady = errors.New("model artifact not ready")

// LinearModel is a trained regression model exported from the training
// pipeline: price = coefficients · x + intercept.
type LinearModel struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

func (m *LinearModel) Predict(x []float64) (float64, error) {
	if len(x) != len(m.Coefficients) {
		return 0, fmt.Errorf("model expects %d features, got %d", len(m.Coefficients), len(x))
	}
	sum := m.Intercept
	for i, c := range m.Coefficients {
		sum += c * x[i]
	}
	return sum, nil
}

// Scaler is a standard scaler fitted during training.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *Scaler) Transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out
}

// Artifact is the immutable bundle of trained models, scaler, and metadata
// consumed by the prediction pipeline. It is never mutated after Load; the
// Store swaps whole pointers on reload.
type Artifact struct {
	Models                map[string]*LinearModel       `json:"models"`
	EnsembleModel         *LinearModel                  `json:"ensemble_model,omitempty"`
	ModelWeights          []float64                     `json:"model_weights,omitempty"`
	Scaler                *Scaler                       `json:"scaler"`
	SelectedFeatures      []string                      `json:"selected_features"`
	FeatureImportance     map[string]float64            `json:"feature_importance"`
	EvaluationResults     map[string]map[string]float64 `json:"evaluation_results"`
	DefaultUncertaintyPct float64                       `json:"default_uncertainty_pct,omitempty"`

	modelNames []string
}

// ModelNames returns the base model names in sorted order. ModelWeights, when
// present, align with this order.
func (a *Artifact) ModelNames() []string {
	return a.modelNames
}

// Validate checks structural completeness. An artifact that fails validation
// must never be installed into the Store.
func (a *Artifact) Validate() error {
	if a.Scaler == nil {
		return fmt.Errorf("%w: scaler missing", ErrNotReady)
	}
	if len(a.Models) == 0 && a.EnsembleModel == nil {
		return fmt.Errorf("%w: no base models and no ensemble model", ErrNotReady)
	}
	if len(a.SelectedFeatures) == 0 {
		return fmt.Errorf("%w: selected_features empty", ErrNotReady)
	}

	n := len(a.SelectedFeatures)
	if len(a.Scaler.Mean) != n || len(a.Scaler.Scale) != n {
		return fmt.Errorf("scaler dimensions %d/%d disagree with %d selected features",
			len(a.Scaler.Mean), len(a.Scaler.Scale), n)
	}
	for name, m := range a.Models {
		if len(m.Coefficients) != n {
			return fmt.Errorf("model %q has %d coefficients, want %d", name, len(m.Coefficients), n)
		}
	}
	if a.EnsembleModel != nil && len(a.EnsembleModel.Coefficients) != n {
		return fmt.Errorf("ensemble model has %d coefficients, want %d",
			len(a.EnsembleModel.Coefficients), n)
	}
	if len(a.ModelWeights) > 0 && len(a.ModelWeights) != len(a.Models) {
		return fmt.Errorf("%d model weights for %d models", len(a.ModelWeights), len(a.Models))
	}
	if a.DefaultUncertaintyPct < 0 {
		return fmt.Errorf("default_uncertainty_pct must be non-negative")
	}

	a.modelNames = make([]string, 0, len(a.Models))
	for name := range a.Models {
		a.modelNames = append(a.modelNames, name)
	}
	sort.Strings(a.modelNames)
	return nil
}
