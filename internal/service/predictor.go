package service

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smarthome_predictor/backend/internal/artifact"
	"github.com/smarthome_predictor/backend/internal/features"
	"github.com/smarthome_predictor/backend/internal/models"
	"github.com/smarthome_predictor/backend/internal/utils"
	"github.com/smarthome_predictor/backend/internal/zone"
)

// Predictor runs the inference pipeline: location normalization, feature
// building, ensemble prediction, uncertainty estimation, categorization.
// It holds no per-request state; concurrent use is safe.
type Predictor struct {
	Artifacts    *artifact.Store
	Logger       zerolog.Logger
	BatchWorkers int
}

func (p *Predictor) Predict(ctx context.Context, in models.PropertyInput) (models.PredictionResult, error) {
	if strings.TrimSpace(in.Location) == "" {
		return models.PredictionResult{}, &ValidationError{Field: "location", Reason: "required"}
	}

	art, err := p.Artifacts.Snapshot()
	if err != nil {
		return models.PredictionResult{}, err
	}

	z, matched := zone.Normalize(in.Location)
	vec, report, err := features.Build(in, z, art.SelectedFeatures)
	if err != nil {
		return models.PredictionResult{}, err
	}

	scaled := art.Scaler.Transform(vec)
	estimate, basePreds, err := art.Strategy().Estimate(scaled)
	if err != nil {
		return models.PredictionResult{}, err
	}
	estimate = math.Max(estimate, 0)

	uncertainty := Dispersion(basePreds)
	if len(basePreds) < 2 {
		uncertainty = art.DefaultUncertaintyPct * estimate
	}
	lower, upper := Interval(estimate, uncertainty)

	predicted := int64(math.Round(estimate))

	p.Logger.Debug().
		Str("zone", string(z)).
		Bool("zone_matched", matched).
		Int64("predicted_price", predicted).
		Float64("uncertainty", uncertainty).
		Msg("prediction")

	return models.PredictionResult{
		PredictedPrice:          predicted,
		PredictedPriceFormatted: utils.FormatRupiah(predicted),
		PredictedPriceBillions:  estimate / 1e9,
		ConfidenceLower:         int64(math.Floor(lower)),
		ConfidenceUpper:         int64(math.Ceil(upper)),
		Uncertainty:             uncertainty,
		Category:                Categorize(estimate),
		Zone:                    string(z),
		Preprocessing: models.PreprocessingReport{
			MissingFields: report.MissingFields,
			Zone:          string(z),
			FeatureCount:  report.FeatureCount,
		},
	}, nil
}
