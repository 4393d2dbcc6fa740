package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/smarthome_predictor/backend/internal/models"
)

const defaultBatchWorkers = 4

// PredictBatch runs the single-item pipeline over every input. Items are
// independent, so they fan out to a bounded worker pool; a failing item is
// recorded in place and never aborts the rest. Results keep input order.
func (p *Predictor) PredictBatch(ctx context.Context, inputs []models.PropertyInput) models.BatchResult {
	result := models.BatchResult{
		Total:   len(inputs),
		Results: make([]models.BatchItem, len(inputs)),
	}
	if len(inputs) == 0 {
		result.Results = []models.BatchItem{}
		return result
	}

	workers := p.BatchWorkers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			res, err := p.Predict(ctx, in)
			if err != nil {
				result.Results[i] = models.BatchItem{
					Index: i,
					Error: &models.BatchItemError{
						Code:    ErrorCode(err),
						Message: err.Error(),
					},
				}
				return nil
			}
			result.Results[i] = models.BatchItem{Index: i, Result: &res}
			return nil
		})
	}
	// Workers never return errors; failures live in the per-item slots.
	_ = g.Wait()

	for _, item := range result.Results {
		if item.Error != nil {
			result.Failed++
		} else {
			result.Successful++
		}
	}
	return result
}
