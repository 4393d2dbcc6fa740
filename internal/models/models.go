package models

import (
	"encoding/json"
	"strings"
	"time"
)

// FlexValue accepts a JSON number or a unit-annotated string ("150 m²",
// "1300 VA"). The raw text is kept as-is; cleaning and parsing happen in the
// feature builder. An empty FlexValue means the field was absent.
type FlexValue string

func (f *FlexValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexValue(n.String())
	return nil
}

func (f FlexValue) IsZero() bool {
	return strings.TrimSpace(string(f)) == ""
}

type PropertyInput struct {
	Location            string    `json:"location" validate:"required"`
	Bedrooms            FlexValue `json:"bedrooms,omitempty"`
	Bathrooms           FlexValue `json:"bathrooms,omitempty"`
	LandArea            FlexValue `json:"land_area,omitempty"`
	BuildingArea        FlexValue `json:"building_area,omitempty"`
	CarportCount        FlexValue `json:"carport_count,omitempty"`
	ElectricalPower     FlexValue `json:"electrical_power,omitempty"`
	FloorCount          FlexValue `json:"floor_count,omitempty"`
	PropertyCondition   string    `json:"property_condition,omitempty"`
	FurnishingCondition string    `json:"furnishing_condition,omitempty"`
}

// PreprocessingReport records what the feature builder had to fill in.
type PreprocessingReport struct {
	MissingFields []string `json:"missing_fields"`
	Zone          string   `json:"zone"`
	FeatureCount  int      `json:"feature_count"`
}

type PredictionResult struct {
	PredictedPrice          int64               `json:"predicted_price"`
	PredictedPriceFormatted string              `json:"predicted_price_formatted"`
	PredictedPriceBillions  float64             `json:"predicted_price_billions"`
	ConfidenceLower         int64               `json:"confidence_lower"`
	ConfidenceUpper         int64               `json:"confidence_upper"`
	Uncertainty             float64             `json:"uncertainty"`
	Category                string              `json:"category"`
	Zone                    string              `json:"zone"`
	Preprocessing           PreprocessingReport `json:"preprocessing"`
}

// BatchRequest keeps items raw so one malformed element fails alone instead
// of rejecting the whole batch.
type BatchRequest struct {
	Properties []json.RawMessage `json:"properties"`
}

type BatchItemError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BatchItem carries either a result or an error, never both.
type BatchItem struct {
	Index  int               `json:"index"`
	Result *PredictionResult `json:"result,omitempty"`
	Error  *BatchItemError   `json:"error,omitempty"`
}

type BatchResult struct {
	Total      int         `json:"total_properties"`
	Successful int         `json:"successful_predictions"`
	Failed     int         `json:"failed_predictions"`
	Results    []BatchItem `json:"results"`
}

type HistoryEntry struct {
	ID             string    `json:"id"`
	Location       string    `json:"location"`
	Zone           string    `json:"zone"`
	PredictedPrice int64     `json:"predicted_price"`
	Category       string    `json:"category"`
	Uncertainty    float64   `json:"uncertainty"`
	CreatedAt      time.Time `json:"created_at"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	Timestamp    string `json:"timestamp"`
	ModelsLoaded bool   `json:"models_loaded"`
}
