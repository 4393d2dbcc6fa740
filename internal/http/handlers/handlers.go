package handlers

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/smarthome_predictor/backend/internal/artifact"
	"github.com/smarthome_predictor/backend/internal/db"
	"github.com/smarthome_predictor/backend/internal/models"
	"github.com/smarthome_predictor/backend/internal/service"
	"github.com/smarthome_predictor/backend/internal/zone"
)

type Handler struct {
	Predictor    *service.Predictor
	Artifacts    *artifact.Store
	History      *db.Store
	Validator    *validator.Validate
	Logger       zerolog.Logger
	ModelPath    string
	BatchLimit   int
	HistoryLimit int
}

// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	loaded := h.Artifacts.Ready()
	status := "healthy"
	message := "service is running"
	if !loaded {
		status = "unhealthy"
		message = "model artifact not loaded"
	}
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:       status,
		Message:      message,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		ModelsLoaded: loaded,
	})
}

// @Summary Predict a single property price
// @Tags predict
// @Accept json
// @Produce json
// @Param property body models.PropertyInput true "property attributes"
// @Success 200 {object} models.PredictionResult
// @Failure 400 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /api/predict [post]
func (h *Handler) Predict(c *gin.Context) {
	var in models.PropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, service.CodeValidation, "Invalid request body", err.Error())
		return
	}
	if err := h.Validator.Struct(in); err != nil {
		writeError(c, http.StatusBadRequest, service.CodeValidation, "location is required", err.Error())
		return
	}

	result, err := h.Predictor.Predict(c.Request.Context(), in)
	if err != nil {
		code := service.ErrorCode(err)
		writeError(c, statusForCode(code), code, "Prediction failed", err.Error())
		return
	}

	h.recordHistory(c, in, result)
	c.JSON(http.StatusOK, result)
}

// @Summary Predict prices for a batch of properties
// @Tags predict
// @Accept json
// @Produce json
// @Param batch body models.BatchRequest true "properties to predict"
// @Success 200 {object} models.BatchResult
// @Failure 400 {object} map[string]any
// @Router /api/batch-predict [post]
func (h *Handler) BatchPredict(c *gin.Context) {
	var req models.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, service.CodeValidation, "Invalid request body", err.Error())
		return
	}
	if h.BatchLimit > 0 && len(req.Properties) > h.BatchLimit {
		writeError(c, http.StatusBadRequest, service.CodeValidation, "Batch too large", gin.H{
			"limit": h.BatchLimit,
			"got":   len(req.Properties),
		})
		return
	}

	// Decode items one by one so a malformed element fails alone.
	inputs := make([]models.PropertyInput, len(req.Properties))
	decodeErrs := make([]*models.BatchItemError, len(req.Properties))
	for i, raw := range req.Properties {
		if err := json.Unmarshal(raw, &inputs[i]); err != nil {
			decodeErrs[i] = &models.BatchItemError{
				Code:    service.CodeValidation,
				Message: "invalid property payload: " + err.Error(),
			}
		}
	}

	result := h.Predictor.PredictBatch(c.Request.Context(), inputs)
	for i, decodeErr := range decodeErrs {
		if decodeErr == nil {
			continue
		}
		if result.Results[i].Error == nil {
			result.Successful--
			result.Failed++
		}
		result.Results[i] = models.BatchItem{Index: i, Error: decodeErr}
	}

	for _, item := range result.Results {
		if item.Result != nil {
			h.recordHistory(c, inputs[item.Index], *item.Result)
		}
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Loaded model information
// @Tags model
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /api/model-info [get]
func (h *Handler) ModelInfo(c *gin.Context) {
	art, err := h.Artifacts.Snapshot()
	if err != nil {
		writeError(c, http.StatusServiceUnavailable, service.CodeModelNotReady, "Model artifact not loaded", nil)
		return
	}

	features := art.SelectedFeatures
	if len(features) > 10 {
		features = features[:10]
	}

	c.JSON(http.StatusOK, gin.H{
		"models":             art.ModelNames(),
		"has_ensemble_model": art.EnsembleModel != nil,
		"selected_features":  features,
		"total_features":     len(art.SelectedFeatures),
		"evaluation_results": art.EvaluationResults,
		"feature_importance": topImportance(art.FeatureImportance, 10),
	})
}

// @Summary Known zones and locations
// @Tags zones
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/zones [get]
func (h *Handler) Zones(c *gin.Context) {
	locations := zone.Locations()
	zones := make(map[string][]string, len(locations))
	names := make([]string, 0, len(zone.All))
	for _, z := range zone.All {
		zones[string(z)] = locations[z]
		names = append(names, string(z))
	}
	c.JSON(http.StatusOK, gin.H{
		"total_zones": len(names),
		"zones":       zones,
		"zone_names":  names,
	})
}

// @Summary Recent prediction history
// @Tags history
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /api/history [get]
func (h *Handler) HistoryList(c *gin.Context) {
	if h.History == nil {
		writeError(c, http.StatusServiceUnavailable, "HISTORY_UNAVAILABLE", "History store not configured", nil)
		return
	}
	entries, err := h.History.RecentPredictions(c.Request.Context(), h.HistoryLimit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to read history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "predictions": entries})
}

// @Summary Purge prediction history
// @Tags history
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/history [delete]
func (h *Handler) HistoryPurge(c *gin.Context) {
	if h.History == nil {
		writeError(c, http.StatusServiceUnavailable, "HISTORY_UNAVAILABLE", "History store not configured", nil)
		return
	}
	if err := h.History.PurgeHistory(c.Request.Context()); err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to purge history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Reload the model artifact from disk
// @Tags model
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /api/reload [post]
func (h *Handler) Reload(c *gin.Context) {
	if err := h.Artifacts.Reload(h.ModelPath); err != nil {
		h.Logger.Error().Err(err).Str("path", h.ModelPath).Msg("artifact reload failed")
		code := service.ErrorCode(err)
		writeError(c, statusForCode(code), code, "Artifact reload failed", err.Error())
		return
	}
	art, _ := h.Artifacts.Snapshot()
	h.Logger.Info().Strs("models", art.ModelNames()).Msg("artifact reloaded")
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"models": art.ModelNames(),
	})
}

func (h *Handler) recordHistory(c *gin.Context, in models.PropertyInput, res models.PredictionResult) {
	if h.History == nil {
		return
	}
	if err := h.History.InsertPrediction(c.Request.Context(), in, res); err != nil {
		h.Logger.Warn().Err(err).Msg("failed to record prediction history")
	}
}

func topImportance(importance map[string]float64, n int) map[string]float64 {
	type pair struct {
		name  string
		score float64
	}
	pairs := make([]pair, 0, len(importance))
	for name, score := range importance {
		pairs = append(pairs, pair{name, score})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].score == pairs[j].score {
			return pairs[i].name < pairs[j].name
		}
		return pairs[i].score > pairs[j].score
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	out := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		out[p.name] = p.score
	}
	return out
}

func statusForCode(code string) int {
	switch code {
	case service.CodeValidation:
		return http.StatusBadRequest
	case service.CodeModelNotReady:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
