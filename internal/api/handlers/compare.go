package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"slb-charger-econ/internal/analysis"
	"slb-charger-econ/internal/api/models"
	"slb-charger-econ/internal/config"
	"slb-charger-econ/internal/metrics"
	"slb-charger-econ/internal/model"

	"github.com/gin-gonic/gin"
)

// CompareHandler handles comparison, variation and sensitivity requests
type CompareHandler struct {
	presetDir string
	presets   *config.PresetCache
	logger    *slog.Logger
}

// NewCompareHandler creates a new compare handler resolving presets from
// presetDir. presets may be nil to read the files on every request.
func NewCompareHandler(presetDir string, presets *config.PresetCache, logger *slog.Logger) *CompareHandler {
	return &CompareHandler{presetDir: presetDir, presets: presets, logger: logger}
}

// apiError carries the HTTP status and envelope code of a failed request.
type apiError struct {
	status int
	code   string
	err    error
}

func (e *apiError) Error() string { return e.err.Error() }

func writeError(c *gin.Context, status int, code string, err error) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func writeAPIError(c *gin.Context, err error) {
	var ae *apiError
	if errors.As(err, &ae) {
		writeError(c, ae.status, ae.code, ae.err)
		return
	}
	writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
}

// RunCompare handles POST /api/v1/compare
func (h *CompareHandler) RunCompare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	params, opts, err := h.resolve(req, req.Params)
	if err != nil {
		writeAPIError(c, err)
		return
	}

	res := analysis.Compare(params, opts)
	observe(res)
	h.logger.Debug("comparison finished",
		slog.String("variant", string(opts.Variant)),
		slog.Int("years", params.AnalysisYears))

	c.JSON(http.StatusOK, buildCompareResponse(res, req.Options.IncludeSeries))
}

// CompareVariations handles POST /api/v1/compare/variations
func (h *CompareHandler) CompareVariations(c *gin.Context) {
	var req models.CompareVariationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	base, opts, err := h.resolve(req.Base, req.Base.Params)
	if err != nil {
		writeAPIError(c, err)
		return
	}

	variations := make([]analysis.Variation, len(req.Variations))
	for i, v := range req.Variations {
		variations[i] = analysis.Variation{Name: v.Name, Params: v.Params}
	}

	results := analysis.CompareVariations(base, opts, variations)
	comparison := make([]models.VariationResult, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			h.logger.Warn("skipping variation", slog.String("name", r.Name), slog.Any("error", r.Err))
			comparison = append(comparison, models.VariationResult{
				Name: r.Name,
				Error: &models.ErrorDetail{
					Code:    "INVALID_PARAMS",
					Message: r.Err.Error(),
				},
			})
			continue
		}
		observe(r.Result)
		summary := buildSummary(r.Result)
		comparison = append(comparison, models.VariationResult{
			Name:    r.Name,
			Summary: &summary,
		})
	}

	c.JSON(http.StatusOK, models.CompareVariationsResponse{Comparison: comparison})
}

// resolve turns a request into validated params and options: defaults, then
// the preset, then overrides.
func (h *CompareHandler) resolve(req models.CompareRequest, overrides map[string]float64) (model.Params, model.Options, error) {
	cfg := config.Config{
		Variant:        req.Variant,
		SignConvention: req.SignConvention,
		Params:         model.DefaultParams(),
	}
	opts, err := cfg.Options()
	if err != nil {
		return model.Params{}, model.Options{}, &apiError{http.StatusBadRequest, "INVALID_CONFIG", err}
	}

	if req.Preset != "" {
		path, err := config.PresetPath(h.presetDir, req.Preset)
		if err != nil {
			return model.Params{}, model.Options{}, &apiError{http.StatusNotFound, "UNKNOWN_PRESET", err}
		}
		preset, err := h.presets.Load(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return model.Params{}, model.Options{}, &apiError{http.StatusNotFound, "UNKNOWN_PRESET", err}
			}
			h.logger.Error("failed to load preset", slog.String("path", path), slog.Any("error", err))
			return model.Params{}, model.Options{}, &apiError{http.StatusInternalServerError, "INTERNAL_ERROR", err}
		}
		cfg.Params = preset.Params
	}

	params, err := cfg.Params.Apply(overrides)
	if err != nil {
		return model.Params{}, model.Options{}, &apiError{http.StatusBadRequest, "INVALID_PARAMS", err}
	}
	if err := params.Validate(); err != nil {
		return model.Params{}, model.Options{}, &apiError{http.StatusBadRequest, "INVALID_PARAMS", err}
	}
	return params, opts, nil
}

func observe(res *analysis.Result) {
	undefined := map[string][]string{}
	if res.HasMetrics {
		for _, s := range []analysis.ScenarioResult{res.SLB, res.Grid} {
			id := string(s.Series.Scenario)
			if !s.Metrics.IRR.IsValid() {
				undefined[id] = append(undefined[id], "irr")
			}
			if !s.Metrics.PaybackYear.IsValid() {
				undefined[id] = append(undefined[id], "payback")
			}
		}
	}
	if res.Options.Variant.HasCrossover() && !res.CrossoverYear.IsValid() {
		undefined["both"] = append(undefined["both"], "crossover")
	}
	metrics.ObserveComparison(string(res.Options.Variant), undefined)
}
