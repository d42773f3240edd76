package handlers

import (
	"fmt"
	"net/http"

	"slb-charger-econ/internal/analysis"
	"slb-charger-econ/internal/api/models"
	"slb-charger-econ/internal/model"

	"github.com/gin-gonic/gin"
)

// RunSensitivity handles POST /api/v1/sensitivity
func (h *CompareHandler) RunSensitivity(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	ps, ok := model.LookupParam(req.Param)
	if !ok {
		writeError(c, http.StatusBadRequest, "INVALID_PARAMS", fmt.Errorf("unknown parameter %q", req.Param))
		return
	}
	for _, v := range req.Values {
		if err := ps.Check(v); err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_PARAMS", err)
			return
		}
	}

	base, opts, err := h.resolve(req.Base, req.Base.Params)
	if err != nil {
		writeAPIError(c, err)
		return
	}

	points, err := analysis.Sweep(base, opts, req.Param, req.Values)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_PARAMS", err)
		return
	}

	resp := models.SensitivityResponse{
		Param:  req.Param,
		Points: make([]models.SensitivityPoint, len(points)),
	}
	for i, pt := range points {
		summary := models.Summary{
			CrossoverYear: pt.CrossoverYear,
			FinalSLB:      pt.FinalSLB,
			FinalGrid:     pt.FinalGrid,
		}
		if opts.Variant.HasMetrics() {
			summary.SLB = buildMetrics(pt.SLB)
			summary.Grid = buildMetrics(pt.Grid)
		}
		resp.Points[i] = models.SensitivityPoint{Value: pt.Value, Summary: summary}
	}
	c.JSON(http.StatusOK, resp)
}
