package handlers

import (
	"net/http"

	"slb-charger-econ/internal/api/models"
	"slb-charger-econ/internal/model"

	"github.com/gin-gonic/gin"
)

// ListParameters handles GET /api/v1/parameters
func ListParameters(c *gin.Context) {
	specs := model.ParamSpecs()
	params := make([]models.ParameterInfo, len(specs))
	for i, s := range specs {
		params[i] = models.ParameterInfo{
			Name:    s.Name,
			Label:   s.Label,
			Unit:    s.Unit,
			Min:     s.Min,
			Max:     s.Max,
			Default: s.Default,
			Integer: s.Integer,
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"parameters":       params,
		"variants":         []model.Variant{model.VariantDiscounted, model.VariantMetrics, model.VariantFeedIn},
		"sign_conventions": []model.SignConvention{model.SignAsSpecified, model.SignCorrected},
	})
}
