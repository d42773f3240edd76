package handlers

import (
	"log/slog"
	"net/http"
	"os"

	"slb-charger-econ/internal/api/models"
	"slb-charger-econ/internal/config"

	"github.com/gin-gonic/gin"
)

// PresetHandler lists parameter presets
type PresetHandler struct {
	presetDir string
	logger    *slog.Logger
}

// NewPresetHandler creates a new preset handler reading from presetDir
func NewPresetHandler(presetDir string, logger *slog.Logger) *PresetHandler {
	return &PresetHandler{presetDir: presetDir, logger: logger}
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	out := []models.PresetInfo{}

	presets, skipped, err := config.ListPresets(h.presetDir)
	if err != nil {
		if os.IsNotExist(err) {
			h.logger.Warn("preset directory does not exist", slog.String("dir", h.presetDir))
			c.JSON(http.StatusOK, gin.H{"presets": out})
			return
		}
		h.logger.Error("failed to read preset directory", slog.String("dir", h.presetDir), slog.Any("error", err))
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	for name, err := range skipped {
		h.logger.Warn("skipping invalid preset", slog.String("file", name), slog.Any("error", err))
	}

	for _, p := range presets {
		out = append(out, models.PresetInfo{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Params:      p.Params,
		})
	}
	c.JSON(http.StatusOK, gin.H{"presets": out})
}
