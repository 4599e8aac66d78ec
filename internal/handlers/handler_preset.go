package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/dto"
	"github.com/macrodyn/solow_model_app/internal/middleware"
)

// presetHandler handles HTTP requests related to calibration presets.
type presetHandler struct {
	presetService portssvc.PresetSvcFacade
}

func newPresetHandler(ps portssvc.PresetSvcFacade) *presetHandler {
	return &presetHandler{presetService: ps}
}

// registerPresetRoutes registers routes related to calibration presets.
func registerPresetRoutes(rg *gin.RouterGroup, presetService portssvc.PresetSvcFacade) {
	h := newPresetHandler(presetService)

	presets := rg.Group("/presets")
	{
		presets.GET("", h.listPresets)
		presets.GET("/:preset_code", h.getPreset)
		presets.POST("", h.createPreset)
	}
}

// listPresets godoc
// @Summary List calibration presets
// @Description Retrieves all available calibration presets.
// @Tags presets
// @Produce json
// @Success 200 {object} dto.ListPresetsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /presets [get]
func (h *presetHandler) listPresets(c *gin.Context) {
	presets, err := h.presetService.ListPresets(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list presets")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPresetsResponse(presets))
}

// getPreset godoc
// @Summary Get a calibration preset
// @Description Retrieves a single calibration preset by its code.
// @Tags presets
// @Produce json
// @Param preset_code path string true "Preset code"
// @Success 200 {object} dto.PresetResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /presets/{preset_code} [get]
func (h *presetHandler) getPreset(c *gin.Context) {
	preset, err := h.presetService.GetPresetByCode(c.Request.Context(), c.Param("preset_code"))
	if err != nil {
		respondError(c, err, "Failed to fetch preset")
		return
	}

	c.JSON(http.StatusOK, dto.ToPresetResponse(preset))
}

// createPreset godoc
// @Summary Create a calibration preset
// @Description Creates a new named parameter set usable by any workspace.
// @Tags presets
// @Accept json
// @Produce json
// @Param preset body dto.CreatePresetRequest true "Preset details"
// @Success 201 {object} dto.PresetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /presets [post]
func (h *presetHandler) createPreset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePreset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	preset, err := h.presetService.CreatePreset(c.Request.Context(), req.ToDomainPreset(), creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create preset")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPresetResponse(preset))
}
