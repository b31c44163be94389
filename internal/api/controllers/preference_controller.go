package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trippy/internal/models/request_models"
	"trippy/internal/services"
	"trippy/pkg/utils"
)

type PreferenceController struct {
	preferenceService services.PreferenceServiceInterface
	logger            *zap.Logger
}

func NewPreferenceController(preferenceService services.PreferenceServiceInterface, logger *zap.Logger) *PreferenceController {
	return &PreferenceController{
		preferenceService: preferenceService,
		logger:            logger,
	}
}

// CollectPreferences godoc
// @Summary Store trip preferences
// @Description Overwrites the stored preferences of a user. Without interests the response carries recommended places for the city.
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body request_models.TripPreferences true "Trip preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /collect_preferences/ [post]
func (p *PreferenceController) CollectPreferences(c *gin.Context) {
	var req request_models.TripPreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.UserID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	resp, err := p.preferenceService.SavePreferences(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, resp, resp.Status)
}

func (p *PreferenceController) GetPreferences(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	prefs, err := p.preferenceService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, prefs, "Preferences fetched successfully")
}
