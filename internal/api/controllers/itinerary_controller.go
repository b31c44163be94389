package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trippy/internal/models/request_models"
	"trippy/internal/services"
	"trippy/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	logger           *zap.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, logger *zap.Logger) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// GenerateItinerary godoc
// @Summary Generate a one-day itinerary
// @Description Asks the language model for an itinerary and returns its text plus the stops that could be placed on a map.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripPreferences true "Trip preferences"
// @Param geojson query bool false "Include a GeoJSON FeatureCollection"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /generate_itinerary/ [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.TripPreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	withGeoJSON, err := strconv.ParseBool(c.DefaultQuery("geojson", "false"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid geojson flag")
		return
	}

	result, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req, withGeoJSON)
	if err != nil {
		utils.HandleServiceError(c, i.logger, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated")
}
