package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trippy/internal/services"
	"trippy/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// FetchWeather godoc
// @Summary Current weather for a city
// @Tags Weather
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} utils.APIResponse
// @Router /fetch_weather/{city} [get]
func (w *WeatherController) FetchWeather(c *gin.Context) {
	city := strings.TrimSpace(c.Param("city"))
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	utils.RespondSuccess(c, w.weatherService.FetchWeather(c.Request.Context(), city), "Weather fetched")
}
