package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripteller/internal/weather"
)

// Forecaster returns a day's weather summary for a destination.
type Forecaster interface {
	Forecast(ctx context.Context, city, country string, date time.Time) (*weather.Forecast, error)
}

type WeatherHandler struct {
	forecaster Forecaster
}

func NewWeatherHandler(forecaster Forecaster) *WeatherHandler {
	return &WeatherHandler{forecaster: forecaster}
}

type weatherReq struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Date    string `json:"date"`
}

// Forecast handles POST /api/weather.
func (h *WeatherHandler) Forecast(c *gin.Context) {
	if h.forecaster == nil {
		writeError(c, http.StatusServiceUnavailable, "weather is not configured")
		return
	}
	var body weatherReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(body.City) == "" {
		writeError(c, http.StatusBadRequest, "city is required")
		return
	}

	date := time.Now().UTC()
	if body.Date != "" {
		parsed, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			writeError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	fc, err := h.forecaster.Forecast(c.Request.Context(), body.City, body.Country, date)
	if err != nil {
		writeError(c, http.StatusBadGateway, "weather lookup failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"weather": fc})
}
