package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Harshhjs/farmconnect/internal/weather"
)

// weatherCacheTTL bounds how long a city's report is served from Redis
// before hitting the upstream again.
const weatherCacheTTL = 10 * time.Minute

// WeatherHandler proxies wttr.in. Redis is optional; when a client is
// present, reports are cached per city so repeated dashboard loads do not
// hammer the free upstream.
type WeatherHandler struct {
	Client *weather.Client
	Redis  *redis.Client
}

func NewWeatherHandler(wc *weather.Client, rdb *redis.Client) *WeatherHandler {
	return &WeatherHandler{Client: wc, Redis: rdb}
}

// Get fetches current conditions for ?city= (default Delhi). Timeout,
// upstream failure and parse failure are reported distinctly.
func (h *WeatherHandler) Get(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if city == "" {
		city = "Delhi"
	}
	ctx := c.Request().Context()
	cacheKey := "weather:" + strings.ToLower(city)

	if h.Redis != nil {
		if raw, err := h.Redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached weather.Report
			if json.Unmarshal(raw, &cached) == nil {
				return c.JSON(http.StatusOK, cached)
			}
		}
	}

	rep, err := h.Client.Fetch(ctx, city)
	switch {
	case errors.Is(err, weather.ErrTimeout):
		return c.JSON(http.StatusGatewayTimeout, echo.Map{"error": "Weather request timed out"})
	case errors.Is(err, weather.ErrBadPayload):
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Could not parse weather data"})
	case err != nil:
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "Weather service unavailable. Check your internet connection."})
	}

	if h.Redis != nil {
		if raw, err := json.Marshal(rep); err == nil {
			h.Redis.Set(ctx, cacheKey, raw, weatherCacheTTL)
		}
	}
	return c.JSON(http.StatusOK, rep)
}
