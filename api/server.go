// Package api exposes the weather pipeline over HTTP.
package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"skycast.app/config"
	"skycast.app/models"
	"skycast.app/service"
)

// Server represents the HTTP server and API handler
type Server struct {
	router         *gin.Engine
	config         *config.Config
	weatherService service.WeatherServiceInterface
}

// NewServer creates and configures a new HTTP server
func NewServer(config *config.Config, weatherService service.WeatherServiceInterface) *Server {
	router := gin.Default()
	router.Use(requestIDMiddleware())

	server := &Server{
		router:         router,
		config:         config,
		weatherService: weatherService,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) getWeather(c *gin.Context) {
	var req models.WeatherRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Error("weather request binding error", "error", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request parameters"})
		return
	}

	lang := req.Lang
	if lang == "" {
		lang = "en"
	}

	slog.Debug("getting weather", "city_id", req.CityID, "lat", *req.Latitude, "lon", *req.Longitude, "lang", lang)

	weather := s.weatherService.Get(c.Request.Context(), req.CityID, *req.Latitude, *req.Longitude, lang)
	if weather == nil {
		// Deliberately opaque: reason codes are not part of the contract.
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "weather temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, weather)
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}
