package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Analytics handlers
func (s *Server) getDashboard(c echo.Context) error {
	dashboard, err := s.analyticsSvc.GetDashboard(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to build dashboard")
	}

	return c.JSON(http.StatusOK, dashboard)
}

func (s *Server) getPriceDistribution(c echo.Context) error {
	buckets, err := s.analyticsSvc.GetPriceDistribution(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to build price distribution")
	}

	return c.JSON(http.StatusOK, buckets)
}

func (s *Server) getAvailabilityRate(c echo.Context) error {
	stats, rate, err := s.analyticsSvc.GetAvailabilityRate(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute availability rate")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"availability_rate": rate,
		"stats":             stats,
	})
}
