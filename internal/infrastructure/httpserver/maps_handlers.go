package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
)

var mapsClient = &http.Client{Timeout: 10 * time.Second}

// Maps handlers proxy the Google Maps APIs so the API key never reaches the
// browser.
func (s *Server) geocode(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "address is required")
	}
	if s.mapsCfg.GoogleAPIKey == "" {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "maps integration is not configured")
	}

	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?address=%s&key=%s",
		url.QueryEscape(address), url.QueryEscape(s.mapsCfg.GoogleAPIKey),
	)

	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodGet, endpoint, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to build geocode request")
	}

	resp, err := mapsClient.Do(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "geocoding service unavailable")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "failed to read geocode response")
	}

	var body json.RawMessage = raw
	return c.JSON(resp.StatusCode, body)
}

// mapEmbed returns a ready-to-use embed URL for a location query.
func (s *Server) mapEmbed(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}
	if s.mapsCfg.GoogleAPIKey == "" {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "maps integration is not configured")
	}

	embedURL := fmt.Sprintf(
		"https://www.google.com/maps/embed/v1/place?key=%s&q=%s",
		url.QueryEscape(s.mapsCfg.GoogleAPIKey), url.QueryEscape(query),
	)

	return c.JSON(http.StatusOK, map[string]string{"embed_url": embedURL})
}
