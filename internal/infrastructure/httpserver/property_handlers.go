package httpserver

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/indohomz/indohomz-backend/internal/core/domain/property"
)

// Property handlers
func (s *Server) listProperties(c echo.Context) error {
	filter := &property.Filter{
		City:     c.QueryParam("city"),
		Location: c.QueryParam("location"),
		Query:    c.QueryParam("q"),
	}

	if t := c.QueryParam("type"); t != "" {
		filter.PropertyType = property.Type(t)
		if !filter.PropertyType.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid property type")
		}
	}
	if v := c.QueryParam("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid available value")
		}
		filter.IsAvailable = &available
	}
	if v := c.QueryParam("min_bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min_bedrooms value")
		}
		filter.MinBedrooms = &n
	}
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	filter.Offset, _ = strconv.Atoi(c.QueryParam("offset"))

	properties, total, err := s.propertySvc.ListProperties(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list properties")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"properties": properties,
		"total":      total,
		"limit":      filter.Limit,
		"offset":     filter.Offset,
	})
}

func (s *Server) getFeaturedProperties(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	properties, err := s.propertySvc.GetFeaturedProperties(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get featured properties")
	}

	return c.JSON(http.StatusOK, properties)
}

func (s *Server) getProperty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}

	p, err := s.propertySvc.GetProperty(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "property not found")
	}

	return c.JSON(http.StatusOK, p)
}

func (s *Server) getPropertyBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "slug is required")
	}

	p, err := s.propertySvc.GetPropertyBySlug(c.Request().Context(), slug)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "property not found")
	}

	return c.JSON(http.StatusOK, p)
}

func (s *Server) getPropertyStats(c echo.Context) error {
	stats, err := s.propertySvc.GetStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get property stats")
	}

	return c.JSON(http.StatusOK, stats)
}

func (s *Server) createProperty(c echo.Context) error {
	var req property.CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" || req.Price == "" || req.Location == "" || req.City == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title, price, location and city are required")
	}

	p, err := s.propertySvc.CreateProperty(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, p)
}

func (s *Server) updateProperty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}

	var req property.UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	p, err := s.propertySvc.UpdateProperty(c.Request().Context(), id, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, p)
}

func (s *Server) setPropertyAvailability(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}

	var req struct {
		IsAvailable *bool `json:"is_available"`
	}
	if err := c.Bind(&req); err != nil || req.IsAvailable == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "is_available is required")
	}

	if err := s.propertySvc.SetAvailability(c.Request().Context(), id, *req.IsAvailable); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "property not found")
	}

	return c.NoContent(http.StatusOK)
}

func (s *Server) deleteProperty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}

	permanent, _ := strconv.ParseBool(c.QueryParam("permanent"))

	if err := s.propertySvc.DeleteProperty(c.Request().Context(), id, permanent); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "property not found")
	}

	return c.NoContent(http.StatusNoContent)
}
