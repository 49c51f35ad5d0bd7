package httpserver

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/indohomz/indohomz-backend/internal/core/domain/lead"
)

// Lead handlers
func (s *Server) createLead(c echo.Context) error {
	var req lead.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and phone are required")
	}

	l, err := s.leadSvc.CreateLead(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, l)
}

func (s *Server) listLeads(c echo.Context) error {
	filter := &lead.Filter{}

	if v := c.QueryParam("status"); v != "" {
		filter.Status = lead.Status(v)
		if !filter.Status.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid lead status")
		}
	}
	if v := c.QueryParam("source"); v != "" {
		filter.Source = lead.Source(v)
	}
	if v := c.QueryParam("property_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid property_id")
		}
		filter.PropertyID = &id
	}
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	filter.Offset, _ = strconv.Atoi(c.QueryParam("offset"))

	leads, err := s.leadSvc.ListLeads(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list leads")
	}

	return c.JSON(http.StatusOK, leads)
}

func (s *Server) getLead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lead id")
	}

	l, err := s.leadSvc.GetLead(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "lead not found")
	}

	return c.JSON(http.StatusOK, l)
}

func (s *Server) updateLead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lead id")
	}

	var req lead.UpdateLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	l, err := s.leadSvc.UpdateLead(c.Request().Context(), id, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, l)
}

func (s *Server) updateLeadStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lead id")
	}

	var req struct {
		Status lead.Status `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	l, err := s.leadSvc.UpdateLeadStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, l)
}

func (s *Server) getLeadStats(c echo.Context) error {
	stats, err := s.leadSvc.GetStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get lead stats")
	}

	return c.JSON(http.StatusOK, stats)
}

func (s *Server) getLeadFunnel(c echo.Context) error {
	stages, stats, err := s.leadSvc.GetFunnel(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get lead funnel")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"funnel":          stages,
		"total_leads":     stats.TotalLeads,
		"conversion_rate": stats.ConversionRate,
	})
}
