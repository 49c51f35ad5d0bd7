package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/indohomz/indohomz-backend/internal/core/domain/report"
)

// Report handlers
func (s *Server) listReportTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, report.AvailableTypes)
}

func (s *Server) generateReport(c echo.Context) error {
	var req report.Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ReportType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "report_type is required")
	}

	rep, err := s.reportSvc.GenerateReport(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, rep)
}

func (s *Server) askQuestion(c echo.Context) error {
	var req struct {
		Question string `json:"question"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Question == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "question is required")
	}

	answer, err := s.reportSvc.AnswerQuestion(c.Request().Context(), req.Question)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to answer question")
	}

	return c.JSON(http.StatusOK, map[string]string{"answer": answer})
}
