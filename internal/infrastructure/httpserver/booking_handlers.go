package httpserver

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/indohomz/indohomz-backend/internal/core/domain/booking"
)

// Booking handlers
func (s *Server) createBooking(c echo.Context) error {
	var req booking.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.PropertyID == uuid.Nil || req.TenantName == "" || req.TenantPhone == "" || req.CheckIn.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "property_id, tenant_name, tenant_phone and check_in are required")
	}

	b, err := s.bookingSvc.CreateBooking(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, b)
}

func (s *Server) listBookings(c echo.Context) error {
	status := booking.Status(c.QueryParam("status"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	bookings, err := s.bookingSvc.ListBookings(c.Request().Context(), status, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, bookings)
}

func (s *Server) getBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	b, err := s.bookingSvc.GetBooking(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}

	return c.JSON(http.StatusOK, b)
}

func (s *Server) updateBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var req booking.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	b, err := s.bookingSvc.UpdateBooking(c.Request().Context(), id, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, b)
}

func (s *Server) cancelBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	b, err := s.bookingSvc.CancelBooking(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, b)
}

func (s *Server) listPropertyBookings(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}

	bookings, err := s.bookingSvc.ListBookingsByProperty(c.Request().Context(), propertyID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list bookings")
	}

	return c.JSON(http.StatusOK, bookings)
}
