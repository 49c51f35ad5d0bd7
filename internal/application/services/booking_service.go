package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/indohomz/indohomz-backend/internal/core/domain/booking"
	"github.com/indohomz/indohomz-backend/internal/core/domain/lead"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
	"github.com/indohomz/indohomz-backend/internal/utils"
)

type BookingService struct {
	bookingRepo  ports.BookingRepository
	propertyRepo ports.PropertyRepository
	leadRepo     ports.LeadRepository
	logger       *logrus.Logger
}

func NewBookingService(bookingRepo ports.BookingRepository, propertyRepo ports.PropertyRepository, leadRepo ports.LeadRepository, logger *logrus.Logger) ports.BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		leadRepo:     leadRepo,
		logger:       logger,
	}
}

// CreateBooking records a confirmed rental, marks the property rented and
// converts the originating lead when one is linked.
func (s *BookingService) CreateBooking(ctx context.Context, req *booking.CreateBookingRequest) (*booking.Booking, error) {
	p, err := s.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("property not found")
	}
	if !p.IsAvailable {
		return nil, fmt.Errorf("property is not available")
	}

	if !utils.ValidatePhoneNumber(req.TenantPhone) {
		return nil, fmt.Errorf("invalid tenant phone number")
	}
	if req.CheckOut != nil && !req.CheckOut.After(req.CheckIn) {
		return nil, fmt.Errorf("check-out must be after check-in")
	}
	if req.MonthlyRent <= 0 {
		return nil, fmt.Errorf("monthly rent must be positive")
	}

	b := &booking.Booking{
		ID:              uuid.New(),
		PropertyID:      req.PropertyID,
		LeadID:          req.LeadID,
		TenantName:      req.TenantName,
		TenantEmail:     req.TenantEmail,
		TenantPhone:     utils.NormalizePhoneNumber(req.TenantPhone),
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		Status:          booking.StatusConfirmed,
	}

	if err := s.bookingRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	if err := s.propertyRepo.SetAvailability(ctx, req.PropertyID, false); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"property_id": req.PropertyID}).WithError(err).Warn("failed to mark property rented")
		}
	}

	if req.LeadID != nil {
		if l, err := s.leadRepo.GetByID(ctx, *req.LeadID); err == nil {
			l.Status = lead.StatusConverted
			if err := s.leadRepo.Update(ctx, l); err != nil && s.logger != nil {
				s.logger.WithFields(logrus.Fields{"lead_id": *req.LeadID}).WithError(err).Warn("failed to mark lead converted")
			}
		}
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"booking_id": b.ID, "property_id": b.PropertyID}).Info("booking created")
	}

	return b, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListBookings(ctx context.Context, status booking.Status, limit, offset int) ([]*booking.Booking, error) {
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("invalid booking status: %s", status)
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.bookingRepo.List(ctx, status, limit, offset)
}

func (s *BookingService) ListBookingsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error) {
	return s.bookingRepo.ListByProperty(ctx, propertyID)
}

func (s *BookingService) UpdateBooking(ctx context.Context, id uuid.UUID, req *booking.UpdateBookingRequest) (*booking.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TenantName != nil {
		b.TenantName = *req.TenantName
	}
	if req.TenantEmail != nil {
		b.TenantEmail = req.TenantEmail
	}
	if req.TenantPhone != nil {
		if !utils.ValidatePhoneNumber(*req.TenantPhone) {
			return nil, fmt.Errorf("invalid tenant phone number")
		}
		b.TenantPhone = utils.NormalizePhoneNumber(*req.TenantPhone)
	}
	if req.CheckIn != nil {
		b.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		b.CheckOut = req.CheckOut
	}
	if b.CheckOut != nil && !b.CheckOut.After(b.CheckIn) {
		return nil, fmt.Errorf("check-out must be after check-in")
	}
	if req.MonthlyRent != nil {
		if *req.MonthlyRent <= 0 {
			return nil, fmt.Errorf("monthly rent must be positive")
		}
		b.MonthlyRent = *req.MonthlyRent
	}
	if req.SecurityDeposit != nil {
		b.SecurityDeposit = req.SecurityDeposit
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("invalid booking status: %s", *req.Status)
		}
		b.Status = *req.Status
	}

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// CancelBooking cancels the booking and re-opens the property for rent.
func (s *BookingService) CancelBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.Status == booking.StatusCancelled {
		return nil, fmt.Errorf("booking is already cancelled")
	}
	if b.Status == booking.StatusCompleted {
		return nil, fmt.Errorf("completed bookings cannot be cancelled")
	}

	b.Status = booking.StatusCancelled
	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err := s.propertyRepo.SetAvailability(ctx, b.PropertyID, true); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"property_id": b.PropertyID}).WithError(err).Warn("failed to re-open property availability")
		}
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"booking_id": id}).Info("booking cancelled")
	}

	return b, nil
}
