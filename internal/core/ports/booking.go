package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/indohomz/indohomz-backend/internal/core/domain/booking"
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	List(ctx context.Context, status booking.Status, limit, offset int) ([]*booking.Booking, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
}

// BookingService defines the interface for booking business logic
type BookingService interface {
	CreateBooking(ctx context.Context, req *booking.CreateBookingRequest) (*booking.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListBookings(ctx context.Context, status booking.Status, limit, offset int) ([]*booking.Booking, error)
	ListBookingsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, req *booking.UpdateBookingRequest) (*booking.Booking, error)
	// CancelBooking cancels and makes the property available again.
	CancelBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}
