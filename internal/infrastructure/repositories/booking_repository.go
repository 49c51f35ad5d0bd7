package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/indohomz/indohomz-backend/internal/core/domain/booking"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/db"
)

const bookingColumns = `id, property_id, lead_id, tenant_name, tenant_email, tenant_phone,
	   check_in, check_out, monthly_rent, security_deposit, status, created_at, updated_at`

// BookingRepository implements the booking repository interface
type BookingRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(database *db.Database, logger *logrus.Logger) ports.BookingRepository {
	return &BookingRepository{
		db:     database,
		logger: logger,
	}
}

// Create inserts a new booking
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (id, property_id, lead_id, tenant_name, tenant_email, tenant_phone,
			check_in, check_out, monthly_rent, security_deposit, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.DB.ExecContext(ctx, query,
		b.ID, b.PropertyID, b.LeadID, b.TenantName, b.TenantEmail, b.TenantPhone,
		b.CheckIn, b.CheckOut, b.MonthlyRent, b.SecurityDeposit, b.Status)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"booking_id": b.ID, "property_id": b.PropertyID}).WithError(err).Error("db: failed to create booking")
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"booking_id": b.ID, "property_id": b.PropertyID}).Info("db: booking created")
	}

	return nil
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var b booking.Booking
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	err := r.db.DB.GetContext(ctx, &b, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking with ID %s not found", id)
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"booking_id": id}).WithError(err).Error("db: failed to get booking by ID")
		}
		return nil, fmt.Errorf("failed to get booking by ID: %w", err)
	}

	return &b, nil
}

// List retrieves bookings, newest first, optionally filtered by status
func (r *BookingRepository) List(ctx context.Context, status booking.Status, limit, offset int) ([]*booking.Booking, error) {
	var args []interface{}
	query := fmt.Sprintf(`SELECT %s FROM bookings`, bookingColumns)

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	bookings := []*booking.Booking{}
	if err := r.db.DB.SelectContext(ctx, &bookings, query, args...); err != nil {
		if r.logger != nil {
			r.logger.WithError(err).Error("db: failed to list bookings")
		}
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

// ListByProperty retrieves all bookings for one property, newest first
func (r *BookingRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE property_id = $1 ORDER BY created_at DESC`, bookingColumns)

	bookings := []*booking.Booking{}
	if err := r.db.DB.SelectContext(ctx, &bookings, query, propertyID); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"property_id": propertyID}).WithError(err).Error("db: failed to list bookings by property")
		}
		return nil, fmt.Errorf("failed to list bookings by property: %w", err)
	}

	return bookings, nil
}

// Update updates an existing booking
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	query := `
		UPDATE bookings
		SET tenant_name = $2, tenant_email = $3, tenant_phone = $4, check_in = $5,
			check_out = $6, monthly_rent = $7, security_deposit = $8, status = $9,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query,
		b.ID, b.TenantName, b.TenantEmail, b.TenantPhone, b.CheckIn,
		b.CheckOut, b.MonthlyRent, b.SecurityDeposit, b.Status)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"booking_id": b.ID}).WithError(err).Error("db: failed to update booking")
		}
		return fmt.Errorf("failed to update booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("booking with ID %s not found", b.ID)
	}

	return nil
}
