package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents a confirmed rental of a property.
type Booking struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	PropertyID      uuid.UUID  `json:"property_id" db:"property_id"`
	LeadID          *uuid.UUID `json:"lead_id,omitempty" db:"lead_id"`
	TenantName      string     `json:"tenant_name" db:"tenant_name"`
	TenantEmail     *string    `json:"tenant_email,omitempty" db:"tenant_email"`
	TenantPhone     string     `json:"tenant_phone" db:"tenant_phone"`
	CheckIn         time.Time  `json:"check_in" db:"check_in"`
	CheckOut        *time.Time `json:"check_out,omitempty" db:"check_out"` // nil for long-term rentals
	MonthlyRent     float64    `json:"monthly_rent" db:"monthly_rent"`
	SecurityDeposit *float64   `json:"security_deposit,omitempty" db:"security_deposit"`
	Status          Status     `json:"status" db:"status"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CreateBookingRequest represents the request to record a new booking
type CreateBookingRequest struct {
	PropertyID      uuid.UUID  `json:"property_id"`
	LeadID          *uuid.UUID `json:"lead_id,omitempty"`
	TenantName      string     `json:"tenant_name"`
	TenantEmail     *string    `json:"tenant_email,omitempty"`
	TenantPhone     string     `json:"tenant_phone"`
	CheckIn         time.Time  `json:"check_in"`
	CheckOut        *time.Time `json:"check_out,omitempty"`
	MonthlyRent     float64    `json:"monthly_rent"`
	SecurityDeposit *float64   `json:"security_deposit,omitempty"`
}

// UpdateBookingRequest represents a partial booking update
type UpdateBookingRequest struct {
	TenantName      *string    `json:"tenant_name,omitempty"`
	TenantEmail     *string    `json:"tenant_email,omitempty"`
	TenantPhone     *string    `json:"tenant_phone,omitempty"`
	CheckIn         *time.Time `json:"check_in,omitempty"`
	CheckOut        *time.Time `json:"check_out,omitempty"`
	MonthlyRent     *float64   `json:"monthly_rent,omitempty"`
	SecurityDeposit *float64   `json:"security_deposit,omitempty"`
	Status          *Status    `json:"status,omitempty"`
}
