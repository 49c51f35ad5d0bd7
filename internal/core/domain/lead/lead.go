package lead

import (
	"time"

	"github.com/google/uuid"
)

// Lead represents a customer inquiry captured from the public site.
type Lead struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	Name               string     `json:"name" db:"name"`
	Email              *string    `json:"email,omitempty" db:"email"`
	Phone              string     `json:"phone" db:"phone"`
	PropertyID         *uuid.UUID `json:"property_id,omitempty" db:"property_id"`
	Message            *string    `json:"message,omitempty" db:"message"`
	PreferredVisitDate *time.Time `json:"preferred_visit_date,omitempty" db:"preferred_visit_date"`
	Status             Status     `json:"status" db:"status"`
	Source             Source     `json:"source" db:"source"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

type Status string

const (
	StatusNew         Status = "new"
	StatusContacted   Status = "contacted"
	StatusSiteVisit   Status = "site_visit"
	StatusNegotiation Status = "negotiation"
	StatusConverted   Status = "converted"
	StatusLost        Status = "lost"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusSiteVisit, StatusNegotiation, StatusConverted, StatusLost:
		return true
	default:
		return false
	}
}

// FunnelOrder lists statuses in CRM pipeline order, terminal "lost" excluded.
var FunnelOrder = []Status{StatusNew, StatusContacted, StatusSiteVisit, StatusNegotiation, StatusConverted}

type Source string

const (
	SourceWebsite   Source = "website"
	SourceWhatsApp  Source = "whatsapp"
	SourceReferral  Source = "referral"
	SourceInstagram Source = "instagram"
	SourceGoogle    Source = "google"
	SourceWalkIn    Source = "walk_in"
)

// CreateLeadRequest represents the request to capture a new inquiry
type CreateLeadRequest struct {
	Name               string     `json:"name"`
	Email              *string    `json:"email,omitempty"`
	Phone              string     `json:"phone"`
	PropertyID         *uuid.UUID `json:"property_id,omitempty"`
	Message            *string    `json:"message,omitempty"`
	PreferredVisitDate *time.Time `json:"preferred_visit_date,omitempty"`
	Source             Source     `json:"source"`
	RecaptchaToken     string     `json:"recaptcha_token,omitempty"`
}

// UpdateLeadRequest represents a partial lead update
type UpdateLeadRequest struct {
	Name               *string    `json:"name,omitempty"`
	Email              *string    `json:"email,omitempty"`
	Phone              *string    `json:"phone,omitempty"`
	PropertyID         *uuid.UUID `json:"property_id,omitempty"`
	Message            *string    `json:"message,omitempty"`
	PreferredVisitDate *time.Time `json:"preferred_visit_date,omitempty"`
	Status             *Status    `json:"status,omitempty"`
	Source             *Source    `json:"source,omitempty"`
}

// Filter narrows lead queries.
type Filter struct {
	Status     Status
	Source     Source
	PropertyID *uuid.UUID
	Limit      int
	Offset     int
}

// StatusCount is one bucket of the per-status distribution.
type StatusCount struct {
	Status string `json:"status" db:"status"`
	Count  int    `json:"count" db:"count"`
}

// SourceCount is one bucket of the per-source distribution.
type SourceCount struct {
	Source string `json:"source" db:"source"`
	Count  int    `json:"count" db:"count"`
}

// Stats aggregates lead counts for the dashboard.
type Stats struct {
	TotalLeads     int           `json:"total_leads"`
	NewLeads       int           `json:"new_leads"`
	ConvertedLeads int           `json:"converted_leads"`
	ConversionRate float64       `json:"conversion_rate"`
	ByStatus       []StatusCount `json:"by_status"`
	BySource       []SourceCount `json:"by_source"`
}

// FunnelStage is one step of the conversion funnel.
type FunnelStage struct {
	Stage      string  `json:"stage"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}
