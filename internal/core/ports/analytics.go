package ports

import (
	"context"

	"github.com/indohomz/indohomz-backend/internal/core/domain/lead"
	"github.com/indohomz/indohomz-backend/internal/core/domain/property"
)

// Dashboard aggregates the numbers shown on the admin dashboard.
type Dashboard struct {
	Overview struct {
		TotalProperties     int     `json:"total_properties"`
		AvailableProperties int     `json:"available_properties"`
		RentedProperties    int     `json:"rented_properties"`
		TotalLeads          int     `json:"total_leads"`
		ConversionRate      float64 `json:"conversion_rate"`
	} `json:"overview"`
	RecentActivity struct {
		NewPropertiesThisWeek int `json:"new_properties_this_week"`
		NewLeadsThisWeek      int `json:"new_leads_this_week"`
	} `json:"recent_activity"`
	PropertyBreakdown struct {
		ByType     []property.TypeCount `json:"by_type"`
		ByLocation []property.CityCount `json:"by_location"`
	} `json:"property_breakdown"`
	LeadBreakdown struct {
		ByStatus []lead.StatusCount `json:"by_status"`
		BySource []lead.SourceCount `json:"by_source"`
	} `json:"lead_breakdown"`
}

// AnalyticsService defines the interface for dashboard aggregation
type AnalyticsService interface {
	GetDashboard(ctx context.Context) (*Dashboard, error)
	GetPriceDistribution(ctx context.Context) ([]property.PriceBucket, error)
	GetAvailabilityRate(ctx context.Context) (*property.Stats, float64, error)
}
