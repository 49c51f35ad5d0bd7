package report

import "time"

// Type enumerates the supported AI report flavors.
type Type string

const (
	TypePropertyOverview   Type = "property_overview"
	TypeAvailabilityStatus Type = "availability_status"
	TypeLeadInsights       Type = "lead_insights"
	TypeListingPerformance Type = "listing_performance"
	TypeMarketAnalysis     Type = "market_analysis"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePropertyOverview, TypeAvailabilityStatus, TypeLeadInsights, TypeListingPerformance, TypeMarketAnalysis:
		return true
	default:
		return false
	}
}

// TypeInfo describes one report type for discovery endpoints.
type TypeInfo struct {
	Type        Type   `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AvailableTypes lists the report types exposed by the API.
var AvailableTypes = []TypeInfo{
	{TypePropertyOverview, "Property Overview", "Comprehensive overview of property listings and availability"},
	{TypeAvailabilityStatus, "Availability Status", "Current availability levels and rental status"},
	{TypeLeadInsights, "Lead Insights", "Lead behavior analysis and conversion insights"},
	{TypeListingPerformance, "Listing Performance", "Property listing performance and engagement metrics"},
	{TypeMarketAnalysis, "Market Analysis", "Market trends and pricing analysis"},
}

// Request selects a report type and optional date range.
type Request struct {
	ReportType Type           `json:"report_type"`
	StartDate  *time.Time     `json:"start_date,omitempty"`
	EndDate    *time.Time     `json:"end_date,omitempty"`
	Filters    map[string]any `json:"filters,omitempty"`
}

// Report is a generated natural-language report.
type Report struct {
	ReportType       Type      `json:"report_type"`
	Summary          string    `json:"summary"`
	DetailedAnalysis string    `json:"detailed_analysis"`
	Recommendations  []string  `json:"recommendations"`
	GeneratedAt      time.Time `json:"generated_at"`
}
