package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/indohomz/indohomz-backend/internal/core/domain/property"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
	"github.com/indohomz/indohomz-backend/internal/utils"
)

type AnalyticsService struct {
	propertyRepo ports.PropertyRepository
	leadRepo     ports.LeadRepository
	logger       *logrus.Logger
}

func NewAnalyticsService(propertyRepo ports.PropertyRepository, leadRepo ports.LeadRepository, logger *logrus.Logger) ports.AnalyticsService {
	return &AnalyticsService{
		propertyRepo: propertyRepo,
		leadRepo:     leadRepo,
		logger:       logger,
	}
}

func (s *AnalyticsService) GetDashboard(ctx context.Context) (*ports.Dashboard, error) {
	propertyStats, err := s.propertyRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	leadStats, err := s.leadRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	newProperties, err := s.propertyRepo.CountCreatedSince(ctx, 7)
	if err != nil {
		return nil, err
	}

	newLeads, err := s.leadRepo.CountCreatedSince(ctx, 7)
	if err != nil {
		return nil, err
	}

	d := &ports.Dashboard{}
	d.Overview.TotalProperties = propertyStats.TotalProperties
	d.Overview.AvailableProperties = propertyStats.AvailableProperties
	d.Overview.RentedProperties = propertyStats.RentedProperties
	d.Overview.TotalLeads = leadStats.TotalLeads
	d.Overview.ConversionRate = leadStats.ConversionRate
	d.RecentActivity.NewPropertiesThisWeek = newProperties
	d.RecentActivity.NewLeadsThisWeek = newLeads
	d.PropertyBreakdown.ByType = propertyStats.PropertyTypes
	d.PropertyBreakdown.ByLocation = propertyStats.TopLocations
	d.LeadBreakdown.ByStatus = leadStats.ByStatus
	d.LeadBreakdown.BySource = leadStats.BySource

	return d, nil
}

// GetPriceDistribution buckets listings by monthly rent. Unparseable display
// prices are skipped rather than failing the whole report.
func (s *AnalyticsService) GetPriceDistribution(ctx context.Context) ([]property.PriceBucket, error) {
	prices, err := s.propertyRepo.ListPrices(ctx)
	if err != nil {
		return nil, err
	}

	buckets := []property.PriceBucket{
		{Range: "Under ₹50K"},
		{Range: "₹50K-₹1L"},
		{Range: "₹1L-₹2L"},
		{Range: "₹2L-₹3L"},
		{Range: "Above ₹3L"},
	}

	skipped := 0
	for _, raw := range prices {
		value, err := utils.ParsePrice(raw)
		if err != nil {
			skipped++
			continue
		}
		switch {
		case value < 50000:
			buckets[0].Count++
		case value < 100000:
			buckets[1].Count++
		case value < 200000:
			buckets[2].Count++
		case value < 300000:
			buckets[3].Count++
		default:
			buckets[4].Count++
		}
	}

	if skipped > 0 && s.logger != nil {
		s.logger.WithFields(logrus.Fields{"skipped": skipped}).Debug("skipped unparseable prices in distribution")
	}

	return buckets, nil
}

func (s *AnalyticsService) GetAvailabilityRate(ctx context.Context) (*property.Stats, float64, error) {
	stats, err := s.propertyRepo.Stats(ctx)
	if err != nil {
		return nil, 0, err
	}

	var rate float64
	if stats.TotalProperties > 0 {
		rate = float64(stats.AvailableProperties) / float64(stats.TotalProperties) * 100
	}

	return stats, rate, nil
}
