package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	impl "github.com/indohomz/indohomz-backend/internal/application/services"
	"github.com/indohomz/indohomz-backend/internal/core/domain/lead"
	"github.com/indohomz/indohomz-backend/internal/core/domain/property"
	tmocks "github.com/indohomz/indohomz-backend/test/mocks"
)

// Test: the dashboard aggregates property and lead stats with weekly activity
func TestGetDashboard_AggregatesStats(t *testing.T) {
	pr := &tmocks.PropertyRepositoryMock{
		StatsFn: func(ctx context.Context) (*property.Stats, error) {
			return &property.Stats{TotalProperties: 12, AvailableProperties: 8, RentedProperties: 4}, nil
		},
		CountCreatedSinceFn: func(ctx context.Context, days int) (int, error) {
			require.Equal(t, 7, days)
			return 3, nil
		},
	}
	lr := &tmocks.LeadRepositoryMock{
		StatsFn: func(ctx context.Context) (*lead.Stats, error) {
			return &lead.Stats{TotalLeads: 40, ConversionRate: 12.5}, nil
		},
		CountCreatedSinceFn: func(ctx context.Context, days int) (int, error) { return 9, nil },
	}

	svc := impl.NewAnalyticsService(pr, lr, nil)
	d, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 12, d.Overview.TotalProperties)
	require.Equal(t, 8, d.Overview.AvailableProperties)
	require.Equal(t, 40, d.Overview.TotalLeads)
	require.InDelta(t, 12.5, d.Overview.ConversionRate, 0.001)
	require.Equal(t, 3, d.RecentActivity.NewPropertiesThisWeek)
	require.Equal(t, 9, d.RecentActivity.NewLeadsThisWeek)
}

// Test: display prices land in the right rent buckets; junk is skipped
func TestGetPriceDistribution_Buckets(t *testing.T) {
	pr := &tmocks.PropertyRepositoryMock{ListPricesFn: func(ctx context.Context) ([]string, error) {
		return []string{
			"₹15,000/month", // under 50K
			"45K",           // under 50K
			"₹75,000",       // 50K-1L
			"1.5L",          // 1L-2L
			"₹2,50,000",     // 2L-3L
			"5L",            // above 3L
			"call for price",
		}, nil
	}}

	svc := impl.NewAnalyticsService(pr, &tmocks.LeadRepositoryMock{}, nil)
	buckets, err := svc.GetPriceDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 5)
	require.Equal(t, "Under ₹50K", buckets[0].Range)
	require.Equal(t, 2, buckets[0].Count)
	require.Equal(t, 1, buckets[1].Count)
	require.Equal(t, 1, buckets[2].Count)
	require.Equal(t, 1, buckets[3].Count)
	require.Equal(t, 1, buckets[4].Count)
}

// Test: availability rate is a percentage of total, zero-safe
func TestGetAvailabilityRate(t *testing.T) {
	pr := &tmocks.PropertyRepositoryMock{StatsFn: func(ctx context.Context) (*property.Stats, error) {
		return &property.Stats{TotalProperties: 8, AvailableProperties: 6}, nil
	}}
	svc := impl.NewAnalyticsService(pr, &tmocks.LeadRepositoryMock{}, nil)
	stats, rate, err := svc.GetAvailabilityRate(context.Background())
	require.NoError(t, err)
	require.Equal(t, 8, stats.TotalProperties)
	require.InDelta(t, 75.0, rate, 0.001)

	empty := impl.NewAnalyticsService(&tmocks.PropertyRepositoryMock{}, &tmocks.LeadRepositoryMock{}, nil)
	_, rate, err = empty.GetAvailabilityRate(context.Background())
	require.NoError(t, err)
	require.Zero(t, rate)
}
