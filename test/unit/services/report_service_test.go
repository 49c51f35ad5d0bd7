package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	impl "github.com/indohomz/indohomz-backend/internal/application/services"
	"github.com/indohomz/indohomz-backend/internal/core/domain/lead"
	"github.com/indohomz/indohomz-backend/internal/core/domain/property"
	"github.com/indohomz/indohomz-backend/internal/core/domain/report"
	tmocks "github.com/indohomz/indohomz-backend/test/mocks"
)

// Test: report generation feeds the aggregated numbers to the generator
func TestGenerateReport_PassesBusinessData(t *testing.T) {
	pr := &tmocks.PropertyRepositoryMock{StatsFn: func(ctx context.Context) (*property.Stats, error) {
		return &property.Stats{TotalProperties: 12, AvailableProperties: 9}, nil
	}}
	lr := &tmocks.LeadRepositoryMock{StatsFn: func(ctx context.Context) (*lead.Stats, error) {
		return &lead.Stats{TotalLeads: 30, ConversionRate: 10}, nil
	}}

	var seenType report.Type
	var seenData map[string]any
	gen := &tmocks.ReportGeneratorMock{GenerateReportFn: func(ctx context.Context, reportType report.Type, data map[string]any) (*report.Report, error) {
		seenType = reportType
		seenData = data
		return &report.Report{ReportType: reportType, Summary: "summary", GeneratedAt: time.Now()}, nil
	}}

	svc := impl.NewReportService(gen, pr, lr, nil)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	rep, err := svc.GenerateReport(context.Background(), &report.Request{
		ReportType: report.TypePropertyOverview,
		StartDate:  &start,
		Filters:    map[string]any{"city": "Bengaluru"},
	})
	require.NoError(t, err)
	require.Equal(t, report.TypePropertyOverview, seenType)
	require.Equal(t, 12, seenData["total_properties"])
	require.Equal(t, 30, seenData["total_leads"])
	require.Equal(t, "2026-08-01", seenData["start_date"])
	require.Equal(t, "Bengaluru", seenData["filter_city"])
	require.Equal(t, "summary", rep.Summary)
}

// Test: unknown report types are rejected without collecting anything
func TestGenerateReport_InvalidTypeRejected(t *testing.T) {
	statsCalled := false
	pr := &tmocks.PropertyRepositoryMock{StatsFn: func(ctx context.Context) (*property.Stats, error) {
		statsCalled = true
		return &property.Stats{}, nil
	}}

	svc := impl.NewReportService(&tmocks.ReportGeneratorMock{}, pr, &tmocks.LeadRepositoryMock{}, nil)
	_, err := svc.GenerateReport(context.Background(), &report.Request{ReportType: report.Type("weather")})
	require.Error(t, err)
	require.False(t, statsCalled)
}

// Test: questions require text and get the business context attached
func TestAnswerQuestion(t *testing.T) {
	gen := &tmocks.ReportGeneratorMock{AnswerQuestionFn: func(ctx context.Context, question string, businessContext map[string]any) (string, error) {
		require.Contains(t, businessContext, "conversion_rate")
		return "plenty", nil
	}}

	svc := impl.NewReportService(gen, &tmocks.PropertyRepositoryMock{}, &tmocks.LeadRepositoryMock{}, nil)

	_, err := svc.AnswerQuestion(context.Background(), "")
	require.Error(t, err)

	answer, err := svc.AnswerQuestion(context.Background(), "how many flats are free?")
	require.NoError(t, err)
	require.Equal(t, "plenty", answer)
}
