package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/indohomz/indohomz-backend/internal/core/domain/report"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
)

type ReportService struct {
	generator    ports.ReportGenerator
	propertyRepo ports.PropertyRepository
	leadRepo     ports.LeadRepository
	logger       *logrus.Logger
}

func NewReportService(generator ports.ReportGenerator, propertyRepo ports.PropertyRepository, leadRepo ports.LeadRepository, logger *logrus.Logger) ports.ReportService {
	return &ReportService{
		generator:    generator,
		propertyRepo: propertyRepo,
		leadRepo:     leadRepo,
		logger:       logger,
	}
}

// GenerateReport aggregates the current business numbers and hands them to
// the generator for narration.
func (s *ReportService) GenerateReport(ctx context.Context, req *report.Request) (*report.Report, error) {
	if !req.ReportType.IsValid() {
		return nil, fmt.Errorf("invalid report type: %s", req.ReportType)
	}

	data, err := s.collectBusinessData(ctx)
	if err != nil {
		return nil, err
	}

	if req.StartDate != nil {
		data["start_date"] = req.StartDate.Format("2006-01-02")
	}
	if req.EndDate != nil {
		data["end_date"] = req.EndDate.Format("2006-01-02")
	}
	for k, v := range req.Filters {
		data["filter_"+k] = v
	}

	rep, err := s.generator.GenerateReport(ctx, req.ReportType, data)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"report_type": req.ReportType}).Info("report generated")
	}

	return rep, nil
}

func (s *ReportService) AnswerQuestion(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", fmt.Errorf("question is required")
	}

	data, err := s.collectBusinessData(ctx)
	if err != nil {
		return "", err
	}

	return s.generator.AnswerQuestion(ctx, question, data)
}

func (s *ReportService) collectBusinessData(ctx context.Context) (map[string]any, error) {
	propertyStats, err := s.propertyRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect property stats: %w", err)
	}

	leadStats, err := s.leadRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect lead stats: %w", err)
	}

	return map[string]any{
		"total_properties":     propertyStats.TotalProperties,
		"available_properties": propertyStats.AvailableProperties,
		"rented_properties":    propertyStats.RentedProperties,
		"property_types":       propertyStats.PropertyTypes,
		"top_locations":        propertyStats.TopLocations,
		"total_leads":          leadStats.TotalLeads,
		"new_leads":            leadStats.NewLeads,
		"converted_leads":      leadStats.ConvertedLeads,
		"conversion_rate":      leadStats.ConversionRate,
		"leads_by_status":      leadStats.ByStatus,
		"leads_by_source":      leadStats.BySource,
	}, nil
}
