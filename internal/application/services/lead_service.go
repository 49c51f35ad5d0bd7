package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/indohomz/indohomz-backend/internal/core/domain/lead"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
	"github.com/indohomz/indohomz-backend/internal/utils"
)

type LeadService struct {
	leadRepo     ports.LeadRepository
	propertyRepo ports.PropertyRepository
	emailSvc     ports.EmailService
	recaptcha    ports.RecaptchaVerifier
	logger       *logrus.Logger
}

func NewLeadService(leadRepo ports.LeadRepository, propertyRepo ports.PropertyRepository, emailSvc ports.EmailService, recaptcha ports.RecaptchaVerifier, logger *logrus.Logger) ports.LeadService {
	return &LeadService{
		leadRepo:     leadRepo,
		propertyRepo: propertyRepo,
		emailSvc:     emailSvc,
		recaptcha:    recaptcha,
		logger:       logger,
	}
}

// CreateLead captures a public inquiry. Free-text fields are HTML-escaped at
// the door so everything downstream can treat stored leads as safe.
func (s *LeadService) CreateLead(ctx context.Context, req *lead.CreateLeadRequest) (*lead.Lead, error) {
	if s.recaptcha != nil {
		if err := s.recaptcha.Verify(ctx, req.RecaptchaToken, ""); err != nil {
			return nil, fmt.Errorf("recaptcha verification failed: %w", err)
		}
	}

	if !utils.ValidatePhoneNumber(req.Phone) {
		return nil, fmt.Errorf("invalid phone number")
	}

	source := req.Source
	if source == "" {
		source = lead.SourceWebsite
	}

	if req.PropertyID != nil {
		if _, err := s.propertyRepo.GetByID(ctx, *req.PropertyID); err != nil {
			return nil, fmt.Errorf("property not found")
		}
	}

	var message *string
	if req.Message != nil {
		sanitized := utils.SanitizeHTML(*req.Message)
		message = &sanitized
	}

	l := &lead.Lead{
		ID:                 uuid.New(),
		Name:               utils.SanitizeHTML(req.Name),
		Email:              req.Email,
		Phone:              utils.NormalizePhoneNumber(req.Phone),
		PropertyID:         req.PropertyID,
		Message:            message,
		PreferredVisitDate: req.PreferredVisitDate,
		Status:             lead.StatusNew,
		Source:             source,
	}

	if err := s.leadRepo.Create(ctx, l); err != nil {
		return nil, err
	}

	if s.emailSvc != nil {
		if err := s.emailSvc.SendLeadNotification(ctx, l); err != nil && s.logger != nil {
			s.logger.WithFields(logrus.Fields{"lead_id": l.ID}).WithError(err).Warn("failed to send lead notification email")
		}
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"lead_id": l.ID, "source": l.Source}).Info("lead captured")
	}

	return l, nil
}

func (s *LeadService) GetLead(ctx context.Context, id uuid.UUID) (*lead.Lead, error) {
	return s.leadRepo.GetByID(ctx, id)
}

func (s *LeadService) ListLeads(ctx context.Context, filter *lead.Filter) ([]*lead.Lead, error) {
	if filter == nil {
		filter = &lead.Filter{}
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.leadRepo.List(ctx, filter)
}

func (s *LeadService) UpdateLead(ctx context.Context, id uuid.UUID, req *lead.UpdateLeadRequest) (*lead.Lead, error) {
	l, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		l.Name = utils.SanitizeHTML(*req.Name)
	}
	if req.Email != nil {
		l.Email = req.Email
	}
	if req.Phone != nil {
		if !utils.ValidatePhoneNumber(*req.Phone) {
			return nil, fmt.Errorf("invalid phone number")
		}
		l.Phone = utils.NormalizePhoneNumber(*req.Phone)
	}
	if req.PropertyID != nil {
		l.PropertyID = req.PropertyID
	}
	if req.Message != nil {
		sanitized := utils.SanitizeHTML(*req.Message)
		l.Message = &sanitized
	}
	if req.PreferredVisitDate != nil {
		l.PreferredVisitDate = req.PreferredVisitDate
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("invalid lead status: %s", *req.Status)
		}
		l.Status = *req.Status
	}
	if req.Source != nil {
		l.Source = *req.Source
	}

	if err := s.leadRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *LeadService) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status lead.Status) (*lead.Lead, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid lead status: %s", status)
	}

	l, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	l.Status = status
	if err := s.leadRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"lead_id": id, "status": status}).Info("lead status updated")
	}

	return l, nil
}

func (s *LeadService) GetStats(ctx context.Context) (*lead.Stats, error) {
	return s.leadRepo.Stats(ctx)
}

// GetFunnel maps the per-status counts onto the pipeline stages, each stage
// expressed as a percentage of total leads.
func (s *LeadService) GetFunnel(ctx context.Context) ([]lead.FunnelStage, *lead.Stats, error) {
	stats, err := s.leadRepo.Stats(ctx)
	if err != nil {
		return nil, nil, err
	}

	byStatus := make(map[string]int, len(stats.ByStatus))
	for _, sc := range stats.ByStatus {
		byStatus[sc.Status] = sc.Count
	}

	stages := make([]lead.FunnelStage, 0, len(lead.FunnelOrder))
	for _, status := range lead.FunnelOrder {
		count := byStatus[string(status)]
		var pct float64
		if stats.TotalLeads > 0 {
			pct = float64(count) / float64(stats.TotalLeads) * 100
		}
		stages = append(stages, lead.FunnelStage{
			Stage:      string(status),
			Count:      count,
			Percentage: pct,
		})
	}

	return stages, stats, nil
}
