package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/indohomz/indohomz-backend/internal/core/domain/lead"
)

// LeadRepository defines the interface for lead data operations
type LeadRepository interface {
	Create(ctx context.Context, l *lead.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*lead.Lead, error)
	List(ctx context.Context, filter *lead.Filter) ([]*lead.Lead, error)
	Update(ctx context.Context, l *lead.Lead) error
	Stats(ctx context.Context) (*lead.Stats, error)
	CountCreatedSince(ctx context.Context, days int) (int, error)
}

// LeadService defines the interface for lead business logic
type LeadService interface {
	CreateLead(ctx context.Context, req *lead.CreateLeadRequest) (*lead.Lead, error)
	GetLead(ctx context.Context, id uuid.UUID) (*lead.Lead, error)
	ListLeads(ctx context.Context, filter *lead.Filter) ([]*lead.Lead, error)
	UpdateLead(ctx context.Context, id uuid.UUID, req *lead.UpdateLeadRequest) (*lead.Lead, error)
	UpdateLeadStatus(ctx context.Context, id uuid.UUID, status lead.Status) (*lead.Lead, error)
	GetStats(ctx context.Context) (*lead.Stats, error)
	GetFunnel(ctx context.Context) ([]lead.FunnelStage, *lead.Stats, error)
}
