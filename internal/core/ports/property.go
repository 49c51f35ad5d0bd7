package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/indohomz/indohomz-backend/internal/core/domain/property"
)

// PropertyRepository defines the interface for property data operations
type PropertyRepository interface {
	Create(ctx context.Context, p *property.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*property.Property, error)
	GetBySlug(ctx context.Context, slug string) (*property.Property, error)
	List(ctx context.Context, filter *property.Filter) ([]*property.Property, error)
	Count(ctx context.Context, filter *property.Filter) (int, error)
	Update(ctx context.Context, p *property.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	Stats(ctx context.Context) (*property.Stats, error)
	// ListPrices returns the raw price strings of all listings, for
	// price-distribution analytics.
	ListPrices(ctx context.Context) ([]string, error)
	CountCreatedSince(ctx context.Context, days int) (int, error)
}

// PropertyService defines the interface for property business logic
type PropertyService interface {
	CreateProperty(ctx context.Context, req *property.CreatePropertyRequest) (*property.Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*property.Property, error)
	GetPropertyBySlug(ctx context.Context, slug string) (*property.Property, error)
	ListProperties(ctx context.Context, filter *property.Filter) ([]*property.Property, int, error)
	GetFeaturedProperties(ctx context.Context, limit int) ([]*property.Property, error)
	UpdateProperty(ctx context.Context, id uuid.UUID, req *property.UpdatePropertyRequest) (*property.Property, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	// DeleteProperty soft-deletes (marks unavailable) unless permanent is set.
	DeleteProperty(ctx context.Context, id uuid.UUID, permanent bool) error
	GetStats(ctx context.Context) (*property.Stats, error)
}
