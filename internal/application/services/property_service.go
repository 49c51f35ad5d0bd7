package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/indohomz/indohomz-backend/internal/core/domain/property"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
	"github.com/indohomz/indohomz-backend/internal/utils"
)

type PropertyService struct {
	propertyRepo ports.PropertyRepository
	logger       *logrus.Logger
}

func NewPropertyService(propertyRepo ports.PropertyRepository, logger *logrus.Logger) ports.PropertyService {
	return &PropertyService{propertyRepo: propertyRepo, logger: logger}
}

func (s *PropertyService) CreateProperty(ctx context.Context, req *property.CreatePropertyRequest) (*property.Property, error) {
	if !req.PropertyType.IsValid() {
		return nil, fmt.Errorf("invalid property type: %s", req.PropertyType)
	}

	slug, err := s.uniqueSlug(ctx, req.Title)
	if err != nil {
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	p := &property.Property{
		ID:            uuid.New(),
		Title:         req.Title,
		Slug:          slug,
		Price:         req.Price,
		Location:      req.Location,
		Area:          req.Area,
		City:          req.City,
		PropertyType:  req.PropertyType,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		AreaSqft:      req.AreaSqft,
		Furnishing:    req.Furnishing,
		ImageURL:      req.ImageURL,
		Images:        req.Images,
		Amenities:     req.Amenities,
		Highlights:    req.Highlights,
		Description:   req.Description,
		IsAvailable:   isAvailable,
		AvailableFrom: req.AvailableFrom,
	}

	if err := s.propertyRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"property_id": p.ID, "slug": p.Slug}).Info("property created")
	}

	return p, nil
}

// uniqueSlug derives a slug from the title and appends -1, -2, ... until it
// does not collide with an existing listing.
func (s *PropertyService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := utils.GenerateSlug(title)
	if base == "" {
		return "", fmt.Errorf("title produces an empty slug")
	}

	slug := base
	for i := 1; ; i++ {
		if _, err := s.propertyRepo.GetBySlug(ctx, slug); err != nil {
			// Not found means the slug is free.
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *PropertyService) GetProperty(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

func (s *PropertyService) GetPropertyBySlug(ctx context.Context, slug string) (*property.Property, error) {
	return s.propertyRepo.GetBySlug(ctx, slug)
}

func (s *PropertyService) ListProperties(ctx context.Context, filter *property.Filter) ([]*property.Property, int, error) {
	if filter == nil {
		filter = &property.Filter{}
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	properties, err := s.propertyRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.propertyRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// GetFeaturedProperties returns the newest available listings for the homepage.
func (s *PropertyService) GetFeaturedProperties(ctx context.Context, limit int) ([]*property.Property, error) {
	if limit <= 0 || limit > 50 {
		limit = 6
	}
	available := true
	return s.propertyRepo.List(ctx, &property.Filter{IsAvailable: &available, Limit: limit})
}

func (s *PropertyService) UpdateProperty(ctx context.Context, id uuid.UUID, req *property.UpdatePropertyRequest) (*property.Property, error) {
	p, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != p.Title {
		p.Title = *req.Title
		slug, err := s.uniqueSlug(ctx, p.Title)
		if err != nil {
			return nil, err
		}
		p.Slug = slug
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Area != nil {
		p.Area = req.Area
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.PropertyType != nil {
		if !req.PropertyType.IsValid() {
			return nil, fmt.Errorf("invalid property type: %s", *req.PropertyType)
		}
		p.PropertyType = *req.PropertyType
	}
	if req.Bedrooms != nil {
		p.Bedrooms = req.Bedrooms
	}
	if req.Bathrooms != nil {
		p.Bathrooms = req.Bathrooms
	}
	if req.AreaSqft != nil {
		p.AreaSqft = req.AreaSqft
	}
	if req.Furnishing != nil {
		p.Furnishing = *req.Furnishing
	}
	if req.ImageURL != nil {
		p.ImageURL = req.ImageURL
	}
	if req.Images != nil {
		p.Images = req.Images
	}
	if req.Amenities != nil {
		p.Amenities = *req.Amenities
	}
	if req.Highlights != nil {
		p.Highlights = req.Highlights
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}
	if req.AvailableFrom != nil {
		p.AvailableFrom = req.AvailableFrom
	}

	if err := s.propertyRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *PropertyService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	return s.propertyRepo.SetAvailability(ctx, id, available)
}

// DeleteProperty soft-deletes by marking the listing unavailable; permanent
// removal is reserved for admin cleanup.
func (s *PropertyService) DeleteProperty(ctx context.Context, id uuid.UUID, permanent bool) error {
	if permanent {
		if err := s.propertyRepo.Delete(ctx, id); err != nil {
			return err
		}
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"property_id": id}).Info("property permanently deleted")
		}
		return nil
	}
	return s.propertyRepo.SetAvailability(ctx, id, false)
}

func (s *PropertyService) GetStats(ctx context.Context) (*property.Stats, error) {
	return s.propertyRepo.Stats(ctx)
}
