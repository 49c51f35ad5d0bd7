package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/indohomz/indohomz-backend/internal/core/domain/property"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/db"
)

const propertyColumns = `id, title, slug, price, location, area, city, property_type,
	   bedrooms, bathrooms, area_sqft, furnishing, image_url, images, amenities,
	   highlights, description, is_available, available_from, created_at, updated_at`

// PropertyRepository implements the property repository interface
type PropertyRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(database *db.Database, logger *logrus.Logger) ports.PropertyRepository {
	return &PropertyRepository{
		db:     database,
		logger: logger,
	}
}

// Create inserts a new listing
func (r *PropertyRepository) Create(ctx context.Context, p *property.Property) error {
	query := `
		INSERT INTO properties (id, title, slug, price, location, area, city, property_type,
			bedrooms, bathrooms, area_sqft, furnishing, image_url, images, amenities,
			highlights, description, is_available, available_from)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.db.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Slug, p.Price, p.Location, p.Area, p.City, p.PropertyType,
		p.Bedrooms, p.Bathrooms, p.AreaSqft, p.Furnishing, p.ImageURL, p.Images,
		p.Amenities, p.Highlights, p.Description, p.IsAvailable, p.AvailableFrom)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"property_id": p.ID, "slug": p.Slug}).WithError(err).Error("db: failed to create property")
		}
		return fmt.Errorf("failed to create property: %w", err)
	}
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"property_id": p.ID, "slug": p.Slug}).Info("db: property created")
	}

	return nil
}

// GetByID retrieves a listing by ID
func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	var p property.Property
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE id = $1`, propertyColumns)

	err := r.db.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("property with ID %s not found", id)
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"property_id": id}).WithError(err).Error("db: failed to get property by ID")
		}
		return nil, fmt.Errorf("failed to get property by ID: %w", err)
	}

	return &p, nil
}

// GetBySlug retrieves a listing by its URL slug
func (r *PropertyRepository) GetBySlug(ctx context.Context, slug string) (*property.Property, error) {
	var p property.Property
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE slug = $1`, propertyColumns)

	err := r.db.DB.GetContext(ctx, &p, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("property with slug %s not found", slug)
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"slug": slug}).WithError(err).Error("db: failed to get property by slug")
		}
		return nil, fmt.Errorf("failed to get property by slug: %w", err)
	}

	return &p, nil
}

// buildFilter translates a Filter into a WHERE clause and its arguments.
func buildFilter(filter *property.Filter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.IsAvailable != nil {
		conditions = append(conditions, "is_available = "+arg(*filter.IsAvailable))
	}
	if filter.City != "" {
		conditions = append(conditions, "LOWER(city) = LOWER("+arg(filter.City)+")")
	}
	if filter.Location != "" {
		conditions = append(conditions, "location ILIKE "+arg("%"+filter.Location+"%"))
	}
	if filter.PropertyType != "" {
		conditions = append(conditions, "property_type = "+arg(filter.PropertyType))
	}
	if filter.MinBedrooms != nil {
		conditions = append(conditions, "bedrooms >= "+arg(*filter.MinBedrooms))
	}
	if filter.Query != "" {
		pattern := arg("%" + filter.Query + "%")
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE %s OR location ILIKE %s OR COALESCE(area, '') ILIKE %s OR amenities ILIKE %s OR COALESCE(description, '') ILIKE %s)",
			pattern, pattern, pattern, pattern, pattern))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List retrieves listings matching the filter, newest first
func (r *PropertyRepository) List(ctx context.Context, filter *property.Filter) ([]*property.Property, error) {
	where, args := buildFilter(filter)
	query := fmt.Sprintf(`SELECT %s FROM properties%s ORDER BY created_at DESC`, propertyColumns, where)

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	properties := []*property.Property{}
	if err := r.db.DB.SelectContext(ctx, &properties, query, args...); err != nil {
		if r.logger != nil {
			r.logger.WithError(err).Error("db: failed to list properties")
		}
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return properties, nil
}

// Count returns the number of listings matching the filter, ignoring pagination
func (r *PropertyRepository) Count(ctx context.Context, filter *property.Filter) (int, error) {
	where, args := buildFilter(filter)
	query := "SELECT COUNT(*) FROM properties" + where

	var count int
	if err := r.db.DB.GetContext(ctx, &count, query, args...); err != nil {
		if r.logger != nil {
			r.logger.WithError(err).Error("db: failed to count properties")
		}
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}

	return count, nil
}

// Update updates an existing listing
func (r *PropertyRepository) Update(ctx context.Context, p *property.Property) error {
	query := `
		UPDATE properties
		SET title = $2, slug = $3, price = $4, location = $5, area = $6, city = $7,
			property_type = $8, bedrooms = $9, bathrooms = $10, area_sqft = $11,
			furnishing = $12, image_url = $13, images = $14, amenities = $15,
			highlights = $16, description = $17, is_available = $18,
			available_from = $19, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Slug, p.Price, p.Location, p.Area, p.City, p.PropertyType,
		p.Bedrooms, p.Bathrooms, p.AreaSqft, p.Furnishing, p.ImageURL, p.Images,
		p.Amenities, p.Highlights, p.Description, p.IsAvailable, p.AvailableFrom)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"property_id": p.ID}).WithError(err).Error("db: failed to update property")
		}
		return fmt.Errorf("failed to update property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("property with ID %s not found", p.ID)
	}

	return nil
}

// Delete permanently removes a listing
func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"property_id": id}).WithError(err).Error("db: failed to delete property")
		}
		return fmt.Errorf("failed to delete property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("property with ID %s not found", id)
	}

	return nil
}

// SetAvailability flips the is_available flag
func (r *PropertyRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `UPDATE properties SET is_available = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query, id, available)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"property_id": id, "available": available}).WithError(err).Error("db: failed to set property availability")
		}
		return fmt.Errorf("failed to set property availability: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("property with ID %s not found", id)
	}

	return nil
}

// Stats aggregates listing counts for the admin dashboard
func (r *PropertyRepository) Stats(ctx context.Context) (*property.Stats, error) {
	stats := &property.Stats{}

	countsQuery := `
		SELECT COUNT(*) AS total,
			   COUNT(*) FILTER (WHERE is_available) AS available
		FROM properties`

	var counts struct {
		Total     int `db:"total"`
		Available int `db:"available"`
	}
	if err := r.db.DB.GetContext(ctx, &counts, countsQuery); err != nil {
		return nil, fmt.Errorf("failed to get property counts: %w", err)
	}
	stats.TotalProperties = counts.Total
	stats.AvailableProperties = counts.Available
	stats.RentedProperties = counts.Total - counts.Available

	typesQuery := `
		SELECT property_type, COUNT(*) AS count
		FROM properties
		GROUP BY property_type
		ORDER BY count DESC`
	stats.PropertyTypes = []property.TypeCount{}
	if err := r.db.DB.SelectContext(ctx, &stats.PropertyTypes, typesQuery); err != nil {
		return nil, fmt.Errorf("failed to get property type counts: %w", err)
	}

	citiesQuery := `
		SELECT city, COUNT(*) AS count
		FROM properties
		GROUP BY city
		ORDER BY count DESC
		LIMIT 10`
	stats.TopLocations = []property.CityCount{}
	if err := r.db.DB.SelectContext(ctx, &stats.TopLocations, citiesQuery); err != nil {
		return nil, fmt.Errorf("failed to get city counts: %w", err)
	}

	return stats, nil
}

// ListPrices returns the raw display price of every listing
func (r *PropertyRepository) ListPrices(ctx context.Context) ([]string, error) {
	prices := []string{}
	if err := r.db.DB.SelectContext(ctx, &prices, `SELECT price FROM properties`); err != nil {
		return nil, fmt.Errorf("failed to list property prices: %w", err)
	}
	return prices, nil
}

// CountCreatedSince counts listings created within the last N days
func (r *PropertyRepository) CountCreatedSince(ctx context.Context, days int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM properties WHERE created_at >= NOW() - ($1 || ' days')::interval`
	if err := r.db.DB.GetContext(ctx, &count, query, days); err != nil {
		return 0, fmt.Errorf("failed to count recent properties: %w", err)
	}
	return count, nil
}
