package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/indohomz/indohomz-backend/internal/core/domain/lead"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/db"
)

const leadColumns = `id, name, email, phone, property_id, message, preferred_visit_date,
	   status, source, created_at, updated_at`

// LeadRepository implements the lead repository interface
type LeadRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(database *db.Database, logger *logrus.Logger) ports.LeadRepository {
	return &LeadRepository{
		db:     database,
		logger: logger,
	}
}

// Create inserts a new lead
func (r *LeadRepository) Create(ctx context.Context, l *lead.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, property_id, message, preferred_visit_date, status, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.DB.ExecContext(ctx, query,
		l.ID, l.Name, l.Email, l.Phone, l.PropertyID, l.Message,
		l.PreferredVisitDate, l.Status, l.Source)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"lead_id": l.ID}).WithError(err).Error("db: failed to create lead")
		}
		return fmt.Errorf("failed to create lead: %w", err)
	}
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"lead_id": l.ID, "source": l.Source}).Info("db: lead created")
	}

	return nil
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*lead.Lead, error) {
	var l lead.Lead
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE id = $1`, leadColumns)

	err := r.db.DB.GetContext(ctx, &l, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("lead with ID %s not found", id)
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"lead_id": id}).WithError(err).Error("db: failed to get lead by ID")
		}
		return nil, fmt.Errorf("failed to get lead by ID: %w", err)
	}

	return &l, nil
}

// List retrieves leads matching the filter, newest first
func (r *LeadRepository) List(ctx context.Context, filter *lead.Filter) ([]*lead.Lead, error) {
	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		conditions = append(conditions, "status = "+arg(filter.Status))
	}
	if filter.Source != "" {
		conditions = append(conditions, "source = "+arg(filter.Source))
	}
	if filter.PropertyID != nil {
		conditions = append(conditions, "property_id = "+arg(*filter.PropertyID))
	}

	query := fmt.Sprintf(`SELECT %s FROM leads`, leadColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	leads := []*lead.Lead{}
	if err := r.db.DB.SelectContext(ctx, &leads, query, args...); err != nil {
		if r.logger != nil {
			r.logger.WithError(err).Error("db: failed to list leads")
		}
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return leads, nil
}

// Update updates an existing lead
func (r *LeadRepository) Update(ctx context.Context, l *lead.Lead) error {
	query := `
		UPDATE leads
		SET name = $2, email = $3, phone = $4, property_id = $5, message = $6,
			preferred_visit_date = $7, status = $8, source = $9, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query,
		l.ID, l.Name, l.Email, l.Phone, l.PropertyID, l.Message,
		l.PreferredVisitDate, l.Status, l.Source)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"lead_id": l.ID}).WithError(err).Error("db: failed to update lead")
		}
		return fmt.Errorf("failed to update lead: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("lead with ID %s not found", l.ID)
	}

	return nil
}

// Stats aggregates lead counts for the admin dashboard
func (r *LeadRepository) Stats(ctx context.Context) (*lead.Stats, error) {
	stats := &lead.Stats{}

	countsQuery := `
		SELECT COUNT(*) AS total,
			   COUNT(*) FILTER (WHERE status = 'new') AS new,
			   COUNT(*) FILTER (WHERE status = 'converted') AS converted
		FROM leads`

	var counts struct {
		Total     int `db:"total"`
		New       int `db:"new"`
		Converted int `db:"converted"`
	}
	if err := r.db.DB.GetContext(ctx, &counts, countsQuery); err != nil {
		return nil, fmt.Errorf("failed to get lead counts: %w", err)
	}
	stats.TotalLeads = counts.Total
	stats.NewLeads = counts.New
	stats.ConvertedLeads = counts.Converted
	if counts.Total > 0 {
		stats.ConversionRate = float64(counts.Converted) / float64(counts.Total) * 100
	}

	statusQuery := `
		SELECT status, COUNT(*) AS count
		FROM leads
		GROUP BY status
		ORDER BY count DESC`
	stats.ByStatus = []lead.StatusCount{}
	if err := r.db.DB.SelectContext(ctx, &stats.ByStatus, statusQuery); err != nil {
		return nil, fmt.Errorf("failed to get lead status counts: %w", err)
	}

	sourceQuery := `
		SELECT source, COUNT(*) AS count
		FROM leads
		GROUP BY source
		ORDER BY count DESC`
	stats.BySource = []lead.SourceCount{}
	if err := r.db.DB.SelectContext(ctx, &stats.BySource, sourceQuery); err != nil {
		return nil, fmt.Errorf("failed to get lead source counts: %w", err)
	}

	return stats, nil
}

// CountCreatedSince counts leads created within the last N days
func (r *LeadRepository) CountCreatedSince(ctx context.Context, days int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM leads WHERE created_at >= NOW() - ($1 || ' days')::interval`
	if err := r.db.DB.GetContext(ctx, &count, query, days); err != nil {
		return 0, fmt.Errorf("failed to count recent leads: %w", err)
	}
	return count, nil
}
