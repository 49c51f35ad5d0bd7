package ports

import (
	"context"

	"github.com/indohomz/indohomz-backend/internal/core/domain/report"
)

// ReportGenerator turns aggregated business data into natural-language text.
// Implementations may call an external model API; they must degrade to a
// static template when the provider is unavailable.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, reportType report.Type, data map[string]any) (*report.Report, error)
	AnswerQuestion(ctx context.Context, question string, businessContext map[string]any) (string, error)
}

// ReportService assembles the data for a report and delegates text generation.
type ReportService interface {
	GenerateReport(ctx context.Context, req *report.Request) (*report.Report, error)
	AnswerQuestion(ctx context.Context, question string) (string, error)
}
