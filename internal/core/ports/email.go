package ports

import (
	"context"

	"github.com/indohomz/indohomz-backend/internal/core/domain/lead"
	"github.com/indohomz/indohomz-backend/internal/core/domain/user"
)

// EmailService sends transactional email. Sends are best-effort; callers log
// and continue on failure.
type EmailService interface {
	SendLeadNotification(ctx context.Context, l *lead.Lead) error
	SendWelcomeEmail(ctx context.Context, u *user.User) error
}
