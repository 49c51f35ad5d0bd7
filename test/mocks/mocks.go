package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/indohomz/indohomz-backend/internal/core/domain/auth"
	"github.com/indohomz/indohomz-backend/internal/core/domain/booking"
	"github.com/indohomz/indohomz-backend/internal/core/domain/lead"
	"github.com/indohomz/indohomz-backend/internal/core/domain/property"
	"github.com/indohomz/indohomz-backend/internal/core/domain/ratelimit"
	"github.com/indohomz/indohomz-backend/internal/core/domain/report"
	"github.com/indohomz/indohomz-backend/internal/core/domain/user"
)

// UserRepositoryMock is a lightweight mock for UserRepository
type UserRepositoryMock struct {
	CreateFn     func(ctx context.Context, u *user.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*user.User, error)
	GetByPhoneFn func(ctx context.Context, phone string) (*user.User, error)
	UpdateFn     func(ctx context.Context, u *user.User) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (m *UserRepositoryMock) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}
func (m *UserRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *UserRepositoryMock) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, fmt.Errorf("not found")
}
func (m *UserRepositoryMock) GetByPhone(ctx context.Context, phone string) (*user.User, error) {
	if m.GetByPhoneFn != nil {
		return m.GetByPhoneFn(ctx, phone)
	}
	return nil, fmt.Errorf("not found")
}
func (m *UserRepositoryMock) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, u)
	}
	return nil
}
func (m *UserRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// PropertyRepositoryMock is a lightweight mock for PropertyRepository
type PropertyRepositoryMock struct {
	CreateFn            func(ctx context.Context, p *property.Property) error
	GetByIDFn           func(ctx context.Context, id uuid.UUID) (*property.Property, error)
	GetBySlugFn         func(ctx context.Context, slug string) (*property.Property, error)
	ListFn              func(ctx context.Context, filter *property.Filter) ([]*property.Property, error)
	CountFn             func(ctx context.Context, filter *property.Filter) (int, error)
	UpdateFn            func(ctx context.Context, p *property.Property) error
	DeleteFn            func(ctx context.Context, id uuid.UUID) error
	SetAvailabilityFn   func(ctx context.Context, id uuid.UUID, available bool) error
	StatsFn             func(ctx context.Context) (*property.Stats, error)
	ListPricesFn        func(ctx context.Context) ([]string, error)
	CountCreatedSinceFn func(ctx context.Context, days int) (int, error)
}

func (m *PropertyRepositoryMock) Create(ctx context.Context, p *property.Property) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *PropertyRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *PropertyRepositoryMock) GetBySlug(ctx context.Context, slug string) (*property.Property, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, fmt.Errorf("not found")
}
func (m *PropertyRepositoryMock) List(ctx context.Context, filter *property.Filter) ([]*property.Property, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return []*property.Property{}, nil
}
func (m *PropertyRepositoryMock) Count(ctx context.Context, filter *property.Filter) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, filter)
	}
	return 0, nil
}
func (m *PropertyRepositoryMock) Update(ctx context.Context, p *property.Property) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	return nil
}
func (m *PropertyRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *PropertyRepositoryMock) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	if m.SetAvailabilityFn != nil {
		return m.SetAvailabilityFn(ctx, id, available)
	}
	return nil
}
func (m *PropertyRepositoryMock) Stats(ctx context.Context) (*property.Stats, error) {
	if m.StatsFn != nil {
		return m.StatsFn(ctx)
	}
	return &property.Stats{}, nil
}
func (m *PropertyRepositoryMock) ListPrices(ctx context.Context) ([]string, error) {
	if m.ListPricesFn != nil {
		return m.ListPricesFn(ctx)
	}
	return []string{}, nil
}
func (m *PropertyRepositoryMock) CountCreatedSince(ctx context.Context, days int) (int, error) {
	if m.CountCreatedSinceFn != nil {
		return m.CountCreatedSinceFn(ctx, days)
	}
	return 0, nil
}

// LeadRepositoryMock is a lightweight mock for LeadRepository
type LeadRepositoryMock struct {
	CreateFn            func(ctx context.Context, l *lead.Lead) error
	GetByIDFn           func(ctx context.Context, id uuid.UUID) (*lead.Lead, error)
	ListFn              func(ctx context.Context, filter *lead.Filter) ([]*lead.Lead, error)
	UpdateFn            func(ctx context.Context, l *lead.Lead) error
	StatsFn             func(ctx context.Context) (*lead.Stats, error)
	CountCreatedSinceFn func(ctx context.Context, days int) (int, error)
}

func (m *LeadRepositoryMock) Create(ctx context.Context, l *lead.Lead) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *LeadRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*lead.Lead, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *LeadRepositoryMock) List(ctx context.Context, filter *lead.Filter) ([]*lead.Lead, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return []*lead.Lead{}, nil
}
func (m *LeadRepositoryMock) Update(ctx context.Context, l *lead.Lead) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, l)
	}
	return nil
}
func (m *LeadRepositoryMock) Stats(ctx context.Context) (*lead.Stats, error) {
	if m.StatsFn != nil {
		return m.StatsFn(ctx)
	}
	return &lead.Stats{}, nil
}
func (m *LeadRepositoryMock) CountCreatedSince(ctx context.Context, days int) (int, error) {
	if m.CountCreatedSinceFn != nil {
		return m.CountCreatedSinceFn(ctx, days)
	}
	return 0, nil
}

// BookingRepositoryMock is a lightweight mock for BookingRepository
type BookingRepositoryMock struct {
	CreateFn         func(ctx context.Context, b *booking.Booking) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListFn           func(ctx context.Context, status booking.Status, limit, offset int) ([]*booking.Booking, error)
	ListByPropertyFn func(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error)
	UpdateFn         func(ctx context.Context, b *booking.Booking) error
}

func (m *BookingRepositoryMock) Create(ctx context.Context, b *booking.Booking) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}
func (m *BookingRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *BookingRepositoryMock) List(ctx context.Context, status booking.Status, limit, offset int) ([]*booking.Booking, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status, limit, offset)
	}
	return []*booking.Booking{}, nil
}
func (m *BookingRepositoryMock) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error) {
	if m.ListByPropertyFn != nil {
		return m.ListByPropertyFn(ctx, propertyID)
	}
	return []*booking.Booking{}, nil
}
func (m *BookingRepositoryMock) Update(ctx context.Context, b *booking.Booking) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, b)
	}
	return nil
}

// RateLimitStoreMock is a lightweight mock for RateLimitStore
type RateLimitStoreMock struct {
	CheckFn func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error)
}

func (m *RateLimitStoreMock) Check(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
	if m.CheckFn != nil {
		return m.CheckFn(ctx, identifier, maxRequests, window)
	}
	return &ratelimit.Decision{Allowed: true, CurrentCount: 1}, nil
}

// RateLimiterServiceMock is a lightweight mock for RateLimiterService
type RateLimiterServiceMock struct {
	CheckFn func(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error)
}

func (m *RateLimiterServiceMock) Check(ctx context.Context, identifier string, maxRequests int, window time.Duration) (*ratelimit.Decision, error) {
	if m.CheckFn != nil {
		return m.CheckFn(ctx, identifier, maxRequests, window)
	}
	return &ratelimit.Decision{Allowed: true, CurrentCount: 1}, nil
}

// EmailServiceMock is a lightweight mock for EmailService
type EmailServiceMock struct {
	SendLeadNotificationFn func(ctx context.Context, l *lead.Lead) error
	SendWelcomeEmailFn     func(ctx context.Context, u *user.User) error
}

func (m *EmailServiceMock) SendLeadNotification(ctx context.Context, l *lead.Lead) error {
	if m.SendLeadNotificationFn != nil {
		return m.SendLeadNotificationFn(ctx, l)
	}
	return nil
}
func (m *EmailServiceMock) SendWelcomeEmail(ctx context.Context, u *user.User) error {
	if m.SendWelcomeEmailFn != nil {
		return m.SendWelcomeEmailFn(ctx, u)
	}
	return nil
}

// AuthServiceMock is a lightweight mock for AuthService
type AuthServiceMock struct {
	RegisterFn       func(ctx context.Context, req *user.RegisterRequest) (*auth.AuthTokens, error)
	LoginFn          func(ctx context.Context, req *auth.LoginRequest) (*auth.AuthTokens, error)
	RefreshTokenFn   func(ctx context.Context, refreshToken string) (*auth.AuthTokens, error)
	ValidateTokenFn  func(ctx context.Context, token string) (*auth.Claims, error)
	GenerateTokensFn func(ctx context.Context, u *user.User) (*auth.AuthTokens, error)
}

func (m *AuthServiceMock) Register(ctx context.Context, req *user.RegisterRequest) (*auth.AuthTokens, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, req)
	}
	return &auth.AuthTokens{}, nil
}
func (m *AuthServiceMock) Login(ctx context.Context, req *auth.LoginRequest) (*auth.AuthTokens, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, req)
	}
	return &auth.AuthTokens{}, nil
}
func (m *AuthServiceMock) RefreshToken(ctx context.Context, refreshToken string) (*auth.AuthTokens, error) {
	if m.RefreshTokenFn != nil {
		return m.RefreshTokenFn(ctx, refreshToken)
	}
	return &auth.AuthTokens{}, nil
}
func (m *AuthServiceMock) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	return nil, fmt.Errorf("not found")
}
func (m *AuthServiceMock) GenerateTokens(ctx context.Context, u *user.User) (*auth.AuthTokens, error) {
	if m.GenerateTokensFn != nil {
		return m.GenerateTokensFn(ctx, u)
	}
	return &auth.AuthTokens{}, nil
}

// RecaptchaVerifierMock is a lightweight mock for RecaptchaVerifier
type RecaptchaVerifierMock struct {
	VerifyFn func(ctx context.Context, token, remoteIP string) error
}

func (m *RecaptchaVerifierMock) Verify(ctx context.Context, token, remoteIP string) error {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token, remoteIP)
	}
	return nil
}

// ReportGeneratorMock is a lightweight mock for ReportGenerator
type ReportGeneratorMock struct {
	GenerateReportFn func(ctx context.Context, reportType report.Type, data map[string]any) (*report.Report, error)
	AnswerQuestionFn func(ctx context.Context, question string, businessContext map[string]any) (string, error)
}

func (m *ReportGeneratorMock) GenerateReport(ctx context.Context, reportType report.Type, data map[string]any) (*report.Report, error) {
	if m.GenerateReportFn != nil {
		return m.GenerateReportFn(ctx, reportType, data)
	}
	return &report.Report{ReportType: reportType}, nil
}
func (m *ReportGeneratorMock) AnswerQuestion(ctx context.Context, question string, businessContext map[string]any) (string, error) {
	if m.AnswerQuestionFn != nil {
		return m.AnswerQuestionFn(ctx, question, businessContext)
	}
	return "", nil
}
