package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	impl "github.com/indohomz/indohomz-backend/internal/application/services"
	"github.com/indohomz/indohomz-backend/internal/core/domain/lead"
	"github.com/indohomz/indohomz-backend/internal/core/domain/property"
	tmocks "github.com/indohomz/indohomz-backend/test/mocks"
)

// Test: a public inquiry is sanitized, normalized and notified
func TestCreateLead_SanitizesAndNotifies(t *testing.T) {
	var created *lead.Lead
	notified := false
	lr := &tmocks.LeadRepositoryMock{CreateFn: func(ctx context.Context, l *lead.Lead) error { created = l; return nil }}
	es := &tmocks.EmailServiceMock{SendLeadNotificationFn: func(ctx context.Context, l *lead.Lead) error {
		notified = true
		return nil
	}}

	svc := impl.NewLeadService(lr, &tmocks.PropertyRepositoryMock{}, es, &tmocks.RecaptchaVerifierMock{}, nil)
	msg := `<script>alert("x")</script>`
	l, err := svc.CreateLead(context.Background(), &lead.CreateLeadRequest{
		Name:    "Asha <b>K</b>",
		Phone:   "+91 98765 43210",
		Message: &msg,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.True(t, notified)
	require.Equal(t, "9876543210", l.Phone)
	require.Equal(t, lead.StatusNew, l.Status)
	require.Equal(t, lead.SourceWebsite, l.Source)
	require.NotContains(t, l.Name, "<")
	require.NotContains(t, *l.Message, "<script>")
}

// Test: invalid phone numbers are rejected
func TestCreateLead_InvalidPhoneRejected(t *testing.T) {
	svc := impl.NewLeadService(&tmocks.LeadRepositoryMock{}, &tmocks.PropertyRepositoryMock{}, nil, nil, nil)
	_, err := svc.CreateLead(context.Background(), &lead.CreateLeadRequest{Name: "A", Phone: "12345"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid phone number")
}

// Test: a failed reCAPTCHA check blocks the lead
func TestCreateLead_RecaptchaFailureBlocks(t *testing.T) {
	repoCalled := false
	lr := &tmocks.LeadRepositoryMock{CreateFn: func(ctx context.Context, l *lead.Lead) error {
		repoCalled = true
		return nil
	}}
	rv := &tmocks.RecaptchaVerifierMock{VerifyFn: func(ctx context.Context, token, remoteIP string) error {
		return fmt.Errorf("low score")
	}}

	svc := impl.NewLeadService(lr, &tmocks.PropertyRepositoryMock{}, nil, rv, nil)
	_, err := svc.CreateLead(context.Background(), &lead.CreateLeadRequest{Name: "A", Phone: "9876543210"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "recaptcha")
	require.False(t, repoCalled)
}

// Test: leads referencing an unknown property are rejected
func TestCreateLead_UnknownPropertyRejected(t *testing.T) {
	pid := uuid.New()
	pr := &tmocks.PropertyRepositoryMock{GetByIDFn: func(ctx context.Context, id uuid.UUID) (*property.Property, error) {
		return nil, fmt.Errorf("not found")
	}}

	svc := impl.NewLeadService(&tmocks.LeadRepositoryMock{}, pr, nil, nil, nil)
	_, err := svc.CreateLead(context.Background(), &lead.CreateLeadRequest{Name: "A", Phone: "9876543210", PropertyID: &pid})
	require.Error(t, err)
	require.Contains(t, err.Error(), "property not found")
}

// Test: a failed notification email does not fail the lead capture
func TestCreateLead_EmailFailureIsBestEffort(t *testing.T) {
	es := &tmocks.EmailServiceMock{SendLeadNotificationFn: func(ctx context.Context, l *lead.Lead) error {
		return fmt.Errorf("sendgrid down")
	}}

	svc := impl.NewLeadService(&tmocks.LeadRepositoryMock{}, &tmocks.PropertyRepositoryMock{}, es, nil, nil)
	l, err := svc.CreateLead(context.Background(), &lead.CreateLeadRequest{Name: "A", Phone: "9876543210"})
	require.NoError(t, err)
	require.NotNil(t, l)
}

// Test: status transitions validate the target status
func TestUpdateLeadStatus_InvalidStatusRejected(t *testing.T) {
	svc := impl.NewLeadService(&tmocks.LeadRepositoryMock{}, &tmocks.PropertyRepositoryMock{}, nil, nil, nil)
	_, err := svc.UpdateLeadStatus(context.Background(), uuid.New(), lead.Status("bogus"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid lead status")
}

func TestUpdateLeadStatus_Success(t *testing.T) {
	id := uuid.New()
	existing := &lead.Lead{ID: id, Name: "A", Phone: "9876543210", Status: lead.StatusNew}
	var updated *lead.Lead
	lr := &tmocks.LeadRepositoryMock{
		GetByIDFn: func(ctx context.Context, got uuid.UUID) (*lead.Lead, error) { return existing, nil },
		UpdateFn:  func(ctx context.Context, l *lead.Lead) error { updated = l; return nil },
	}

	svc := impl.NewLeadService(lr, &tmocks.PropertyRepositoryMock{}, nil, nil, nil)
	l, err := svc.UpdateLeadStatus(context.Background(), id, lead.StatusContacted)
	require.NoError(t, err)
	require.Equal(t, lead.StatusContacted, l.Status)
	require.NotNil(t, updated)
}

// Test: the funnel covers every pipeline stage in order with percentages of total
func TestGetFunnel_StagesAndPercentages(t *testing.T) {
	lr := &tmocks.LeadRepositoryMock{StatsFn: func(ctx context.Context) (*lead.Stats, error) {
		return &lead.Stats{
			TotalLeads: 10,
			ByStatus: []lead.StatusCount{
				{Status: "new", Count: 4},
				{Status: "contacted", Count: 3},
				{Status: "converted", Count: 2},
				{Status: "lost", Count: 1},
			},
		}, nil
	}}

	svc := impl.NewLeadService(lr, &tmocks.PropertyRepositoryMock{}, nil, nil, nil)
	stages, stats, err := svc.GetFunnel(context.Background())
	require.NoError(t, err)
	require.Equal(t, 10, stats.TotalLeads)
	require.Len(t, stages, len(lead.FunnelOrder))

	require.Equal(t, "new", stages[0].Stage)
	require.Equal(t, 4, stages[0].Count)
	require.InDelta(t, 40.0, stages[0].Percentage, 0.001)

	// stages with no leads are present with zero counts
	require.Equal(t, "site_visit", stages[2].Stage)
	require.Equal(t, 0, stages[2].Count)

	require.Equal(t, "converted", stages[4].Stage)
	require.InDelta(t, 20.0, stages[4].Percentage, 0.001)

	// terminal "lost" is not a funnel stage
	for _, st := range stages {
		require.NotEqual(t, "lost", st.Stage)
	}
}

// Test: funnel with zero leads reports zero percentages rather than dividing by zero
func TestGetFunnel_EmptyStats(t *testing.T) {
	lr := &tmocks.LeadRepositoryMock{StatsFn: func(ctx context.Context) (*lead.Stats, error) {
		return &lead.Stats{}, nil
	}}

	svc := impl.NewLeadService(lr, &tmocks.PropertyRepositoryMock{}, nil, nil, nil)
	stages, _, err := svc.GetFunnel(context.Background())
	require.NoError(t, err)
	for _, st := range stages {
		require.Zero(t, st.Count)
		require.Zero(t, st.Percentage)
	}
}
