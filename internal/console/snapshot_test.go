package console

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

type stubLists struct {
	users    []*models.User
	projects []*models.Project
	models   []*models.Model
	plans    []*models.Plan
	payments []*models.Payment

	usersErr    error
	projectsErr error
	modelsErr   error
	plansErr    error
	paymentsErr error
}

func (s *stubLists) List(context.Context) ([]*models.User, error) { return s.users, s.usersErr }

type stubProjects struct{ s *stubLists }

func (p stubProjects) ListAll(context.Context) ([]*models.Project, error) {
	return p.s.projects, p.s.projectsErr
}

type stubModels struct{ s *stubLists }

func (m stubModels) List(context.Context) ([]*models.Model, error) { return m.s.models, m.s.modelsErr }

type stubPlans struct{ s *stubLists }

func (p stubPlans) List(context.Context) ([]*models.Plan, error) { return p.s.plans, p.s.plansErr }

type stubPayments struct{ s *stubLists }

func (p stubPayments) List(context.Context) ([]*models.Payment, error) {
	return p.s.payments, p.s.paymentsErr
}

func newTestLoader(s *stubLists) *Loader {
	return NewLoader(s, stubProjects{s}, stubModels{s}, stubPlans{s}, stubPayments{s}, zap.NewNop())
}

func TestLoader_LoadAllDatasets(t *testing.T) {
	s := &stubLists{
		users:    []*models.User{{ID: "u1", Email: "a@example.com"}},
		projects: []*models.Project{{ID: "p1", OwnerID: "u1", Name: "Sheet One"}},
		models:   []*models.Model{{ID: "openai-gpt-4o", Type: models.ModelTypeText}},
		plans:    []*models.Plan{{ID: "free", Name: "free"}},
		payments: []*models.Payment{{ID: "pay1", AmountCents: 999}},
	}

	snap := newTestLoader(s).Load(context.Background())

	require.NotNil(t, snap)
	assert.Len(t, snap.Users, 1)
	assert.Len(t, snap.Projects, 1)
	assert.Len(t, snap.Models, 1)
	assert.Len(t, snap.Plans, 1)
	assert.Len(t, snap.Payments, 1)
	assert.Empty(t, snap.Errors)
}

func TestLoader_PartialFailureIsIsolated(t *testing.T) {
	s := &stubLists{
		users:       []*models.User{{ID: "u1"}},
		projectsErr: fmt.Errorf("projects collection unavailable"),
		models:      []*models.Model{{ID: "m1"}},
		plans:       []*models.Plan{{ID: "free"}},
		payments:    []*models.Payment{{ID: "pay1"}},
	}

	snap := newTestLoader(s).Load(context.Background())

	assert.Len(t, snap.Users, 1, "other datasets must still load")
	assert.Len(t, snap.Models, 1)
	assert.Len(t, snap.Plans, 1)
	assert.Len(t, snap.Payments, 1)
	assert.Empty(t, snap.Projects)

	require.Contains(t, snap.Errors, "projects")
	assert.Contains(t, snap.Errors["projects"], "unavailable")
}

func TestLoader_AllDatasetsFail(t *testing.T) {
	boom := fmt.Errorf("store down")
	s := &stubLists{
		usersErr: boom, projectsErr: boom, modelsErr: boom,
		plansErr: boom, paymentsErr: boom,
	}

	snap := newTestLoader(s).Load(context.Background())

	assert.Len(t, snap.Errors, 5)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Payments)
}
