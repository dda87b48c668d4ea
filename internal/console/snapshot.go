package console

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// Narrow read interfaces so the loader depends only on the listing it needs.
type userLister interface {
	List(ctx context.Context) ([]*models.User, error)
}

type projectLister interface {
	ListAll(ctx context.Context) ([]*models.Project, error)
}

type modelLister interface {
	List(ctx context.Context) ([]*models.Model, error)
}

type planLister interface {
	List(ctx context.Context) ([]*models.Plan, error)
}

type paymentLister interface {
	List(ctx context.Context) ([]*models.Payment, error)
}

// Snapshot is one point-in-time read of the five admin datasets. Errors maps
// a dataset name to its load failure; a failed dataset leaves its slice
// empty without affecting the others.
type Snapshot struct {
	Users    []*models.User    `json:"users"`
	Projects []*models.Project `json:"projects"`
	Models   []*models.Model   `json:"models"`
	Plans    []*models.Plan    `json:"plans"`
	Payments []*models.Payment `json:"payments"`
	Errors   map[string]string `json:"errors,omitempty"`
}

// Loader fetches admin console snapshots.
type Loader struct {
	users    userLister
	projects projectLister
	models   modelLister
	plans    planLister
	payments paymentLister
	logger   *zap.Logger
}

// NewLoader creates a Loader over the given repositories.
func NewLoader(users userLister, projects projectLister, modelCatalog modelLister, plans planLister, payments paymentLister, logger *zap.Logger) *Loader {
	return &Loader{
		users:    users,
		projects: projects,
		models:   modelCatalog,
		plans:    plans,
		payments: payments,
		logger:   logger,
	}
}

// Load fetches the five datasets concurrently and joins them before
// returning. Each dataset has its own error handling, so one failing
// collection never blocks the rest of the snapshot.
func (l *Loader) Load(ctx context.Context) *Snapshot {
	snap := &Snapshot{}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	fail := func(dataset string, err error) {
		l.logger.Error("failed to load admin dataset",
			zap.String("dataset", dataset), zap.Error(err))
		mu.Lock()
		if snap.Errors == nil {
			snap.Errors = make(map[string]string)
		}
		snap.Errors[dataset] = err.Error()
		mu.Unlock()
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		users, err := l.users.List(ctx)
		if err != nil {
			fail("users", err)
			return
		}
		snap.Users = users
	}()
	go func() {
		defer wg.Done()
		projects, err := l.projects.ListAll(ctx)
		if err != nil {
			fail("projects", err)
			return
		}
		snap.Projects = projects
	}()
	go func() {
		defer wg.Done()
		entries, err := l.models.List(ctx)
		if err != nil {
			fail("models", err)
			return
		}
		snap.Models = entries
	}()
	go func() {
		defer wg.Done()
		plans, err := l.plans.List(ctx)
		if err != nil {
			fail("plans", err)
			return
		}
		snap.Plans = plans
	}()
	go func() {
		defer wg.Done()
		payments, err := l.payments.List(ctx)
		if err != nil {
			fail("payments", err)
			return
		}
		snap.Payments = payments
	}()
	wg.Wait()

	return snap
}
