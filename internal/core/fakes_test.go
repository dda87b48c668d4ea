package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// In-memory repository fakes shared by the service tests. Each fake keeps a
// map keyed the same way the real store is keyed and returns db.ErrNotFound
// for misses so errors.Is checks behave like the Firestore-backed versions.

type fakeUserRepo struct {
	users      map[string]*models.User
	getErr     error
	createErr  error
	updateErr  error
	increments map[string]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:      make(map[string]*models.User),
		increments: make(map[string]int),
	}
}

func (f *fakeUserRepo) Get(ctx context.Context, userID string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *user
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.users[user.ID]; !ok {
		return db.ErrNotFound
	}
	cp := *user
	cp.UpdatedAt = time.Now().UTC()
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, userID string) error {
	delete(f.users, userID)
	return nil
}

func (f *fakeUserRepo) IncrementAPICalls(ctx context.Context, userID string) error {
	if _, ok := f.users[userID]; !ok {
		return db.ErrNotFound
	}
	f.users[userID].Usage.APICalls++
	f.increments["apiCalls"]++
	return nil
}

func (f *fakeUserRepo) IncrementSheetsCreated(ctx context.Context, userID string) error {
	if _, ok := f.users[userID]; !ok {
		return db.ErrNotFound
	}
	f.users[userID].Usage.SheetsCreated++
	f.increments["sheetsCreated"]++
	return nil
}

type fakePlanRepo struct {
	plans   map[string]*models.Plan
	listErr error
	nextID  int
}

func newFakePlanRepo(plans ...*models.Plan) *fakePlanRepo {
	f := &fakePlanRepo{plans: make(map[string]*models.Plan)}
	for _, p := range plans {
		f.nextID++
		cp := *p
		if cp.ID == "" {
			cp.ID = fmt.Sprintf("plan-%d", f.nextID)
		}
		f.plans[cp.ID] = &cp
	}
	return f
}

func (f *fakePlanRepo) Get(ctx context.Context, id string) (*models.Plan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlanRepo) GetByName(ctx context.Context, name string) (*models.Plan, error) {
	for _, p := range f.plans {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakePlanRepo) List(ctx context.Context) ([]*models.Plan, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.Plan, 0, len(f.plans))
	for _, p := range f.plans {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePlanRepo) Create(ctx context.Context, plan *models.Plan) (string, error) {
	f.nextID++
	id := fmt.Sprintf("plan-%d", f.nextID)
	cp := *plan
	cp.ID = id
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	f.plans[id] = &cp
	return id, nil
}

func (f *fakePlanRepo) Update(ctx context.Context, plan *models.Plan) error {
	if _, ok := f.plans[plan.ID]; !ok {
		return db.ErrNotFound
	}
	cp := *plan
	f.plans[plan.ID] = &cp
	return nil
}

func (f *fakePlanRepo) Delete(ctx context.Context, id string) error {
	delete(f.plans, id)
	return nil
}

type fakePaymentRepo struct {
	payments  map[string]*models.Payment
	createErr error
	emptyErr  error
	creates   int
	nextID    int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (f *fakePaymentRepo) Get(ctx context.Context, id string) (*models.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepo) List(ctx context.Context) ([]*models.Payment, error) {
	out := make([]*models.Payment, 0, len(f.payments))
	for _, p := range f.payments {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *models.Payment) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.creates++
	id := payment.ID
	if id == "" {
		f.nextID++
		id = fmt.Sprintf("payment-%d", f.nextID)
	}
	cp := *payment
	cp.ID = id
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	f.payments[id] = &cp
	return id, nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, payment *models.Payment) error {
	if _, ok := f.payments[payment.ID]; !ok {
		return db.ErrNotFound
	}
	cp := *payment
	f.payments[payment.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) Delete(ctx context.Context, id string) error {
	delete(f.payments, id)
	return nil
}

func (f *fakePaymentRepo) Empty(ctx context.Context) (bool, error) {
	if f.emptyErr != nil {
		return false, f.emptyErr
	}
	return len(f.payments) == 0, nil
}

type fakeProviderConfigRepo struct {
	configs map[string]*models.ProviderConfig
	setErr  error
}

func newFakeProviderConfigRepo() *fakeProviderConfigRepo {
	return &fakeProviderConfigRepo{configs: make(map[string]*models.ProviderConfig)}
}

func (f *fakeProviderConfigRepo) Get(ctx context.Context, provider string) (*models.ProviderConfig, error) {
	cfg, ok := f.configs[provider]
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *cfg
	return &cp, nil
}

func (f *fakeProviderConfigRepo) Set(ctx context.Context, provider string, cfg *models.ProviderConfig) error {
	if f.setErr != nil {
		return f.setErr
	}
	cp := *cfg
	cp.UpdatedAt = time.Now().UTC()
	f.configs[provider] = &cp
	return nil
}

type fakeProjectRepo struct {
	projects map[string]*models.Project
	nextID   int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*models.Project)}
}

func projectKey(ownerID, projectID string) string {
	return ownerID + "/" + projectID
}

func (f *fakeProjectRepo) Create(ctx context.Context, project *models.Project) (string, error) {
	f.nextID++
	id := fmt.Sprintf("project-%d", f.nextID)
	cp := *project
	cp.ID = id
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	f.projects[projectKey(project.OwnerID, id)] = &cp
	return id, nil
}

func (f *fakeProjectRepo) Get(ctx context.Context, ownerID, projectID string) (*models.Project, error) {
	p, ok := f.projects[projectKey(ownerID, projectID)]
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *p
	cp.Sheets = append([]models.Sheet(nil), p.Sheets...)
	return &cp, nil
}

func (f *fakeProjectRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Project, error) {
	out := make([]*models.Project, 0)
	for _, p := range f.projects {
		if p.OwnerID == ownerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProjectRepo) ListAll(ctx context.Context) ([]*models.Project, error) {
	out := make([]*models.Project, 0, len(f.projects))
	for _, p := range f.projects {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, project *models.Project) error {
	key := projectKey(project.OwnerID, project.ID)
	if _, ok := f.projects[key]; !ok {
		return db.ErrNotFound
	}
	cp := *project
	cp.Sheets = append([]models.Sheet(nil), project.Sheets...)
	cp.UpdatedAt = time.Now().UTC()
	f.projects[key] = &cp
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, ownerID, projectID string) error {
	delete(f.projects, projectKey(ownerID, projectID))
	return nil
}
