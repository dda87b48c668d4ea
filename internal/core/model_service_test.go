package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

type fakeModelRepo struct {
	entries map[string]*models.Model
}

func newFakeModelRepo() *fakeModelRepo {
	return &fakeModelRepo{entries: make(map[string]*models.Model)}
}

func (f *fakeModelRepo) Get(ctx context.Context, id string) (*models.Model, error) {
	m, ok := f.entries[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeModelRepo) List(ctx context.Context) ([]*models.Model, error) {
	out := make([]*models.Model, 0, len(f.entries))
	for _, m := range f.entries {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeModelRepo) Create(ctx context.Context, model *models.Model) error {
	cp := *model
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	f.entries[model.ID] = &cp
	return nil
}

func (f *fakeModelRepo) UpdateMetadata(ctx context.Context, id string, meta models.ModelMetadata) error {
	m, ok := f.entries[id]
	if !ok {
		return db.ErrNotFound
	}
	m.Name = meta.Name
	m.Description = meta.Description
	m.Provider = meta.Provider
	m.Type = meta.Type
	m.Source = meta.Source
	m.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeModelRepo) SetStatus(ctx context.Context, id string, status models.ModelStatus, clearLegacy bool) error {
	m, ok := f.entries[id]
	if !ok {
		return db.ErrNotFound
	}
	m.Status = status
	if clearLegacy {
		m.LegacyActive = nil
	}
	return nil
}

func (f *fakeModelRepo) Update(ctx context.Context, model *models.Model) error {
	if _, ok := f.entries[model.ID]; !ok {
		return db.ErrNotFound
	}
	cp := *model
	cp.UpdatedAt = time.Now().UTC()
	f.entries[model.ID] = &cp
	return nil
}

func (f *fakeModelRepo) Delete(ctx context.Context, id string) error {
	delete(f.entries, id)
	return nil
}

func TestModelService_Create_SanitizesDocumentID(t *testing.T) {
	repo := newFakeModelRepo()
	svc := NewModelService(repo)

	entry, err := svc.Create(context.Background(), models.CreateModelRequest{
		OriginalID: "acme/great-model",
		Name:       "Great Model",
		Provider:   models.ProviderOpenRouter,
		Type:       models.ModelTypeText,
	})
	require.NoError(t, err)
	assert.Equal(t, "acme-great-model", entry.ID)
	assert.Equal(t, "acme/great-model", entry.OriginalID, "the provider-facing id keeps its separators")
	assert.Equal(t, models.ModelStatusInactive, entry.Status)
	assert.Equal(t, "manual", entry.Source)
}

func TestModelService_Create_RejectsDuplicate(t *testing.T) {
	repo := newFakeModelRepo()
	svc := NewModelService(repo)

	req := models.CreateModelRequest{
		OriginalID: "acme/great-model",
		Name:       "Great Model",
		Provider:   models.ProviderOpenRouter,
		Type:       models.ModelTypeText,
	}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrModelExists)
}

func TestModelService_Create_RejectsInvalidType(t *testing.T) {
	svc := NewModelService(newFakeModelRepo())

	_, err := svc.Create(context.Background(), models.CreateModelRequest{
		OriginalID: "acme/great-model",
		Name:       "Great Model",
		Provider:   models.ProviderOpenRouter,
		Type:       models.ModelType("hologram"),
	})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestModelService_Update_ActivatesEntry(t *testing.T) {
	repo := newFakeModelRepo()
	svc := NewModelService(repo)

	entry, err := svc.Create(context.Background(), models.CreateModelRequest{
		OriginalID: "acme/great-model",
		Name:       "Great Model",
		Provider:   models.ProviderOpenRouter,
		Type:       models.ModelTypeText,
	})
	require.NoError(t, err)

	status := models.ModelStatusActive
	updated, err := svc.Update(context.Background(), entry.ID, models.UpdateModelRequest{Status: &status})
	require.NoError(t, err)
	assert.True(t, updated.IsActive())
	assert.Equal(t, "Great Model", updated.Name)
}

func TestModelService_Delete_Missing(t *testing.T) {
	svc := NewModelService(newFakeModelRepo())

	err := svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrModelNotFound)
}
