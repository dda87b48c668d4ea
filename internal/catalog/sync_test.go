package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// fakeModelRepo is an in-memory db.ModelRepository that counts writes and
// can fail on chosen document ids.
type fakeModelRepo struct {
	entries map[string]*models.Model
	writes  int
	failOn  map[string]error
}

func newFakeModelRepo() *fakeModelRepo {
	return &fakeModelRepo{
		entries: make(map[string]*models.Model),
		failOn:  make(map[string]error),
	}
}

func (r *fakeModelRepo) Get(_ context.Context, id string) (*models.Model, error) {
	m, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("model %q: %w", id, db.ErrNotFound)
	}
	cp := *m
	return &cp, nil
}

func (r *fakeModelRepo) List(_ context.Context) ([]*models.Model, error) {
	out := make([]*models.Model, 0, len(r.entries))
	for _, m := range r.entries {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeModelRepo) Create(_ context.Context, model *models.Model) error {
	if err := r.failOn[model.ID]; err != nil {
		return err
	}
	r.writes++
	cp := *model
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.entries[model.ID] = &cp
	return nil
}

func (r *fakeModelRepo) UpdateMetadata(_ context.Context, id string, meta models.ModelMetadata) error {
	if err := r.failOn[id]; err != nil {
		return err
	}
	m, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("model %q: %w", id, db.ErrNotFound)
	}
	r.writes++
	m.Name = meta.Name
	m.Description = meta.Description
	m.Provider = meta.Provider
	m.Type = meta.Type
	m.Source = meta.Source
	m.UpdatedAt = time.Now()
	return nil
}

func (r *fakeModelRepo) SetStatus(_ context.Context, id string, status models.ModelStatus, clearLegacy bool) error {
	if err := r.failOn[id]; err != nil {
		return err
	}
	m, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("model %q: %w", id, db.ErrNotFound)
	}
	r.writes++
	m.Status = status
	if clearLegacy {
		m.LegacyActive = nil
	}
	m.UpdatedAt = time.Now()
	return nil
}

func (r *fakeModelRepo) Update(_ context.Context, model *models.Model) error {
	if err := r.failOn[model.ID]; err != nil {
		return err
	}
	r.writes++
	cp := *model
	r.entries[model.ID] = &cp
	return nil
}

func (r *fakeModelRepo) Delete(_ context.Context, id string) error {
	r.writes++
	delete(r.entries, id)
	return nil
}

func newTestEngine(repo *fakeModelRepo) *Engine {
	return NewEngine(repo, zap.NewNop())
}

func TestEngine_Sync_CreatesInactiveEntry(t *testing.T) {
	repo := newFakeModelRepo()
	engine := newTestEngine(repo)

	res, err := engine.Sync(context.Background(), []Candidate{{
		OriginalID: "anthropic/claude-3.5-sonnet",
		Name:       "Claude 3.5 Sonnet",
		Provider:   models.ProviderOpenRouter,
		Type:       models.ModelTypeText,
	}})
	require.NoError(t, err)

	assert.Equal(t, Result{Created: 1}, res)
	require.Len(t, repo.entries, 1)

	entry, ok := repo.entries["anthropic-claude-3.5-sonnet"]
	require.True(t, ok, "entry should be keyed by the sanitized id")
	assert.Equal(t, "anthropic/claude-3.5-sonnet", entry.OriginalID)
	assert.Equal(t, models.ModelStatusInactive, entry.Status)
	assert.Equal(t, models.ProviderOpenRouter, entry.Source)
}

func TestEngine_Sync_PreservesAdminSetStatus(t *testing.T) {
	repo := newFakeModelRepo()
	engine := newTestEngine(repo)
	candidates := []Candidate{{
		OriginalID:  "openai/gpt-4o",
		Name:        "GPT-4o",
		Description: "first description",
		Provider:    models.ProviderOpenRouter,
		Type:        models.ModelTypeText,
	}}

	_, err := engine.Sync(context.Background(), candidates)
	require.NoError(t, err)

	// Admin flips the entry active between syncs.
	repo.entries["openai-gpt-4o"].Status = models.ModelStatusActive

	candidates[0].Description = "refreshed description"
	res, err := engine.Sync(context.Background(), candidates)
	require.NoError(t, err)

	assert.Equal(t, Result{Updated: 1}, res)
	assert.Len(t, repo.entries, 1, "re-sync must not create duplicates")

	entry := repo.entries["openai-gpt-4o"]
	assert.Equal(t, models.ModelStatusActive, entry.Status, "sync must not overwrite admin-set status")
	assert.Equal(t, "refreshed description", entry.Description)
}

func TestEngine_Sync_ContinuesPastFailedCandidate(t *testing.T) {
	repo := newFakeModelRepo()
	repo.failOn["bad-model"] = fmt.Errorf("write rejected")
	engine := newTestEngine(repo)

	res, err := engine.Sync(context.Background(), []Candidate{
		{OriginalID: "bad/model", Name: "Bad", Provider: models.ProviderOpenRouter, Type: models.ModelTypeText},
		{OriginalID: "good/model", Name: "Good", Provider: models.ProviderOpenRouter, Type: models.ModelTypeText},
	})
	require.NoError(t, err)

	assert.Equal(t, Result{Created: 1, Failed: 1}, res)
	assert.Contains(t, repo.entries, "good-model")
	assert.NotContains(t, repo.entries, "bad-model")
}

func TestEngine_Sync_SkipsMalformedCandidates(t *testing.T) {
	repo := newFakeModelRepo()
	engine := newTestEngine(repo)

	res, err := engine.Sync(context.Background(), []Candidate{
		{OriginalID: "", Name: "no id", Provider: models.ProviderOpenRouter, Type: models.ModelTypeText},
		{OriginalID: "x/y", Name: "bad type", Provider: models.ProviderOpenRouter, Type: "hologram"},
	})
	require.NoError(t, err)

	assert.Equal(t, Result{Skipped: 2}, res)
	assert.Empty(t, repo.entries)
}

func TestEngine_Sync_RejectsSanitizedIDCollision(t *testing.T) {
	repo := newFakeModelRepo()
	engine := newTestEngine(repo)

	_, err := engine.Sync(context.Background(), []Candidate{{
		OriginalID: "vendor/model",
		Name:       "Original",
		Provider:   models.ProviderOpenRouter,
		Type:       models.ModelTypeText,
	}})
	require.NoError(t, err)

	// A different original id sanitizing onto the same key must not repoint
	// the existing entry.
	res, err := engine.Sync(context.Background(), []Candidate{{
		OriginalID: "vendor\\model",
		Name:       "Impostor",
		Provider:   models.ProviderFalAI,
		Type:       models.ModelTypeImage,
	}})
	require.NoError(t, err)

	assert.Equal(t, Result{Failed: 1}, res)
	entry := repo.entries["vendor-model"]
	assert.Equal(t, "vendor/model", entry.OriginalID)
	assert.Equal(t, "Original", entry.Name)
}

func TestEngine_Sync_ContextCancellation(t *testing.T) {
	repo := newFakeModelRepo()
	engine := newTestEngine(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := engine.Sync(ctx, []Candidate{{
		OriginalID: "a/b", Name: "A", Provider: models.ProviderOpenRouter, Type: models.ModelTypeText,
	}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Result{}, res)
	assert.Empty(t, repo.entries)
}

func boolPtr(b bool) *bool { return &b }

func TestEngine_MigrateLegacyStatus(t *testing.T) {
	repo := newFakeModelRepo()
	repo.entries["legacy-active"] = &models.Model{
		ID: "legacy-active", OriginalID: "legacy/active",
		Type: models.ModelTypeText, LegacyActive: boolPtr(true),
	}
	repo.entries["legacy-inactive"] = &models.Model{
		ID: "legacy-inactive", OriginalID: "legacy/inactive",
		Type: models.ModelTypeText, LegacyActive: boolPtr(false),
	}
	repo.entries["legacy-unset"] = &models.Model{
		ID: "legacy-unset", OriginalID: "legacy/unset",
		Type: models.ModelTypeText,
	}
	repo.entries["already-migrated"] = &models.Model{
		ID: "already-migrated", OriginalID: "already/migrated",
		Type: models.ModelTypeText, Status: models.ModelStatusActive,
	}
	engine := newTestEngine(repo)

	res, err := engine.MigrateLegacyStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, MigrationResult{Examined: 4, Migrated: 3}, res)
	assert.Equal(t, models.ModelStatusActive, repo.entries["legacy-active"].Status)
	assert.Equal(t, models.ModelStatusInactive, repo.entries["legacy-inactive"].Status)
	assert.Equal(t, models.ModelStatusInactive, repo.entries["legacy-unset"].Status)
	assert.Nil(t, repo.entries["legacy-active"].LegacyActive, "migration must clear the legacy flag")
}

func TestEngine_MigrateLegacyStatus_SecondRunWritesNothing(t *testing.T) {
	repo := newFakeModelRepo()
	repo.entries["legacy-active"] = &models.Model{
		ID: "legacy-active", OriginalID: "legacy/active",
		Type: models.ModelTypeText, LegacyActive: boolPtr(true),
	}
	engine := newTestEngine(repo)

	_, err := engine.MigrateLegacyStatus(context.Background())
	require.NoError(t, err)
	writesAfterFirst := repo.writes

	res, err := engine.MigrateLegacyStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, MigrationResult{Examined: 1}, res)
	assert.Equal(t, writesAfterFirst, repo.writes, "second migration run must perform zero writes")
}

func TestEngine_SyncProvider_AdapterFailure(t *testing.T) {
	repo := newFakeModelRepo()
	engine := newTestEngine(repo)

	_, err := engine.SyncProvider(context.Background(), failingAdapter{})
	require.Error(t, err)
	assert.Empty(t, repo.entries)
}

type failingAdapter struct{}

func (failingAdapter) Name() string { return "broken" }
func (failingAdapter) Models(context.Context) ([]Candidate, error) {
	return nil, fmt.Errorf("listing unavailable")
}
