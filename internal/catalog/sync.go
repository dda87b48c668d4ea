package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// Result summarizes one sync run.
type Result struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// MigrationResult summarizes one legacy-status migration run. A run over a
// fully migrated catalog reports zero Migrated.
type MigrationResult struct {
	Examined int `json:"examined"`
	Migrated int `json:"migrated"`
	Failed   int `json:"failed"`
}

// Engine reconciles provider candidate lists against the model catalog
// store. It upserts by sanitized id, preserves admin-set activation status on
// update, and defaults new entries to inactive.
type Engine struct {
	models db.ModelRepository
	logger *zap.Logger
}

// NewEngine creates a sync engine over the given catalog repository.
func NewEngine(models db.ModelRepository, logger *zap.Logger) *Engine {
	return &Engine{models: models, logger: logger}
}

// SyncProvider fetches an adapter's candidate list and syncs it. The error
// is non-nil only when the adapter itself fails or the context ends; store
// failures stay per-candidate inside the Result.
func (e *Engine) SyncProvider(ctx context.Context, adapter ProviderAdapter) (Result, error) {
	candidates, err := adapter.Models(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list %s models: %w", adapter.Name(), err)
	}
	return e.Sync(ctx, candidates)
}

// Sync upserts each candidate into the catalog store. Writes are issued
// sequentially, each awaited before the next. A per-candidate failure is
// logged and counted; the run continues with the remaining candidates. The
// returned error is non-nil only when the context ends mid-run, in which
// case the Result covers the candidates processed so far.
func (e *Engine) Sync(ctx context.Context, candidates []Candidate) (Result, error) {
	var res Result
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if c.OriginalID == "" || !c.Type.Valid() {
			e.logger.Warn("skipping malformed model candidate",
				zap.String("originalId", c.OriginalID),
				zap.String("type", string(c.Type)))
			res.Skipped++
			continue
		}

		id := SanitizeID(c.OriginalID)
		existing, err := e.models.Get(ctx, id)
		switch {
		case err == nil:
			if existing.OriginalID != "" && existing.OriginalID != c.OriginalID {
				// Two distinct provider ids sanitized onto the same key.
				// Overwriting would silently repoint the entry, so the
				// candidate is rejected instead.
				e.logger.Error("sanitized id collision",
					zap.String("id", id),
					zap.String("existingOriginalId", existing.OriginalID),
					zap.String("candidateOriginalId", c.OriginalID))
				res.Failed++
				continue
			}
			if err := e.models.UpdateMetadata(ctx, id, models.ModelMetadata{
				Name:        c.Name,
				Description: c.Description,
				Provider:    c.Provider,
				Type:        c.Type,
				Source:      c.Provider,
			}); err != nil {
				e.logger.Error("failed to update model entry",
					zap.String("id", id), zap.Error(err))
				res.Failed++
				continue
			}
			res.Updated++

		case errors.Is(err, db.ErrNotFound):
			entry := &models.Model{
				ID:          id,
				OriginalID:  c.OriginalID,
				Name:        c.Name,
				Description: c.Description,
				Provider:    c.Provider,
				Type:        c.Type,
				Status:      models.ModelStatusInactive,
				Source:      c.Provider,
			}
			if err := e.models.Create(ctx, entry); err != nil {
				e.logger.Error("failed to create model entry",
					zap.String("id", id), zap.Error(err))
				res.Failed++
				continue
			}
			res.Created++

		default:
			e.logger.Error("failed to load model entry",
				zap.String("id", id), zap.Error(err))
			res.Failed++
		}
	}
	return res, nil
}

// MigrateLegacyStatus backfills the structured status field on entries that
// still carry only the legacy isActive boolean, clearing the boolean in the
// same write. Entries that already have a status are left untouched, so a
// second run over a migrated catalog performs zero writes.
func (e *Engine) MigrateLegacyStatus(ctx context.Context) (MigrationResult, error) {
	entries, err := e.models.List(ctx)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("failed to list catalog entries: %w", err)
	}

	var res MigrationResult
	for _, m := range entries {
		res.Examined++
		if m.Status != "" {
			continue
		}

		status := models.ModelStatusInactive
		if m.LegacyActive != nil && *m.LegacyActive {
			status = models.ModelStatusActive
		}
		if err := e.models.SetStatus(ctx, m.ID, status, true); err != nil {
			e.logger.Error("failed to migrate model status",
				zap.String("id", m.ID), zap.Error(err))
			res.Failed++
			continue
		}
		res.Migrated++
	}

	e.logger.Info("legacy status migration finished",
		zap.Int("examined", res.Examined),
		zap.Int("migrated", res.Migrated),
		zap.Int("failed", res.Failed))
	return res, nil
}
