package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elynrose/gpt-cells-app-sub001/internal/catalog"
	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// Custom errors for the ModelService
var (
	ErrModelNotFound = errors.New("model not found")
	ErrModelExists   = errors.New("model already registered")
	ErrInvalidType   = errors.New("invalid model type")
)

// modelService implements the ModelService interface for direct admin edits.
type modelService struct {
	modelRepo db.ModelRepository
}

// NewModelService creates a new ModelService instance.
func NewModelService(modelRepo db.ModelRepository) ModelService {
	return &modelService{modelRepo: modelRepo}
}

func (s *modelService) Get(ctx context.Context, id string) (*models.Model, error) {
	entry, err := s.modelRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, id)
		}
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	return entry, nil
}

func (s *modelService) List(ctx context.Context) ([]*models.Model, error) {
	entries, err := s.modelRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	return entries, nil
}

func (s *modelService) Create(ctx context.Context, req models.CreateModelRequest) (*models.Model, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}

	id := catalog.SanitizeID(req.OriginalID)
	if _, err := s.modelRepo.Get(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrModelExists, id)
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check model: %w", err)
	}

	// Manual registrations start inactive like synced entries; activation
	// is a separate, deliberate step.
	entry := &models.Model{
		ID:          id,
		OriginalID:  req.OriginalID,
		Name:        req.Name,
		Description: req.Description,
		Provider:    req.Provider,
		Type:        req.Type,
		Status:      models.ModelStatusInactive,
		Source:      "manual",
	}
	if err := s.modelRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}
	return entry, nil
}

func (s *modelService) Update(ctx context.Context, id string, req models.UpdateModelRequest) (*models.Model, error) {
	entry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil && !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, *req.Type)
	}

	if req.Name != nil {
		entry.Name = *req.Name
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Type != nil {
		entry.Type = *req.Type
	}
	if req.Status != nil {
		entry.Status = *req.Status
	}

	entry.UpdatedAt = time.Time{}
	if err := s.modelRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update model: %w", err)
	}
	return entry, nil
}

func (s *modelService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.modelRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete model: %w", err)
	}
	return nil
}
