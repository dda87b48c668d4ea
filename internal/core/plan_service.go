package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// Custom errors for the PlanService
var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrPlanExists   = errors.New("plan with this name already exists")
)

// planService implements the PlanService interface.
type planService struct {
	planRepo db.PlanRepository
}

// NewPlanService creates a new PlanService instance.
func NewPlanService(planRepo db.PlanRepository) PlanService {
	return &planService{planRepo: planRepo}
}

func (s *planService) Get(ctx context.Context, id string) (*models.Plan, error) {
	plan, err := s.planRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return plan, nil
}

func (s *planService) List(ctx context.Context) ([]*models.Plan, error) {
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

func (s *planService) Create(ctx context.Context, req models.CreatePlanRequest) (*models.Plan, error) {
	if _, err := s.planRepo.GetByName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlanExists, req.Name)
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check plan name: %w", err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	plan := &models.Plan{
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Interval:   req.Interval,
		Features:   req.Features,
		Active:     active,
	}
	id, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	plan.ID = id
	return plan, nil
}

func (s *planService) Update(ctx context.Context, id string, req models.UpdatePlanRequest) (*models.Plan, error) {
	plan, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.PriceCents != nil {
		plan.PriceCents = *req.PriceCents
	}
	if req.Interval != nil {
		plan.Interval = *req.Interval
	}
	if req.Features != nil {
		plan.Features = *req.Features
	}
	if req.Active != nil {
		plan.Active = *req.Active
	}

	plan.UpdatedAt = time.Time{}
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}
	return plan, nil
}

func (s *planService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.planRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}

func (s *planService) EnsureDefaultPlan(ctx context.Context) error {
	_, err := s.planRepo.GetByName(ctx, models.DefaultPlanName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("failed to check default plan: %w", err)
	}

	plan := &models.Plan{
		Name:     models.DefaultPlanName,
		Interval: models.PlanIntervalMonth,
		Features: []string{"5 sheets", "community models", "standard support"},
		Active:   true,
	}
	if _, err := s.planRepo.Create(ctx, plan); err != nil {
		return fmt.Errorf("failed to seed default plan: %w", err)
	}
	return nil
}
