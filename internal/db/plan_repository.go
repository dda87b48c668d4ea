package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

const plansCollection = "plans"

// firestorePlanRepository implements PlanRepository using Firestore.
type firestorePlanRepository struct {
	client *firestore.Client
}

// NewFirestorePlanRepository creates a Firestore-backed PlanRepository.
func NewFirestorePlanRepository(client *firestore.Client) PlanRepository {
	return &firestorePlanRepository{client: client}
}

func (r *firestorePlanRepository) Get(ctx context.Context, id string) (*models.Plan, error) {
	if id == "" {
		return nil, errors.New("plan id cannot be empty")
	}
	docSnap, err := r.client.Collection(plansCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("plan %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get plan %q: %w", id, err)
	}

	var plan models.Plan
	if err := docSnap.DataTo(&plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan %q: %w", id, err)
	}
	plan.ID = docSnap.Ref.ID
	return &plan, nil
}

func (r *firestorePlanRepository) GetByName(ctx context.Context, name string) (*models.Plan, error) {
	if name == "" {
		return nil, errors.New("plan name cannot be empty")
	}
	iter := r.client.Collection(plansCollection).Where("name", "==", name).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("plan named %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query plan by name %q: %w", name, err)
	}

	var plan models.Plan
	if err := doc.DataTo(&plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan %q: %w", doc.Ref.ID, err)
	}
	plan.ID = doc.Ref.ID
	return &plan, nil
}

func (r *firestorePlanRepository) List(ctx context.Context) ([]*models.Plan, error) {
	iter := r.client.Collection(plansCollection).Documents(ctx)
	defer iter.Stop()

	var plans []*models.Plan
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate plans: %w", err)
		}
		var plan models.Plan
		if err := doc.DataTo(&plan); err != nil {
			return nil, fmt.Errorf("failed to decode plan %q: %w", doc.Ref.ID, err)
		}
		plan.ID = doc.Ref.ID
		plans = append(plans, &plan)
	}
	return plans, nil
}

func (r *firestorePlanRepository) Create(ctx context.Context, plan *models.Plan) (string, error) {
	docRef := r.client.Collection(plansCollection).NewDoc()
	plan.ID = docRef.ID
	if _, err := docRef.Create(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to create plan %q: %w", plan.Name, err)
	}
	return docRef.ID, nil
}

func (r *firestorePlanRepository) Update(ctx context.Context, plan *models.Plan) error {
	if plan.ID == "" {
		return errors.New("plan ID cannot be empty")
	}
	if _, err := r.client.Collection(plansCollection).Doc(plan.ID).Set(ctx, plan); err != nil {
		return fmt.Errorf("failed to update plan %q: %w", plan.ID, err)
	}
	return nil
}

func (r *firestorePlanRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("plan id cannot be empty")
	}
	if _, err := r.client.Collection(plansCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete plan %q: %w", id, err)
	}
	return nil
}
