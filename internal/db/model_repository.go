package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

const modelsCollection = "models"

// firestoreModelRepository implements ModelRepository using Firestore. The
// sanitized model id is the document ID; Firestore forbids path separators in
// document IDs, which is why callers sanitize before reaching this layer.
type firestoreModelRepository struct {
	client *firestore.Client
}

// NewFirestoreModelRepository creates a Firestore-backed ModelRepository.
func NewFirestoreModelRepository(client *firestore.Client) ModelRepository {
	return &firestoreModelRepository{client: client}
}

func (r *firestoreModelRepository) Get(ctx context.Context, id string) (*models.Model, error) {
	if id == "" {
		return nil, errors.New("model id cannot be empty")
	}
	docSnap, err := r.client.Collection(modelsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("model %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get model %q: %w", id, err)
	}

	var model models.Model
	if err := docSnap.DataTo(&model); err != nil {
		return nil, fmt.Errorf("failed to decode model %q: %w", id, err)
	}
	model.ID = docSnap.Ref.ID
	return &model, nil
}

func (r *firestoreModelRepository) List(ctx context.Context) ([]*models.Model, error) {
	// No OrderBy here: Firestore drops documents missing the ordered field,
	// and the legacy-status migration must see every entry.
	iter := r.client.Collection(modelsCollection).Documents(ctx)
	defer iter.Stop()

	var out []*models.Model
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate models: %w", err)
		}
		var model models.Model
		if err := doc.DataTo(&model); err != nil {
			return nil, fmt.Errorf("failed to decode model %q: %w", doc.Ref.ID, err)
		}
		model.ID = doc.Ref.ID
		out = append(out, &model)
	}
	return out, nil
}

func (r *firestoreModelRepository) Create(ctx context.Context, model *models.Model) error {
	if model.ID == "" {
		return errors.New("model ID cannot be empty")
	}
	if _, err := r.client.Collection(modelsCollection).Doc(model.ID).Create(ctx, model); err != nil {
		return fmt.Errorf("failed to create model %q: %w", model.ID, err)
	}
	return nil
}

func (r *firestoreModelRepository) UpdateMetadata(ctx context.Context, id string, meta models.ModelMetadata) error {
	if id == "" {
		return errors.New("model id cannot be empty")
	}
	updates := []firestore.Update{
		{Path: "name", Value: meta.Name},
		{Path: "description", Value: meta.Description},
		{Path: "provider", Value: meta.Provider},
		{Path: "type", Value: meta.Type},
		{Path: "source", Value: meta.Source},
		{Path: "updatedAt", Value: time.Now().UTC()},
	}
	if _, err := r.client.Collection(modelsCollection).Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("model %q: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to update model metadata %q: %w", id, err)
	}
	return nil
}

func (r *firestoreModelRepository) SetStatus(ctx context.Context, id string, s models.ModelStatus, clearLegacy bool) error {
	if id == "" {
		return errors.New("model id cannot be empty")
	}
	updates := []firestore.Update{
		{Path: "status", Value: s},
		{Path: "updatedAt", Value: time.Now().UTC()},
	}
	if clearLegacy {
		updates = append(updates, firestore.Update{Path: "isActive", Value: firestore.Delete})
	}
	if _, err := r.client.Collection(modelsCollection).Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("model %q: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to set model status %q: %w", id, err)
	}
	return nil
}

func (r *firestoreModelRepository) Update(ctx context.Context, model *models.Model) error {
	if model.ID == "" {
		return errors.New("model ID cannot be empty")
	}
	if _, err := r.client.Collection(modelsCollection).Doc(model.ID).Set(ctx, model); err != nil {
		return fmt.Errorf("failed to update model %q: %w", model.ID, err)
	}
	return nil
}

func (r *firestoreModelRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("model id cannot be empty")
	}
	if _, err := r.client.Collection(modelsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete model %q: %w", id, err)
	}
	return nil
}
