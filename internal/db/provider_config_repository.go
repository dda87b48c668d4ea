package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

const adminCollection = "admin"

// providerConfigDocs maps a provider name to its settings document in the
// admin collection.
var providerConfigDocs = map[string]string{
	models.ProviderOpenRouter: "openrouter-config",
	models.ProviderFalAI:      "fal-ai-config",
}

// firestoreProviderConfigRepository implements ProviderConfigRepository using
// Firestore documents under the admin collection.
type firestoreProviderConfigRepository struct {
	client *firestore.Client
}

// NewFirestoreProviderConfigRepository creates a Firestore-backed ProviderConfigRepository.
func NewFirestoreProviderConfigRepository(client *firestore.Client) ProviderConfigRepository {
	return &firestoreProviderConfigRepository{client: client}
}

func (r *firestoreProviderConfigRepository) Get(ctx context.Context, provider string) (*models.ProviderConfig, error) {
	docID, ok := providerConfigDocs[provider]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q", provider)
	}

	docSnap, err := r.client.Collection(adminCollection).Doc(docID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("provider config %q: %w", provider, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get provider config %q: %w", provider, err)
	}

	var cfg models.ProviderConfig
	if err := docSnap.DataTo(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode provider config %q: %w", provider, err)
	}
	return &cfg, nil
}

func (r *firestoreProviderConfigRepository) Set(ctx context.Context, provider string, cfg *models.ProviderConfig) error {
	docID, ok := providerConfigDocs[provider]
	if !ok {
		return fmt.Errorf("unknown provider %q", provider)
	}
	if _, err := r.client.Collection(adminCollection).Doc(docID).Set(ctx, cfg); err != nil {
		return fmt.Errorf("failed to store provider config %q: %w", provider, err)
	}
	return nil
}
