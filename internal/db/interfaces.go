package db

import (
	"context"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// UserRepository defines persistence operations for user profiles.
type UserRepository interface {
	Get(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID string) error
	// Usage counters are bumped with atomic field increments so concurrent
	// requests do not lose updates.
	IncrementAPICalls(ctx context.Context, userID string) error
	IncrementSheetsCreated(ctx context.Context, userID string) error
}

// ProjectRepository defines persistence operations for projects, which live
// in a per-user subcollection.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) (string, error)
	Get(ctx context.Context, ownerID, projectID string) (*models.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Project, error)
	// ListAll runs a collection-group query across every user's projects.
	ListAll(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, ownerID, projectID string) error
}

// ModelRepository defines persistence operations for the model catalog. The
// document key is the sanitized model id.
type ModelRepository interface {
	Get(ctx context.Context, id string) (*models.Model, error)
	List(ctx context.Context) ([]*models.Model, error)
	Create(ctx context.Context, model *models.Model) error
	// UpdateMetadata refreshes the mutable descriptive fields of an entry
	// without touching its activation status.
	UpdateMetadata(ctx context.Context, id string, meta models.ModelMetadata) error
	// SetStatus writes the structured status field; with clearLegacy it also
	// removes the legacy isActive boolean in the same update.
	SetStatus(ctx context.Context, id string, status models.ModelStatus, clearLegacy bool) error
	Update(ctx context.Context, model *models.Model) error
	Delete(ctx context.Context, id string) error
}

// PlanRepository defines persistence operations for subscription plans.
type PlanRepository interface {
	Get(ctx context.Context, id string) (*models.Plan, error)
	GetByName(ctx context.Context, name string) (*models.Plan, error)
	List(ctx context.Context) ([]*models.Plan, error)
	Create(ctx context.Context, plan *models.Plan) (string, error)
	Update(ctx context.Context, plan *models.Plan) error
	Delete(ctx context.Context, id string) error
}

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	Get(ctx context.Context, id string) (*models.Payment, error)
	List(ctx context.Context) ([]*models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) (string, error)
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id string) error
	// Empty reports whether the collection holds no records; used by the
	// mock-data seeder.
	Empty(ctx context.Context) (bool, error)
}

// ProviderConfigRepository defines persistence operations for per-provider
// API key configuration stored in the admin collection.
type ProviderConfigRepository interface {
	Get(ctx context.Context, provider string) (*models.ProviderConfig, error)
	Set(ctx context.Context, provider string, cfg *models.ProviderConfig) error
}

// AuditRepository defines persistence operations for audit events.
type AuditRepository interface {
	Create(ctx context.Context, event *models.AuditEvent) error
	ListRecent(ctx context.Context, limit int) ([]*models.AuditEvent, error)
}
