package core

import (
	"context"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// UserService defines user profile operations.
type UserService interface {
	Get(ctx context.Context, userID string) (*models.User, error)
	// GetOrCreate retrieves a user by ID, creating a default profile when
	// none exists. The bool reports whether a profile was created.
	GetOrCreate(ctx context.Context, userID, email, displayName string) (*models.User, bool, error)
	List(ctx context.Context) ([]*models.User, error)
	// Create stores the profile for an already-provisioned auth account.
	Create(ctx context.Context, userID string, req models.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, userID string, req models.UpdateUserRequest) (*models.User, error)
	// UpdateProfile applies a self-service edit, which touches fewer fields
	// than an admin update.
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error)
	Delete(ctx context.Context, userID string) error
	RecordAPICall(ctx context.Context, userID string) error
}

// ProjectService defines project operations within a user's subcollection.
type ProjectService interface {
	Create(ctx context.Context, ownerID string, req models.CreateProjectRequest) (*models.Project, error)
	Get(ctx context.Context, ownerID, projectID string) (*models.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Project, error)
	ListAll(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, ownerID, projectID string, req models.UpdateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, ownerID, projectID string) error
	// AddSheet appends a sheet to the project and bumps the owner's
	// sheets-created usage counter.
	AddSheet(ctx context.Context, ownerID, projectID, name string) (*models.Project, error)
}

// ModelService defines admin operations on the model catalog. Provider syncs
// go through the catalog engine instead.
type ModelService interface {
	Get(ctx context.Context, id string) (*models.Model, error)
	List(ctx context.Context) ([]*models.Model, error)
	Create(ctx context.Context, req models.CreateModelRequest) (*models.Model, error)
	Update(ctx context.Context, id string, req models.UpdateModelRequest) (*models.Model, error)
	Delete(ctx context.Context, id string) error
}

// PlanService defines subscription plan operations.
type PlanService interface {
	Get(ctx context.Context, id string) (*models.Plan, error)
	List(ctx context.Context) ([]*models.Plan, error)
	Create(ctx context.Context, req models.CreatePlanRequest) (*models.Plan, error)
	Update(ctx context.Context, id string, req models.UpdatePlanRequest) (*models.Plan, error)
	Delete(ctx context.Context, id string) error
	// EnsureDefaultPlan seeds the default plan when the catalog lacks it.
	EnsureDefaultPlan(ctx context.Context) error
}

// PaymentService defines payment record operations.
type PaymentService interface {
	Get(ctx context.Context, id string) (*models.Payment, error)
	List(ctx context.Context) ([]*models.Payment, error)
	Create(ctx context.Context, req models.CreatePaymentRequest) (*models.Payment, error)
	Update(ctx context.Context, id string, req models.UpdatePaymentRequest) (*models.Payment, error)
	Delete(ctx context.Context, id string) error
	// EnsureSeeded inserts the built-in mock dataset when the collection is
	// empty, returning how many records it wrote. Idempotent.
	EnsureSeeded(ctx context.Context) (int, error)
}

// ProviderConfigService defines admin operations on provider API settings.
type ProviderConfigService interface {
	Get(ctx context.Context, provider string) (*models.ProviderConfig, error)
	Update(ctx context.Context, provider string, req models.UpdateProviderConfigRequest) (*models.ProviderConfig, error)
}

// AuditService records administrative actions. Recording is best effort: a
// failed write is logged and never fails the operation being audited.
type AuditService interface {
	Record(ctx context.Context, event *models.AuditEvent)
	ListRecent(ctx context.Context, limit int) ([]*models.AuditEvent, error)
}
