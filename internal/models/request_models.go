package models

// SignUpRequest is the body for email/password registration.
type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"displayName,omitempty"`
}

// SignInRequest is the body for email/password sign-in.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionRequest carries an ID token obtained client-side (e.g. from a
// federated popup sign-in) for verification and profile initialization.
type SessionRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UpdateProfileRequest is the body for self-service profile edits. Pointers
// distinguish "not provided" from an explicit empty value.
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
}

// CreateUserRequest is the admin body for creating a user outright.
type CreateUserRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	DisplayName      string `json:"displayName,omitempty"`
	Role             Role   `json:"role,omitempty"`
	IsAdmin          bool   `json:"isAdmin,omitempty"`
	SubscriptionTier string `json:"subscription,omitempty"`
}

// UpdateUserRequest is the admin body for editing a user profile.
type UpdateUserRequest struct {
	DisplayName      *string `json:"displayName,omitempty"`
	Role             *Role   `json:"role,omitempty"`
	IsAdmin          *bool   `json:"isAdmin,omitempty"`
	SubscriptionTier *string `json:"subscription,omitempty"`
}

// CreateProjectRequest is the body for creating a project.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

// UpdateProjectRequest is the body for editing a project.
type UpdateProjectRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
}

// CreateModelRequest is the admin body for registering a catalog entry by
// hand, outside of a provider sync.
type CreateModelRequest struct {
	OriginalID  string    `json:"originalId" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description,omitempty"`
	Provider    string    `json:"provider" binding:"required"`
	Type        ModelType `json:"type" binding:"required"`
}

// UpdateModelRequest is the admin body for editing a catalog entry. Status
// flips the activation state; sync never touches it afterwards.
type UpdateModelRequest struct {
	Name        *string      `json:"name,omitempty"`
	Description *string      `json:"description,omitempty"`
	Type        *ModelType   `json:"type,omitempty"`
	Status      *ModelStatus `json:"status,omitempty"`
}

// CreatePlanRequest is the admin body for adding a subscription plan.
type CreatePlanRequest struct {
	Name       string       `json:"name" binding:"required"`
	PriceCents int64        `json:"priceCents"`
	Interval   PlanInterval `json:"interval" binding:"required"`
	Features   []string     `json:"features,omitempty"`
	Active     *bool        `json:"active,omitempty"`
}

// UpdatePlanRequest is the admin body for editing a subscription plan.
type UpdatePlanRequest struct {
	Name       *string       `json:"name,omitempty"`
	PriceCents *int64        `json:"priceCents,omitempty"`
	Interval   *PlanInterval `json:"interval,omitempty"`
	Features   *[]string     `json:"features,omitempty"`
	Active     *bool         `json:"active,omitempty"`
}

// CreatePaymentRequest is the admin body for recording a payment.
type CreatePaymentRequest struct {
	UserID      string        `json:"userId,omitempty"`
	UserEmail   string        `json:"userEmail" binding:"required,email"`
	AmountCents int64         `json:"amountCents" binding:"required"`
	Status      PaymentStatus `json:"status" binding:"required"`
	Description string        `json:"description,omitempty"`
}

// UpdatePaymentRequest is the admin body for editing a payment record.
type UpdatePaymentRequest struct {
	AmountCents *int64         `json:"amountCents,omitempty"`
	Status      *PaymentStatus `json:"status,omitempty"`
	Description *string        `json:"description,omitempty"`
}

// UpdateProviderConfigRequest is the admin body for editing a provider's API
// key and switch.
type UpdateProviderConfigRequest struct {
	APIKey  *string `json:"apiKey,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// GenerateRequest asks the dispatcher to run one generation call.
type GenerateRequest struct {
	Prompt      string   `json:"prompt" binding:"required"`
	ModelID     string   `json:"modelId" binding:"required"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// SyncModelsRequest selects which provider catalogs to sync. An empty
// provider means all of them.
type SyncModelsRequest struct {
	Provider string `json:"provider,omitempty"`
}
