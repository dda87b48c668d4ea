package models

import "time"

// Provider name tags used on catalog entries and provider configuration.
const (
	ProviderOpenRouter = "openrouter"
	ProviderFalAI      = "fal-ai"
)

// ModelType classifies what a model generates.
type ModelType string

const (
	ModelTypeText  ModelType = "text"
	ModelTypeImage ModelType = "image"
	ModelTypeAudio ModelType = "audio"
	ModelTypeVideo ModelType = "video"
	ModelTypeCode  ModelType = "code"
)

// Valid reports whether t is one of the known model types.
func (t ModelType) Valid() bool {
	switch t {
	case ModelTypeText, ModelTypeImage, ModelTypeAudio, ModelTypeVideo, ModelTypeCode:
		return true
	}
	return false
}

// ModelStatus is the activation state of a catalog entry. New entries default
// to inactive; only an admin flips them active.
type ModelStatus string

const (
	ModelStatusActive   ModelStatus = "active"
	ModelStatusInactive ModelStatus = "inactive"
)

// Model is one catalog entry. The document ID is the sanitized provider id
// (path separators replaced with hyphens); OriginalID keeps the provider's
// own id for outbound API calls.
type Model struct {
	ID          string      `json:"id" firestore:"-"`
	OriginalID  string      `json:"originalId" firestore:"originalId"`
	Name        string      `json:"name" firestore:"name"`
	Description string      `json:"description,omitempty" firestore:"description,omitempty"`
	Provider    string      `json:"provider" firestore:"provider"`
	Type        ModelType   `json:"type" firestore:"type"`
	Status      ModelStatus `json:"status" firestore:"status"`
	Source      string      `json:"source" firestore:"source"`
	CreatedAt   time.Time   `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time   `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`

	// LegacyActive mirrors the pre-status boolean field. It is read by the
	// status migration and cleared afterwards; new writes never set it.
	LegacyActive *bool `json:"-" firestore:"isActive,omitempty"`
}

// IsActive reports whether the entry is enabled for generation.
func (m *Model) IsActive() bool {
	return m.Status == ModelStatusActive
}

// ModelMetadata carries the descriptive fields a provider sync may refresh.
// Activation status is deliberately absent: sync never changes it.
type ModelMetadata struct {
	Name        string
	Description string
	Provider    string
	Type        ModelType
	Source      string
}
