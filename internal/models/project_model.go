package models

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusArchived ProjectStatus = "archived"
)

// Sheet is a single worksheet nested inside a project document.
type Sheet struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// Project represents a user-owned project stored in the per-user projects
// subcollection (users/{uid}/projects/{pid}).
type Project struct {
	ID          string        `json:"id" firestore:"-"`
	OwnerID     string        `json:"ownerId" firestore:"ownerId"`
	Name        string        `json:"name" firestore:"name"`
	Description string        `json:"description,omitempty" firestore:"description,omitempty"`
	Sheets      []Sheet       `json:"sheets,omitempty" firestore:"sheets,omitempty"`
	Status      ProjectStatus `json:"status" firestore:"status"`
	CreatedAt   time.Time     `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time     `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
