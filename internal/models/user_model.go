package models

import "time"

// Role is the access level stored on a user profile.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// UsageStats tracks per-user consumption counters shown in the admin console.
type UsageStats struct {
	APICalls      int64 `json:"apiCalls" firestore:"apiCalls"`
	StorageBytes  int64 `json:"storageBytes" firestore:"storageBytes"`
	SheetsCreated int64 `json:"sheetsCreated" firestore:"sheetsCreated"`
}

// User represents a user profile document. The Firebase Auth UID is the
// Firestore document ID.
type User struct {
	ID               string     `json:"id" firestore:"-"`
	Email            string     `json:"email" firestore:"email"`
	DisplayName      string     `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	Role             Role       `json:"role" firestore:"role"`
	IsAdmin          bool       `json:"isAdmin" firestore:"isAdmin"`
	SubscriptionTier string     `json:"subscription" firestore:"subscription"`
	Usage            UsageStats `json:"usage" firestore:"usage"`
	CreatedAt        time.Time  `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt        time.Time  `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// HasAdminAccess reports whether the profile grants console access. The role
// string is canonical; the boolean flag is honored for profiles written
// before the role field existed.
func (u *User) HasAdminAccess() bool {
	return u.Role == RoleAdmin || u.IsAdmin
}
