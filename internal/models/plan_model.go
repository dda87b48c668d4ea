package models

import "time"

// PlanInterval is the billing cadence of a subscription plan.
type PlanInterval string

const (
	PlanIntervalMonth PlanInterval = "month"
	PlanIntervalYear  PlanInterval = "year"
)

// DefaultPlanName is the plan every new user starts on. It is seeded into
// the plan catalog at startup when missing.
const DefaultPlanName = "free"

// Plan is a subscription plan advertised in the console. Plans form a
// catalog; the per-user subscription tier references a plan by name.
type Plan struct {
	ID         string       `json:"id" firestore:"-"`
	Name       string       `json:"name" firestore:"name"`
	PriceCents int64        `json:"priceCents" firestore:"priceCents"`
	Interval   PlanInterval `json:"interval" firestore:"interval"`
	Features   []string     `json:"features,omitempty" firestore:"features,omitempty"`
	Active     bool         `json:"active" firestore:"active"`
	CreatedAt  time.Time    `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt  time.Time    `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
