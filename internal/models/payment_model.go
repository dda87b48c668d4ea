package models

import "time"

// PaymentStatus is the settlement state of a payment record.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusPending, PaymentStatusFailed:
		return true
	}
	return false
}

// Payment is one payment record shown in the console. Records originate from
// a static mock dataset seeded at startup; there is no live ledger.
type Payment struct {
	ID          string        `json:"id" firestore:"-"`
	UserID      string        `json:"userId" firestore:"userId"`
	UserEmail   string        `json:"userEmail" firestore:"userEmail"`
	AmountCents int64         `json:"amountCents" firestore:"amountCents"`
	Status      PaymentStatus `json:"status" firestore:"status"`
	Description string        `json:"description,omitempty" firestore:"description,omitempty"`
	// CreatedAt keeps an explicit value when seeded; zero values are filled
	// with the server time on write.
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
