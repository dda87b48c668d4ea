package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

const auditCollection = "audit"

// firestoreAuditRepository implements AuditRepository using Firestore.
type firestoreAuditRepository struct {
	client *firestore.Client
}

// NewFirestoreAuditRepository creates a Firestore-backed AuditRepository.
func NewFirestoreAuditRepository(client *firestore.Client) AuditRepository {
	return &firestoreAuditRepository{client: client}
}

func (r *firestoreAuditRepository) Create(ctx context.Context, event *models.AuditEvent) error {
	docRef := r.client.Collection(auditCollection).NewDoc()
	event.ID = docRef.ID
	if _, err := docRef.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to record audit event: %w", err)
	}
	return nil
}

func (r *firestoreAuditRepository) ListRecent(ctx context.Context, limit int) ([]*models.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	iter := r.client.Collection(auditCollection).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var events []*models.AuditEvent
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate audit events: %w", err)
		}
		var event models.AuditEvent
		if err := doc.DataTo(&event); err != nil {
			return nil, fmt.Errorf("failed to decode audit event %q: %w", doc.Ref.ID, err)
		}
		event.ID = doc.Ref.ID
		events = append(events, &event)
	}
	return events, nil
}
