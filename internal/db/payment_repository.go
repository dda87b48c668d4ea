package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

const paymentsCollection = "payments"

// firestorePaymentRepository implements PaymentRepository using Firestore.
type firestorePaymentRepository struct {
	client *firestore.Client
}

// NewFirestorePaymentRepository creates a Firestore-backed PaymentRepository.
func NewFirestorePaymentRepository(client *firestore.Client) PaymentRepository {
	return &firestorePaymentRepository{client: client}
}

func (r *firestorePaymentRepository) Get(ctx context.Context, id string) (*models.Payment, error) {
	if id == "" {
		return nil, errors.New("payment id cannot be empty")
	}
	docSnap, err := r.client.Collection(paymentsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("payment %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get payment %q: %w", id, err)
	}

	var payment models.Payment
	if err := docSnap.DataTo(&payment); err != nil {
		return nil, fmt.Errorf("failed to decode payment %q: %w", id, err)
	}
	payment.ID = docSnap.Ref.ID
	return &payment, nil
}

func (r *firestorePaymentRepository) List(ctx context.Context) ([]*models.Payment, error) {
	iter := r.client.Collection(paymentsCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var payments []*models.Payment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate payments: %w", err)
		}
		var payment models.Payment
		if err := doc.DataTo(&payment); err != nil {
			return nil, fmt.Errorf("failed to decode payment %q: %w", doc.Ref.ID, err)
		}
		payment.ID = doc.Ref.ID
		payments = append(payments, &payment)
	}
	return payments, nil
}

func (r *firestorePaymentRepository) Create(ctx context.Context, payment *models.Payment) (string, error) {
	docRef := r.client.Collection(paymentsCollection).NewDoc()
	if payment.ID != "" {
		docRef = r.client.Collection(paymentsCollection).Doc(payment.ID)
	}
	payment.ID = docRef.ID
	if _, err := docRef.Create(ctx, payment); err != nil {
		return "", fmt.Errorf("failed to create payment: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestorePaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		return errors.New("payment ID cannot be empty")
	}
	if _, err := r.client.Collection(paymentsCollection).Doc(payment.ID).Set(ctx, payment); err != nil {
		return fmt.Errorf("failed to update payment %q: %w", payment.ID, err)
	}
	return nil
}

func (r *firestorePaymentRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("payment id cannot be empty")
	}
	if _, err := r.client.Collection(paymentsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete payment %q: %w", id, err)
	}
	return nil
}

func (r *firestorePaymentRepository) Empty(ctx context.Context) (bool, error) {
	iter := r.client.Collection(paymentsCollection).Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to probe payments collection: %w", err)
	}
	return false, nil
}
