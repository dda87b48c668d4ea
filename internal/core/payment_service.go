package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// Custom errors for the PaymentService
var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// paymentService implements the PaymentService interface. Payments here are
// demonstration records, not a live ledger; the seeder below fills an empty
// collection with the built-in dataset.
type paymentService struct {
	paymentRepo db.PaymentRepository
}

// NewPaymentService creates a new PaymentService instance.
func NewPaymentService(paymentRepo db.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) Get(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := s.paymentRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPaymentNotFound, id)
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) List(ctx context.Context) ([]*models.Payment, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (s *paymentService) Create(ctx context.Context, req models.CreatePaymentRequest) (*models.Payment, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, req.Status)
	}

	payment := &models.Payment{
		UserID:      req.UserID,
		UserEmail:   req.UserEmail,
		AmountCents: req.AmountCents,
		Status:      req.Status,
		Description: req.Description,
	}
	id, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	payment.ID = id
	return payment, nil
}

func (s *paymentService) Update(ctx context.Context, id string, req models.UpdatePaymentRequest) (*models.Payment, error) {
	payment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, *req.Status)
	}

	if req.AmountCents != nil {
		payment.AmountCents = *req.AmountCents
	}
	if req.Status != nil {
		payment.Status = *req.Status
	}
	if req.Description != nil {
		payment.Description = *req.Description
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}

func (s *paymentService) EnsureSeeded(ctx context.Context) (int, error) {
	empty, err := s.paymentRepo.Empty(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to probe payments: %w", err)
	}
	if !empty {
		return 0, nil
	}

	seeded := 0
	for _, p := range mockPayments() {
		if _, err := s.paymentRepo.Create(ctx, p); err != nil {
			return seeded, fmt.Errorf("failed to seed payment %q: %w", p.ID, err)
		}
		seeded++
	}
	return seeded, nil
}

// mockPayments is the demonstration dataset shown in the console before any
// real records exist.
func mockPayments() []*models.Payment {
	return []*models.Payment{
		{
			ID:          "seed-payment-001",
			UserEmail:   "sarah.chen@example.com",
			AmountCents: 2900,
			Status:      models.PaymentStatusCompleted,
			Description: "Pro plan - monthly",
			CreatedAt:   time.Date(2025, time.June, 2, 14, 12, 0, 0, time.UTC),
		},
		{
			ID:          "seed-payment-002",
			UserEmail:   "marcus.lee@example.com",
			AmountCents: 2900,
			Status:      models.PaymentStatusCompleted,
			Description: "Pro plan - monthly",
			CreatedAt:   time.Date(2025, time.June, 5, 9, 48, 0, 0, time.UTC),
		},
		{
			ID:          "seed-payment-003",
			UserEmail:   "amelia.ortiz@example.com",
			AmountCents: 29900,
			Status:      models.PaymentStatusPending,
			Description: "Team plan - yearly",
			CreatedAt:   time.Date(2025, time.June, 11, 17, 3, 0, 0, time.UTC),
		},
		{
			ID:          "seed-payment-004",
			UserEmail:   "dev.patel@example.com",
			AmountCents: 2900,
			Status:      models.PaymentStatusFailed,
			Description: "Pro plan - monthly (card declined)",
			CreatedAt:   time.Date(2025, time.June, 12, 8, 30, 0, 0, time.UTC),
		},
		{
			ID:          "seed-payment-005",
			UserEmail:   "nina.kowalski@example.com",
			AmountCents: 9900,
			Status:      models.PaymentStatusCompleted,
			Description: "Pro plan - yearly upgrade",
			CreatedAt:   time.Date(2025, time.June, 18, 20, 55, 0, 0, time.UTC),
		},
	}
}
