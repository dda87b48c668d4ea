package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// Custom errors for the UserService
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	// ErrUnknownTier means the subscription tier does not match any plan in
	// a non-empty plan catalog.
	ErrUnknownTier = errors.New("unknown subscription tier")
)

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
	planRepo db.PlanRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository, planRepo db.PlanRepository) UserService {
	return &userService{userRepo: userRepo, planRepo: planRepo}
}

func (s *userService) Get(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *userService) GetOrCreate(ctx context.Context, userID, email, displayName string) (*models.User, bool, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to load user: %w", err)
	}

	user = &models.User{
		ID:               userID,
		Email:            email,
		DisplayName:      displayName,
		Role:             models.RoleUser,
		SubscriptionTier: models.DefaultPlanName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to create user profile: %w", err)
	}
	return user, true, nil
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) Create(ctx context.Context, userID string, req models.CreateUserRequest) (*models.User, error) {
	if _, err := s.userRepo.Get(ctx, userID); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserExists, userID)
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	tier := req.SubscriptionTier
	if tier == "" {
		tier = models.DefaultPlanName
	}
	if err := s.validateTier(ctx, tier); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		ID:               userID,
		Email:            req.Email,
		DisplayName:      req.DisplayName,
		Role:             role,
		IsAdmin:          req.IsAdmin,
		SubscriptionTier: tier,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, userID string, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.SubscriptionTier != nil {
		if err := s.validateTier(ctx, *req.SubscriptionTier); err != nil {
			return nil, err
		}
		user.SubscriptionTier = *req.SubscriptionTier
	}

	// Zeroed so the store stamps the write time.
	user.UpdatedAt = time.Time{}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}

	user.UpdatedAt = time.Time{}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, userID string) error {
	if _, err := s.Get(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *userService) RecordAPICall(ctx context.Context, userID string) error {
	return s.userRepo.IncrementAPICalls(ctx, userID)
}

// validateTier accepts any tier while the plan catalog is empty or
// unreadable; once plans exist, the tier must match a plan name.
func (s *userService) validateTier(ctx context.Context, tier string) error {
	if tier == "" {
		return nil
	}
	plans, err := s.planRepo.List(ctx)
	if err != nil || len(plans) == 0 {
		return nil
	}
	for _, p := range plans {
		if strings.EqualFold(p.Name, tier) {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTier, tier)
}
