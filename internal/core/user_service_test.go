package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

func planNamed(name string, active bool) *models.Plan {
	return &models.Plan{
		Name:     name,
		Interval: models.PlanIntervalMonth,
		Active:   active,
	}
}

func TestUserService_GetOrCreate_CreatesDefaultProfile(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, newFakePlanRepo())

	user, created, err := svc.GetOrCreate(context.Background(), "uid-1", "ada@example.com", "Ada")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "uid-1", user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, models.DefaultPlanName, user.SubscriptionTier)
	assert.False(t, user.HasAdminAccess())
}

func TestUserService_GetOrCreate_ReturnsExistingProfile(t *testing.T) {
	users := newFakeUserRepo()
	users.users["uid-1"] = &models.User{
		ID:               "uid-1",
		Email:            "ada@example.com",
		Role:             models.RoleAdmin,
		SubscriptionTier: "pro",
	}
	svc := NewUserService(users, newFakePlanRepo())

	user, created, err := svc.GetOrCreate(context.Background(), "uid-1", "ada@example.com", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "pro", user.SubscriptionTier)
}

func TestUserService_Create_DefaultsRoleAndTier(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, newFakePlanRepo())

	user, err := svc.Create(context.Background(), "uid-2", models.CreateUserRequest{
		Email:    "grace@example.com",
		Password: "s3cret!",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, models.DefaultPlanName, user.SubscriptionTier)
}

func TestUserService_Create_RejectsDuplicate(t *testing.T) {
	users := newFakeUserRepo()
	users.users["uid-1"] = &models.User{ID: "uid-1", Email: "ada@example.com"}
	svc := NewUserService(users, newFakePlanRepo())

	_, err := svc.Create(context.Background(), "uid-1", models.CreateUserRequest{
		Email:    "ada@example.com",
		Password: "s3cret!",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestUserService_Create_RejectsUnknownTier(t *testing.T) {
	plans := newFakePlanRepo(planNamed("free", true), planNamed("pro", true))
	svc := NewUserService(newFakeUserRepo(), plans)

	_, err := svc.Create(context.Background(), "uid-3", models.CreateUserRequest{
		Email:            "lin@example.com",
		Password:         "s3cret!",
		SubscriptionTier: "platinum",
	})
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestUserService_Create_AcceptsAnyTierWhenCatalogEmpty(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), newFakePlanRepo())

	user, err := svc.Create(context.Background(), "uid-3", models.CreateUserRequest{
		Email:            "lin@example.com",
		Password:         "s3cret!",
		SubscriptionTier: "platinum",
	})
	require.NoError(t, err)
	assert.Equal(t, "platinum", user.SubscriptionTier)
}

func TestUserService_Create_AcceptsAnyTierWhenCatalogUnreadable(t *testing.T) {
	plans := newFakePlanRepo(planNamed("free", true))
	plans.listErr = assert.AnError
	svc := NewUserService(newFakeUserRepo(), plans)

	user, err := svc.Create(context.Background(), "uid-3", models.CreateUserRequest{
		Email:            "lin@example.com",
		Password:         "s3cret!",
		SubscriptionTier: "platinum",
	})
	require.NoError(t, err)
	assert.Equal(t, "platinum", user.SubscriptionTier)
}

func TestUserService_Update_AppliesPartialEdit(t *testing.T) {
	users := newFakeUserRepo()
	users.users["uid-1"] = &models.User{
		ID:               "uid-1",
		Email:            "ada@example.com",
		DisplayName:      "Ada",
		Role:             models.RoleAdmin,
		SubscriptionTier: "pro",
	}
	svc := NewUserService(users, newFakePlanRepo())

	name := "Ada L."
	user, err := svc.Update(context.Background(), "uid-1", models.UpdateUserRequest{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", user.DisplayName)
	assert.Equal(t, models.RoleAdmin, user.Role, "untouched fields must survive a partial edit")
	assert.Equal(t, "pro", user.SubscriptionTier)
}

func TestUserService_Update_TierMatchIsCaseInsensitive(t *testing.T) {
	users := newFakeUserRepo()
	users.users["uid-1"] = &models.User{ID: "uid-1", Email: "ada@example.com", SubscriptionTier: "free"}
	plans := newFakePlanRepo(planNamed("free", true), planNamed("pro", true))
	svc := NewUserService(users, plans)

	tier := "PRO"
	user, err := svc.Update(context.Background(), "uid-1", models.UpdateUserRequest{SubscriptionTier: &tier})
	require.NoError(t, err)
	assert.Equal(t, "PRO", user.SubscriptionTier)
}

func TestUserService_Delete_MissingUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), newFakePlanRepo())

	err := svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_RecordAPICall(t *testing.T) {
	users := newFakeUserRepo()
	users.users["uid-1"] = &models.User{ID: "uid-1", Email: "ada@example.com"}
	svc := NewUserService(users, newFakePlanRepo())

	require.NoError(t, svc.RecordAPICall(context.Background(), "uid-1"))
	require.NoError(t, svc.RecordAPICall(context.Background(), "uid-1"))
	assert.Equal(t, int64(2), users.users["uid-1"].Usage.APICalls)
}
