package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"brandm-backend/models"
)

func TestUserCreateWithRole(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	user, err := svc.Create(context.Background(), models.CreateUserRequest{
		Username: "ops", Email: "ops@example.com", Password: "correcthorse", Role: models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NotEqual(t, "correcthorse", user.Password)
}

func TestUserCreateDefaultsToCustomerRole(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	user, err := svc.Create(context.Background(), models.CreateUserRequest{
		Username: "jordan", Email: "jordan@example.com", Password: "correcthorse",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	req := models.CreateUserRequest{Username: "jordan", Email: "jordan@example.com", Password: "correcthorse"}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestUserUpdateHashesNewPassword(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	ctx := context.Background()

	user, err := svc.Create(ctx, models.CreateUserRequest{
		Username: "jordan", Email: "jordan@example.com", Password: "correcthorse",
	})
	require.NoError(t, err)

	newPassword := "batterystaple"
	updated, err := svc.Update(ctx, user.ID, models.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte(newPassword)))
}

func TestUserUpdateEmailCollision(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	first, err := svc.Create(ctx, models.CreateUserRequest{
		Username: "jordan", Email: "jordan@example.com", Password: "correcthorse",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.CreateUserRequest{
		Username: "casey", Email: "casey@example.com", Password: "correcthorse",
	})
	require.NoError(t, err)

	taken := "casey@example.com"
	_, err = svc.Update(ctx, first.ID, models.UpdateUserRequest{Email: &taken})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))

	// Re-submitting your own email is not a collision.
	own := "jordan@example.com"
	_, err = svc.Update(ctx, first.ID, models.UpdateUserRequest{Email: &own})
	assert.NoError(t, err)
}

func TestUpdateMeIgnoresRole(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	user, err := svc.Create(ctx, models.CreateUserRequest{
		Username: "jordan", Email: "jordan@example.com", Password: "correcthorse",
	})
	require.NoError(t, err)

	admin := models.RoleAdmin
	name := "jordan-v2"
	updated, err := svc.UpdateMe(ctx, user.ID, models.UpdateUserRequest{Username: &name, Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, "jordan-v2", updated.Username)
	assert.Equal(t, models.RoleUser, updated.Role)
}

func TestUserDelete(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	user, err := svc.Create(ctx, models.CreateUserRequest{
		Username: "jordan", Email: "jordan@example.com", Password: "correcthorse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID))

	err = svc.Delete(ctx, user.ID)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}
