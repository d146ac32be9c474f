package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandm-backend/models"
	"brandm-backend/utils"
)

func newAuthFixture() (*AuthService, *fakeUserStore) {
	users := newFakeUserStore()
	return NewAuthService(users, utils.NewTokenIssuer("test-secret")), users
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, _ := newAuthFixture()

	result, err := svc.Register(context.Background(), models.CreateUserRequest{
		Username: "jordan", Email: "jordan@example.com", Password: "correcthorse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "jordan", result.User.Username)
	assert.Equal(t, models.RoleUser, result.User.Role)
	assert.False(t, result.User.ID.IsZero())
}

func TestRegisterAlwaysCreatesCustomerRole(t *testing.T) {
	svc, _ := newAuthFixture()

	// Role in the payload is ignored on self-registration.
	result, err := svc.Register(context.Background(), models.CreateUserRequest{
		Username: "mallory", Email: "mallory@example.com", Password: "correcthorse", Role: models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, result.User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	req := models.CreateUserRequest{Username: "jordan", Email: "jordan@example.com", Password: "correcthorse"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "Email already in use", MessageOf(err))
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.CreateUserRequest{
		Username: "jordan", Email: "jordan@example.com", Password: "correcthorse",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, models.LoginRequest{Email: "jordan@example.com", Password: "correcthorse"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "jordan@example.com", result.User.Email)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.CreateUserRequest{
		Username: "jordan", Email: "jordan@example.com", Password: "correcthorse",
	})
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "correcthorse"})
	_, wrongErr := svc.Login(ctx, models.LoginRequest{Email: "jordan@example.com", Password: "wrongpassword"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, KindUnauthorized, KindOf(unknownErr))
	assert.Equal(t, KindUnauthorized, KindOf(wrongErr))
	assert.Equal(t, MessageOf(unknownErr), MessageOf(wrongErr))
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := utils.NewTokenIssuer("test-secret")

	token, err := issuer.Generate("64f000000000000000000001", models.RoleAdmin)
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := utils.NewTokenIssuer("secret-a").Generate("64f000000000000000000001", models.RoleUser)
	require.NoError(t, err)

	_, err = utils.NewTokenIssuer("secret-b").Parse(token)
	assert.Error(t, err)
}
