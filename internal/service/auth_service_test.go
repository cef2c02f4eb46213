package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "unit-test-secret-not-for-production"

func newAuthService(t *testing.T) (*testDeps, *AuthService) {
	t.Helper()
	deps := setupDeps(t)
	return deps, NewAuthService(deps.userRepo, testSecret, 30*time.Minute)
}

func TestAuthService_RegisterHashesPassword(t *testing.T) {
	t.Parallel()

	_, svc := newAuthService(t)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ana@example.com",
		Password: "correct-horse",
		Name:     "Ana",
		Role:     "Vocalist",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	assert.NotEqual(t, "correct-horse", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("correct-horse")))
}

func TestAuthService_RegisterValidation(t *testing.T) {
	t.Parallel()

	_, svc := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"bad email", RegisterInput{Email: "not-an-email", Password: "longenough", Name: "Ana"}},
		{"short password", RegisterInput{Email: "ana@example.com", Password: "short", Name: "Ana"}},
		{"blank name", RegisterInput{Email: "ana@example.com", Password: "longenough", Name: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", appErrCode(t, err))
		})
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	_, svc := newAuthService(t)
	ctx := context.Background()

	in := RegisterInput{Email: "dup@example.com", Password: "longenough", Name: "First"}
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)

	in.Name = "Second"
	_, err = svc.Register(ctx, in)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", appErrCode(t, err))
}

func TestAuthService_LoginAndResolveToken(t *testing.T) {
	t.Parallel()

	_, svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Email: "ana@example.com", Password: "correct-horse", Name: "Ana",
	})
	require.NoError(t, err)

	token, err := svc.Login(ctx, "ana@example.com", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := svc.ResolveToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	_, svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Email: "ana@example.com", Password: "correct-horse", Name: "Ana",
	})
	require.NoError(t, err)

	_, badPassword := svc.Login(ctx, "ana@example.com", "wrong-password")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "whatever-pw")

	require.Error(t, badPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, badPassword.Error(), unknownEmail.Error())
	assert.Equal(t, "UNAUTHORIZED", appErrCode(t, badPassword))
	assert.Equal(t, "UNAUTHORIZED", appErrCode(t, unknownEmail))
}

func TestAuthService_ResolveToken_Expired(t *testing.T) {
	t.Parallel()

	deps := setupDeps(t)
	// Negative TTL issues tokens that are already expired
	svc := NewAuthService(deps.userRepo, testSecret, -time.Minute)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Email: "ana@example.com", Password: "correct-horse", Name: "Ana",
	})
	require.NoError(t, err)

	token, err := svc.Login(ctx, "ana@example.com", "correct-horse")
	require.NoError(t, err)

	_, err = svc.ResolveToken(ctx, token)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", appErrCode(t, err))
}

func TestAuthService_ResolveToken_Garbage(t *testing.T) {
	t.Parallel()

	_, svc := newAuthService(t)

	_, err := svc.ResolveToken(context.Background(), "not.a.token")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", appErrCode(t, err))
}

func TestAuthService_ResolveToken_WrongSecret(t *testing.T) {
	t.Parallel()

	deps, svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Email: "ana@example.com", Password: "correct-horse", Name: "Ana",
	})
	require.NoError(t, err)

	forger := NewAuthService(deps.userRepo, "some-other-secret", 30*time.Minute)
	forged, err := forger.Login(ctx, "ana@example.com", "correct-horse")
	require.NoError(t, err)

	_, err = svc.ResolveToken(ctx, forged)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", appErrCode(t, err))
}

func TestAuthService_ResolveToken_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	_, svc := newAuthService(t)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "ana@example.com",
		"iss": "duet-api",
		"aud": "duet-client",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ResolveToken(context.Background(), token)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", appErrCode(t, err))
}
