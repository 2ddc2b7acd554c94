package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/utils"
)

func newTestAuthService(t *testing.T, repo *fakeUserRepo) (AuthService, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return NewAuthService(repo, key, time.Hour), key
}

func signupRequest() dtos.SignupRequest {
	return dtos.SignupRequest{
		Name:     "Ravi Kumar",
		Username: "ravik",
		Email:    "Ravi@Example.COM",
		Mobile:   "+919876543210",
		Password: "s3cret-pass",
	}
}

func TestSignupNormalizesEmailAndDefaultsRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(t, repo)

	u, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)
	require.Equal(t, "ravi@example.com", u.Email)
	require.Equal(t, models.RoleBuyer, u.Role)
	require.NotNil(t, u.PasswordHash)
	require.NotEqual(t, "s3cret-pass", *u.PasswordHash)
	require.Equal(t, 1, repo.createCalls)
}

func TestSignupDuplicates(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	// Same email, different case and mobile.
	dup := signupRequest()
	dup.Mobile = "+919999999999"
	_, err = svc.Signup(ctx, dup)
	require.ErrorIs(t, err, utils.ErrEmailExists)

	// Same mobile, fresh email.
	dup = signupRequest()
	dup.Email = "other@example.com"
	_, err = svc.Signup(ctx, dup)
	require.ErrorIs(t, err, utils.ErrMobileExists)

	require.Equal(t, 1, repo.createCalls)
}

func TestLoginByEmailAndMobile(t *testing.T) {
	repo := newFakeUserRepo()
	svc, key := newTestAuthService(t, repo)
	ctx := context.Background()

	created, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	u, token, err := svc.Login(ctx, "RAVI@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.Equal(t, created.ID, u.ID)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)
	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	require.Equal(t, created.ID.String(), sub)

	_, _, err = svc.Login(ctx, "+919876543210", "s3cret-pass")
	require.NoError(t, err)
}

func TestLoginRejections(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ravi@example.com", "wrong-pass")
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "s3cret-pass")
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "+911111111111", "s3cret-pass")
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
