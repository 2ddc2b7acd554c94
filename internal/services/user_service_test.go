package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/utils"
)

func testUser() *models.User {
	hash, _ := utils.HashPassword("s3cret-pass")
	return &models.User{
		ID:        uuid.New(),
		Name:      "Ravi Kumar",
		Username:  "ravik",
		Email:     "ravi@example.com",
		Mobile:    "+919876543210",
		Role:      models.RoleBuyer,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		PasswordHash: &hash,
	}
}

func TestVerifyMobileOTPMatrix(t *testing.T) {
	u := testUser()
	repo := newFakeUserRepo(u)
	svc := NewUserService(repo, &fakeCodeRepo{}, &fakeSender{})
	ctx := context.Background()

	for _, bad := range []string{"", "123456 ", " 123456", "012345", "1234567", "111111", "654321"} {
		err := svc.VerifyMobile(ctx, u.ID, bad)
		require.ErrorIs(t, err, utils.ErrInvalidOTP, "otp %q must be rejected", bad)
		require.Nil(t, u.MobileVerified)
	}

	require.NoError(t, svc.VerifyMobile(ctx, u.ID, OTPStubCode))
	require.NotNil(t, u.MobileVerified)
	require.Nil(t, u.EmailVerified, "mobile verification must not touch the email flag")
}

func TestVerifyEmailMarksEmailOnly(t *testing.T) {
	u := testUser()
	repo := newFakeUserRepo(u)
	svc := NewUserService(repo, &fakeCodeRepo{}, &fakeSender{})

	require.NoError(t, svc.VerifyEmail(context.Background(), u.ID, OTPStubCode))
	require.NotNil(t, u.EmailVerified)
	require.Nil(t, u.MobileVerified)
}

func TestVerifyUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeCodeRepo{}, &fakeSender{})

	err := svc.VerifyMobile(context.Background(), uuid.New(), OTPStubCode)
	require.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestRequestCodeDispatchesByChannel(t *testing.T) {
	u := testUser()
	codes := &fakeCodeRepo{}
	sender := &fakeSender{}
	svc := NewUserService(newFakeUserRepo(u), codes, sender)
	ctx := context.Background()

	require.NoError(t, svc.RequestCode(ctx, u.ID, "email"))
	require.Equal(t, []string{u.Email}, sender.emails)
	require.Empty(t, sender.sms)

	require.NoError(t, svc.RequestCode(ctx, u.ID, "mobile"))
	require.Equal(t, []string{u.Mobile}, sender.sms)

	// Every request leaves an audit row carrying the stub code.
	require.Equal(t, 2, codes.createCalls)
	for _, rec := range codes.codes {
		require.Equal(t, OTPStubCode, rec.Code)
		require.True(t, rec.ExpiresAt.After(time.Now()))
	}
}

func TestPasswordDisplay(t *testing.T) {
	u := testUser()
	svc := NewUserService(newFakeUserRepo(u), &fakeCodeRepo{}, &fakeSender{})
	ctx := context.Background()

	t.Run("no candidate", func(t *testing.T) {
		resp, err := svc.PasswordDisplay(ctx, u.ID, nil)
		require.NoError(t, err)
		require.Equal(t, PasswordMask, resp.PasswordDisplay)
		require.Len(t, []rune(resp.PasswordDisplay), 12)
		require.True(t, resp.HasPassword)
		require.False(t, resp.IsValidPassword)
	})

	t.Run("correct candidate", func(t *testing.T) {
		resp, err := svc.PasswordDisplay(ctx, u.ID, utils.Ptr("s3cret-pass"))
		require.NoError(t, err)
		require.True(t, resp.IsValidPassword)
		require.Equal(t, PasswordMask, resp.PasswordDisplay, "mask does not reflect the real password")
	})

	t.Run("wrong candidate", func(t *testing.T) {
		resp, err := svc.PasswordDisplay(ctx, u.ID, utils.Ptr("wrong"))
		require.NoError(t, err)
		require.False(t, resp.IsValidPassword)
	})

	t.Run("otp-only account", func(t *testing.T) {
		bare := testUser()
		bare.PasswordHash = nil
		svc := NewUserService(newFakeUserRepo(bare), &fakeCodeRepo{}, &fakeSender{})

		resp, err := svc.PasswordDisplay(ctx, bare.ID, utils.Ptr("anything"))
		require.NoError(t, err)
		require.False(t, resp.HasPassword)
		require.False(t, resp.IsValidPassword)
	})
}
