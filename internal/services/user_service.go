package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/notify"
	"github.com/thegrihome/grihome-api/internal/repositories"
	"github.com/thegrihome/grihome-api/internal/utils"
)

// OTPStubCode is the only code the deferred OTP provider stub accepts.
// Verification is an exact string compare; numbers, padded strings, and any
// other format fail.
const OTPStubCode = "123456"

// PasswordMask is the fixed 12-character display returned for any stored
// password, regardless of its real length.
const PasswordMask = "••••••••••••"

const verificationCodeTTL = 10 * time.Minute

type UserService interface {
	GetInfo(ctx context.Context, userID uuid.UUID) (*dtos.UserInfo, error)
	VerifyMobile(ctx context.Context, userID uuid.UUID, otp string) error
	VerifyEmail(ctx context.Context, userID uuid.UUID, otp string) error
	RequestCode(ctx context.Context, userID uuid.UUID, channel string) error
	PasswordDisplay(ctx context.Context, userID uuid.UUID, plaintext *string) (*dtos.GetPasswordResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
	codeRepo repositories.VerificationCodeRepository
	sender   notify.CodeSender
}

func NewUserService(
	userRepo repositories.UserRepository,
	codeRepo repositories.VerificationCodeRepository,
	sender notify.CodeSender,
) UserService {
	return &userService{userRepo: userRepo, codeRepo: codeRepo, sender: sender}
}

func (s *userService) GetInfo(ctx context.Context, userID uuid.UUID) (*dtos.UserInfo, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.ErrUserNotFound
	}
	info := dtos.NewUserInfo(*u)
	return &info, nil
}

func (s *userService) VerifyMobile(ctx context.Context, userID uuid.UUID, otp string) error {
	return s.verify(ctx, userID, otp, s.userRepo.SetMobileVerified)
}

func (s *userService) VerifyEmail(ctx context.Context, userID uuid.UUID, otp string) error {
	return s.verify(ctx, userID, otp, s.userRepo.SetEmailVerified)
}

func (s *userService) verify(
	ctx context.Context,
	userID uuid.UUID,
	otp string,
	mark func(context.Context, uuid.UUID, time.Time) error,
) error {
	if otp != OTPStubCode {
		return utils.ErrInvalidOTP
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return utils.ErrUserNotFound
	}
	return mark(ctx, userID, time.Now())
}

func (s *userService) RequestCode(ctx context.Context, userID uuid.UUID, channel string) error {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return utils.ErrUserNotFound
	}

	target := u.Mobile
	if channel == "email" {
		target = u.Email
	}

	rec := &models.VerificationCode{
		ID:        uuid.New(),
		UserID:    userID,
		Channel:   channel,
		Target:    target,
		Code:      OTPStubCode,
		ExpiresAt: time.Now().Add(verificationCodeTTL),
	}
	if err := s.codeRepo.Create(ctx, rec); err != nil {
		return err
	}

	if channel == "email" {
		return s.sender.SendEmailCode(ctx, target, rec.Code)
	}
	return s.sender.SendSMSCode(ctx, target, rec.Code)
}

func (s *userService) PasswordDisplay(ctx context.Context, userID uuid.UUID, plaintext *string) (*dtos.GetPasswordResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.ErrUserNotFound
	}

	resp := &dtos.GetPasswordResponse{
		PasswordDisplay: PasswordMask,
		HasPassword:     u.PasswordHash != nil && *u.PasswordHash != "",
	}
	if plaintext != nil && resp.HasPassword {
		resp.IsValidPassword = utils.CheckPasswordHash(*plaintext, *u.PasswordHash)
	}
	return resp, nil
}
