package services

import (
	"context"
	"crypto/rsa"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/repositories"
	"github.com/thegrihome/grihome-api/internal/utils"
)

type AuthService interface {
	Signup(ctx context.Context, req dtos.SignupRequest) (*models.User, error)
	Login(ctx context.Context, identifier, password string) (*models.User, string, error)
	IssueAccessToken(userID uuid.UUID) (string, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	signKey   *rsa.PrivateKey
	accessTTL time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, signKey *rsa.PrivateKey, accessTTL time.Duration) AuthService {
	return &authService{
		userRepo:  userRepo,
		signKey:   signKey,
		accessTTL: accessTTL,
	}
}

func (s *authService) Signup(ctx context.Context, req dtos.SignupRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if existing, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, utils.ErrEmailExists
	}
	if existing, err := s.userRepo.GetByMobile(ctx, req.Mobile); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, utils.ErrMobileExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.RoleBuyer
	}

	u := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Username:     req.Username,
		Email:        email,
		Mobile:       req.Mobile,
		Role:         role,
		CompanyName:  req.Company,
		PasswordHash: &hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	var (
		u   *models.User
		err error
	)
	if strings.Contains(identifier, "@") {
		u, err = s.userRepo.GetByEmail(ctx, strings.ToLower(identifier))
	} else {
		u, err = s.userRepo.GetByMobile(ctx, identifier)
	}
	if err != nil {
		return nil, "", err
	}
	if u == nil || u.PasswordHash == nil || !utils.CheckPasswordHash(password, *u.PasswordHash) {
		return nil, "", utils.ErrInvalidCredentials
	}

	token, err := s.IssueAccessToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *authService) IssueAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.signKey)
}
