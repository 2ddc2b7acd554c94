package dtos

import "github.com/thegrihome/grihome-api/internal/models"

type SignupRequest struct {
	Name     string  `json:"name" validate:"required"`
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Mobile   string  `json:"mobile" validate:"required"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"omitempty,oneof=BUYER SELLER AGENT ADMIN"`
	Company  *string `json:"companyName"`
}

type SignupResponse struct {
	Message string      `json:"message"`
	User    UserInfo    `json:"user"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

// UserInfo is the fixed public projection of a user. It deliberately carries
// no password hash and no updatedAt.
type UserInfo struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Mobile         string  `json:"mobile"`
	Role           string  `json:"role"`
	CompanyName    *string `json:"companyName,omitempty"`
	Image          *string `json:"image,omitempty"`
	EmailVerified  *string `json:"emailVerified"`
	MobileVerified *string `json:"mobileVerified"`
	CreatedAt      string  `json:"createdAt"`
}

// NewUserInfo shapes the projection from the model; dates become ISO-8601
// strings, nil verification timestamps stay null.
func NewUserInfo(u models.User) UserInfo {
	info := UserInfo{
		ID:          u.ID.String(),
		Name:        u.Name,
		Username:    u.Username,
		Email:       u.Email,
		Mobile:      u.Mobile,
		Role:        string(u.Role),
		CompanyName: u.CompanyName,
		Image:       u.ImageURL,
		CreatedAt:   ISOTime(u.CreatedAt),
	}
	if u.EmailVerified != nil {
		info.EmailVerified = ptr(ISOTime(*u.EmailVerified))
	}
	if u.MobileVerified != nil {
		info.MobileVerified = ptr(ISOTime(*u.MobileVerified))
	}
	return info
}
