package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleBuyer  UserRole = "BUYER"
	RoleSeller UserRole = "SELLER"
	RoleAgent  UserRole = "AGENT"
	RoleAdmin  UserRole = "ADMIN"
)

type User struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Mobile         string     `json:"mobile"`
	Role           UserRole   `json:"role"`
	CompanyName    *string    `json:"companyName,omitempty"`
	ImageURL       *string    `json:"image,omitempty"`
	PasswordHash   *string    `json:"-"`
	EmailVerified  *time.Time `json:"emailVerified"`
	MobileVerified *time.Time `json:"mobileVerified"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
