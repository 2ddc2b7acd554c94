package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCode records an issued email/mobile verification code so the
// cleanup job can prune expired ones. Verification itself is handled by the
// user service.
type VerificationCode struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Channel   string    `json:"channel"` // "email" or "mobile"
	Target    string    `json:"target"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
