package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/thegrihome/grihome-api/internal/config"
	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/middleware"
	"github.com/thegrihome/grihome-api/internal/services"
	"github.com/thegrihome/grihome-api/internal/utils"
)

type UserController struct {
	userService     services.UserService
	propertyService services.PropertyService
	debug           bool
}

func NewUserController(userService services.UserService, propertyService services.PropertyService, cfg *config.Config) *UserController {
	return &UserController{
		userService:     userService,
		propertyService: propertyService,
		debug:           cfg.Debug(),
	}
}

func (c *UserController) Info(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	info, err := c.userService.GetInfo(r.Context(), userID)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			utils.RespondMessage(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.UserInfoResponse{User: *info})
}

func (c *UserController) VerifyMobile(w http.ResponseWriter, r *http.Request) {
	c.verifyOTP(w, r, c.userService.VerifyMobile, "Mobile verified successfully")
}

func (c *UserController) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	c.verifyOTP(w, r, c.userService.VerifyEmail, "Email verified successfully")
}

// verifyOTP is shared by the mobile and email verification endpoints, which
// differ only in which timestamp the service sets.
func (c *UserController) verifyOTP(
	w http.ResponseWriter,
	r *http.Request,
	verify func(ctx context.Context, userID uuid.UUID, otp string) error,
	successMsg string,
) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	if req.OTP == "" {
		utils.RespondMessage(w, http.StatusBadRequest, "OTP is required")
		return
	}

	if err := verify(r.Context(), userID, req.OTP); err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidOTP):
			utils.RespondMessage(w, http.StatusBadRequest, "Invalid OTP")
		case errors.Is(err, utils.ErrUserNotFound):
			utils.RespondMessage(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		}
		return
	}

	utils.RespondMessage(w, http.StatusOK, successMsg)
}

func (c *UserController) RequestOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.RequestOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	if req.Channel == "" {
		utils.RespondMessage(w, http.StatusBadRequest, "Channel is required")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid channel", err, c.debug)
		return
	}

	if err := c.userService.RequestCode(r.Context(), userID, req.Channel); err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			utils.RespondMessage(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	utils.RespondMessage(w, http.StatusOK, "OTP sent successfully")
}

func (c *UserController) GetPassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Body is optional; an absent or empty body means display-only.
	var req dtos.GetPasswordRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	resp, err := c.userService.PasswordDisplay(r.Context(), userID, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			utils.RespondMessage(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *UserController) Properties(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	props, err := c.propertyService.ListOwnerProperties(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}
	if props == nil {
		props = []dtos.UserProperty{}
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.UserPropertiesResponse{Properties: props})
}
