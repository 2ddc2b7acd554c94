package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/thegrihome/grihome-api/internal/config"
	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/middleware"
	"github.com/thegrihome/grihome-api/internal/services"
	"github.com/thegrihome/grihome-api/internal/utils"
)

var validate = validator.New()

type AuthController struct {
	authService services.AuthService
	cfg         *config.Config
	debug       bool
}

func NewAuthController(authService services.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{authService: authService, cfg: cfg, debug: cfg.Debug()}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req dtos.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	if req.Name == "" || req.Username == "" || req.Email == "" || req.Mobile == "" || req.Password == "" {
		utils.RespondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid email format", err, c.debug)
		return
	}

	u, err := c.authService.Signup(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmailExists):
			utils.RespondError(w, http.StatusConflict, "Email already registered", err, c.debug)
		case errors.Is(err, utils.ErrMobileExists):
			utils.RespondError(w, http.StatusConflict, "Mobile number already registered", err, c.debug)
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.SignupResponse{
		Message: "User registered successfully",
		User:    dtos.NewUserInfo(*u),
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	if req.Identifier == "" || req.Password == "" {
		utils.RespondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	u, token, err := c.authService.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid credentials", nil, c.debug)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.cfg.AccessTokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    dtos.NewUserInfo(*u),
	})
}
