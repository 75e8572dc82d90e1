package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/dtos"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/middleware"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/services"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

var authValidate = validator.New()

// AuthController handles registration, the two role logins, logout and
// the role-gated dashboard identities.
type AuthController struct {
	registration *services.RegistrationService
	auth         *services.AuthService
}

func NewAuthController(registration *services.RegistrationService, auth *services.AuthService) *AuthController {
	return &AuthController{registration: registration, auth: auth}
}

// POST /api/v1/auth/register
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid registration fields", err)
		return
	}

	role, err := c.registration.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidRole):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidRole, "Role must be renter or agent")
		case errors.Is(err, utils.ErrEmailExists):
			utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeEmailExists, "That email is already registered")
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Registration failed", err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.RegisterResponse{
		Role:    role,
		Message: "Registered. You can now log in.",
	})
}

// POST /api/v1/auth/renter/login
func (c *AuthController) LoginRenter(w http.ResponseWriter, r *http.Request) {
	c.login(w, r, middleware.RoleRenter)
}

// POST /api/v1/auth/agent/login
func (c *AuthController) LoginAgent(w http.ResponseWriter, r *http.Request) {
	c.login(w, r, middleware.RoleAgent)
}

func (c *AuthController) login(w http.ResponseWriter, r *http.Request, role string) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid email format", err)
		return
	}

	var (
		sess  *middleware.Session
		token string
		err   error
	)
	if role == middleware.RoleRenter {
		sess, token, err = c.auth.LoginRenter(r.Context(), req.Email)
	} else {
		sess, token, err = c.auth.LoginAgent(r.Context(), req.Email)
	}
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Login failed", err)
		return
	}
	if sess == nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized,
			"Email not found or not registered as "+role,
		)
		return
	}

	middleware.SetSessionCookie(w, token, c.auth.SessionTTL())
	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		Role:        sess.Role,
		ActorID:     sess.ActorID,
		DisplayName: sess.DisplayName,
		AccessToken: token,
	})
}

// POST /api/v1/auth/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	utils.RespondWithJSON(w, http.StatusOK, dtos.LogoutResponse{Message: "Logged out"})
}

// GET /api/v1/renter/dashboard and /api/v1/agent/dashboard — the
// role-gated landing identity; the middleware has already checked the
// role, so this just echoes who is logged in.
func (c *AuthController) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := sessionOr401(w, r)
	if sess == nil {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sess)
}
