package handlers

import (
	"net/http"
	"time"

	"voxia/internal/http/middleware"
	"voxia/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler covers registration, login and the password reset flow.
type AuthHandler struct {
	Auth func(c *gin.Context) services.AuthService
}

func NewAuthHandler(users services.UserStore, mailer services.ResetMailer, secret []byte, tokenTTL time.Duration, resetBase string) AuthHandler {
	return AuthHandler{
		Auth: func(c *gin.Context) services.AuthService {
			return services.AuthService{
				Users:     users,
				Mailer:    mailer,
				JWTSecret: secret,
				TokenTTL:  tokenTTL,
				ResetBase: resetBase,
				RequestID: middleware.GetRequestID(c),
			}
		},
	}
}

// POST /api/auth/register
func (h AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}

	u, token, err := h.Auth(c).Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, "User created successfully", gin.H{
		"user":  u.Public(),
		"token": token,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	u, token, err := h.Auth(c).Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Login successful", gin.H{
		"user":  u.Public(),
		"token": token,
	})
}

type fetchTokenRequest struct {
	Email string `json:"email" binding:"required"`
}

// POST /api/auth/fetch-token
func (h AuthHandler) FetchToken(c *gin.Context) {
	var req fetchTokenRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	token, err := h.Auth(c).FetchToken(c.Request.Context(), req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Token fetched successfully", gin.H{"token": token})
}

// GET /api/auth/profile
func (h AuthHandler) Profile(c *gin.Context) {
	u, err := h.Auth(c).Profile(c.Request.Context(), middleware.AuthUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Profile data", gin.H{"user": u.Public()})
}

// PUT /api/auth/profile
func (h AuthHandler) UpdateProfile(c *gin.Context) {
	var patch services.ProfilePatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	u, err := h.Auth(c).UpdateProfile(c.Request.Context(), middleware.AuthUserID(c), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "User details updated successfully", gin.H{"user": u.Public()})
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/auth/forgot-password
func (h AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := h.Auth(c).ForgotPassword(c.Request.Context(), req.Email); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Password reset link has been sent to your email", nil)
}

type resetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /api/auth/reset-password
func (h AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := h.Auth(c).ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Password has been reset successfully", nil)
}
