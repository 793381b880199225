package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salonhub/salon-backend/internal/config"
	"github.com/salonhub/salon-backend/internal/googleauth"
	"github.com/salonhub/salon-backend/internal/httperr"
	"github.com/salonhub/salon-backend/internal/httpresp"
	"github.com/salonhub/salon-backend/internal/middleware"
	"github.com/salonhub/salon-backend/internal/models"
	identity "github.com/salonhub/salon-backend/internal/usecase/identity"
	"github.com/salonhub/salon-backend/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	db            *gorm.DB
	config        *config.Config
	passwordReset *identity.PasswordReset
	refresh       *identity.RefreshSession
	verifier      googleauth.Verifier
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	passwordReset *identity.PasswordReset,
	refresh *identity.RefreshSession,
	verifier googleauth.Verifier,
) *AuthHandler {
	return &AuthHandler{
		db:            db,
		config:        cfg,
		passwordReset: passwordReset,
		refresh:       refresh,
		verifier:      verifier,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Role      string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type ForgetPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	ResetOTP    string `json:"resetOTP" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// ======================================================
// SIGNUP / LOGIN / LOGOUT
// ======================================================

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide all the required fields.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsValidEmail(email) {
		httperr.BadRequest(c, "invalid_email", "Please enter a valid email.")
		return
	}
	if !validators.IsValidPhone(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Please enter a valid phone number.")
		return
	}
	if !validators.IsValidPassword(req.Password) {
		httperr.Unprocessable(c, "weak_password",
			"Password must be at least 6 characters with one uppercase letter, one lowercase letter, one number and one special character.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).
		Where("email = ? OR phone = ?", email, req.Phone).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "user_exists", "User already exists with this email or phone.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not create user.")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "user_exists", "User already exists with this email or phone.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Could not create user.")
		return
	}

	httpresp.Created(c, "User created successfully", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not log in.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	accessToken, refreshToken, err := h.issueTokens(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not log in.")
		return
	}

	setAuthCookies(c, accessToken, refreshToken, h.config)

	httpresp.OK(c, "User logged in successfully", gin.H{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("refresh_token", "")

	clearAuthCookies(c)

	httpresp.OK(c, "User logged out", gin.H{})
}

// ======================================================
// REFRESH TOKEN ROTATION
// ======================================================

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	incoming, _ := c.Cookie("refreshToken")
	if incoming == "" {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			incoming = req.RefreshToken
		}
	}
	if incoming == "" {
		httperr.BadRequest(c, "missing_refresh_token", "Refresh token is required.")
		return
	}

	userID, err := parseRefreshToken(incoming, h.config)
	if err != nil {
		httperr.Unauthorized(c, "invalid_refresh_token", "Invalid refresh token.")
		return
	}

	user, err := h.refresh.Execute(c.Request.Context(), userID, incoming)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		// Stale or already-spent token.
		httperr.Unauthorized(c, "refresh_token_reused", "Refresh token is expired or used.")
		return
	}

	accessToken, refreshToken, err := h.issueTokens(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not rotate tokens.")
		return
	}

	setAuthCookies(c, accessToken, refreshToken, h.config)

	httpresp.OK(c, "Access and refresh tokens generated successfully", gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// ======================================================
// PASSWORD CHANGE / RESET
// ======================================================

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Both current and new password are required.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		httperr.Unauthorized(c, "invalid_current_password", "Current password is incorrect.")
		return
	}

	if !validators.IsValidPassword(req.NewPassword) {
		httperr.Unprocessable(c, "weak_password", "New password does not meet the password policy.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not change password.")
		return
	}

	if err := h.db.Model(&user).Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "failed_to_update_password", "Could not change password.")
		return
	}

	httpresp.OK(c, "Password changed successfully", gin.H{})
}

func (h *AuthHandler) ForgetPassword(c *gin.Context) {
	var req ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_email", "Email is required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	sentTo, err := h.passwordReset.Request(c.Request.Context(), email)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "user_not_found"):
			httperr.NotFound(c, "user_not_found", "User not found.")
		case httperr.IsBusiness(err, "mail_failed"):
			httperr.Internal(c, "mail_failed", "Failed to send password reset mail.")
		default:
			httperr.Internal(c, "reset_request_failed", "Failed to process password reset request.")
		}
		return
	}

	httpresp.OK(c, "Password reset OTP sent successfully", gin.H{"email": sentTo})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email, OTP, and new password are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	resetFor, err := h.passwordReset.Reset(c.Request.Context(), email, req.ResetOTP, req.NewPassword)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "user_not_found"):
			httperr.NotFound(c, "user_not_found", "User not found.")
		case httperr.IsBusiness(err, "otp_not_generated"):
			httperr.BadRequest(c, "otp_not_generated", "OTP not generated or expired.")
		case httperr.IsBusiness(err, "invalid_otp"):
			httperr.BadRequest(c, "invalid_otp", "Invalid OTP.")
		case httperr.IsBusiness(err, "otp_expired"):
			httperr.BadRequest(c, "otp_expired", "OTP has expired.")
		case httperr.IsBusiness(err, "weak_password"):
			httperr.Unprocessable(c, "weak_password", "New password does not meet the password policy.")
		default:
			httperr.Internal(c, "failed_to_update_password", "Failed to reset password.")
		}
		return
	}

	httpresp.OK(c, "Password reset successfully", gin.H{"email": resetFor})
}

// ======================================================
// GOOGLE LOGIN
// ======================================================

func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_google_token", "Google token is required.")
		return
	}

	identity, err := h.verifier.Verify(c.Request.Context(), req.IDToken)
	if err != nil {
		httperr.Unauthorized(c, "invalid_google_token", "Invalid Google token.")
		return
	}

	var user models.User
	err = h.db.Where("email = ?", identity.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First Google sign-in: provision a local account with an
		// unusable random password.
		randomPassword := make([]byte, 16)
		if _, err := rand.Read(randomPassword); err != nil {
			httperr.Internal(c, "internal_error", "Could not create user.")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(randomPassword)), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "internal_error", "Could not create user.")
			return
		}

		user = models.User{
			FirstName:     identity.GivenName,
			LastName:      identity.FamilyName,
			Email:         identity.Email,
			PasswordHash:  string(hashed),
			GoogleID:      &identity.SubjectID,
			EmailVerified: identity.EmailVerified,
			Role:          models.RoleCustomer,
		}
		if err := h.db.Create(&user).Error; err != nil {
			httperr.Internal(c, "failed_to_create_user", "Could not create user.")
			return
		}
	} else if err != nil {
		httperr.Internal(c, "internal_error", "Could not log in.")
		return
	}

	accessToken, refreshToken, err := h.issueTokens(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not log in.")
		return
	}

	setAuthCookies(c, accessToken, refreshToken, h.config)

	httpresp.OK(c, "Google login successful", gin.H{
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"firstname": user.FirstName,
			"lastname":  user.LastName,
		},
		"accessToken": accessToken,
	})
}

// ======================================================
// SHARED
// ======================================================

// issueTokens mints both tokens, persists the refresh token for rotation
// checking and stamps the login time.
func (h *AuthHandler) issueTokens(user *models.User) (string, string, error) {
	accessToken, err := generateAccessToken(user, h.config)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := generateRefreshToken(user, h.config)
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	if err := h.db.Model(user).Updates(map[string]any{
		"refresh_token": refreshToken,
		"last_login":    now,
	}).Error; err != nil {
		return "", "", err
	}
	user.RefreshToken = refreshToken
	user.LastLogin = &now

	return accessToken, refreshToken, nil
}
