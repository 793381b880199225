package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonhub/salon-backend/internal/httperr"
	"github.com/salonhub/salon-backend/internal/httpresp"
	"github.com/salonhub/salon-backend/internal/middleware"
	"github.com/salonhub/salon-backend/internal/models"
	"github.com/salonhub/salon-backend/internal/validators"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// --------- Requests ---------

type UpdateAccountRequest struct {
	FirstName *string `json:"firstname,omitempty"`
	LastName  *string `json:"lastname,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type ExperienceRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Salon       string     `json:"salon"`
}

// --------- Handlers ---------

func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.Preload("Experiences").First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	httpresp.OK(c, "User retrieved successfully", user)
}

func (h *UserHandler) UpdateAccountDetails(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.FirstName == nil && req.LastName == nil && req.Email == nil && req.Phone == nil {
		httperr.BadRequest(c, "empty_update", "At least one field is required for update.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !validators.IsValidEmail(email) {
			httperr.BadRequest(c, "invalid_email", "Please enter a valid email.")
			return
		}
		if email != user.Email {
			var count int64
			h.db.Model(&models.User{}).
				Where("email = ? AND id <> ?", email, user.ID).
				Count(&count)
			if count > 0 {
				httperr.Conflict(c, "email_in_use", "Email already in use.")
				return
			}
			user.Email = email
		}
	}

	if req.Phone != nil {
		if !validators.IsValidPhone(*req.Phone) {
			httperr.BadRequest(c, "invalid_phone", "Please enter a valid phone number.")
			return
		}
		if *req.Phone != user.Phone {
			var count int64
			h.db.Model(&models.User{}).
				Where("phone = ? AND id <> ?", *req.Phone, user.ID).
				Count(&count)
			if count > 0 {
				httperr.Conflict(c, "phone_in_use", "Phone number already in use.")
				return
			}
			user.Phone = *req.Phone
		}
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := h.db.Save(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "duplicate_field", "Email or phone already in use.")
			return
		}
		httperr.Internal(c, "failed_to_update_user", "Could not update account.")
		return
	}

	httpresp.OK(c, "Account details updated successfully", user)
}

// ======================================================
// STAFF EXPERIENCES
// ======================================================

// loadStaff fetches the caller and enforces the staff-only rule shared by
// all experience endpoints.
func (h *UserHandler) loadStaff(c *gin.Context) (*models.User, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.Preload("Experiences", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return nil, false
	}

	if user.Role != models.RoleStaff {
		httperr.Forbidden(c, "staff_only", "Only staff can manage experiences.")
		return nil, false
	}

	return &user, true
}

func (h *UserHandler) AddExperience(c *gin.Context) {
	user, ok := h.loadStaff(c)
	if !ok {
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		httperr.BadRequest(c, "missing_title", "Experience title is required.")
		return
	}

	exp := models.Experience{
		UserID:      user.ID,
		Position:    len(user.Experiences),
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Salon:       req.Salon,
	}

	if err := h.db.Create(&exp).Error; err != nil {
		httperr.Internal(c, "failed_to_add_experience", "Could not add experience.")
		return
	}

	user.Experiences = append(user.Experiences, exp)
	httpresp.Created(c, "Experience added successfully", user.Experiences)
}

func (h *UserHandler) UpdateExperience(c *gin.Context) {
	user, ok := h.loadStaff(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("expIndex"))
	if err != nil || index < 0 || index >= len(user.Experiences) {
		httperr.NotFound(c, "experience_not_found", "Experience not found.")
		return
	}

	var req struct {
		Title       *string    `json:"title,omitempty"`
		Description *string    `json:"description,omitempty"`
		StartDate   *time.Time `json:"start_date,omitempty"`
		EndDate     *time.Time `json:"end_date,omitempty"`
		Salon       *string    `json:"salon,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	exp := &user.Experiences[index]
	if req.Title != nil {
		exp.Title = *req.Title
	}
	if req.Description != nil {
		exp.Description = *req.Description
	}
	if req.StartDate != nil {
		exp.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		exp.EndDate = req.EndDate
	}
	if req.Salon != nil {
		exp.Salon = *req.Salon
	}

	if err := h.db.Save(exp).Error; err != nil {
		httperr.Internal(c, "failed_to_update_experience", "Could not update experience.")
		return
	}

	httpresp.OK(c, "Experience updated successfully", user.Experiences)
}

func (h *UserHandler) RemoveExperience(c *gin.Context) {
	user, ok := h.loadStaff(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("expIndex"))
	if err != nil || index < 0 || index >= len(user.Experiences) {
		httperr.NotFound(c, "experience_not_found", "Experience not found.")
		return
	}

	removed := user.Experiences[index]

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Experience{}, removed.ID).Error; err != nil {
			return err
		}
		// Keep positions dense after removal.
		return tx.Model(&models.Experience{}).
			Where("user_id = ? AND position > ?", user.ID, removed.Position).
			UpdateColumn("position", gorm.Expr("position - 1")).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_remove_experience", "Could not remove experience.")
		return
	}

	user.Experiences = append(user.Experiences[:index], user.Experiences[index+1:]...)
	httpresp.OK(c, "Experience removed successfully", user.Experiences)
}
