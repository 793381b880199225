package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salonhub/salon-backend/internal/dto"
	"github.com/salonhub/salon-backend/internal/httperr"
	"github.com/salonhub/salon-backend/internal/httpresp"
	"github.com/salonhub/salon-backend/internal/middleware"
	booking "github.com/salonhub/salon-backend/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *booking.CreateAppointment
	cancel *booking.CancelAppointment
	update *booking.UpdateAppointment
	list   *booking.ListAppointments
}

func NewAppointmentHandler(
	create *booking.CreateAppointment,
	cancel *booking.CancelAppointment,
	update *booking.UpdateAppointment,
	list *booking.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		cancel: cancel,
		update: update,
		list:   list,
	}
}

// bookingErrorStatus maps business codes coming out of the booking use
// cases onto HTTP statuses.
var bookingErrorStatus = map[string]int{
	"missing_required_fields":    http.StatusBadRequest,
	"ambiguous_identity":         http.StatusBadRequest,
	"invalid_status":             http.StatusBadRequest,
	"invalid_rating":             http.StatusBadRequest,
	"feedback_before_completion": http.StatusBadRequest,
	"service_not_found":          http.StatusNotFound,
	"staff_not_found":            http.StatusNotFound,
	"appointment_not_found":      http.StatusNotFound,
	"booking_conflict":           http.StatusConflict,
	"forbidden_for_other_user":   http.StatusForbidden,
	"forbidden_update":           http.StatusForbidden,
}

var bookingErrorMessage = map[string]string{
	"missing_required_fields":    "Required fields are missing or invalid.",
	"ambiguous_identity":         "Provide either a user or a guest name, not both.",
	"invalid_status":             "Unknown appointment status.",
	"invalid_rating":             "Rating must be between 1 and 5.",
	"feedback_before_completion": "Feedback can only be left on completed appointments.",
	"service_not_found":          "Service not found.",
	"staff_not_found":            "Staff member not found.",
	"appointment_not_found":      "Appointment not found.",
	"booking_conflict":           "An appointment already exists at this date and time.",
	"forbidden_for_other_user":   "You cannot book appointments for other users.",
	"forbidden_update":           "You cannot update this appointment.",
}

func writeBookingError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		status, known := bookingErrorStatus[code]
		if !known {
			status = http.StatusBadRequest
		}
		msg, hasMsg := bookingErrorMessage[code]
		if !hasMsg {
			msg = "Request could not be processed."
		}
		httperr.Write(c, status, code, msg)
		return
	}
	httperr.Internal(c, "appointment_operation_failed", "Could not process appointment.")
}

func actorFromContext(c *gin.Context) booking.Actor {
	actor := booking.Actor{}
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			actor.ID = id
			actor.Authenticated = true
		}
	}
	if v, ok := c.Get(middleware.ContextUserRole); ok {
		if role, ok := v.(string); ok {
			actor.Role = role
		}
	}
	return actor
}

// ======================================================
// CREATE
// ======================================================

type createAppointmentRequest struct {
	UserID     *uint   `json:"userId"`
	GuestName  string  `json:"guestName"`
	GuestPhone string  `json:"guestPhone"`
	ServiceID  uint    `json:"serviceId"`
	Date       string  `json:"appointmentDate"`
	Time       string  `json:"appointmentTime"`
	StaffID    *uint   `json:"staffId"`
	Notes      string  `json:"notes"`
	Price      float64 `json:"price"`
	Duration   int     `json:"duration"`
	Rating     int     `json:"rating"`
	Review     string  `json:"review"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_body", "Request body must be valid JSON.")
		return
	}

	if req.Date != "" && !isValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be formatted as YYYY-MM-DD.")
		return
	}
	if req.Time != "" && !isValidTime(req.Time) {
		httperr.BadRequest(c, "invalid_time", "Time must be formatted as HH:MM.")
		return
	}

	ap, queueNumber, err := h.create.Execute(c.Request.Context(), actorFromContext(c), booking.CreateAppointmentInput{
		UserID:     req.UserID,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Time:       req.Time,
		StaffID:    req.StaffID,
		Notes:      req.Notes,
		Price:      req.Price,
		Duration:   req.Duration,
		Rating:     req.Rating,
		Review:     req.Review,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, "Appointment created successfully", gin.H{
		"appointment": ap,
		"queueNumber": queueNumber,
	})
}

// ======================================================
// CANCEL
// ======================================================

type cancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("appointmentId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment ID is required.")
		return
	}

	var req cancelAppointmentRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	ap, err := h.cancel.Execute(c.Request.Context(), actorFromContext(c), uint(id), req.Reason)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, "Appointment cancelled successfully", ap)
}

// ======================================================
// UPDATE
// ======================================================

type updateAppointmentRequest struct {
	Status   string  `json:"status"`
	Notes    string  `json:"notes"`
	StaffID  *uint   `json:"staffId"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	Rating   int     `json:"rating"`
	Review   string  `json:"review"`
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("appointmentId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment ID is required.")
		return
	}

	var req updateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_body", "Request body must be valid JSON.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), actorFromContext(c), uint(id), booking.UpdateAppointmentInput{
		Status:   req.Status,
		Notes:    req.Notes,
		StaffID:  req.StaffID,
		Price:    req.Price,
		Duration: req.Duration,
		Rating:   req.Rating,
		Review:   req.Review,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, "Appointment updated successfully", ap)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) GetMine(c *gin.Context) {
	actor := actorFromContext(c)

	appointments, err := h.list.ForUser(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.OK(c, "Appointments retrieved successfully", gin.H{
		"appointments": appointments,
		"totalCount":   len(appointments),
	})
}

func (h *AppointmentHandler) GetAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, limit = booking.NormalizePage(page, limit)

	appointments, total, err := h.list.All(c.Request.Context(), page, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.OK(c, "Appointments retrieved successfully", gin.H{
		"appointments": dto.FromAppointments(appointments),
		"pagination":   httpresp.NewPagination(total, page, limit),
	})
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("appointmentId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment ID is required.")
		return
	}

	ap, err := h.list.ByID(c.Request.Context(), uint(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, "Appointment retrieved successfully", ap)
}

func (h *AppointmentHandler) GetForStaff(c *gin.Context) {
	staffID, err := strconv.Atoi(c.Param("staffId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Staff ID is required.")
		return
	}

	appointments, err := h.list.ForStaff(c.Request.Context(), uint(staffID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.OK(c, "Appointments retrieved successfully", gin.H{
		"appointments": appointments,
		"totalCount":   len(appointments),
	})
}
