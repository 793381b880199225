package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/salonhub/salon-backend/internal/audit"
	"github.com/salonhub/salon-backend/internal/cache"
	"github.com/salonhub/salon-backend/internal/catalog"
	domain "github.com/salonhub/salon-backend/internal/domain/booking"
	"github.com/salonhub/salon-backend/internal/httperr"
	"github.com/salonhub/salon-backend/internal/httpresp"
	"github.com/salonhub/salon-backend/internal/logger"
	"github.com/salonhub/salon-backend/internal/middleware"
	"github.com/salonhub/salon-backend/internal/models"
	"github.com/salonhub/salon-backend/internal/storage"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
	popular  *cache.PopularCache
	audit    *audit.Dispatcher
}

func NewServiceHandler(
	db *gorm.DB,
	uploader storage.Uploader,
	popular *cache.PopularCache,
	auditDispatcher *audit.Dispatcher,
) *ServiceHandler {
	return &ServiceHandler{
		db:       db,
		uploader: uploader,
		popular:  popular,
		audit:    auditDispatcher,
	}
}

// ======================================================
// CREATE
// ======================================================

// Create accepts multipart form data; the image file is mandatory and a
// failed upload aborts the whole creation.
func (h *ServiceHandler) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))
	priceStr := c.PostForm("price")
	category := c.PostForm("category")
	durationStr := c.PostForm("duration")

	if name == "" || description == "" || priceStr == "" || category == "" || durationStr == "" {
		httperr.BadRequest(c, "missing_required_fields", "Required fields are missing or invalid.")
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_price", "Price must be a number.")
		return
	}
	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_duration", "Duration must be a number.")
		return
	}

	if price < 0 || duration < 1 {
		httperr.Unprocessable(c, "invalid_numbers", "Price must be positive and duration at least 1 minute.")
		return
	}

	if !models.IsValidCategory(category) {
		httperr.BadRequest(c, "invalid_category", "Unknown service category.")
		return
	}

	// Case-insensitive duplicate check. Not transactional with the insert;
	// a concurrent create with the same name can still slip through.
	var count int64
	h.db.Model(&models.Service{}).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "service_name_exists", "Service with this name already exists.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Service image is required.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "unreadable_image", "Could not read the uploaded image.")
		return
	}
	defer file.Close()

	imageURL, err := h.uploader.UploadImage(c.Request.Context(), file)
	if err != nil {
		logger.Error("image upload failed", zap.Error(err))
		httperr.Unavailable(c, "image_upload_unavailable", "Image upload service unavailable.")
		return
	}

	staffRequired, _ := strconv.Atoi(c.DefaultPostForm("staffRequired", "1"))
	if staffRequired <= 0 {
		staffRequired = 1
	}
	availableSlots, _ := strconv.Atoi(c.DefaultPostForm("availableSlots", "1"))
	if availableSlots <= 0 {
		availableSlots = 1
	}

	availableFor := c.DefaultPostForm("availableFor", models.AvailableForAll)

	service := models.Service{
		Name:           name,
		Description:    description,
		Price:          price,
		DurationMin:    duration,
		Category:       category,
		ImageURL:       imageURL,
		Active:         true,
		StaffRequired:  staffRequired,
		AvailableSlots: availableSlots,
		Prerequisites:  strings.TrimSpace(c.PostForm("prerequisites")),
		Aftercare:      strings.TrimSpace(c.PostForm("aftercare")),
		AvailableFor:   availableFor,
		Tags:           splitTags(c.PostForm("tags")),
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.Created(c, "Service created successfully", service)
}

// ======================================================
// READ
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	sortBy := c.DefaultQuery("sortBy", "created_at")
	switch sortBy {
	case "created_at", "name", "price", "duration_min":
	default:
		sortBy = "created_at"
	}
	sortOrder := c.DefaultQuery("sortOrder", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	q := h.db.Model(&models.Service{})

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if availableFor := c.Query("availableFor"); availableFor != "" {
		q = q.Where("available_for = ?", availableFor)
	}
	if isActive := c.Query("isActive"); isActive != "" {
		q = q.Where("active = ?", isActive == "true")
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		q = q.Where("price >= ?", minPrice)
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		q = q.Where("price <= ?", maxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_services", "Could not list services.")
		return
	}

	var services []models.Service
	if err := q.
		Order(sortBy + " " + sortOrder).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.OK(c, "Services retrieved successfully", gin.H{
		"services":   services,
		"pagination": httpresp.NewPagination(total, page, limit),
	})
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, c.Param("serviceId")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	httpresp.OK(c, "Service retrieved successfully", service)
}

func (h *ServiceHandler) ListActive(c *gin.Context) {
	var services []models.Service
	if err := h.db.Where("active = ?", true).Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}
	httpresp.OK(c, "Active services retrieved successfully", services)
}

func (h *ServiceHandler) ListInactive(c *gin.Context) {
	var services []models.Service
	if err := h.db.Where("active = ?", false).Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}
	httpresp.OK(c, "Inactive services retrieved successfully", services)
}

// ======================================================
// UPDATE / DELETE / TOGGLE
// ======================================================

// Update applies only the provided multipart fields; a new image, when
// present, replaces the hosted one.
func (h *ServiceHandler) Update(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, c.Param("serviceId")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if v, ok := c.GetPostForm("name"); ok {
		service.Name = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("description"); ok {
		service.Description = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			httperr.BadRequest(c, "invalid_price", "Price must be a positive number.")
			return
		}
		service.Price = price
	}
	if v, ok := c.GetPostForm("duration"); ok {
		duration, err := strconv.Atoi(v)
		if err != nil || duration < 1 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be a positive number.")
			return
		}
		service.DurationMin = duration
	}
	if v, ok := c.GetPostForm("category"); ok {
		if !models.IsValidCategory(v) {
			httperr.BadRequest(c, "invalid_category", "Unknown service category.")
			return
		}
		service.Category = v
	}
	if v, ok := c.GetPostForm("prerequisites"); ok {
		service.Prerequisites = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("aftercare"); ok {
		service.Aftercare = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("availableFor"); ok {
		service.AvailableFor = v
	}
	if v, ok := c.GetPostForm("staffRequired"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			service.StaffRequired = n
		}
	}
	if v, ok := c.GetPostForm("availableSlots"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			service.AvailableSlots = n
		}
	}
	if v, ok := c.GetPostForm("tags"); ok {
		service.Tags = splitTags(v)
	}
	if v, ok := c.GetPostForm("isActive"); ok {
		service.Active = v == "true"
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			httperr.BadRequest(c, "unreadable_image", "Could not read the uploaded image.")
			return
		}
		defer file.Close()

		imageURL, err := h.uploader.UploadImage(c.Request.Context(), file)
		if err != nil {
			logger.Error("image upload failed", zap.Error(err))
			httperr.Unavailable(c, "image_upload_unavailable", "Image upload service unavailable.")
			return
		}
		service.ImageURL = imageURL
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.OK(c, "Service updated successfully", service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("serviceId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Service ID is required.")
		return
	}

	if err := h.db.Delete(&models.Service{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}

	entityID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &entityID,
	})

	httpresp.OK(c, "Service deleted successfully", gin.H{})
}

func (h *ServiceHandler) ToggleStatus(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, c.Param("serviceId")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	service.Active = !service.Active
	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_toggle_service", "Could not toggle service status.")
		return
	}

	msg := "Service deactivated successfully"
	if service.Active {
		msg = "Service activated successfully"
	}
	httpresp.OK(c, msg, service)
}

// ======================================================
// SEARCH
// ======================================================

func (h *ServiceHandler) Search(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	category := strings.TrimSpace(c.Query("category"))
	name := strings.TrimSpace(c.Query("name"))

	q := h.db.Where("active = ?", true)

	if category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(category))
	}
	if name != "" {
		q = q.Where("LOWER(name) = ?", strings.ToLower(name))
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			h.db.Where("LOWER(name) LIKE ?", like).
				Or("LOWER(description) LIKE ?", like).
				Or("LOWER(category) LIKE ?", like).
				Or("LOWER(tags::text) LIKE ?", like),
		)
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_search_services", "Could not search services.")
		return
	}

	if len(services) == 0 {
		httperr.NotFound(c, "no_services_found", "No services found.")
		return
	}

	httpresp.OK(c, "Services retrieved successfully", services)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *ServiceHandler) CheckAvailability(c *gin.Context) {
	serviceID := c.Query("serviceId")
	date := c.Query("date")

	if serviceID == "" || date == "" {
		httperr.BadRequest(c, "missing_parameters", "Service ID and date are required.")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be formatted as YYYY-MM-DD.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, serviceID).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if !service.Active {
		httpresp.OK(c, "Service availability checked successfully", gin.H{
			"available": false,
			"reason":    "Service is currently inactive",
		})
		return
	}

	var booked int64
	if err := h.db.Model(&models.Appointment{}).
		Where(
			"service_id = ? AND appointment_date = ? AND status NOT IN ?",
			service.ID, date, []string{string(domain.StatusCancelled), "rejected"},
		).
		Count(&booked).Error; err != nil {
		httperr.Internal(c, "failed_to_check_availability", "Could not check availability.")
		return
	}

	httpresp.OK(c, "Service availability checked successfully", gin.H{
		"available":      booked < int64(service.AvailableSlots),
		"availableSlots": int64(service.AvailableSlots) - booked,
		"totalSlots":     service.AvailableSlots,
	})
}

// ======================================================
// POPULARITY
// ======================================================

type serviceStatsRow struct {
	ServiceID        uint
	AppointmentCount int
	AverageRating    float64
	CreatedAt        time.Time
}

func (h *ServiceHandler) GetPopular(c *gin.Context) {
	ctx := c.Request.Context()

	if services, ok := h.popular.Get(ctx); ok {
		httpresp.OK(c, "Popular services retrieved successfully", gin.H{
			"services":   services,
			"totalCount": len(services),
		})
		return
	}

	var rows []serviceStatsRow
	if err := h.db.Model(&models.Service{}).
		Select(
			"services.id AS service_id",
			"COUNT(appointments.id) AS appointment_count",
			"COALESCE(AVG(NULLIF(appointments.rating, 0)), 0) AS average_rating",
			"services.created_at AS created_at",
		).
		Joins("LEFT JOIN appointments ON appointments.service_id = services.id").
		Where("services.active = ?", true).
		Group("services.id").
		Scan(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_rank_services", "Could not rank services.")
		return
	}

	stats := make([]catalog.ServiceStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, catalog.ServiceStats{
			ServiceID:        row.ServiceID,
			AppointmentCount: row.AppointmentCount,
			AverageRating:    row.AverageRating,
			CreatedAt:        row.CreatedAt,
		})
	}

	ranked := catalog.Rank(stats, time.Now(), catalog.TopN)
	if len(ranked) == 0 {
		httperr.NotFound(c, "no_popular_services", "No popular services found.")
		return
	}

	// Fetch the ranked services and restore the score ordering.
	ids := make([]uint, 0, len(ranked))
	for _, s := range ranked {
		ids = append(ids, s.ServiceID)
	}

	var services []models.Service
	if err := h.db.Where("id IN ?", ids).Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_rank_services", "Could not rank services.")
		return
	}

	byID := make(map[uint]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	ordered := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}

	h.popular.Set(ctx, ordered)

	httpresp.OK(c, "Popular services retrieved successfully", gin.H{
		"services":   ordered,
		"totalCount": len(ordered),
	})
}

// ======================================================
// HELPERS
// ======================================================

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func currentUserID(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
