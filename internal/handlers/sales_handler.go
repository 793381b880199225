package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonhub/salon-backend/internal/audit"
	"github.com/salonhub/salon-backend/internal/httperr"
	"github.com/salonhub/salon-backend/internal/httpresp"
	"github.com/salonhub/salon-backend/internal/ledger"
	"github.com/salonhub/salon-backend/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type SalesHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSalesHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *SalesHandler {
	return &SalesHandler{db: db, audit: auditDispatcher}
}

// ======================================================
// CREATE / UPDATE
// ======================================================

type transactionInput struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
}

type dailySalesRequest struct {
	Date         string             `json:"date"`
	CashSales    float64            `json:"cashSales"`
	CardSales    float64            `json:"cardSales"`
	OnlineSales  float64            `json:"onlineSales"`
	Transactions []transactionInput `json:"transactions"`
}

func (h *SalesHandler) CreateDailySales(c *gin.Context) {
	var req dailySalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_body", "Request body must be valid JSON.")
		return
	}

	if req.Date == "" || !isValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be formatted as YYYY-MM-DD.")
		return
	}
	if req.CashSales < 0 || req.CardSales < 0 || req.OnlineSales < 0 {
		httperr.Unprocessable(c, "negative_sales", "Sales amounts cannot be negative.")
		return
	}

	var existing int64
	h.db.Model(&models.DailySale{}).Where("date = ?", req.Date).Count(&existing)
	if existing > 0 {
		httperr.Conflict(c, "daily_sales_exists", "Sales record for this date already exists.")
		return
	}

	record := models.DailySale{
		Date:        req.Date,
		CashSales:   req.CashSales,
		CardSales:   req.CardSales,
		OnlineSales: req.OnlineSales,
		TotalSales:  ledger.BreakdownTotal(req.CashSales, req.CardSales, req.OnlineSales),
	}
	for _, t := range req.Transactions {
		record.Transactions = append(record.Transactions, models.Transaction{
			Description: t.Description,
			Amount:      t.Amount,
			Method:      t.Method,
		})
	}

	if err := h.db.Create(&record).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "daily_sales_exists", "Sales record for this date already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_daily_sales", "Could not create sales record.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "daily_sales_created",
		Entity:   "daily_sale",
		EntityID: &record.ID,
	})

	httpresp.Created(c, "Daily sales recorded successfully", record)
}

// UpdateDailySales upserts the record for the given date. The breakdown
// figures are replaced and new transactions are appended, in one db
// transaction.
func (h *SalesHandler) UpdateDailySales(c *gin.Context) {
	var req dailySalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_body", "Request body must be valid JSON.")
		return
	}

	if req.Date == "" || !isValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be formatted as YYYY-MM-DD.")
		return
	}

	var record models.DailySale
	err := h.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("date = ?", req.Date).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = models.DailySale{Date: req.Date}
		} else if err != nil {
			return err
		}

		record.CashSales = req.CashSales
		record.CardSales = req.CardSales
		record.OnlineSales = req.OnlineSales
		record.TotalSales = ledger.BreakdownTotal(req.CashSales, req.CardSales, req.OnlineSales)

		if err := tx.Save(&record).Error; err != nil {
			return err
		}

		for _, t := range req.Transactions {
			txn := models.Transaction{
				DailySaleID: record.ID,
				Description: t.Description,
				Amount:      t.Amount,
				Method:      t.Method,
			}
			if err := tx.Create(&txn).Error; err != nil {
				return err
			}
			record.Transactions = append(record.Transactions, txn)
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_daily_sales", "Could not update sales record.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "daily_sales_updated",
		Entity:   "daily_sale",
		EntityID: &record.ID,
	})

	httpresp.OK(c, "Daily sales updated successfully", record)
}

// ======================================================
// EXPENSES
// ======================================================

type expenseInput struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type createExpensesRequest struct {
	Date     string         `json:"date"`
	Expenses []expenseInput `json:"expenses"`
}

// CreateExpenses appends expenses to the date's record, creating the
// record first when the date has no sales yet.
func (h *SalesHandler) CreateExpenses(c *gin.Context) {
	var req createExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_body", "Request body must be valid JSON.")
		return
	}

	if req.Date == "" || !isValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be formatted as YYYY-MM-DD.")
		return
	}
	if len(req.Expenses) == 0 {
		httperr.BadRequest(c, "missing_expenses", "At least one expense is required.")
		return
	}
	for _, e := range req.Expenses {
		if e.Name == "" || e.Amount < 0 {
			httperr.Unprocessable(c, "invalid_expense", "Expenses need a name and a non-negative amount.")
			return
		}
	}

	var record models.DailySale
	err := h.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("date = ?", req.Date).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = models.DailySale{Date: req.Date}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		for _, e := range req.Expenses {
			exp := models.Expense{
				DailySaleID: record.ID,
				Name:        e.Name,
				Amount:      e.Amount,
			}
			if err := tx.Create(&exp).Error; err != nil {
				return err
			}
			record.Expenses = append(record.Expenses, exp)
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_expenses", "Could not record expenses.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   "expenses_created",
		Entity:   "daily_sale",
		EntityID: &record.ID,
	})

	httpresp.Created(c, "Expenses recorded successfully", record)
}

// ======================================================
// READ
// ======================================================

func (h *SalesHandler) GetDailySales(c *gin.Context) {
	date := c.Query("date")
	if date == "" || !isValidDate(date) {
		httperr.BadRequest(c, "invalid_date", "Date must be formatted as YYYY-MM-DD.")
		return
	}

	var record models.DailySale
	if err := h.db.
		Preload("Expenses").
		Preload("Transactions").
		Where("date = ?", date).
		First(&record).Error; err != nil {
		httperr.NotFound(c, "daily_sales_not_found", "No sales record for this date.")
		return
	}

	httpresp.OK(c, "Daily sales retrieved successfully", record)
}

// monthRange resolves ?month=YYYY-MM (default: current month) to its first
// and last date strings.
func monthRange(c *gin.Context) (string, string, bool) {
	month := c.DefaultQuery("month", time.Now().Format("2006-01"))

	start, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", false
	}
	end := start.AddDate(0, 1, -1)
	return start.Format(dateLayout), end.Format(dateLayout), true
}

func (h *SalesHandler) GetMonthlySales(c *gin.Context) {
	from, to, ok := monthRange(c)
	if !ok {
		httperr.BadRequest(c, "invalid_month", "Month must be formatted as YYYY-MM.")
		return
	}

	var records []models.DailySale
	if err := h.db.
		Preload("Expenses").
		Where("date BETWEEN ? AND ?", from, to).
		Order("date asc").
		Find(&records).Error; err != nil {
		httperr.Internal(c, "failed_to_list_sales", "Could not list sales records.")
		return
	}

	rollup := ledger.Rollup(records)

	httpresp.OK(c, "Monthly sales retrieved successfully", gin.H{
		"from":       from,
		"to":         to,
		"days":       records,
		"totalSales": rollup.TotalSales,
	})
}

func (h *SalesHandler) GetProfitOrLoss(c *gin.Context) {
	from, to, ok := monthRange(c)
	if !ok {
		httperr.BadRequest(c, "invalid_month", "Month must be formatted as YYYY-MM.")
		return
	}

	var records []models.DailySale
	if err := h.db.
		Preload("Expenses").
		Where("date BETWEEN ? AND ?", from, to).
		Find(&records).Error; err != nil {
		httperr.Internal(c, "failed_to_list_sales", "Could not list sales records.")
		return
	}

	rollup := ledger.Rollup(records)

	httpresp.OK(c, "Profit or loss computed successfully", gin.H{
		"from":          from,
		"to":            to,
		"totalSales":    rollup.TotalSales,
		"totalExpenses": rollup.TotalExpenses,
		"profitOrLoss":  rollup.ProfitOrLoss,
	})
}
