package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ATripathi13/Human-Resource-Management-System/models"
)

type AttendanceHandler struct {
	DB *gorm.DB
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler { return &AttendanceHandler{DB: db} }

type attendancePayload struct {
	EmployeeID uint   `json:"employee_id" validate:"required"`
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
	Status     string `json:"status"      validate:"required,oneof=Present Absent"`
}

// POST /attendance/
func (h *AttendanceHandler) Create(c echo.Context) error {
	var p attendancePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.Date = strings.TrimSpace(p.Date)
	p.Status = strings.TrimSpace(p.Status)
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fieldErrors(err)})
	}

	// the referenced employee must exist before anything is written
	var emp models.Employee
	if err := h.DB.First(&emp, "id = ?", p.EmployeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"detail": "Employee not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	rec := models.Attendance{
		EmployeeID: p.EmployeeID,
		Date:       p.Date,
		Status:     p.Status,
	}
	if err := h.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_INSERT_FAILED"})
	}
	return c.JSON(http.StatusOK, rec)
}

// GET /attendance/:employee_id?from_date=YYYY-MM-DD&to_date=YYYY-MM-DD
// Both bounds are optional and inclusive.
func (h *AttendanceHandler) ListByEmployee(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("employee_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}

	var emp models.Employee
	if err := h.DB.First(&emp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"detail": "Employee not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	from := strings.TrimSpace(c.QueryParam("from_date"))
	to := strings.TrimSpace(c.QueryParam("to_date"))

	tx := h.DB.Where("employee_id = ?", id)
	if from != "" {
		tx = tx.Where("date >= ?", from)
	}
	if to != "" {
		tx = tx.Where("date <= ?", to)
	}

	rows := []models.Attendance{}
	if err := tx.Order("date ASC, id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}
