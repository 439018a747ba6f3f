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

type EmployeeHandler struct {
	DB *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler { return &EmployeeHandler{DB: db} }

type employeePayload struct {
	EmployeeID string `json:"employee_id" validate:"required,max=20"`
	FullName   string `json:"full_name"   validate:"required,max=100"`
	Email      string `json:"email"       validate:"required,email,max=100"`
	Department string `json:"department"  validate:"required,max=50"`
}

func (p *employeePayload) normalize() {
	p.EmployeeID = strings.TrimSpace(p.EmployeeID)
	p.FullName = strings.Join(strings.Fields(p.FullName), " ")
	p.Email = strings.TrimSpace(p.Email)
	p.Department = strings.TrimSpace(p.Department)
}

// POST /employees/
func (h *EmployeeHandler) Create(c echo.Context) error {
	var p employeePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fieldErrors(err)})
	}

	var existing models.Employee
	if err := h.DB.First(&existing, "email = ?", p.Email).Error; err == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "Email already registered"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	if err := h.DB.First(&existing, "employee_id = ?", p.EmployeeID).Error; err == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "Employee ID already exists"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	emp := models.Employee{
		EmployeeID: p.EmployeeID,
		FullName:   p.FullName,
		Email:      p.Email,
		Department: p.Department,
	}
	if err := h.DB.Create(&emp).Error; err != nil {
		// the unique indexes close the check-then-insert race; report the
		// same conflict the pre-checks would have
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusBadRequest, map[string]string{"detail": "Email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_INSERT_FAILED"})
	}
	return c.JSON(http.StatusOK, emp)
}

// GET /employees/?skip=&limit=
func (h *EmployeeHandler) List(c echo.Context) error {
	skip := atoiOr(c.QueryParam("skip"), 0)
	limit := atoiOr(c.QueryParam("limit"), 100)
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}

	items := []models.Employee{}
	if err := h.DB.Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}

// DELETE /employees/:employee_id
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("employee_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}

	res := h.DB.Delete(&models.Employee{}, "id = ?", id)
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"detail": "Employee not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "Employee deleted successfully"})
}
