package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ATripathi13/Human-Resource-Management-System/models"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler { return &DashboardHandler{DB: db} }

// GET /dashboard/stats
// Counts are computed fresh per request; "today" is the server-local date.
func (h *DashboardHandler) Stats(c echo.Context) error {
	var (
		totalEmployees int64
		presentToday   int64
		absentToday    int64
	)
	today := time.Now().Format("2006-01-02")

	h.DB.Model(&models.Employee{}).Count(&totalEmployees)
	h.DB.Model(&models.Attendance{}).
		Where("date = ? AND status = ?", today, models.StatusPresent).
		Count(&presentToday)
	h.DB.Model(&models.Attendance{}).
		Where("date = ? AND status = ?", today, models.StatusAbsent).
		Count(&absentToday)

	return c.JSON(http.StatusOK, map[string]any{
		"total_employees": totalEmployees,
		"present_today":   presentToday,
		"absent_today":    absentToday,
	})
}
