package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ATripathi13/Human-Resource-Management-System/handlers"
)

// Register wires all HTTP routes. The shared DB handle is injected into each
// handler here; nothing reads it through a package global.
func Register(e *echo.Echo, db *gorm.DB) {
	emp := handlers.NewEmployeeHandler(db)
	att := handlers.NewAttendanceHandler(db)
	dash := handlers.NewDashboardHandler(db)

	e.GET("/", handlers.Root)
	e.GET("/health", handlers.Health)

	// collection routes answer with and without the trailing slash
	e.POST("/employees", emp.Create)
	e.POST("/employees/", emp.Create)
	e.GET("/employees", emp.List)
	e.GET("/employees/", emp.List)
	e.DELETE("/employees/:employee_id", emp.Delete)

	e.POST("/attendance", att.Create)
	e.POST("/attendance/", att.Create)
	e.GET("/attendance/:employee_id", att.ListByEmployee)

	e.GET("/dashboard/stats", dash.Stats)
}
