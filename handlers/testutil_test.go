package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ATripathi13/Human-Resource-Management-System/models"
	"github.com/ATripathi13/Human-Resource-Management-System/routes"
)

// newTestApp wires the full route table against a fresh in-memory database,
// one per test so cases cannot leak rows into each other.
func newTestApp(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Employee{}, &models.Attendance{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	e := echo.New()
	routes.Register(e, db)
	return e, db
}

func doRequest(e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// seedEmployee creates an employee through the API and returns its id.
func seedEmployee(t *testing.T, e *echo.Echo, code, name, email string) uint {
	t.Helper()
	rec := doRequest(e, http.MethodPost, "/employees/", map[string]any{
		"employee_id": code,
		"full_name":   name,
		"email":       email,
		"department":  "Engineering",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("seed employee %s: status %d body %s", code, rec.Code, rec.Body.String())
	}
	var emp models.Employee
	decodeBody(t, rec, &emp)
	return emp.ID
}

func markAttendance(t *testing.T, e *echo.Echo, employeeID uint, date, status string) {
	t.Helper()
	rec := doRequest(e, http.MethodPost, "/attendance/", map[string]any{
		"employee_id": employeeID,
		"date":        date,
		"status":      status,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("mark attendance %s %s: status %d body %s", date, status, rec.Code, rec.Body.String())
	}
}
