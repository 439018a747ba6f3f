package models

import "time"

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// One row per marking; the same employee may have several rows on one date.
type Attendance struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	EmployeeID uint   `gorm:"index;not null" json:"employee_id"`
	Date       string `gorm:"size:10;not null" json:"date"`   // YYYY-MM-DD
	Status     string `gorm:"size:10;not null" json:"status"` // Present/Absent

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
