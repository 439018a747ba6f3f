package models

import "time"

type Employee struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID string    `gorm:"size:20;not null;uniqueIndex" json:"employee_id"` // company-assigned code
	FullName   string    `gorm:"size:100;not null" json:"full_name"`
	Email      string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Department string    `gorm:"size:50;not null" json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
