package models

import "time"

// Report read states
const (
	ReportUnread = "Unread"
	ReportRead   = "Read"
)

// ParentReport is a message a parent submitted to the center about one of
// their children
type ParentReport struct {
	ID          int       `json:"id"`
	StudentID   int       `json:"student_id" validate:"required"`
	Message     string    `json:"message" validate:"required"`
	ReportDate  time.Time `json:"report_date"`
	Status      string    `json:"status"`
	StudentName string    `json:"student_name,omitempty"`
}
