package models

import "time"

// Activity is a daily log entry written by an admin about a student
type Activity struct {
	ID           int       `json:"id"`
	StudentID    int       `json:"student_id" validate:"required"`
	ActivityDate string    `json:"activity_date" validate:"required"`
	Content      string    `json:"content" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
}
