package models

// AttendanceStatus is the marked state for a student on a given day
type AttendanceStatus string

const (
	Present AttendanceStatus = "Present"
	Absent  AttendanceStatus = "Absent"
)

// Attendance represents a single day's attendance mark for a student.
// Dates are stored as YYYY-MM-DD text so month filtering can prefix-match.
type Attendance struct {
	ID          int              `json:"id"`
	StudentID   int              `json:"student_id" validate:"required"`
	Date        string           `json:"date" validate:"required"`
	Status      AttendanceStatus `json:"status" validate:"required,oneof=Present Absent"`
	StudentName string           `json:"student_name,omitempty"`
}

// AttendanceStat is one row of the monthly attendance summary
type AttendanceStat struct {
	StudentID  int     `json:"student_id"`
	Name       string  `json:"name"`
	Grade      int     `json:"grade"`
	Total      int     `json:"total"`
	Present    int     `json:"present"`
	Percentage float64 `json:"percentage"`
}
