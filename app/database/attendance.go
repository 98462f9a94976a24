package database

import (
	"database/sql"
	"math"

	"github.com/Vikasthangavel/CTC/app/models"
)

// MarkAttendance records a student's status for a date. Exactly one row per
// (student_id, date) pair: re-marking overwrites the status in place.
func MarkAttendance(db *sql.DB, studentID int, date string, status models.AttendanceStatus) error {
	query := `INSERT INTO attendance (student_id, date, status) VALUES ($1, $2, $3)
			  ON CONFLICT (student_id, date) DO UPDATE SET status = EXCLUDED.status`
	_, err := db.Exec(query, studentID, date, status)
	return err
}

// GetAttendanceByDate returns a student_id -> status map for one day's
// marking grid
func GetAttendanceByDate(db *sql.DB, date string) (map[int]models.AttendanceStatus, error) {
	rows, err := db.Query(`SELECT student_id, status FROM attendance WHERE date = $1`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	marks := make(map[int]models.AttendanceStatus)
	for rows.Next() {
		var studentID int
		var status models.AttendanceStatus
		if err := rows.Scan(&studentID, &status); err != nil {
			return nil, err
		}
		marks[studentID] = status
	}
	return marks, rows.Err()
}

// GetMonthlyStats computes per-student present/total counts and percentage
// for one YYYY-MM month across all students
func GetMonthlyStats(db *sql.DB, month string) ([]*models.AttendanceStat, error) {
	query := `
		SELECT s.id, s.name, s.grade,
			COUNT(a.id) AS total_marked,
			COALESCE(SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END), 0) AS present_count
		FROM students s
		LEFT JOIN attendance a ON s.id = a.student_id AND LEFT(a.date, 7) = $1
		GROUP BY s.id, s.name, s.grade
		ORDER BY s.name ASC
	`
	rows, err := db.Query(query, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*models.AttendanceStat
	for rows.Next() {
		st := &models.AttendanceStat{}
		if err := rows.Scan(&st.StudentID, &st.Name, &st.Grade, &st.Total, &st.Present); err != nil {
			return nil, err
		}
		st.Percentage = AttendancePercent(st.Present, st.Total)
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// GetStudentStats computes a single student's all-time attendance counts
func GetStudentStats(db *sql.DB, studentID int) (*models.AttendanceStat, error) {
	query := `
		SELECT COUNT(id) AS total_marked,
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) AS present_count
		FROM attendance
		WHERE student_id = $1
	`
	st := &models.AttendanceStat{StudentID: studentID}
	if err := db.QueryRow(query, studentID).Scan(&st.Total, &st.Present); err != nil {
		return nil, err
	}
	st.Percentage = AttendancePercent(st.Present, st.Total)
	return st, nil
}

// GetAttendanceHistory returns every mark with the student's name, newest
// date first
func GetAttendanceHistory(db *sql.DB) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.student_id, a.date, a.status, s.name
		FROM attendance a
		JOIN students s ON a.student_id = s.id
		ORDER BY a.date DESC, s.name ASC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{}
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Date, &a.Status, &a.StudentName); err != nil {
			return nil, err
		}
		history = append(history, a)
	}
	return history, rows.Err()
}

// CountMarkedOn returns how many students have a mark for the given date
func CountMarkedOn(db *sql.DB, date string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM attendance WHERE date = $1`, date).Scan(&count)
	return count, err
}

// AttendancePercent is present/total as a percentage rounded to one decimal.
// Zero marked days means 0, never a division fault.
func AttendancePercent(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*1000) / 10
}
