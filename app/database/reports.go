package database

import (
	"database/sql"

	"github.com/Vikasthangavel/CTC/app/models"
)

func CreateParentReport(db *sql.DB, r *models.ParentReport) error {
	query := `INSERT INTO parent_reports (student_id, message) VALUES ($1, $2) RETURNING id`
	return db.QueryRow(query, r.StudentID, r.Message).Scan(&r.ID)
}

// GetAllReports returns every parent report with the student's name, newest
// first
func GetAllReports(db *sql.DB) ([]*models.ParentReport, error) {
	query := `
		SELECT r.id, r.student_id, r.message, r.report_date, r.status, s.name
		FROM parent_reports r
		JOIN students s ON r.student_id = s.id
		ORDER BY r.report_date DESC, r.id DESC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.ParentReport
	for rows.Next() {
		r := &models.ParentReport{}
		if err := rows.Scan(&r.ID, &r.StudentID, &r.Message, &r.ReportDate, &r.Status, &r.StudentName); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func MarkReportRead(db *sql.DB, reportID int) error {
	_, err := db.Exec(`UPDATE parent_reports SET status = $1 WHERE id = $2`, models.ReportRead, reportID)
	return err
}

func CountUnreadReports(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM parent_reports WHERE status = $1`, models.ReportUnread).Scan(&count)
	return count, err
}
