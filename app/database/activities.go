package database

import (
	"database/sql"

	"github.com/Vikasthangavel/CTC/app/models"
)

func CreateActivity(db *sql.DB, a *models.Activity) error {
	query := `INSERT INTO daily_activities (student_id, activity_date, content) VALUES ($1, $2, $3) RETURNING id`
	return db.QueryRow(query, a.StudentID, a.ActivityDate, a.Content).Scan(&a.ID)
}

// GetActivitiesByMonth returns a student's activity log for one YYYY-MM
// month, newest first
func GetActivitiesByMonth(db *sql.DB, studentID int, month string) ([]*models.Activity, error) {
	query := `SELECT id, student_id, activity_date, content, created_at
			  FROM daily_activities
			  WHERE student_id = $1 AND LEFT(activity_date, 7) = $2
			  ORDER BY activity_date DESC, created_at DESC`

	rows, err := db.Query(query, studentID, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		a := &models.Activity{}
		if err := rows.Scan(&a.ID, &a.StudentID, &a.ActivityDate, &a.Content, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// GetRecentActivities returns the latest n entries for the parent dashboard
func GetRecentActivities(db *sql.DB, studentID, limit int) ([]*models.Activity, error) {
	query := `SELECT id, student_id, activity_date, content, created_at
			  FROM daily_activities
			  WHERE student_id = $1
			  ORDER BY activity_date DESC, created_at DESC LIMIT $2`

	rows, err := db.Query(query, studentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		a := &models.Activity{}
		if err := rows.Scan(&a.ID, &a.StudentID, &a.ActivityDate, &a.Content, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// GetActivityByID fetches one entry, used to find the month to redirect back
// to after a delete
func GetActivityByID(db *sql.DB, activityID int) (*models.Activity, error) {
	a := &models.Activity{}
	query := `SELECT id, student_id, activity_date, content, created_at FROM daily_activities WHERE id = $1`
	err := db.QueryRow(query, activityID).Scan(&a.ID, &a.StudentID, &a.ActivityDate, &a.Content, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func DeleteActivity(db *sql.DB, activityID int) error {
	_, err := db.Exec(`DELETE FROM daily_activities WHERE id = $1`, activityID)
	return err
}
