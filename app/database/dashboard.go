package database

import (
	"database/sql"

	"github.com/Vikasthangavel/CTC/app/dates"
	"github.com/Vikasthangavel/CTC/app/models"
)

// GetDashboardStats returns the admin dashboard counters
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	var err error
	if stats.TotalStudents, err = CountStudents(db); err != nil {
		return nil, err
	}
	if stats.MarkedToday, err = CountMarkedOn(db, dates.Today()); err != nil {
		return nil, err
	}
	if stats.UnpaidThisMonth, err = CountUnpaidForMonth(db, dates.CurrentMonth()); err != nil {
		return nil, err
	}
	if stats.UnreadReports, err = CountUnreadReports(db); err != nil {
		return nil, err
	}
	return stats, nil
}
