package models

// Admin is the legacy credentials table kept for older deployments. Login
// uses the rotating daily password, not this row.
type Admin struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// DashboardStats holds the admin dashboard counters
type DashboardStats struct {
	TotalStudents   int `json:"total_students"`
	MarkedToday     int `json:"marked_today"`
	UnpaidThisMonth int `json:"unpaid_this_month"`
	UnreadReports   int `json:"unread_reports"`
}
