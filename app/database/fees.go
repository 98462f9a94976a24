package database

import (
	"database/sql"

	"github.com/Vikasthangavel/CTC/app/dates"
	"github.com/Vikasthangavel/CTC/app/models"
)

// GetFeesByMonth returns the fee rows recorded for one YYYY-MM month, keyed
// by student id. When the manual add path has produced duplicates for a
// student, the most recent row wins.
func GetFeesByMonth(db *sql.DB, monthYear string) (map[int]*models.Fee, error) {
	query := `SELECT id, student_id, month_year, amount, status, payment_date
			  FROM fees WHERE month_year = $1 ORDER BY id ASC`

	rows, err := db.Query(query, monthYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fees := make(map[int]*models.Fee)
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees[f.StudentID] = f
	}
	return fees, rows.Err()
}

// BuildMonthlyFeeRows merges the roster with one month's fee records. A
// student with no record shows Unpaid at their configured monthly fee.
func BuildMonthlyFeeRows(students []*models.Student, fees map[int]*models.Fee) []*models.StudentFeeRow {
	rows := make([]*models.StudentFeeRow, 0, len(students))
	for _, s := range students {
		row := &models.StudentFeeRow{Student: s}
		if f, ok := fees[s.ID]; ok {
			row.Status = f.Status
			row.Amount = f.Amount
			feeID := f.ID
			row.FeeID = &feeID
		} else {
			row.Status = models.FeeUnpaid
			row.Amount = s.MonthlyFee
		}
		rows = append(rows, row)
	}
	return rows
}

// QuickPayFee marks a month paid for a student: the existing row for that
// (student, month) is updated in place, otherwise one is inserted. The
// select-then-write runs in a transaction; the fees table carries no unique
// constraint because the manual add path is allowed to create duplicates.
func QuickPayFee(db *sql.DB, studentID int, monthYear string, amount float64) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	paymentDate := dates.Today()

	var feeID int
	err = tx.QueryRow(`SELECT id FROM fees WHERE student_id = $1 AND month_year = $2 ORDER BY id ASC LIMIT 1`,
		studentID, monthYear).Scan(&feeID)
	switch {
	case err == sql.ErrNoRows:
		_, err = tx.Exec(`INSERT INTO fees (student_id, month_year, amount, status, payment_date) VALUES ($1, $2, $3, $4, $5)`,
			studentID, monthYear, amount, models.FeePaid, paymentDate)
	case err != nil:
		return err
	default:
		_, err = tx.Exec(`UPDATE fees SET status = $1, amount = $2, payment_date = $3 WHERE id = $4`,
			models.FeePaid, amount, paymentDate, feeID)
	}
	if err != nil {
		return err
	}
	return tx.Commit()
}

// AddFee inserts a fee row unconditionally. Unlike QuickPayFee this can
// create a second row for the same (student, month); that behavior predates
// the quick-pay path and existing data relies on it.
func AddFee(db *sql.DB, f *models.Fee) error {
	query := `INSERT INTO fees (student_id, month_year, amount, status, payment_date)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return db.QueryRow(query, f.StudentID, f.MonthYear, f.Amount, f.Status, f.PaymentDate).Scan(&f.ID)
}

// UpdateFee sets status and payment date on an existing row
func UpdateFee(db *sql.DB, feeID int, status, paymentDate string) error {
	_, err := db.Exec(`UPDATE fees SET status = $1, payment_date = $2 WHERE id = $3`, status, paymentDate, feeID)
	return err
}

// GetFeesByStudent returns a student's full fee history, newest entry first
func GetFeesByStudent(db *sql.DB, studentID int) ([]*models.Fee, error) {
	query := `SELECT id, student_id, month_year, amount, status, payment_date
			  FROM fees WHERE student_id = $1 ORDER BY id DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

// GetRecentFeesByStudent returns the latest n fee rows for the parent
// dashboard
func GetRecentFeesByStudent(db *sql.DB, studentID, limit int) ([]*models.Fee, error) {
	query := `SELECT id, student_id, month_year, amount, status, payment_date
			  FROM fees WHERE student_id = $1 ORDER BY id DESC LIMIT $2`

	rows, err := db.Query(query, studentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

// CountUnpaidForMonth counts students with no Paid fee row for the month
func CountUnpaidForMonth(db *sql.DB, monthYear string) (int, error) {
	query := `
		SELECT COUNT(*) FROM students s
		WHERE NOT EXISTS (
			SELECT 1 FROM fees f
			WHERE f.student_id = s.id AND f.month_year = $1 AND f.status = 'Paid'
		)
	`
	var count int
	err := db.QueryRow(query, monthYear).Scan(&count)
	return count, err
}

func scanFee(r rowScanner) (*models.Fee, error) {
	f := &models.Fee{}
	var amount sql.NullFloat64
	var paymentDate sql.NullString
	if err := r.Scan(&f.ID, &f.StudentID, &f.MonthYear, &amount, &f.Status, &paymentDate); err != nil {
		return nil, err
	}
	f.Amount = amount.Float64
	f.PaymentDate = paymentDate.String
	return f, nil
}
