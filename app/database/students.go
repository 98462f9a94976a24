package database

import (
	"database/sql"

	"github.com/Vikasthangavel/CTC/app/models"
)

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT id, name, grade, parent_name, parent_contact, monthly_fee, dob, blood_group
			  FROM students ORDER BY grade ASC, name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, studentID int) (*models.Student, error) {
	query := `SELECT id, name, grade, parent_name, parent_contact, monthly_fee, dob, blood_group
			  FROM students WHERE id = $1`
	return scanStudentRow(db.QueryRow(query, studentID))
}

// GetStudentsByParentContact returns every child registered under a phone
// number. A parent session covers all of them.
func GetStudentsByParentContact(db *sql.DB, phone string) ([]*models.Student, error) {
	query := `SELECT id, name, grade, parent_name, parent_contact, monthly_fee, dob, blood_group
			  FROM students WHERE parent_contact = $1 ORDER BY name ASC`

	rows, err := db.Query(query, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetOwnedStudent fetches a student only if it belongs to the given parent
// phone. sql.ErrNoRows means the student exists under someone else (or not at
// all) and the caller must refuse access.
func GetOwnedStudent(db *sql.DB, studentID int, phone string) (*models.Student, error) {
	query := `SELECT id, name, grade, parent_name, parent_contact, monthly_fee, dob, blood_group
			  FROM students WHERE id = $1 AND parent_contact = $2`
	return scanStudentRow(db.QueryRow(query, studentID, phone))
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (name, grade, parent_name, parent_contact, monthly_fee, dob, blood_group)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return db.QueryRow(query, s.Name, s.Grade, s.ParentName, s.ParentContact, s.MonthlyFee, s.DOB, s.BloodGroup).Scan(&s.ID)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET name = $1, grade = $2, parent_name = $3, parent_contact = $4, monthly_fee = $5, dob = $6, blood_group = $7
			  WHERE id = $8`
	_, err := db.Exec(query, s.Name, s.Grade, s.ParentName, s.ParentContact, s.MonthlyFee, s.DOB, s.BloodGroup, s.ID)
	return err
}

func DeleteStudent(db *sql.DB, studentID int) error {
	_, err := db.Exec(`DELETE FROM students WHERE id = $1`, studentID)
	return err
}

func CountStudents(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStudent(r rowScanner) (*models.Student, error) {
	s := &models.Student{}
	var dob, bloodGroup sql.NullString
	if err := r.Scan(&s.ID, &s.Name, &s.Grade, &s.ParentName, &s.ParentContact, &s.MonthlyFee, &dob, &bloodGroup); err != nil {
		return nil, err
	}
	if dob.Valid {
		s.DOB = &dob.String
	}
	if bloodGroup.Valid {
		s.BloodGroup = &bloodGroup.String
	}
	return s, nil
}

func scanStudentRow(row *sql.Row) (*models.Student, error) {
	return scanStudent(row)
}
