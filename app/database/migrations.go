package database

import (
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// RunMigrations creates the schema if absent and applies column additions to
// pre-existing tables without destroying data. Safe to run on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createTables(db); err != nil {
		return err
	}
	if err := addStudentProfileColumns(db); err != nil {
		return err
	}
	if err := addInstructionTargetColumns(db); err != nil {
		return err
	}
	if err := createAttendanceDayIndex(db); err != nil {
		return err
	}
	if err := seedAdmin(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createTables(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS admin (
			id SERIAL PRIMARY KEY,
			username VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			grade INT NOT NULL,
			parent_name VARCHAR(255) NOT NULL,
			parent_contact VARCHAR(255) NOT NULL,
			monthly_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
			dob VARCHAR(20),
			blood_group VARCHAR(10)
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id SERIAL PRIMARY KEY,
			student_id INT NOT NULL REFERENCES students (id),
			date VARCHAR(20) NOT NULL,
			status VARCHAR(50) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS fees (
			id SERIAL PRIMARY KEY,
			student_id INT NOT NULL REFERENCES students (id),
			month_year VARCHAR(20) NOT NULL,
			amount DOUBLE PRECISION,
			status VARCHAR(50) NOT NULL DEFAULT 'Unpaid',
			payment_date VARCHAR(20)
		)`,
		`CREATE TABLE IF NOT EXISTS daily_activities (
			id SERIAL PRIMARY KEY,
			student_id INT NOT NULL REFERENCES students (id),
			activity_date VARCHAR(20) NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS parent_reports (
			id SERIAL PRIMARY KEY,
			student_id INT NOT NULL REFERENCES students (id),
			message TEXT NOT NULL,
			report_date TIMESTAMP NOT NULL DEFAULT NOW(),
			status VARCHAR(20) NOT NULL DEFAULT 'Unread'
		)`,
		`CREATE TABLE IF NOT EXISTS instructions (
			id SERIAL PRIMARY KEY,
			message TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			target_type VARCHAR(20) DEFAULT 'all',
			target_value VARCHAR(50)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Failed to create table: %v", err)
			return err
		}
	}
	return nil
}

// addStudentProfileColumns upgrades student tables created before the
// monthly_fee/dob/blood_group columns existed
func addStudentProfileColumns(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'students'
				AND column_name = 'monthly_fee'
			) THEN
				ALTER TABLE students ADD COLUMN monthly_fee DOUBLE PRECISION NOT NULL DEFAULT 0;
			END IF;
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'students'
				AND column_name = 'dob'
			) THEN
				ALTER TABLE students ADD COLUMN dob VARCHAR(20);
				ALTER TABLE students ADD COLUMN blood_group VARCHAR(10);
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for student profile columns: %v", err)
		return err
	}
	return nil
}

// addInstructionTargetColumns upgrades instruction tables created before
// targeted announcements existed
func addInstructionTargetColumns(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'instructions'
				AND column_name = 'target_type'
			) THEN
				ALTER TABLE instructions ADD COLUMN target_type VARCHAR(20) DEFAULT 'all';
				ALTER TABLE instructions ADD COLUMN target_value VARCHAR(50);
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for instruction target columns: %v", err)
		return err
	}
	return nil
}

// createAttendanceDayIndex backs the atomic attendance upsert. Duplicate
// (student, date) rows from older deployments must be cleaned up before this
// index can be created; the error surfaces that clearly.
func createAttendanceDayIndex(db *sql.DB) error {
	query := `CREATE UNIQUE INDEX IF NOT EXISTS idx_attendance_student_date ON attendance (student_id, date)`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create attendance (student_id, date) unique index: %v", err)
		return err
	}
	return nil
}

// seedAdmin keeps the legacy admin credentials row present for older
// deployments that still read it
func seedAdmin(db *sql.DB) error {
	var id int
	err := db.QueryRow(`SELECT id FROM admin WHERE username = $1`, "admin").Scan(&id)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 14)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO admin (username, password) VALUES ($1, $2)`, "admin", string(hash))
	if err != nil {
		log.Printf("Failed to seed admin row: %v", err)
	}
	return err
}
