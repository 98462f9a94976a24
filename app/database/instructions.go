package database

import (
	"database/sql"

	"github.com/Vikasthangavel/CTC/app/models"
)

const instructionWindow = 20

func CreateInstruction(db *sql.DB, in *models.Instruction) error {
	query := `INSERT INTO instructions (message, target_type, target_value) VALUES ($1, $2, $3) RETURNING id`
	var targetValue interface{}
	if in.TargetValue != "" {
		targetValue = in.TargetValue
	}
	return db.QueryRow(query, in.Message, in.TargetType, targetValue).Scan(&in.ID)
}

// GetRecentInstructions returns the announcement window parents are matched
// against: the 20 most recent instructions, newest first. Older announcements
// are out of view by design.
func GetRecentInstructions(db *sql.DB) ([]*models.Instruction, error) {
	query := `SELECT id, message, to_char(created_at, 'YYYY-MM-DD HH24:MI'), target_type, target_value
			  FROM instructions ORDER BY created_at DESC, id DESC LIMIT $1`

	rows, err := db.Query(query, instructionWindow)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructions []*models.Instruction
	for rows.Next() {
		in := &models.Instruction{}
		var targetType, targetValue sql.NullString
		if err := rows.Scan(&in.ID, &in.Message, &in.CreatedAt, &targetType, &targetValue); err != nil {
			return nil, err
		}
		in.TargetType = targetType.String
		in.TargetValue = targetValue.String
		instructions = append(instructions, in)
	}
	return instructions, rows.Err()
}

func DeleteInstruction(db *sql.DB, instructionID int) error {
	_, err := db.Exec(`DELETE FROM instructions WHERE id = $1`, instructionID)
	return err
}
