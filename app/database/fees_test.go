package database

import (
	"testing"

	"github.com/Vikasthangavel/CTC/app/models"
)

func TestBuildMonthlyFeeRows(t *testing.T) {
	students := []*models.Student{
		{ID: 1, Name: "Aarav", Grade: 3, MonthlyFee: 500},
		{ID: 2, Name: "Diya", Grade: 5, MonthlyFee: 750},
		{ID: 3, Name: "Ishaan", Grade: 1, MonthlyFee: 300},
	}
	fees := map[int]*models.Fee{
		2: {ID: 42, StudentID: 2, MonthYear: "2024-03", Amount: 700, Status: models.FeePaid, PaymentDate: "2024-03-04"},
	}

	rows := BuildMonthlyFeeRows(students, fees)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	// No record: defaults to Unpaid at the configured monthly fee.
	if rows[0].Status != models.FeeUnpaid || rows[0].Amount != 500 || rows[0].FeeID != nil {
		t.Errorf("student without fee row = %s/%v (fee id %v), want Unpaid/500/nil", rows[0].Status, rows[0].Amount, rows[0].FeeID)
	}

	// Recorded fee wins over the configured default.
	if rows[1].Status != models.FeePaid || rows[1].Amount != 700 {
		t.Errorf("student with fee row = %s/%v, want Paid/700", rows[1].Status, rows[1].Amount)
	}
	if rows[1].FeeID == nil || *rows[1].FeeID != 42 {
		t.Errorf("fee id = %v, want 42", rows[1].FeeID)
	}

	if rows[2].Status != models.FeeUnpaid || rows[2].Amount != 300 {
		t.Errorf("third student = %s/%v, want Unpaid/300", rows[2].Status, rows[2].Amount)
	}
}

func TestBuildMonthlyFeeRows_Empty(t *testing.T) {
	rows := BuildMonthlyFeeRows(nil, nil)
	if len(rows) != 0 {
		t.Fatalf("len(rows) = %d, want 0", len(rows))
	}
}
