package models

// Fee payment states. There is no reverse transition from Paid, but the
// manual edit path may set a row back to Unpaid explicitly.
const (
	FeePaid   = "Paid"
	FeeUnpaid = "Unpaid"
)

// Fee represents one fee record for a student and month. The quick-pay path
// keeps at most one row per (student, month); the manual add path inserts
// unconditionally, so duplicates are possible there.
type Fee struct {
	ID          int     `json:"id"`
	StudentID   int     `json:"student_id" validate:"required"`
	MonthYear   string  `json:"month_year" validate:"required"`
	Amount      float64 `json:"amount" validate:"min=0"`
	Status      string  `json:"status" validate:"required,oneof=Paid Unpaid"`
	PaymentDate string  `json:"payment_date"`
}

// StudentFeeRow is the fees page display row for one student in one month.
// For months with no fee record the status defaults to Unpaid and the amount
// to the student's configured monthly fee.
type StudentFeeRow struct {
	Student *Student `json:"student"`
	Status  string   `json:"status"`
	Amount  float64  `json:"amount"`
	FeeID   *int     `json:"fee_id,omitempty"`
}
