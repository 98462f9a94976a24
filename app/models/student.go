package models

// Student represents an enrolled child. Children sharing a parent_contact
// belong to the same parent login.
type Student struct {
	ID            int     `json:"id"`
	Name          string  `json:"name" validate:"required"`
	Grade         int     `json:"grade" validate:"required,min=1"`
	ParentName    string  `json:"parent_name" validate:"required"`
	ParentContact string  `json:"parent_contact" validate:"required"`
	MonthlyFee    float64 `json:"monthly_fee" validate:"min=0"`
	DOB           *string `json:"dob,omitempty"`
	BloodGroup    *string `json:"blood_group,omitempty"`
}
