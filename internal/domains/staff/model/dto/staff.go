package dto

// SaveStaffRequest is the create/update body for a staff member.
type SaveStaffRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Role  string `json:"role"  validate:"required,max=50"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
}
