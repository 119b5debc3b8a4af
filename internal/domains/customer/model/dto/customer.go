package dto

// SaveCustomerRequest is the create/update body for a customer. The record
// service assigns the identifier, so it never appears here.
type SaveCustomerRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Phone   string `json:"phone"   validate:"required,max=20"`
	Email   string `json:"email"   validate:"omitempty,email,max=100"`
	Address string `json:"address" validate:"omitempty,max=200"`
}
