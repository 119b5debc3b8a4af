package model

const BasePath = "/staff"

type Staff struct {
	StaffID int    `json:"staff_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}
