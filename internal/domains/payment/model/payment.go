package model

const BasePath = "/payments"

// Payment list responses arrive denormalized with the paying customer's
// name; it is display-only.
type Payment struct {
	PaymentID     int     `json:"payment_id"`
	BookingID     int     `json:"booking_id"`
	PaymentDate   string  `json:"payment_date"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	CustomerName  string  `json:"customer_name"`
}
