package model

import (
	"fmt"

	"frontdesk/shared/money"
)

const BasePath = "/bookings"

// Booking carries the denormalized fields the record service joins in for
// list responses (customer_name, room_type); they are display-only and never
// sent back.
type Booking struct {
	BookingID    int     `json:"booking_id"`
	CustomerID   int     `json:"customer_id"`
	RoomID       int     `json:"room_id"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalAmount  float64 `json:"total_amount"`
	CustomerName string  `json:"customer_name"`
	RoomType     string  `json:"room_type"`
}

// OptionLabel renders the booking the way the payment form's selector shows
// it, total included so the operator can recognize it.
func (b Booking) OptionLabel() string {
	return fmt.Sprintf("%d - %s - %s", b.BookingID, b.CustomerName, money.Format(b.TotalAmount))
}
