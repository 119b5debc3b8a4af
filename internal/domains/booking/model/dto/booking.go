package dto

import (
	customerModel "frontdesk/internal/domains/customer/model"
	roomModel "frontdesk/internal/domains/room/model"
)

// SaveBookingRequest is the create/update body for a booking. The check-out
// ordering rule stays server-side; only shape is validated here.
type SaveBookingRequest struct {
	CustomerID   int     `json:"customer_id"    validate:"required,gt=0"`
	RoomID       int     `json:"room_id"        validate:"required,gt=0"`
	CheckInDate  string  `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string  `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	TotalAmount  float64 `json:"total_amount"   validate:"gte=0"`
}

// BookingFormOptions is everything the booking form needs before it can
// open: every customer, and only the rooms available right now.
type BookingFormOptions struct {
	Customers []customerModel.Customer
	Rooms     []roomModel.Room
}
