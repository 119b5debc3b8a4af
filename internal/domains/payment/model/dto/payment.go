package dto

import (
	bookingModel "frontdesk/internal/domains/booking/model"
)

// SavePaymentRequest is the create/update body for a payment.
type SavePaymentRequest struct {
	BookingID     int     `json:"booking_id"     validate:"required,gt=0"`
	PaymentDate   string  `json:"payment_date"   validate:"required,datetime=2006-01-02"`
	Amount        float64 `json:"amount"         validate:"gte=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,max=50"`
}

// PaymentFormOptions is the selector data the payment form needs before
// opening: every booking, labeled with its computed total.
type PaymentFormOptions struct {
	Bookings []bookingModel.Booking
}
