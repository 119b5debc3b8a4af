package console

import (
	"strconv"

	"frontdesk/internal/domains/payment/model"
	"frontdesk/internal/domains/payment/model/dto"
	"frontdesk/shared"
)

func newPaymentForm(opts dto.PaymentFormOptions, edit *model.Payment) form {
	f := form{modal: ModalPayment, title: "Add Payment"}

	var p model.Payment
	if edit != nil {
		p = *edit
		f.id = strconv.Itoa(p.PaymentID)
		f.title = "Edit Payment"
	}

	bookings := make([]formOption, 0, len(opts.Bookings))
	for _, b := range opts.Bookings {
		bookings = append(bookings, formOption{id: b.BookingID, label: b.OptionLabel()})
	}

	amount := ""
	if edit != nil {
		amount = strconv.FormatFloat(p.Amount, 'f', 2, 64)
	}

	f.fields = []formField{
		newOptionField("Booking", bookings, p.BookingID),
		newTextField("Payment Date", p.PaymentDate, "YYYY-MM-DD"),
		newTextField("Amount", amount, "0.00"),
		newTextField("Payment Method", p.PaymentMethod, "Cash, Card, Transfer"),
	}
	f.focusField(0)

	return f
}

func paymentRequest(f form) (dto.SavePaymentRequest, error) {
	amount, err := shared.ConvertStringToFloat(f.value(2), "amount")
	if err != nil {
		return dto.SavePaymentRequest{}, err
	}

	return dto.SavePaymentRequest{
		BookingID:     f.optionID(0),
		PaymentDate:   f.value(1),
		Amount:        amount,
		PaymentMethod: f.value(3),
	}, nil
}
