package console

import (
	"fmt"
	"strconv"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/shared"
)

func newBookingForm(opts dto.BookingFormOptions, edit *model.Booking) form {
	f := form{modal: ModalBooking, title: "Add Booking"}

	var b model.Booking
	if edit != nil {
		b = *edit
		f.id = strconv.Itoa(b.BookingID)
		f.title = "Edit Booking"
	}

	customers := make([]formOption, 0, len(opts.Customers))
	for _, c := range opts.Customers {
		customers = append(customers, formOption{id: c.CustomerID, label: c.OptionLabel()})
	}

	rooms := make([]formOption, 0, len(opts.Rooms)+1)
	for _, r := range opts.Rooms {
		rooms = append(rooms, formOption{id: r.RoomID, label: r.OptionLabel()})
	}

	// An edited booking's room is usually occupied and therefore absent
	// from the available list; keep it selectable so editing other fields
	// does not silently reassign the room.
	if edit != nil && !hasOption(rooms, b.RoomID) {
		current := formOption{id: b.RoomID, label: fmt.Sprintf("%d - %s", b.RoomID, b.RoomType)}
		rooms = append([]formOption{current}, rooms...)
	}

	total := ""
	if edit != nil {
		total = strconv.FormatFloat(b.TotalAmount, 'f', 2, 64)
	}

	f.fields = []formField{
		newOptionField("Customer", customers, b.CustomerID),
		newOptionField("Room", rooms, b.RoomID),
		newTextField("Check-In Date", b.CheckInDate, "YYYY-MM-DD"),
		newTextField("Check-Out Date", b.CheckOutDate, "YYYY-MM-DD"),
		newTextField("Total Amount", total, "0.00"),
	}
	f.focusField(0)

	return f
}

func hasOption(options []formOption, id int) bool {
	for _, opt := range options {
		if opt.id == id {
			return true
		}
	}

	return false
}

func bookingRequest(f form) (dto.SaveBookingRequest, error) {
	total, err := shared.ConvertStringToFloat(f.value(4), "total_amount")
	if err != nil {
		return dto.SaveBookingRequest{}, err
	}

	return dto.SaveBookingRequest{
		CustomerID:   f.optionID(0),
		RoomID:       f.optionID(1),
		CheckInDate:  f.value(2),
		CheckOutDate: f.value(3),
		TotalAmount:  total,
	}, nil
}
