package console

import (
	"strconv"

	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared"
)

func newRoomForm(edit *model.Room) form {
	f := form{modal: ModalRoom, title: "Add Room"}

	var r model.Room
	if edit != nil {
		r = *edit
		f.id = strconv.Itoa(r.RoomID)
		f.title = "Edit Room"
	}

	price := ""
	if edit != nil {
		price = strconv.FormatFloat(r.PricePerNight, 'f', 2, 64)
	}

	available := true
	if edit != nil {
		available = r.IsAvailable
	}

	f.fields = []formField{
		newTextField("Room Type", r.RoomType, "Single, Double, Suite"),
		newTextField("Price Per Night", price, "0.00"),
		newCheckboxField("Available", available),
	}
	f.focusField(0)

	return f
}

func roomRequest(f form) (dto.SaveRoomRequest, error) {
	price, err := shared.ConvertStringToFloat(f.value(1), "price_per_night")
	if err != nil {
		return dto.SaveRoomRequest{}, err
	}

	return dto.SaveRoomRequest{
		RoomType:      f.value(0),
		PricePerNight: price,
		IsAvailable:   f.checkedAt(2),
	}, nil
}
