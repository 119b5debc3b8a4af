package model

import (
	"fmt"

	"frontdesk/shared/money"
)

const (
	BasePath      = "/rooms"
	AvailablePath = "/rooms/available"
)

type Room struct {
	RoomID        int     `json:"room_id"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	IsAvailable   bool    `json:"is_available"`
}

// AvailabilityLabel is the display form of the availability flag.
func (r Room) AvailabilityLabel() string {
	if r.IsAvailable {
		return "Available"
	}

	return "Occupied"
}

// OptionLabel renders the room the way the booking form's selector shows it.
func (r Room) OptionLabel() string {
	return fmt.Sprintf("%d - %s (%s)", r.RoomID, r.RoomType, money.Format(r.PricePerNight))
}
