package dto

// SaveRoomRequest is the create/update body for a room.
type SaveRoomRequest struct {
	RoomType      string  `json:"room_type"       validate:"required,max=50"`
	PricePerNight float64 `json:"price_per_night" validate:"gte=0"`
	IsAvailable   bool    `json:"is_available"`
}
