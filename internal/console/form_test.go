package console

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingDto "frontdesk/internal/domains/booking/model/dto"
	customerModel "frontdesk/internal/domains/customer/model"
	roomModel "frontdesk/internal/domains/room/model"
)

func TestForm_FocusCycling(t *testing.T) {
	f := newCustomerForm(nil)
	require.Len(t, f.fields, 4)
	assert.Equal(t, 0, f.focus)

	f.next()
	assert.Equal(t, 1, f.focus)

	f.prev()
	f.prev()
	assert.Equal(t, 3, f.focus, "focus wraps backwards")

	f.next()
	assert.Equal(t, 0, f.focus, "focus wraps forwards")
}

func TestForm_OptionCycling(t *testing.T) {
	opts := bookingDto.BookingFormOptions{
		Customers: []customerModel.Customer{
			{CustomerID: 1, Name: "Alice"},
			{CustomerID: 2, Name: "Bob"},
		},
		Rooms: []roomModel.Room{{RoomID: 5, RoomType: "Single", IsAvailable: true}},
	}

	f := newBookingForm(opts, nil)

	assert.Equal(t, 1, f.optionID(0))

	f.handleKey(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, f.optionID(0))

	f.handleKey(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, f.optionID(0), "cycling wraps around")

	f.handleKey(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, f.optionID(0))
}

func TestForm_CheckboxToggle(t *testing.T) {
	f := newRoomForm(nil)

	assert.True(t, f.checkedAt(2), "new rooms default to available")

	f.focusField(2)
	f.handleKey(tea.KeyMsg{Type: tea.KeyLeft})

	assert.False(t, f.checkedAt(2))
}

func TestForm_TextEntry(t *testing.T) {
	f := newCustomerForm(nil)

	f.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Al")})

	assert.Equal(t, "Al", f.value(0))
}

func TestForm_EditPrefillsValues(t *testing.T) {
	room := roomModel.Room{RoomID: 3, RoomType: "Suite", PricePerNight: 250, IsAvailable: false}

	f := newRoomForm(&room)

	assert.Equal(t, "3", f.id)
	assert.Equal(t, "Suite", f.value(0))
	assert.Equal(t, "250.00", f.value(1))
	assert.False(t, f.checkedAt(2))

	req, err := roomRequest(f)
	require.NoError(t, err)
	assert.Equal(t, 250.0, req.PricePerNight)
	assert.False(t, req.IsAvailable)
}
