package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_SwitchTab(t *testing.T) {
	s := State{ActiveTab: TabDashboard}

	assert.True(t, s.SwitchTab(TabRooms))
	assert.Equal(t, TabRooms, s.ActiveTab)

	s.Open(ModalRoom)

	assert.False(t, s.SwitchTab(TabCustomers), "tab switch must be refused while a modal is open")
	assert.Equal(t, TabRooms, s.ActiveTab)

	s.Close()

	assert.True(t, s.SwitchTab(TabCustomers))
}

func TestState_Open(t *testing.T) {
	s := State{}

	assert.True(t, s.Open(ModalCustomer))
	assert.Equal(t, ModalCustomer, s.OpenModal)

	assert.False(t, s.Open(ModalConfirm), "a second modal cannot stack on the first")
	assert.Equal(t, ModalCustomer, s.OpenModal)

	s.Close()

	assert.False(t, s.Open(ModalNone))
	assert.True(t, s.Open(ModalConfirm))
}

func TestState_Close(t *testing.T) {
	s := State{ActiveTab: TabPayments}
	s.Open(ModalPayment)

	s.Close()

	assert.False(t, s.ModalOpen())
	assert.Equal(t, TabPayments, s.ActiveTab, "closing a modal must not change the tab")

	s.Close()

	assert.False(t, s.ModalOpen())
}

func TestTab_String(t *testing.T) {
	assert.Equal(t, "Dashboard", TabDashboard.String())
	assert.Equal(t, "Staff", TabStaff.String())
}
