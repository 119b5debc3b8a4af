package console

// Tab identifies one of the console's sections. Exactly one is active at a
// time.
type Tab int

const (
	TabDashboard Tab = iota
	TabCustomers
	TabRooms
	TabBookings
	TabPayments
	TabStaff
)

const tabCount = 6

func (t Tab) String() string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabCustomers:
		return "Customers"
	case TabRooms:
		return "Rooms"
	case TabBookings:
		return "Bookings"
	case TabPayments:
		return "Payments"
	case TabStaff:
		return "Staff"
	default:
		return "Unknown"
	}
}

// Modal identifies the overlay currently covering the active tab, if any.
// At most one modal is open at a time.
type Modal int

const (
	ModalNone Modal = iota
	ModalCustomer
	ModalRoom
	ModalBooking
	ModalPayment
	ModalStaff
	ModalConfirm
)

// State is the console's interaction state: which tab is showing and which
// modal, if any, overlays it. Tab switches are refused while a modal is
// open so the overlay always belongs to the tab it was opened from.
type State struct {
	ActiveTab Tab
	OpenModal Modal
}

// SwitchTab activates t and reports whether the switch happened.
func (s *State) SwitchTab(t Tab) bool {
	if s.OpenModal != ModalNone {
		return false
	}

	s.ActiveTab = t

	return true
}

// Open raises m and reports whether it was raised. A second modal cannot be
// opened over the first.
func (s *State) Open(m Modal) bool {
	if s.OpenModal != ModalNone || m == ModalNone {
		return false
	}

	s.OpenModal = m

	return true
}

// Close dismisses whatever modal is open.
func (s *State) Close() {
	s.OpenModal = ModalNone
}

// ModalOpen reports whether any modal overlays the active tab.
func (s *State) ModalOpen() bool {
	return s.OpenModal != ModalNone
}
