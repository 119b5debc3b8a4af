package console

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	adminService "frontdesk/internal/domains/admin/service"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingService "frontdesk/internal/domains/booking/service"
	customerModel "frontdesk/internal/domains/customer/model"
	customerService "frontdesk/internal/domains/customer/service"
	dashboardService "frontdesk/internal/domains/dashboard/service"
	paymentModel "frontdesk/internal/domains/payment/model"
	paymentService "frontdesk/internal/domains/payment/service"
	roomModel "frontdesk/internal/domains/room/model"
	roomService "frontdesk/internal/domains/room/service"
	staffModel "frontdesk/internal/domains/staff/model"
	staffService "frontdesk/internal/domains/staff/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
)

// Model is the whole console: one tab active at a time, at most one modal
// over it, and the per-tab row slices the background fetches fill in.
type Model struct {
	state   State
	width   int
	height  int
	cursors [tabCount]int

	customerSvc  customerService.Customer
	roomSvc      roomService.Room
	bookingSvc   bookingService.Booking
	paymentSvc   paymentService.Payment
	staffSvc     staffService.Staff
	dashboardSvc dashboardService.Dashboard
	adminSvc     adminService.Admin

	customers []customerModel.Customer
	rooms     []roomModel.Room
	bookings  []bookingModel.Booking
	payments  []paymentModel.Payment
	staff     []staffModel.Staff

	dash    dashboardVM
	form    form
	confirm confirmPrompt

	status    string
	statusErr bool
}

func New(
	customerSvc customerService.Customer,
	roomSvc roomService.Room,
	bookingSvc bookingService.Booking,
	paymentSvc paymentService.Payment,
	staffSvc staffService.Staff,
	dashboardSvc dashboardService.Dashboard,
	adminSvc adminService.Admin,
) Model {
	return Model{
		state:        State{ActiveTab: TabDashboard},
		customerSvc:  customerSvc,
		roomSvc:      roomSvc,
		bookingSvc:   bookingSvc,
		paymentSvc:   paymentSvc,
		staffSvc:     staffSvc,
		dashboardSvc: dashboardSvc,
		adminSvc:     adminSvc,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadDashboard()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case customersLoadedMsg:
		m.customers = msg.rows
		m.clampCursor(TabCustomers, len(msg.rows))

		return m, nil
	case roomsLoadedMsg:
		m.rooms = msg.rows
		m.clampCursor(TabRooms, len(msg.rows))

		return m, nil
	case bookingsLoadedMsg:
		m.bookings = msg.rows
		m.clampCursor(TabBookings, len(msg.rows))

		return m, nil
	case paymentsLoadedMsg:
		m.payments = msg.rows
		m.clampCursor(TabPayments, len(msg.rows))

		return m, nil
	case staffLoadedMsg:
		m.staff = msg.rows
		m.clampCursor(TabStaff, len(msg.rows))

		return m, nil
	case dashCustomersMsg:
		m.dash.customers = msg.count
		m.dash.haveCustomers = true

		return m, nil
	case dashAvailableRoomsMsg:
		m.dash.availableRooms = msg.count
		m.dash.haveRooms = true

		return m, nil
	case dashBookingsMsg:
		m.dash.bookings = msg.count
		m.dash.haveBookings = true

		return m, nil
	case dashRevenueMsg:
		m.dash.revenue = msg.total
		m.dash.haveRevenue = true

		return m, nil
	case dashRecentMsg:
		m.dash.recent = msg.rows
		m.dash.haveRecent = true

		return m, nil
	case bookingOptionsMsg:
		if m.state.Open(ModalBooking) {
			m.form = newBookingForm(msg.options, msg.edit)
		}

		return m, nil
	case paymentOptionsMsg:
		if m.state.Open(ModalPayment) {
			m.form = newPaymentForm(msg.options, msg.edit)
		}

		return m, nil
	case savedMsg:
		m.state.Close()
		m.form = form{}
		m.setStatus("record saved", false)

		return m, m.loadTabData(msg.tab)
	case deletedMsg:
		m.state.Close()
		m.setStatus("record deleted", false)

		return m, m.loadTabData(msg.tab)
	case deleteFailedMsg:
		m.state.Close()

		if failure.IsConflict(msg.err) {
			m.setStatus(constant.MessageDeleteConflict, true)
		} else {
			m.setStatus(constant.MessageDeleteFailed, true)
		}

		return m, nil
	case wipedMsg:
		m.state.Close()
		m.setStatus(msg.message, false)

		return m, m.loadTabData(m.state.ActiveTab)
	case wipeFailedMsg:
		m.state.Close()
		m.setStatus(msg.err.Error(), true)

		return m, m.loadTabData(m.state.ActiveTab)
	case errorMsg:
		m.setStatus(msg.err.Error(), true)

		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state.OpenModal == ModalConfirm {
		return m.handleConfirmKey(msg)
	}

	if m.state.ModalOpen() {
		return m.handleFormKey(msg)
	}

	return m.handleGlobalKey(msg)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.confirm.kind == confirmWipe {
			return m, m.wipeDatabase()
		}

		return m, m.deleteRecord(m.confirm.tab, m.confirm.id)
	case "n", "N", "esc":
		m.state.Close()

		return m, nil
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state.Close()
		m.form = form{}

		return m, nil
	case "enter":
		return m, m.submitForm(m.form)
	case "tab", "down":
		m.form.next()

		return m, nil
	case "shift+tab", "up":
		m.form.prev()

		return m, nil
	default:
		cmd := m.form.handleKey(msg)

		return m, cmd
	}
}

func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1", "2", "3", "4", "5", "6":
		tab := Tab(int(msg.String()[0] - '1'))

		return m.switchTo(tab)
	case "tab", "right":
		return m.switchTo(Tab((int(m.state.ActiveTab) + 1) % tabCount))
	case "shift+tab", "left":
		return m.switchTo(Tab((int(m.state.ActiveTab) + tabCount - 1) % tabCount))
	case "up", "k":
		if m.cursors[m.state.ActiveTab] > 0 {
			m.cursors[m.state.ActiveTab]--
		}

		return m, nil
	case "down", "j":
		if m.cursors[m.state.ActiveTab] < m.rowCount(m.state.ActiveTab)-1 {
			m.cursors[m.state.ActiveTab]++
		}

		return m, nil
	case "r":
		return m, m.loadTabData(m.state.ActiveTab)
	case "a":
		return m.openAddModal()
	case "e":
		return m.openEditModal()
	case "d":
		return m.openDeleteConfirm()
	case "W":
		if m.state.Open(ModalConfirm) {
			m.confirm = newWipeConfirm()
		}

		return m, nil
	}

	return m, nil
}

func (m Model) switchTo(tab Tab) (tea.Model, tea.Cmd) {
	if !m.state.SwitchTab(tab) {
		return m, nil
	}

	m.setStatus("", false)

	return m, m.loadTabData(tab)
}

func (m Model) openAddModal() (tea.Model, tea.Cmd) {
	switch m.state.ActiveTab {
	case TabCustomers:
		if m.state.Open(ModalCustomer) {
			m.form = newCustomerForm(nil)
		}

		return m, nil
	case TabRooms:
		if m.state.Open(ModalRoom) {
			m.form = newRoomForm(nil)
		}

		return m, nil
	case TabStaff:
		if m.state.Open(ModalStaff) {
			m.form = newStaffForm(nil)
		}

		return m, nil
	case TabBookings:
		return m, m.loadBookingOptions(nil)
	case TabPayments:
		return m, m.loadPaymentOptions(nil)
	default:
		return m, nil
	}
}

func (m Model) openEditModal() (tea.Model, tea.Cmd) {
	cursor := m.cursors[m.state.ActiveTab]

	switch m.state.ActiveTab {
	case TabCustomers:
		if cursor < len(m.customers) && m.state.Open(ModalCustomer) {
			record := m.customers[cursor]
			m.form = newCustomerForm(&record)
		}

		return m, nil
	case TabRooms:
		if cursor < len(m.rooms) && m.state.Open(ModalRoom) {
			record := m.rooms[cursor]
			m.form = newRoomForm(&record)
		}

		return m, nil
	case TabStaff:
		if cursor < len(m.staff) && m.state.Open(ModalStaff) {
			record := m.staff[cursor]
			m.form = newStaffForm(&record)
		}

		return m, nil
	case TabBookings:
		if cursor < len(m.bookings) {
			record := m.bookings[cursor]

			return m, m.loadBookingOptions(&record)
		}

		return m, nil
	case TabPayments:
		if cursor < len(m.payments) {
			record := m.payments[cursor]

			return m, m.loadPaymentOptions(&record)
		}

		return m, nil
	default:
		return m, nil
	}
}

func (m Model) openDeleteConfirm() (tea.Model, tea.Cmd) {
	id, ok := m.selectedID()
	if !ok {
		return m, nil
	}

	if m.state.Open(ModalConfirm) {
		m.confirm = newDeleteConfirm(m.state.ActiveTab, id)
	}

	return m, nil
}

func (m Model) selectedID() (int, bool) {
	cursor := m.cursors[m.state.ActiveTab]

	switch m.state.ActiveTab {
	case TabCustomers:
		if cursor < len(m.customers) {
			return m.customers[cursor].CustomerID, true
		}
	case TabRooms:
		if cursor < len(m.rooms) {
			return m.rooms[cursor].RoomID, true
		}
	case TabBookings:
		if cursor < len(m.bookings) {
			return m.bookings[cursor].BookingID, true
		}
	case TabPayments:
		if cursor < len(m.payments) {
			return m.payments[cursor].PaymentID, true
		}
	case TabStaff:
		if cursor < len(m.staff) {
			return m.staff[cursor].StaffID, true
		}
	}

	return 0, false
}

func (m Model) rowCount(tab Tab) int {
	switch tab {
	case TabCustomers:
		return len(m.customers)
	case TabRooms:
		return len(m.rooms)
	case TabBookings:
		return len(m.bookings)
	case TabPayments:
		return len(m.payments)
	case TabStaff:
		return len(m.staff)
	default:
		return 0
	}
}

func (m *Model) clampCursor(tab Tab, size int) {
	if m.cursors[tab] >= size {
		m.cursors[tab] = size - 1
	}

	if m.cursors[tab] < 0 {
		m.cursors[tab] = 0
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch {
	case m.state.OpenModal == ModalConfirm:
		b.WriteString(m.confirm.view())
	case m.state.ModalOpen():
		b.WriteString(m.form.view())
	case m.state.ActiveTab == TabDashboard:
		b.WriteString(m.dash.view())
	case m.state.ActiveTab == TabCustomers:
		b.WriteString(renderTable(customerHeaders, customerRows(m.customers), m.cursors[TabCustomers]))
	case m.state.ActiveTab == TabRooms:
		b.WriteString(renderTable(roomHeaders, roomRows(m.rooms), m.cursors[TabRooms]))
	case m.state.ActiveTab == TabBookings:
		b.WriteString(renderTable(bookingHeaders, bookingRows(m.bookings), m.cursors[TabBookings]))
	case m.state.ActiveTab == TabPayments:
		b.WriteString(renderTable(paymentHeaders, paymentRows(m.payments), m.cursors[TabPayments]))
	case m.state.ActiveTab == TabStaff:
		b.WriteString(renderTable(staffHeaders, staffRows(m.staff), m.cursors[TabStaff]))
	}

	b.WriteString("\n\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}

		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.helpLine()))

	return b.String()
}

func (m Model) tabBar() string {
	tabs := make([]string, 0, tabCount)

	for t := Tab(0); t < tabCount; t++ {
		style := tabStyle
		if t == m.state.ActiveTab {
			style = activeTabStyle
		}

		tabs = append(tabs, style.Render(t.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) helpLine() string {
	if m.state.ModalOpen() {
		return ""
	}

	if m.state.ActiveTab == TabDashboard {
		return "1-6/tab switch - r reload - W wipe database - q quit"
	}

	return "1-6/tab switch - j/k move - a add - e edit - d delete - r reload - W wipe database - q quit"
}
