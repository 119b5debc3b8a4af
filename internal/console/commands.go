package console

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	bookingModel "frontdesk/internal/domains/booking/model"
	paymentModel "frontdesk/internal/domains/payment/model"
	gDto "frontdesk/shared/dto"
)

// Commands run outside the update loop and report back as messages; each
// one builds its own context since the HTTP client already bounds request
// time.

func (m Model) loadTabData(tab Tab) tea.Cmd {
	switch tab {
	case TabDashboard:
		return m.loadDashboard()
	case TabCustomers:
		return m.loadCustomers()
	case TabRooms:
		return m.loadRooms()
	case TabBookings:
		return m.loadBookings()
	case TabPayments:
		return m.loadPayments()
	case TabStaff:
		return m.loadStaff()
	default:
		return nil
	}
}

func (m Model) loadCustomers() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.customerSvc.GetAll(context.Background())
		if err != nil {
			return errorMsg{err: err}
		}

		return customersLoadedMsg{rows: rows}
	}
}

func (m Model) loadRooms() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.roomSvc.GetAll(context.Background())
		if err != nil {
			return errorMsg{err: err}
		}

		return roomsLoadedMsg{rows: rows}
	}
}

func (m Model) loadBookings() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.bookingSvc.GetAll(context.Background())
		if err != nil {
			return errorMsg{err: err}
		}

		return bookingsLoadedMsg{rows: rows}
	}
}

func (m Model) loadPayments() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.paymentSvc.GetAll(context.Background())
		if err != nil {
			return errorMsg{err: err}
		}

		return paymentsLoadedMsg{rows: rows}
	}
}

func (m Model) loadStaff() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.staffSvc.GetAll(context.Background())
		if err != nil {
			return errorMsg{err: err}
		}

		return staffLoadedMsg{rows: rows}
	}
}

// loadDashboard fires the five aggregate fetches concurrently; their
// results can land in any order.
func (m Model) loadDashboard() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			count, err := m.dashboardSvc.CountCustomers(context.Background())
			if err != nil {
				return errorMsg{err: err}
			}

			return dashCustomersMsg{count: count}
		},
		func() tea.Msg {
			count, err := m.dashboardSvc.CountAvailableRooms(context.Background())
			if err != nil {
				return errorMsg{err: err}
			}

			return dashAvailableRoomsMsg{count: count}
		},
		func() tea.Msg {
			count, err := m.dashboardSvc.CountBookings(context.Background())
			if err != nil {
				return errorMsg{err: err}
			}

			return dashBookingsMsg{count: count}
		},
		func() tea.Msg {
			total, err := m.dashboardSvc.TotalRevenue(context.Background())
			if err != nil {
				return errorMsg{err: err}
			}

			return dashRevenueMsg{total: total}
		},
		func() tea.Msg {
			rows, err := m.dashboardSvc.RecentBookings(context.Background())
			if err != nil {
				return errorMsg{err: err}
			}

			return dashRecentMsg{rows: rows}
		},
	)
}

func (m Model) loadBookingOptions(edit *bookingModel.Booking) tea.Cmd {
	return func() tea.Msg {
		opts, err := m.bookingSvc.Options(context.Background())
		if err != nil {
			return errorMsg{err: err}
		}

		return bookingOptionsMsg{options: opts, edit: edit}
	}
}

func (m Model) loadPaymentOptions(edit *paymentModel.Payment) tea.Cmd {
	return func() tea.Msg {
		opts, err := m.paymentSvc.Options(context.Background())
		if err != nil {
			return errorMsg{err: err}
		}

		return paymentOptionsMsg{options: opts, edit: edit}
	}
}

// submitForm resolves the form's hidden identifier into a create or update
// intent and hands the built request to the owning service.
func (m Model) submitForm(f form) tea.Cmd {
	return func() tea.Msg {
		intent, err := gDto.IntentFromID(f.id)
		if err != nil {
			return errorMsg{err: err}
		}

		ctx := context.Background()

		switch f.modal {
		case ModalCustomer:
			req, err := customerRequest(f)
			if err != nil {
				return errorMsg{err: err}
			}

			if _, err := m.customerSvc.Save(ctx, intent, req); err != nil {
				return errorMsg{err: err}
			}

			return savedMsg{tab: TabCustomers}
		case ModalRoom:
			req, err := roomRequest(f)
			if err != nil {
				return errorMsg{err: err}
			}

			if _, err := m.roomSvc.Save(ctx, intent, req); err != nil {
				return errorMsg{err: err}
			}

			return savedMsg{tab: TabRooms}
		case ModalBooking:
			req, err := bookingRequest(f)
			if err != nil {
				return errorMsg{err: err}
			}

			if _, err := m.bookingSvc.Save(ctx, intent, req); err != nil {
				return errorMsg{err: err}
			}

			return savedMsg{tab: TabBookings}
		case ModalPayment:
			req, err := paymentRequest(f)
			if err != nil {
				return errorMsg{err: err}
			}

			if _, err := m.paymentSvc.Save(ctx, intent, req); err != nil {
				return errorMsg{err: err}
			}

			return savedMsg{tab: TabPayments}
		case ModalStaff:
			req, err := staffRequest(f)
			if err != nil {
				return errorMsg{err: err}
			}

			if _, err := m.staffSvc.Save(ctx, intent, req); err != nil {
				return errorMsg{err: err}
			}

			return savedMsg{tab: TabStaff}
		default:
			return nil
		}
	}
}

func (m Model) deleteRecord(tab Tab, id int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var err error

		switch tab {
		case TabCustomers:
			err = m.customerSvc.Delete(ctx, id)
		case TabRooms:
			err = m.roomSvc.Delete(ctx, id)
		case TabBookings:
			err = m.bookingSvc.Delete(ctx, id)
		case TabPayments:
			err = m.paymentSvc.Delete(ctx, id)
		case TabStaff:
			err = m.staffSvc.Delete(ctx, id)
		}

		if err != nil {
			return deleteFailedMsg{err: err}
		}

		return deletedMsg{tab: tab}
	}
}

func (m Model) wipeDatabase() tea.Cmd {
	return func() tea.Msg {
		message, err := m.adminSvc.DropDatabase(context.Background())
		if err != nil {
			return wipeFailedMsg{err: err}
		}

		return wipedMsg{message: message}
	}
}
