package console

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/shared/money"
)

// dashboardVM accumulates the five independent aggregate fetches. Each card
// shows a placeholder until its own fetch lands, so a slow or failed fetch
// never blanks the others.
type dashboardVM struct {
	customers      int
	availableRooms int
	bookings       int
	revenue        float64
	recent         []bookingModel.Booking

	haveCustomers bool
	haveRooms     bool
	haveBookings  bool
	haveRevenue   bool
	haveRecent    bool
}

func (d dashboardVM) view() string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Customers", countValue(d.customers, d.haveCustomers)),
		card("Available Rooms", countValue(d.availableRooms, d.haveRooms)),
		card("Bookings", countValue(d.bookings, d.haveBookings)),
		card("Revenue", revenueValue(d.revenue, d.haveRevenue)),
	)

	var b strings.Builder

	b.WriteString(cards)
	b.WriteString("\n\n")
	b.WriteString(tableHeaderStyle.Render(" Recent Bookings"))
	b.WriteString("\n")

	if !d.haveRecent {
		b.WriteString(helpStyle.Render("  loading..."))
	} else {
		b.WriteString(renderTable(bookingHeaders, bookingRows(d.recent), -1))
	}

	return b.String()
}

func card(title, value string) string {
	body := helpStyle.Render(title) + "\n" + cardValueStyle.Render(value)

	return cardStyle.Render(body)
}

func countValue(n int, have bool) string {
	if !have {
		return "-"
	}

	return strconv.Itoa(n)
}

func revenueValue(total float64, have bool) string {
	if !have {
		return "-"
	}

	return money.Format(total)
}
