package console

import (
	"strconv"
	"strings"
	"unicode/utf8"

	bookingModel "frontdesk/internal/domains/booking/model"
	customerModel "frontdesk/internal/domains/customer/model"
	paymentModel "frontdesk/internal/domains/payment/model"
	roomModel "frontdesk/internal/domains/room/model"
	staffModel "frontdesk/internal/domains/staff/model"
	"frontdesk/shared/money"
)

const maxCellWidth = 30

// renderTable lays out rows under their headers with per-column widths and
// highlights the row at cursor. A negative cursor highlights nothing.
func renderTable(headers []string, rows [][]string, cursor int) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}

			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}

			if widths[i] > maxCellWidth {
				widths[i] = maxCellWidth
			}
		}
	}

	var b strings.Builder

	b.WriteString(tableHeaderStyle.Render(renderRow(headers, widths)))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(helpStyle.Render("  (no records)"))

		return b.String()
	}

	for i, row := range rows {
		line := renderRow(row, widths)
		if i == cursor {
			line = selectedRowStyle.Render(line)
		}

		b.WriteString(line)

		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))

	for i, cell := range cells {
		w := maxCellWidth
		if i < len(widths) {
			w = widths[i]
		}

		if runes := []rune(cell); len(runes) > w {
			cell = string(runes[:w-1]) + "~"
		}

		parts[i] = cell + strings.Repeat(" ", w-utf8.RuneCountInString(cell))
	}

	return "  " + strings.Join(parts, "  ")
}

var (
	customerHeaders = []string{"ID", "Name", "Phone", "Email", "Address"}
	roomHeaders     = []string{"ID", "Type", "Price/Night", "Status"}
	bookingHeaders  = []string{"ID", "Customer", "Room", "Check-In", "Check-Out", "Total"}
	paymentHeaders  = []string{"ID", "Booking", "Customer", "Date", "Amount", "Method"}
	staffHeaders    = []string{"ID", "Name", "Role", "Phone", "Email"}
)

func customerRows(rows []customerModel.Customer) [][]string {
	out := make([][]string, 0, len(rows))
	for _, c := range rows {
		out = append(out, []string{
			strconv.Itoa(c.CustomerID), c.Name, c.Phone, c.Email, c.Address,
		})
	}

	return out
}

func roomRows(rows []roomModel.Room) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.RoomID), r.RoomType, money.Format(r.PricePerNight), r.AvailabilityLabel(),
		})
	}

	return out
}

func bookingRows(rows []bookingModel.Booking) [][]string {
	out := make([][]string, 0, len(rows))
	for _, b := range rows {
		out = append(out, []string{
			strconv.Itoa(b.BookingID), b.CustomerName, b.RoomType,
			b.CheckInDate, b.CheckOutDate, money.Format(b.TotalAmount),
		})
	}

	return out
}

func paymentRows(rows []paymentModel.Payment) [][]string {
	out := make([][]string, 0, len(rows))
	for _, p := range rows {
		out = append(out, []string{
			strconv.Itoa(p.PaymentID), strconv.Itoa(p.BookingID), p.CustomerName,
			p.PaymentDate, money.Format(p.Amount), p.PaymentMethod,
		})
	}

	return out
}

func staffRows(rows []staffModel.Staff) [][]string {
	out := make([][]string, 0, len(rows))
	for _, s := range rows {
		out = append(out, []string{
			strconv.Itoa(s.StaffID), s.Name, s.Role, s.Phone, s.Email,
		})
	}

	return out
}
