package console

import (
	"fmt"
	"strings"
)

type confirmKind int

const (
	confirmDelete confirmKind = iota
	confirmWipe
)

// confirmPrompt is the state behind the yes/no modal guarding destructive
// actions.
type confirmPrompt struct {
	kind    confirmKind
	message string
	tab     Tab
	id      int
}

func newDeleteConfirm(tab Tab, id int) confirmPrompt {
	entity := "record"

	switch tab {
	case TabCustomers:
		entity = "customer"
	case TabRooms:
		entity = "room"
	case TabBookings:
		entity = "booking"
	case TabPayments:
		entity = "payment"
	case TabStaff:
		entity = "staff member"
	}

	return confirmPrompt{
		kind:    confirmDelete,
		tab:     tab,
		id:      id,
		message: fmt.Sprintf("Delete %s %d?", entity, id),
	}
}

func newWipeConfirm() confirmPrompt {
	return confirmPrompt{
		kind:    confirmWipe,
		message: "Wipe the entire database? Every record will be removed.",
	}
}

func (c confirmPrompt) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Confirm"))
	b.WriteString("\n\n")
	b.WriteString(c.message)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("y confirm - n/esc cancel"))

	return modalStyle.Render(b.String())
}
