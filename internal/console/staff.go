package console

import (
	"strconv"

	"frontdesk/internal/domains/staff/model"
	"frontdesk/internal/domains/staff/model/dto"
)

func newStaffForm(edit *model.Staff) form {
	f := form{modal: ModalStaff, title: "Add Staff"}

	var s model.Staff
	if edit != nil {
		s = *edit
		f.id = strconv.Itoa(s.StaffID)
		f.title = "Edit Staff"
	}

	f.fields = []formField{
		newTextField("Name", s.Name, "Full name"),
		newTextField("Role", s.Role, "Receptionist, Manager"),
		newTextField("Phone", s.Phone, "Phone number"),
		newTextField("Email", s.Email, "Email address"),
	}
	f.focusField(0)

	return f
}

func staffRequest(f form) (dto.SaveStaffRequest, error) {
	return dto.SaveStaffRequest{
		Name:  f.value(0),
		Role:  f.value(1),
		Phone: f.value(2),
		Email: f.value(3),
	}, nil
}
