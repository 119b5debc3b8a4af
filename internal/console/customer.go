package console

import (
	"strconv"

	"frontdesk/internal/domains/customer/model"
	"frontdesk/internal/domains/customer/model/dto"
)

func newCustomerForm(edit *model.Customer) form {
	f := form{modal: ModalCustomer, title: "Add Customer"}

	var c model.Customer
	if edit != nil {
		c = *edit
		f.id = strconv.Itoa(c.CustomerID)
		f.title = "Edit Customer"
	}

	f.fields = []formField{
		newTextField("Name", c.Name, "Full name"),
		newTextField("Phone", c.Phone, "Phone number"),
		newTextField("Email", c.Email, "Email address"),
		newTextField("Address", c.Address, "Street address"),
	}
	f.focusField(0)

	return f
}

func customerRequest(f form) (dto.SaveCustomerRequest, error) {
	return dto.SaveCustomerRequest{
		Name:    f.value(0),
		Phone:   f.value(1),
		Email:   f.value(2),
		Address: f.value(3),
	}, nil
}
