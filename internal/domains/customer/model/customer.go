package model

import "fmt"

const BasePath = "/customers"

type Customer struct {
	CustomerID int    `json:"customer_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
}

// OptionLabel renders the customer the way the booking form's selector
// shows it.
func (c Customer) OptionLabel() string {
	return fmt.Sprintf("%d - %s", c.CustomerID, c.Name)
}
