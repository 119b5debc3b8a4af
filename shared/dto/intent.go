package dto

import (
	"strconv"
	"strings"

	"frontdesk/shared/failure"
)

// Intent is the explicit create-vs-update variant a form submission resolves
// to. Dispatch code switches on the concrete type instead of inspecting an
// empty-string identifier sentinel.
type Intent interface {
	isIntent()
}

type Create struct{}

type Update struct {
	ID int
}

func (Create) isIntent() {}
func (Update) isIntent() {}

// IntentFromID resolves the hidden identifier field of a form into an
// Intent: empty means Create, anything else must parse as a positive
// integer and means Update of that record.
func IntentFromID(raw string) (Intent, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Create{}, nil
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return nil, failure.BadRequestFromString("record identifier must be a positive integer") //nolint:wrapcheck
	}

	return Update{ID: id}, nil
}
