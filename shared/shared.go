package shared

import (
	"strconv"

	"frontdesk/shared/failure"
)

// ConvertStringToInt parses a form field into an int, mapping parse errors
// to a BadRequest failure so they surface in the status bar instead of
// reaching the wire.
func ConvertStringToInt(value, fieldName string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, failure.BadRequestFromString(fieldName + " must be a whole number") //nolint:wrapcheck
	}

	return parsed, nil
}

// ConvertStringToFloat parses a form field into a float64 with the same
// failure mapping as ConvertStringToInt.
func ConvertStringToFloat(value, fieldName string) (float64, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, failure.BadRequestFromString(fieldName + " must be a number") //nolint:wrapcheck
	}

	return parsed, nil
}

// ConvertStringToBool parses a form field into a bool, defaulting to false
// on the empty string.
func ConvertStringToBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}

	return parsed
}
