package shared_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared"
	"frontdesk/shared/failure"
)

func TestConvertStringToInt(t *testing.T) {
	got, err := shared.ConvertStringToInt("42", "customer_id")
	assert.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = shared.ConvertStringToInt("abc", "customer_id")
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "customer_id")
}

func TestConvertStringToFloat(t *testing.T) {
	got, err := shared.ConvertStringToFloat("199.50", "price_per_night")
	assert.NoError(t, err)
	assert.Equal(t, 199.5, got)

	_, err = shared.ConvertStringToFloat("", "price_per_night")
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestConvertStringToBool(t *testing.T) {
	assert.True(t, shared.ConvertStringToBool("true"))
	assert.True(t, shared.ConvertStringToBool("1"))
	assert.False(t, shared.ConvertStringToBool("false"))
	assert.False(t, shared.ConvertStringToBool(""))
	assert.False(t, shared.ConvertStringToBool("maybe"))
}
