package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/failure"
)

func TestBadRequest(t *testing.T) {
	err := failure.BadRequest(errors.New("room_type is required"))
	assert.EqualError(t, err, "room_type is required")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	assert.NoError(t, failure.BadRequest(nil))
}

func TestInternalError(t *testing.T) {
	err := failure.InternalError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))

	assert.NoError(t, failure.InternalError(nil))
}

func TestNotFound(t *testing.T) {
	err := failure.NotFound("booking")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.EqualError(t, err, "booking")
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		message  string
		wantCode int
		wantMsg  string
	}{
		{name: "message passed through", code: 400, message: "cannot delete", wantCode: 400, wantMsg: "cannot delete"},
		{name: "empty message falls back to status text", code: 404, message: "", wantCode: 404, wantMsg: "Not Found"},
		{name: "server error", code: 500, message: "database gone", wantCode: 500, wantMsg: "database gone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.FromStatus(tt.code, tt.message)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(failure.RecordServiceUnreachable))

	wrapped := fmt.Errorf("deleting customer: %w", failure.Conflict("has dependents"))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(wrapped))
}

func TestIsConflict(t *testing.T) {
	assert.True(t, failure.IsConflict(failure.Conflict("has dependents")))
	assert.True(t, failure.IsConflict(failure.FromStatus(400, "cannot delete")))
	assert.False(t, failure.IsConflict(failure.FromStatus(500, "boom")))
	assert.False(t, failure.IsConflict(errors.New("plain")))

	wrapped := fmt.Errorf("deleting room: %w", failure.FromStatus(400, "in use"))
	assert.True(t, failure.IsConflict(wrapped))
}
