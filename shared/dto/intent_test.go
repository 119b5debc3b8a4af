package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

func TestIntentFromID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    dto.Intent
		wantErr bool
	}{
		{name: "empty means create", raw: "", want: dto.Create{}},
		{name: "whitespace means create", raw: "   ", want: dto.Create{}},
		{name: "positive integer means update", raw: "42", want: dto.Update{ID: 42}},
		{name: "padded integer means update", raw: " 7 ", want: dto.Update{ID: 7}},
		{name: "zero is rejected", raw: "0", wantErr: true},
		{name: "negative is rejected", raw: "-3", wantErr: true},
		{name: "non numeric is rejected", raw: "abc", wantErr: true},
		{name: "fractional is rejected", raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dto.IntentFromID(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
