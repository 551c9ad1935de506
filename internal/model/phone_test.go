package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPhone(t *testing.T) {
	tests := []struct {
		name      string
		phone     string
		wantCode  string
		wantLocal string
	}{
		{
			name:      "indian number",
			phone:     "+91 9876543210",
			wantCode:  "+91",
			wantLocal: "9876543210",
		},
		{
			name:      "us number",
			phone:     "+1 5551234567",
			wantCode:  "+1",
			wantLocal: "5551234567",
		},
		{
			name:      "uk number without space",
			phone:     "+447700900123",
			wantCode:  "+44",
			wantLocal: "7700900123",
		},
		{
			name:      "unrecognized prefix falls back whole",
			phone:     "+99 555",
			wantCode:  "+91",
			wantLocal: "+99 555",
		},
		{
			name:      "bare digits",
			phone:     "123456",
			wantCode:  "+91",
			wantLocal: "123456",
		},
		{
			name:      "empty",
			phone:     "",
			wantCode:  "+91",
			wantLocal: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, local := SplitPhone(tt.phone)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantLocal, local)
		})
	}
}

func TestJoinPhone_RoundTrip(t *testing.T) {
	joined := JoinPhone("+91", "9876543210")
	assert.Equal(t, "+91 9876543210", joined)

	code, local := SplitPhone(joined)
	assert.Equal(t, "+91", code)
	assert.Equal(t, "9876543210", local)
}

func TestDigitsOnly(t *testing.T) {
	assert.True(t, DigitsOnly("9876543210"))
	assert.True(t, DigitsOnly(""))
	assert.False(t, DigitsOnly("98765 43210"))
	assert.False(t, DigitsOnly("+919876543210"))
	assert.False(t, DigitsOnly("abc"))
}
