package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMSISDN(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantValid bool
		wantNum   string
	}{
		{name: "local MTN with trunk zero", input: "0781234567", wantValid: true, wantNum: "250781234567"},
		{name: "local MTN 79", input: "0791234567", wantValid: true, wantNum: "250791234567"},
		{name: "international with plus", input: "+250781234567", wantValid: true, wantNum: "250781234567"},
		{name: "international without plus", input: "250721234567", wantValid: true, wantNum: "250721234567"},
		{name: "with separators", input: "078-123 4567", wantValid: true, wantNum: "250781234567"},
		{name: "airtel 73", input: "0731234567", wantValid: true, wantNum: "250731234567"},
		{name: "too short", input: "078123", wantValid: false},
		{name: "too long", input: "07812345678", wantValid: false},
		{name: "unsupported prefix", input: "0751234567", wantValid: false},
		{name: "letters", input: "07812345ab", wantValid: false},
		{name: "empty", input: "", wantValid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			valid, formatted, err := ValidateMSISDN(tc.input)
			if tc.wantValid {
				assert.NoError(t, err)
				assert.True(t, valid)
				assert.Equal(t, tc.wantNum, formatted)
			} else {
				assert.Error(t, err)
				assert.False(t, valid)
			}
		})
	}
}

func TestIsMTN(t *testing.T) {
	assert.True(t, IsMTN("250781234567"))
	assert.True(t, IsMTN("250791234567"))
	assert.False(t, IsMTN("250721234567"))
	assert.False(t, IsMTN("250731234567"))
}
