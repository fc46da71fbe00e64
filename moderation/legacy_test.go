package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterMessage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		isValid bool
	}{
		{name: "Arabic-Indic digits", input: "اتصل ٠٥٥٥", isValid: false},
		{name: "Western digits", input: "call 0555", isValid: false},
		{name: "Extended Arabic-Indic digits", input: "رقمي ۰۵۵", isValid: false},
		{name: "No digits", input: "لا أرقام هنا", isValid: true},
		{name: "Empty", input: "", isValid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			verdict := FilterMessage(tt.input)
			req.Equal(tt.isValid, verdict.IsValid)
			req.Equal(tt.input, verdict.FilteredMessage)
			if tt.isValid {
				req.Empty(verdict.ErrorMessage)
			} else {
				req.Equal(DigitsNotAllowedMessage, verdict.ErrorMessage)
			}
		})
	}
}
