package entry

import (
	"testing"

	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEntry_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		empty bool
	}{
		{"nothing set", Entry{}, true},
		{"allowance None and blank text", Entry{Allowance: rates.AllowanceNone, Reason: "  ", Comments: "\t"}, true},
		{"zero hours", Entry{Hours133: decimal.Zero, Hours150: decimal.Zero}, true},
		{"negative hours only", Entry{Hours200: decimal.NewFromInt(-2)}, true},
		{"hours at one tier", Entry{Hours150: decimal.RequireFromString("0.5")}, false},
		{"allowance only", Entry{Allowance: rates.AllowancePA1}, false},
		{"reason only", Entry{Reason: "Court"}, false},
		{"comments only", Entry{Comments: "late call"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.entry.IsEmpty())
		})
	}
}

func TestParseHours(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"4", "4"},
		{" 2.25 ", "2.25"},
		{"", "0"},
		{"abc", "0"},
		{"-3", "0"},
		{"1e1", "10"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHours(tt.input).String())
		})
	}
}

func TestEntry_TotalHours(t *testing.T) {
	// given
	e := Entry{
		Hours133: decimal.RequireFromString("1.5"),
		Hours150: decimal.NewFromInt(-1),
		Hours200: decimal.NewFromInt(2),
	}

	// then
	assert.Equal(t, "3.5", e.TotalHours().String())
}
