package identifier_test

import (
	"testing"

	"grandplaza/shared/identifier"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		existing []string
		want     string
	}{
		{name: "increments the highest id", prefix: identifier.PrefixBooking, existing: []string{"BK001", "BK002", "BK003"}, want: "BK004"},
		{name: "empty collection seeds at one", prefix: identifier.PrefixBooking, existing: nil, want: "BK001"},
		{name: "gaps are not reused", prefix: identifier.PrefixInquiry, existing: []string{"INQ001", "INQ007"}, want: "INQ008"},
		{name: "unordered input", prefix: identifier.PrefixInvoice, existing: []string{"INV010", "INV002", "INV009"}, want: "INV011"},
		{name: "foreign prefixes are ignored", prefix: identifier.PrefixClient, existing: []string{"CL002", "G009", "BK010"}, want: "CL003"},
		{name: "non numeric suffixes are ignored", prefix: identifier.PrefixRoom, existing: []string{"RM001", "RMX", "RM", "RM-5"}, want: "RM002"},
		{name: "single letter prefix", prefix: identifier.PrefixGuest, existing: []string{"G001", "G002"}, want: "G003"},
		{name: "overflow keeps growing", prefix: identifier.PrefixWorkflow, existing: []string{"WF999"}, want: "WF1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identifier.Next(tt.prefix, identifier.DefaultWidth, tt.existing))
		})
	}
}

func TestInvoiceNumber(t *testing.T) {
	assert.Equal(t, "2024-001", identifier.InvoiceNumber(2024, 1))
	assert.Equal(t, "2024-042", identifier.InvoiceNumber(2024, 42))
}

func TestMax(t *testing.T) {
	assert.Equal(t, 0, identifier.Max("2024-", nil))
	assert.Equal(t, 12, identifier.Max("2024-", []string{"2024-003", "2023-099", "2024-012"}))
}
