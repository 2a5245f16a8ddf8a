// Package identifier issues the sequential, prefixed ids used across the back office (BK004, INQ012, ...).
package identifier

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	PrefixBooking  = "BK"
	PrefixGuest    = "G"
	PrefixClient   = "CL"
	PrefixInquiry  = "INQ"
	PrefixInvoice  = "INV"
	PrefixRoom     = "RM"
	PrefixWorkflow = "WF"

	DefaultWidth = 3
)

// Next returns prefix followed by the largest numeric suffix in existing plus one, zero padded to width.
// Ids with another prefix or a non-numeric suffix are ignored, so an empty collection starts at 1.
// Suffixes wider than width are kept as is.
func Next(prefix string, width int, existing []string) string {
	return Format(prefix, width, Max(prefix, existing)+1)
}

// Max returns the largest numeric suffix among ids carrying prefix, or 0.
func Max(prefix string, existing []string) int {
	highest := 0

	for _, id := range existing {
		suffix, ok := strings.CutPrefix(id, prefix)
		if !ok || suffix == "" {
			continue
		}

		n, err := strconv.Atoi(suffix)
		if err != nil || n < 0 {
			continue
		}

		highest = max(highest, n)
	}

	return highest
}

func Format(prefix string, width, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

// InvoiceNumber renders the human-facing invoice number, e.g. 2024-001.
func InvoiceNumber(year, sequence int) string {
	return Format(fmt.Sprintf("%d-", year), DefaultWidth, sequence)
}
