package model

import (
	"errors"
	"fmt"
	"slices"
)

// Kind is the entity whose lifecycle a workflow item follows.
type Kind string

const (
	KindInquiry Kind = "inquiry"
	KindInvoice Kind = "invoice"
)

var ErrUnknownKind = errors.New("unknown workflow kind")

// Category drives badge coloring.
type Category string

const (
	CategoryWarning Category = "warning"
	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
	CategoryDanger  Category = "danger"
	CategoryNeutral Category = "neutral"
)

const (
	InquiryPending   = "pending"
	InquiryQuoted    = "quoted"
	InquiryConfirmed = "confirmed"
	InquiryRejected  = "rejected"
	InquiryCancelled = "cancelled"

	InvoicePending   = "pending"
	InvoicePartial   = "partial"
	InvoicePaid      = "paid"
	InvoiceOverdue   = "overdue"
	InvoiceCancelled = "cancelled"
)

// DefaultProgress is reported for statuses outside the vocabulary.
const DefaultProgress = 25

type StatusOption struct {
	Value    string   `json:"value"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	Progress int      `json:"progress"`
}

var vocabularies = map[Kind][]StatusOption{
	KindInquiry: {
		{Value: InquiryPending, Label: "Pending Review", Category: CategoryWarning, Progress: 25},
		{Value: InquiryQuoted, Label: "Quote Sent", Category: CategoryInfo, Progress: 50},
		{Value: InquiryConfirmed, Label: "Confirmed", Category: CategorySuccess, Progress: 100},
		{Value: InquiryRejected, Label: "Rejected", Category: CategoryDanger, Progress: 0},
		{Value: InquiryCancelled, Label: "Cancelled", Category: CategoryNeutral, Progress: 0},
	},
	KindInvoice: {
		{Value: InvoicePending, Label: "Pending Payment", Category: CategoryInfo, Progress: 25},
		{Value: InvoicePartial, Label: "Partially Paid", Category: CategoryWarning, Progress: 50},
		{Value: InvoicePaid, Label: "Paid", Category: CategorySuccess, Progress: 100},
		{Value: InvoiceOverdue, Label: "Overdue", Category: CategoryDanger, Progress: 25},
		{Value: InvoiceCancelled, Label: "Cancelled", Category: CategoryNeutral, Progress: 0},
	},
}

func Kinds() []Kind {
	return []Kind{KindInquiry, KindInvoice}
}

func ParseKind(value string) (Kind, error) {
	kind := Kind(value)
	if _, ok := vocabularies[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, value)
	}

	return kind, nil
}

// Vocabulary returns the ordered statuses for kind, or nil for an unknown kind.
func Vocabulary(kind Kind) []StatusOption {
	return slices.Clone(vocabularies[kind])
}

// Values returns the raw status values of kind in vocabulary order.
func Values(kind Kind) []string {
	options := vocabularies[kind]
	values := make([]string, 0, len(options))

	for _, option := range options {
		values = append(values, option.Value)
	}

	return values
}

func lookup(kind Kind, status string) (StatusOption, bool) {
	idx := slices.IndexFunc(vocabularies[kind], func(o StatusOption) bool { return o.Value == status })
	if idx < 0 {
		return StatusOption{}, false
	}

	return vocabularies[kind][idx], true
}

// Progress is a pure lookup: no transition history is considered.
func Progress(kind Kind, status string) int {
	if option, ok := lookup(kind, status); ok {
		return option.Progress
	}

	return DefaultProgress
}

// Label falls back to the raw status.
func Label(kind Kind, status string) string {
	if option, ok := lookup(kind, status); ok {
		return option.Label
	}

	return status
}

func CategoryOf(kind Kind, status string) Category {
	if option, ok := lookup(kind, status); ok {
		return option.Category
	}

	return CategoryNeutral
}

func IsValid(kind Kind, status string) bool {
	_, ok := lookup(kind, status)

	return ok
}

// Describe resolves status into its full option, including an unknown one.
func Describe(kind Kind, status string) StatusOption {
	return StatusOption{
		Value:    status,
		Label:    Label(kind, status),
		Category: CategoryOf(kind, status),
		Progress: Progress(kind, status),
	}
}
