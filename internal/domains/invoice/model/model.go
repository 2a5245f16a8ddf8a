package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	workflow "grandplaza/internal/domains/workflow/model"
	"grandplaza/shared/model"
	"grandplaza/shared/stats"

	"github.com/shopspring/decimal"
)

const (
	TableName   = "invoices"
	EntityName  = "invoice"
	CachePrefix = "invoice"
	IDPrefix    = "INV"
)

const (
	FieldID            = "id"
	FieldInvoiceNumber = "invoice_number"
	FieldClientName    = "client_name"
	FieldClientEmail   = "client_email"
	FieldInquiryID     = "inquiry_id"
	FieldBookingID     = "booking_id"
	FieldIssueDate     = "issue_date"
	FieldDueDate       = "due_date"
	FieldAmount        = "amount"
	FieldPaidAmount    = "paid_amount"
	FieldStatus        = "status"
	FieldPaymentMethod = "payment_method"
	FieldItems         = "items"
	FieldNotes         = "notes"
	FieldPaidAt        = "paid_at"
)

const DefaultAssignee = "Finance Team"

// LineItem is one billed row. Amount is always Quantity x Rate.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

func NewLineItem(description string, quantity int, rate decimal.Decimal) LineItem {
	return LineItem{
		Description: description,
		Quantity:    quantity,
		Rate:        rate,
		Amount:      rate.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// LineItems keeps the order of the invoice rows in a JSONB column.
type LineItems []LineItem

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}

	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal line items: %w", err)
	}

	return b, nil
}

func (l *LineItems) Scan(value any) error {
	var raw []byte

	switch v := value.(type) {
	case nil:
		*l = LineItems{}

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan type %T into LineItems", value)
	}

	if err := json.Unmarshal(raw, l); err != nil {
		return fmt.Errorf("failed to unmarshal line items: %w", err)
	}

	return nil
}

// Total sums the item amounts.
func (l LineItems) Total() decimal.Decimal {
	return stats.Sum(l, func(item LineItem) decimal.Decimal { return item.Amount })
}

type Invoice struct {
	ID            string          `db:"id"`
	InvoiceNumber string          `db:"invoice_number"`
	ClientName    string          `db:"client_name"`
	ClientEmail   string          `db:"client_email"`
	InquiryID     *string         `db:"inquiry_id"`
	BookingID     *string         `db:"booking_id"`
	IssueDate     time.Time       `db:"issue_date"`
	DueDate       time.Time       `db:"due_date"`
	Amount        decimal.Decimal `db:"amount"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	Status        string          `db:"status"`
	PaymentMethod string          `db:"payment_method"`
	Items         LineItems       `db:"items"`
	Notes         string          `db:"notes"`
	PaidAt        *time.Time      `db:"paid_at"`
	model.Metadata
}

// Outstanding is what the client still owes.
func (i Invoice) Outstanding() decimal.Decimal {
	return i.Amount.Sub(i.PaidAmount)
}

// Sent is published on the invoice-sent topic for the mailer.
type Sent struct {
	InvoiceID     string          `json:"invoice_id"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientName    string          `json:"client_name"`
	ClientEmail   string          `json:"client_email"`
	Amount        decimal.Decimal `json:"amount"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	DueDate       string          `json:"due_date"`
	DocumentURL   string          `json:"document_url,omitempty"`
	SentBy        string          `json:"sent_by"`
	SentAt        time.Time       `json:"sent_at"`
}

type Summary struct {
	Total       int             `json:"total"`
	Paid        int             `json:"paid"`
	Pending     int             `json:"pending"`
	Revenue     decimal.Decimal `json:"revenue"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// Summarize reports revenue as the sum of paid amounts and outstanding as the sum of amount minus paid amount.
func Summarize(invoices []Invoice) Summary {
	return Summary{
		Total:       len(invoices),
		Paid:        stats.Count(invoices, func(i Invoice) bool { return i.Status == workflow.InvoicePaid }),
		Pending:     stats.Count(invoices, func(i Invoice) bool { return i.Status == workflow.InvoicePending }),
		Revenue:     stats.Sum(invoices, func(i Invoice) decimal.Decimal { return i.PaidAmount }),
		Outstanding: stats.Sum(invoices, func(i Invoice) decimal.Decimal { return i.Amount.Sub(i.PaidAmount) }),
	}
}
