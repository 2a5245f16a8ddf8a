package dto

import (
	"fmt"
	"time"

	"grandplaza/internal/domains/invoice/model"
	workflow "grandplaza/internal/domains/workflow/model"
	"grandplaza/shared"
	"grandplaza/shared/constant"
	gDto "grandplaza/shared/dto"
	gModel "grandplaza/shared/model"
	"grandplaza/shared/timezone"

	"github.com/shopspring/decimal"
)

// DefaultPaymentTerm is applied when an invoice is created without a due date.
const DefaultPaymentTerm = 30 * 24 * time.Hour

type LineItemRequest struct {
	Description string          `json:"description" validate:"required,max=200"`
	Quantity    int             `json:"quantity"    validate:"required,gt=0"`
	Rate        decimal.Decimal `json:"rate"        validate:"gte=0"`
}

type CreateInvoiceRequest struct {
	ClientName    string            `json:"client_name"    validate:"required,max=150"`
	ClientEmail   string            `json:"client_email"   validate:"required,email,max=100"`
	InquiryID     string            `json:"inquiry_id"     validate:"omitempty,max=20"`
	BookingID     string            `json:"booking_id"     validate:"omitempty,max=20"`
	IssueDate     string            `json:"issue_date"     validate:"omitempty,datetime=2006-01-02"`
	DueDate       string            `json:"due_date"       validate:"omitempty,datetime=2006-01-02,date_after=IssueDate"`
	PaymentMethod string            `json:"payment_method" validate:"omitempty,max=50"`
	Items         []LineItemRequest `json:"items"          validate:"required,min=1,dive"`
	Notes         string            `json:"notes"          validate:"omitempty"`
}

func optional(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}

// ToModel builds a pending invoice whose amount is the sum of its items.
// The issue date defaults to today and the due date to the payment term after it.
func (c *CreateInvoiceRequest) ToModel(id, number, operator string) (model.Invoice, error) {
	now := timezone.Now()

	issueDate := timezone.StartOfDay(now)
	if c.IssueDate != constant.Empty {
		parsed, err := timezone.Parse(constant.DayFormat, c.IssueDate)
		if err != nil {
			return model.Invoice{}, fmt.Errorf("invalid issue_date: %w", err)
		}

		issueDate = parsed
	}

	dueDate := issueDate.Add(DefaultPaymentTerm)
	if c.DueDate != constant.Empty {
		parsed, err := timezone.Parse(constant.DayFormat, c.DueDate)
		if err != nil {
			return model.Invoice{}, fmt.Errorf("invalid due_date: %w", err)
		}

		dueDate = parsed
	}

	items := make(model.LineItems, len(c.Items))
	for i, item := range c.Items {
		items[i] = model.NewLineItem(item.Description, item.Quantity, item.Rate)
	}

	return model.Invoice{
		ID:            id,
		InvoiceNumber: number,
		ClientName:    c.ClientName,
		ClientEmail:   c.ClientEmail,
		InquiryID:     optional(c.InquiryID),
		BookingID:     optional(c.BookingID),
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Amount:        items.Total(),
		PaidAmount:    decimal.Zero,
		Status:        workflow.InvoicePending,
		PaymentMethod: c.PaymentMethod,
		Items:         items,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  operator,
			ModifiedBy: operator,
		},
	}, nil
}

// UpdateInvoiceRequest records payments and edits billing details. Status only changes through the workflow.
type UpdateInvoiceRequest struct {
	ClientName    string           `db:"client_name"    json:"client_name"    validate:"omitempty,max=150"`
	ClientEmail   string           `db:"client_email"   json:"client_email"   validate:"omitempty,email,max=100"`
	DueDate       string           `db:"due_date"       json:"due_date"       validate:"omitempty,datetime=2006-01-02"`
	PaidAmount    *decimal.Decimal `db:"paid_amount"    json:"paid_amount"    validate:"omitempty,gte=0"`
	PaymentMethod string           `db:"payment_method" json:"payment_method" validate:"omitempty,max=50"`
	Notes         string           `db:"notes"          json:"notes"          validate:"omitempty"`
}

// PayRequest settles an invoice in full.
type PayRequest struct {
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=50"`
}

type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

type InvoiceResponse struct {
	ID             string             `json:"id"`
	InvoiceNumber  string             `json:"invoice_number"`
	ClientName     string             `json:"client_name"`
	ClientEmail    string             `json:"client_email"`
	InquiryID      *string            `json:"inquiry_id"`
	BookingID      *string            `json:"booking_id"`
	IssueDate      string             `json:"issue_date"`
	DueDate        string             `json:"due_date"`
	Amount         decimal.Decimal    `json:"amount"`
	PaidAmount     decimal.Decimal    `json:"paid_amount"`
	Outstanding    decimal.Decimal    `json:"outstanding"`
	Status         string             `json:"status"`
	StatusLabel    string             `json:"status_label"`
	StatusCategory string             `json:"status_category"`
	Progress       int                `json:"progress"`
	PaymentMethod  string             `json:"payment_method"`
	Items          []LineItemResponse `json:"items"`
	Notes          string             `json:"notes"`
	PaidAt         *string            `json:"paid_at"`
	gDto.Metadata
}

func (r *InvoiceResponse) FromModel(m model.Invoice) {
	status := workflow.Describe(workflow.KindInvoice, m.Status)

	r.ID = m.ID
	r.InvoiceNumber = m.InvoiceNumber
	r.ClientName = m.ClientName
	r.ClientEmail = m.ClientEmail
	r.InquiryID = m.InquiryID
	r.BookingID = m.BookingID
	r.IssueDate = timezone.Format(m.IssueDate, constant.DayFormat)
	r.DueDate = timezone.Format(m.DueDate, constant.DayFormat)
	r.Amount = m.Amount
	r.PaidAmount = m.PaidAmount
	r.Outstanding = m.Outstanding()
	r.Status = m.Status
	r.StatusLabel = status.Label
	r.StatusCategory = string(status.Category)
	r.Progress = status.Progress
	r.PaymentMethod = m.PaymentMethod
	r.Notes = m.Notes

	r.Items = make([]LineItemResponse, len(m.Items))
	for i, item := range m.Items {
		r.Items[i] = LineItemResponse(item)
	}

	r.PaidAt = nil
	if m.PaidAt != nil {
		paidAt := timezone.Format(*m.PaidAt, constant.DateFormat)
		r.PaidAt = &paidAt
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInvoicesResponse) FromModels(models []model.Invoice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Invoices = make([]InvoiceResponse, len(models))
	for i, mod := range models {
		r.Invoices[i].FromModel(mod)
	}
}

type SendResponse struct {
	InvoiceID   string `json:"invoice_id"`
	Recipient   string `json:"recipient"`
	DocumentURL string `json:"document_url,omitempty"`
	SentAt      string `json:"sent_at"`
}
