package model

import (
	"github.com/shopspring/decimal"
)

const (
	EntityName = "document"
	Directory  = "documents"
	Extension  = ".txt"
)

// Kind names the template used for a document.
type Kind string

const (
	KindInquiry Kind = "inquiry"
	KindInvoice Kind = "invoice"
)

// Document is a rendered blob ready to be downloaded.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
	URL         string
}

// Letterhead is printed at the bottom of every document.
type Letterhead struct {
	HotelName    string
	Phone        string
	InfoEmail    string
	BillingEmail string
}

type InquiryLetter struct {
	ID                  string
	ClientName          string
	ContactPerson       string
	Email               string
	Phone               string
	EventType           string
	ExpectedGuests      int
	CheckInDate         string
	CheckOutDate        string
	RoomsRequired       int
	BudgetRange         string
	SpecialRequirements string
	GeneratedOn         string
	Letterhead
}

type InvoiceLine struct {
	Description string
	Quantity    int
	Rate        decimal.Decimal
	Amount      decimal.Decimal
}

type InvoiceDocument struct {
	InvoiceNumber string
	ClientName    string
	ClientEmail   string
	IssueDate     string
	DueDate       string
	InquiryID     string
	Items         []InvoiceLine
	Amount        decimal.Decimal
	PaidAmount    decimal.Decimal
	Outstanding   decimal.Decimal
	Status        string
	PaymentMethod string
	PaidOn        string
	Notes         string
	GeneratedOn   string
	Letterhead
}

// Filename is <kind>-<id>.txt.
func Filename(kind Kind, id string) string {
	return string(kind) + "-" + id + Extension
}
