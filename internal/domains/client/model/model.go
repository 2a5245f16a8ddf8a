package model

import (
	"time"

	"grandplaza/shared/model"
	"grandplaza/shared/stats"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName   = "clients"
	EntityName  = "client"
	CachePrefix = "client"
	IDPrefix    = "CL"
)

const (
	FieldID             = "id"
	FieldName           = "name"
	FieldContactPerson  = "contact_person"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldCompany        = "company"
	FieldIndustry       = "industry"
	FieldStatus         = "status"
	FieldTotalInquiries = "total_inquiries"
	FieldTotalRevenue   = "total_revenue"
	FieldLastContact    = "last_contact"
	FieldInquiryIDs     = "inquiry_ids"
	FieldInvoiceIDs     = "invoice_ids"
	FieldNotes          = "notes"
)

const (
	StatusActive   = "active"
	StatusProspect = "prospect"
	StatusInactive = "inactive"
)

// Client is an organization sending event business. InquiryIDs and InvoiceIDs are informational back-references.
type Client struct {
	ID             string          `db:"id"`
	Name           string          `db:"name"`
	ContactPerson  string          `db:"contact_person"`
	Email          string          `db:"email"`
	Phone          string          `db:"phone"`
	Company        string          `db:"company"`
	Industry       string          `db:"industry"`
	Status         string          `db:"status"`
	TotalInquiries int             `db:"total_inquiries"`
	TotalRevenue   decimal.Decimal `db:"total_revenue"`
	LastContact    time.Time       `db:"last_contact"`
	InquiryIDs     pq.StringArray  `db:"inquiry_ids"`
	InvoiceIDs     pq.StringArray  `db:"invoice_ids"`
	Notes          string          `db:"notes"`
	model.Metadata
}

type Summary struct {
	Total        int             `json:"total"`
	Active       int             `json:"active"`
	Prospect     int             `json:"prospect"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

func Summarize(clients []Client) Summary {
	return Summary{
		Total:        len(clients),
		Active:       stats.Count(clients, func(c Client) bool { return c.Status == StatusActive }),
		Prospect:     stats.Count(clients, func(c Client) bool { return c.Status == StatusProspect }),
		TotalRevenue: stats.Sum(clients, func(c Client) decimal.Decimal { return c.TotalRevenue }),
	}
}
