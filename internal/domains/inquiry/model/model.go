package model

import (
	"time"

	workflow "grandplaza/internal/domains/workflow/model"
	"grandplaza/shared/model"
	"grandplaza/shared/stats"

	"github.com/shopspring/decimal"
)

const (
	TableName   = "inquiries"
	EntityName  = "inquiry"
	CachePrefix = "inquiry"
	IDPrefix    = "INQ"
)

const (
	FieldID                  = "id"
	FieldClientName          = "client_name"
	FieldContactPerson       = "contact_person"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldCompany             = "company"
	FieldEventType           = "event_type"
	FieldExpectedGuests      = "expected_guests"
	FieldCheckInDate         = "check_in_date"
	FieldCheckOutDate        = "check_out_date"
	FieldRoomsRequired       = "rooms_required"
	FieldBudgetRange         = "budget_range"
	FieldSpecialRequirements = "special_requirements"
	FieldStatus              = "status"
	FieldPriority            = "priority"
	FieldAssignedTo          = "assigned_to"
	FieldEstimatedRevenue    = "estimated_revenue"
	FieldNotes               = "notes"
	FieldLastUpdated         = "last_updated"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"

	DefaultAssignee = "Current User"
)

type Inquiry struct {
	ID                  string          `db:"id"`
	ClientName          string          `db:"client_name"`
	ContactPerson       string          `db:"contact_person"`
	Email               string          `db:"email"`
	Phone               string          `db:"phone"`
	Company             string          `db:"company"`
	EventType           string          `db:"event_type"`
	ExpectedGuests      int             `db:"expected_guests"`
	CheckInDate         time.Time       `db:"check_in_date"`
	CheckOutDate        time.Time       `db:"check_out_date"`
	RoomsRequired       int             `db:"rooms_required"`
	BudgetRange         string          `db:"budget_range"`
	SpecialRequirements string          `db:"special_requirements"`
	Status              string          `db:"status"`
	Priority            string          `db:"priority"`
	AssignedTo          string          `db:"assigned_to"`
	EstimatedRevenue    decimal.Decimal `db:"estimated_revenue"`
	Notes               string          `db:"notes"`
	LastUpdated         time.Time       `db:"last_updated"`
	model.Metadata
}

// Summary backs the counters on top of the inquiries table.
type Summary struct {
	Total                 int             `json:"total"`
	Pending               int             `json:"pending"`
	Confirmed             int             `json:"confirmed"`
	TotalEstimatedRevenue decimal.Decimal `json:"total_estimated_revenue"`
	AverageDealSize       decimal.Decimal `json:"average_deal_size"`
}

// Summarize scans inquiries once. AverageDealSize is zero for an empty collection.
func Summarize(inquiries []Inquiry) Summary {
	total := stats.Sum(inquiries, func(i Inquiry) decimal.Decimal { return i.EstimatedRevenue })

	return Summary{
		Total:                 len(inquiries),
		Pending:               stats.Count(inquiries, func(i Inquiry) bool { return i.Status == workflow.InquiryPending }),
		Confirmed:             stats.Count(inquiries, func(i Inquiry) bool { return i.Status == workflow.InquiryConfirmed }),
		TotalEstimatedRevenue: total,
		AverageDealSize:       stats.Average(total, len(inquiries)),
	}
}
