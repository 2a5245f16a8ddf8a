package model

import (
	"slices"
	"time"

	"grandplaza/shared/model"
	"grandplaza/shared/search"
)

const (
	TableName   = "workflow_items"
	EntityName  = "workflow item"
	CachePrefix = "workflow"
)

const (
	FieldID          = "id"
	FieldKind        = "kind"
	FieldSubjectID   = "subject_id"
	FieldTitle       = "title"
	FieldClient      = "client"
	FieldStatus      = "status"
	FieldProgress    = "progress"
	FieldDueDate     = "due_date"
	FieldAssignedTo  = "assigned_to"
	FieldPriority    = "priority"
	FieldNextAction  = "next_action"
	FieldLastChanged = "last_changed"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Item is one card on the workflow board. It mirrors the status of the inquiry or invoice named by SubjectID.
type Item struct {
	ID          string     `db:"id"`
	Kind        Kind       `db:"kind"`
	SubjectID   string     `db:"subject_id"`
	Title       string     `db:"title"`
	Client      string     `db:"client"`
	Status      string     `db:"status"`
	Progress    int        `db:"progress"`
	DueDate     *time.Time `db:"due_date"`
	AssignedTo  string     `db:"assigned_to"`
	Priority    string     `db:"priority"`
	NextAction  string     `db:"next_action"`
	LastChanged *time.Time `db:"last_changed"`
	model.Metadata
}

// NextAction suggests the follow-up shown on a card for status.
func NextAction(kind Kind, status string) string {
	switch kind {
	case KindInquiry:
		switch status {
		case InquiryPending:
			return "Review requirements and send quote"
		case InquiryQuoted:
			return "Follow up on quote"
		case InquiryConfirmed:
			return "Issue invoice"
		}
	case KindInvoice:
		switch status {
		case InvoicePending:
			return "Await payment"
		case InvoicePartial:
			return "Collect remaining balance"
		case InvoiceOverdue:
			return "Send payment reminder"
		}
	}

	return "No action required"
}

// Summary backs the workflow board counters.
type Summary struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	InProgress   int `json:"in_progress"`
	Completed    int `json:"completed"`
	HighPriority int `json:"high_priority"`
}

// Summarize counts pending items, quoted or partially paid items as in progress,
// confirmed or paid items as completed, and high priority items.
func Summarize(items []Item) Summary {
	summary := Summary{Total: len(items)}

	for _, item := range items {
		switch item.Status {
		case InquiryPending:
			summary.Pending++
		case InquiryQuoted, InvoicePartial:
			summary.InProgress++
		case InquiryConfirmed, InvoicePaid:
			summary.Completed++
		}

		if item.Priority == PriorityHigh {
			summary.HighPriority++
		}
	}

	return summary
}

// Filter keeps the cards whose title, client or subject id contain query and whose
// status and kind match their filters. Order is preserved.
func Filter(items []Item, query, status, kind string) []Item {
	matched := search.Filter(items, query, status,
		func(item Item) []string { return []string{item.Title, item.Client, item.SubjectID} },
		func(item Item) string { return item.Status },
	)

	return slices.DeleteFunc(matched, func(item Item) bool {
		return !search.MatchesFilter(kind, string(item.Kind))
	})
}
