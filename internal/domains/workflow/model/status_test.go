package model_test

import (
	"slices"
	"testing"

	"grandplaza/internal/domains/workflow/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress_Inquiry(t *testing.T) {
	tests := map[string]int{
		"pending":   25,
		"quoted":    50,
		"confirmed": 100,
		"rejected":  0,
		"cancelled": 0,
		"archived":  25,
		"":          25,
	}

	for status, want := range tests {
		t.Run(status, func(t *testing.T) {
			assert.Equal(t, want, model.Progress(model.KindInquiry, status))
		})
	}
}

func TestProgress_Invoice(t *testing.T) {
	tests := map[string]int{
		"pending":   25,
		"partial":   50,
		"paid":      100,
		"overdue":   25,
		"cancelled": 0,
		"refunded":  25,
	}

	for status, want := range tests {
		t.Run(status, func(t *testing.T) {
			assert.Equal(t, want, model.Progress(model.KindInvoice, status))
		})
	}
}

func TestProgress_InRange(t *testing.T) {
	for _, kind := range model.Kinds() {
		for _, option := range model.Vocabulary(kind) {
			assert.GreaterOrEqual(t, option.Progress, 0)
			assert.LessOrEqual(t, option.Progress, 100)
		}
	}
}

func TestVocabulary(t *testing.T) {
	inquiry := model.Vocabulary(model.KindInquiry)
	require.Len(t, inquiry, 5)
	assert.Equal(t, []string{"pending", "quoted", "confirmed", "rejected", "cancelled"}, model.Values(model.KindInquiry))
	assert.Equal(t, []string{"Pending Review", "Quote Sent", "Confirmed", "Rejected", "Cancelled"}, labels(inquiry))

	invoice := model.Vocabulary(model.KindInvoice)
	require.Len(t, invoice, 5)
	assert.Equal(t, []string{"pending", "partial", "paid", "overdue", "cancelled"}, model.Values(model.KindInvoice))
	assert.Equal(t, []string{"Pending Payment", "Partially Paid", "Paid", "Overdue", "Cancelled"}, labels(invoice))

	assert.Nil(t, model.Vocabulary("booking"))
}

func TestVocabulary_IsACopy(t *testing.T) {
	options := model.Vocabulary(model.KindInquiry)
	options[0].Label = "tampered"

	assert.Equal(t, "Pending Review", model.Label(model.KindInquiry, "pending"))
}

func TestLabelAndCategory(t *testing.T) {
	assert.Equal(t, "Quote Sent", model.Label(model.KindInquiry, "quoted"))
	assert.Equal(t, "Partially Paid", model.Label(model.KindInvoice, "partial"))
	assert.Equal(t, "mystery", model.Label(model.KindInvoice, "mystery"))

	assert.Equal(t, model.CategoryWarning, model.CategoryOf(model.KindInquiry, "pending"))
	assert.Equal(t, model.CategoryInfo, model.CategoryOf(model.KindInvoice, "pending"))
	assert.Equal(t, model.CategoryDanger, model.CategoryOf(model.KindInvoice, "overdue"))
	assert.Equal(t, model.CategoryNeutral, model.CategoryOf(model.KindInvoice, "mystery"))
}

func TestIsValidAndParseKind(t *testing.T) {
	assert.True(t, model.IsValid(model.KindInquiry, "quoted"))
	assert.False(t, model.IsValid(model.KindInvoice, "quoted"))

	kind, err := model.ParseKind("invoice")
	require.NoError(t, err)
	assert.Equal(t, model.KindInvoice, kind)

	_, err = model.ParseKind("booking")
	assert.ErrorIs(t, err, model.ErrUnknownKind)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, model.StatusOption{Value: "paid", Label: "Paid", Category: model.CategorySuccess, Progress: 100},
		model.Describe(model.KindInvoice, "paid"))
	assert.Equal(t, model.StatusOption{Value: "lost", Label: "lost", Category: model.CategoryNeutral, Progress: 25},
		model.Describe(model.KindInquiry, "lost"))
}

func TestSummarize(t *testing.T) {
	items := []model.Item{
		{Kind: model.KindInquiry, Status: "pending", Priority: "high"},
		{Kind: model.KindInquiry, Status: "quoted", Priority: "medium"},
		{Kind: model.KindInvoice, Status: "partial", Priority: "high"},
		{Kind: model.KindInvoice, Status: "paid", Priority: "low"},
		{Kind: model.KindInquiry, Status: "confirmed", Priority: "low"},
		{Kind: model.KindInvoice, Status: "overdue", Priority: "high"},
	}

	assert.Equal(t, model.Summary{Total: 6, Pending: 1, InProgress: 2, Completed: 2, HighPriority: 3}, model.Summarize(items))
	assert.Equal(t, model.Summary{}, model.Summarize(nil))
}

func TestNextAction(t *testing.T) {
	assert.Equal(t, "Follow up on quote", model.NextAction(model.KindInquiry, "quoted"))
	assert.Equal(t, "Send payment reminder", model.NextAction(model.KindInvoice, "overdue"))
	assert.Equal(t, "No action required", model.NextAction(model.KindInvoice, "paid"))
}

func labels(options []model.StatusOption) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		out = append(out, o.Label)
	}

	return out
}

func TestFilter(t *testing.T) {
	items := []model.Item{
		{ID: "WF001", Kind: model.KindInquiry, SubjectID: "INQ001", Title: "Tech Corp Annual Conference", Client: "Tech Corp", Status: model.InquiryPending},
		{ID: "WF002", Kind: model.KindInvoice, SubjectID: "INV001", Title: "Invoice 2024-001", Client: "Tech Corp", Status: model.InvoicePartial},
		{ID: "WF003", Kind: model.KindInquiry, SubjectID: "INQ002", Title: "Wedding Reception", Client: "Smith Family", Status: model.InquiryQuoted},
	}

	ids := func(items []model.Item) []string {
		out := []string{}
		for _, item := range items {
			out = append(out, item.ID)
		}

		return out
	}

	tests := []struct {
		name   string
		query  string
		status string
		kind   string
		want   []string
	}{
		{name: "no filters", want: []string{"WF001", "WF002", "WF003"}},
		{name: "case-insensitive client match", query: "TECH corp", want: []string{"WF001", "WF002"}},
		{name: "subject id match", query: "inq002", want: []string{"WF003"}},
		{name: "query and status are ANDed", query: "tech", status: model.InvoicePartial, want: []string{"WF002"}},
		{name: "kind filter", kind: string(model.KindInquiry), want: []string{"WF001", "WF003"}},
		{name: "all matches every status", status: "all", kind: "all", want: []string{"WF001", "WF002", "WF003"}},
		{name: "nothing matches", query: "gala", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(model.Filter(slices.Clone(items), tt.query, tt.status, tt.kind)))
		})
	}
}
