package event_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	invoiceModel "grandplaza/internal/domains/invoice/model"
	workflowModel "grandplaza/internal/domains/workflow/model"
	"grandplaza/internal/handlers/event"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func message(t *testing.T, value any) kafka.Message {
	t.Helper()

	raw, err := json.Marshal(value)
	require.NoError(t, err)

	return kafka.Message{Value: raw}
}

func TestHandler_StatusChanged(t *testing.T) {
	handler := event.New()

	tests := []struct {
		name    string
		msg     kafka.Message
		wantErr bool
	}{
		{
			name: "valid event",
			msg: message(t, workflowModel.StatusChanged{
				Kind:      workflowModel.KindInquiry,
				SubjectID: "INQ001",
				From:      "pending",
				To:        "contacted",
				Progress:  25,
				ChangedBy: "reception",
				ChangedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			}),
		},
		{
			name:    "malformed payload",
			msg:     kafka.Message{Value: []byte("{")},
			wantErr: true,
		},
		{
			name:    "missing subject",
			msg:     message(t, workflowModel.StatusChanged{To: "contacted"}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := handler.StatusChanged(context.Background(), tt.msg)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestHandler_InvoiceSent(t *testing.T) {
	handler := event.New()

	err := handler.InvoiceSent(context.Background(), message(t, invoiceModel.Sent{
		InvoiceID:     "INV001",
		InvoiceNumber: "INV-2024-001",
		ClientEmail:   "billing@acme.com",
		Amount:        decimal.NewFromInt(45000),
		Outstanding:   decimal.NewFromInt(22500),
		DueDate:       "2024-04-01",
	}))
	assert.NoError(t, err)

	err = handler.InvoiceSent(context.Background(), message(t, invoiceModel.Sent{}))
	assert.Error(t, err)
}
