// Package event logs the domain events published by the back office.
package event

import (
	"context"
	"fmt"

	"grandplaza/infras/kafka"
	invoiceModel "grandplaza/internal/domains/invoice/model"
	workflowModel "grandplaza/internal/domains/workflow/model"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler Handler) StatusChanged(_ context.Context, msg kafkaGo.Message) error {
	event, err := kafka.Decode[workflowModel.StatusChanged](msg)
	if err != nil {
		return fmt.Errorf("failed to decode status change: %w", err)
	}

	if event.SubjectID == "" {
		return fmt.Errorf("status change without subject at offset %d", msg.Offset)
	}

	log.Info().
		Str("kind", string(event.Kind)).
		Str("subject", event.SubjectID).
		Str("from", event.From).
		Str("to", event.To).
		Int("progress", event.Progress).
		Str("changed_by", event.ChangedBy).
		Time("changed_at", event.ChangedAt).
		Msg("workflow status changed")

	return nil
}

func (handler Handler) InvoiceSent(_ context.Context, msg kafkaGo.Message) error {
	event, err := kafka.Decode[invoiceModel.Sent](msg)
	if err != nil {
		return fmt.Errorf("failed to decode sent invoice: %w", err)
	}

	if event.InvoiceID == "" {
		return fmt.Errorf("sent invoice without id at offset %d", msg.Offset)
	}

	log.Info().
		Str("invoice", event.InvoiceID).
		Str("number", event.InvoiceNumber).
		Str("recipient", event.ClientEmail).
		Str("outstanding", event.Outstanding.StringFixed(2)).
		Str("due_date", event.DueDate).
		Str("document", event.DocumentURL).
		Str("sent_by", event.SentBy).
		Msg("invoice sent")

	return nil
}
