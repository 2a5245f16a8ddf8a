package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"path"

	"grandplaza/config"
	"grandplaza/infras/otel"
	"grandplaza/infras/s3"
	"grandplaza/internal/domains/document/model"
	"grandplaza/internal/domains/document/renderer"
	inquiryModel "grandplaza/internal/domains/inquiry/model"
	inquiryRepo "grandplaza/internal/domains/inquiry/repository"
	invoiceModel "grandplaza/internal/domains/invoice/model"
	invoiceRepo "grandplaza/internal/domains/invoice/repository"
	"grandplaza/shared"
	"grandplaza/shared/constant"
	"grandplaza/shared/failure"
	"grandplaza/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Document interface {
	Generate(ctx context.Context, kind model.Kind, id string) (model.Document, error)
}

type serviceImpl struct {
	inquiryRepo inquiryRepo.Inquiry
	invoiceRepo invoiceRepo.Invoice
	renderer    renderer.Renderer
	storage     s3.S3
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	inquiryRepo inquiryRepo.Inquiry,
	invoiceRepo invoiceRepo.Invoice,
	renderer renderer.Renderer,
	storage s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Document {
	return &serviceImpl{
		inquiryRepo: inquiryRepo,
		invoiceRepo: invoiceRepo,
		renderer:    renderer,
		storage:     storage,
		cfg:         cfg,
		otel:        otel,
	}
}

// Generate renders the document for the inquiry or invoice id and archives a copy.
// A failed archive leaves URL empty; the rendered content is still returned.
func (s *serviceImpl) Generate(ctx context.Context, kind model.Kind, id string) (res model.Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var data any

	switch kind {
	case model.KindInquiry:
		data, err = s.inquiryLetter(ctx, id)
	case model.KindInvoice:
		data, err = s.invoiceDocument(ctx, id)
	default:
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown document kind %q", kind)) // nolint:wrapcheck
	}

	if err != nil {
		return res, err
	}

	content, err := s.renderer.Render(kind, data)
	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Str("id", id).Msg("failed to render document")

		return res, failure.InternalErrorFromString(constant.ResponseErrorDocumentGeneration) // nolint:wrapcheck
	}

	res = model.Document{
		Filename:    model.Filename(kind, id),
		ContentType: constant.ContentTypePlainText,
		Content:     content,
	}

	res.URL = s.archive(ctx, kind, res)

	return res, nil
}

func (s *serviceImpl) archive(ctx context.Context, kind model.Kind, doc model.Document) string {
	directory := path.Join(model.Directory, string(kind), uuid.NewString())

	url, err := s.storage.UploadFileBytes(ctx, directory, doc.Filename, doc.ContentType, doc.Content)
	if errors.Is(err, s3.ErrStorageDisabled) {
		return constant.Empty
	}

	if err != nil {
		log.Error().Err(err).Str("file", doc.Filename).Msg("failed to archive document")

		return constant.Empty
	}

	return url
}

func (s *serviceImpl) letterhead() model.Letterhead {
	hotel := s.cfg.App.Hotel

	return model.Letterhead{
		HotelName:    hotel.Name,
		Phone:        hotel.Phone,
		InfoEmail:    hotel.InfoEmail,
		BillingEmail: hotel.BillingEmail,
	}
}

func (s *serviceImpl) inquiryLetter(ctx context.Context, id string) (model.InquiryLetter, error) {
	inquiry, err := s.inquiryRepo.Get(ctx, shared.FilterByID(id, inquiryModel.FieldID, inquiryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiry")

		return model.InquiryLetter{}, fmt.Errorf("failed to get inquiry: %w", err)
	}

	if inquiry.ID == constant.Empty {
		return model.InquiryLetter{}, failure.NotFound("inquiry not found") // nolint:wrapcheck
	}

	return model.InquiryLetter{
		ID:                  inquiry.ID,
		ClientName:          inquiry.ClientName,
		ContactPerson:       inquiry.ContactPerson,
		Email:               inquiry.Email,
		Phone:               inquiry.Phone,
		EventType:           inquiry.EventType,
		ExpectedGuests:      inquiry.ExpectedGuests,
		CheckInDate:         timezone.Format(inquiry.CheckInDate, constant.LetterDateFmt),
		CheckOutDate:        timezone.Format(inquiry.CheckOutDate, constant.LetterDateFmt),
		RoomsRequired:       inquiry.RoomsRequired,
		BudgetRange:         inquiry.BudgetRange,
		SpecialRequirements: inquiry.SpecialRequirements,
		GeneratedOn:         timezone.Format(timezone.Now(), constant.LetterDateFmt),
		Letterhead:          s.letterhead(),
	}, nil
}

func (s *serviceImpl) invoiceDocument(ctx context.Context, id string) (model.InvoiceDocument, error) {
	invoice, err := s.invoiceRepo.Get(ctx, shared.FilterByID(id, invoiceModel.FieldID, invoiceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return model.InvoiceDocument{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return model.InvoiceDocument{}, failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	doc := model.InvoiceDocument{
		InvoiceNumber: invoice.InvoiceNumber,
		ClientName:    invoice.ClientName,
		ClientEmail:   invoice.ClientEmail,
		IssueDate:     timezone.Format(invoice.IssueDate, constant.LetterDateFmt),
		DueDate:       timezone.Format(invoice.DueDate, constant.LetterDateFmt),
		Items:         make([]model.InvoiceLine, len(invoice.Items)),
		Amount:        invoice.Amount,
		PaidAmount:    invoice.PaidAmount,
		Outstanding:   invoice.Outstanding(),
		Status:        invoice.Status,
		PaymentMethod: invoice.PaymentMethod,
		Notes:         invoice.Notes,
		GeneratedOn:   timezone.Format(timezone.Now(), constant.LetterDateFmt),
		Letterhead:    s.letterhead(),
	}

	if invoice.InquiryID != nil {
		doc.InquiryID = *invoice.InquiryID
	}

	if invoice.PaidAt != nil {
		doc.PaidOn = timezone.Format(*invoice.PaidAt, constant.LetterDateFmt)
	}

	for i, item := range invoice.Items {
		doc.Items[i] = model.InvoiceLine(item)
	}

	return doc, nil
}
