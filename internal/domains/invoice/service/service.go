package service

import (
	"context"
	"fmt"

	"grandplaza/config"
	"grandplaza/infras/kafka"
	"grandplaza/infras/otel"
	"grandplaza/infras/postgres"
	documentModel "grandplaza/internal/domains/document/model"
	documentService "grandplaza/internal/domains/document/service"
	"grandplaza/internal/domains/invoice/model"
	"grandplaza/internal/domains/invoice/model/dto"
	"grandplaza/internal/domains/invoice/repository"
	workflowModel "grandplaza/internal/domains/workflow/model"
	workflowDto "grandplaza/internal/domains/workflow/model/dto"
	workflowService "grandplaza/internal/domains/workflow/service"
	"grandplaza/shared"
	"grandplaza/shared/cache"
	"grandplaza/shared/constant"
	gDto "grandplaza/shared/dto"
	"grandplaza/shared/failure"
	"grandplaza/shared/identifier"
	"grandplaza/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetInvoice    = "invoice:get"
	cacheGetAllInvoice = "invoice:gets"
	cacheCountInvoice  = "invoice:count"
	cacheSummary       = "invoice:summary"
)

type Invoice interface {
	Create(ctx context.Context, req dto.CreateInvoiceRequest) (dto.InvoiceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInvoicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.InvoiceResponse, error)
	Update(ctx context.Context, req dto.UpdateInvoiceRequest, id string) error
	MarkPaid(ctx context.Context, req dto.PayRequest, id string) (dto.InvoiceResponse, error)
	Send(ctx context.Context, id string) (dto.SendResponse, error)
	Summary(ctx context.Context) (model.Summary, error)
}

type serviceImpl struct {
	repo       repository.Invoice
	workflow   workflowService.Workflow
	documents  documentService.Document
	transactor postgres.Transactor
	kafka      kafka.Client
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Invoice,
	workflow workflowService.Workflow,
	documents documentService.Document,
	transactor postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Invoice {
	return &serviceImpl{
		repo:       repo,
		workflow:   workflow,
		documents:  documents,
		transactor: transactor,
		kafka:      kafka,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// nextNumber returns the next <year>-NNN invoice number for the current year.
func (s *serviceImpl) nextNumber(ctx context.Context) (string, error) {
	year := timezone.Now().Year()
	prefix := fmt.Sprintf("%d-", year)

	numbers, err := s.repo.Pluck(ctx, model.FieldInvoiceNumber, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldInvoiceNumber,
				Value:    prefix,
				Operator: gDto.FilterOperatorLike,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to list invoice numbers: %w", err)
	}

	return identifier.InvoiceNumber(year, identifier.Max(prefix, numbers)+1), nil
}

// Create stores a pending invoice and opens its payment card on the workflow board in the same transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInvoiceRequest) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ids, err := s.repo.Pluck(ctx, model.FieldID, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to list invoice ids")

		return res, fmt.Errorf("failed to list invoice ids: %w", err)
	}

	number, err := s.nextNumber(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to allocate invoice number")

		return res, err
	}

	invoice, err := req.ToModel(identifier.Next(model.IDPrefix, identifier.DefaultWidth, ids), number, shared.Operator(ctx))
	if err != nil {
		log.Error().Err(err).Msg("failed to parse invoice request")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, invoice); err != nil {
			return err //nolint:wrapcheck
		}

		dueDate := invoice.DueDate

		return s.workflow.Track(ctx, tx, workflowDto.TrackRequest{
			Kind:       workflowModel.KindInvoice,
			SubjectID:  invoice.ID,
			Title:      invoice.ClientName + " Payment",
			Client:     invoice.ClientName,
			Status:     invoice.Status,
			DueDate:    &dueDate,
			AssignedTo: model.DefaultAssignee,
		})
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create invoice")

		return res, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(invoice)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInvoicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoices")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices")

		return res, fmt.Errorf("failed to get invoices: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoice count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetInvoice, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoice")

		return res, nil
	}

	invoice, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(invoice)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Invoice, error) {
	invoice, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return invoice, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		log.Error().Str("id", id).Msg("invoice not found")

		return invoice, failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	return invoice, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateInvoiceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateInvoiceRequest{}) {
		return failure.EmptyUpdateError
	}

	current, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if req.PaidAmount != nil && req.PaidAmount.GreaterThan(current.Amount) {
		return failure.BadRequestFromString("paid_amount cannot exceed the invoice amount") // nolint:wrapcheck
	}

	if req.DueDate != constant.Empty {
		dueDate, err := timezone.Parse(constant.DayFormat, req.DueDate)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		if dueDate.Before(current.IssueDate) {
			return failure.BadRequestFromString("due_date cannot be before issue_date") // nolint:wrapcheck
		}
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.Operator(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update invoice")

		return fmt.Errorf("failed to update invoice: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// MarkPaid settles the full amount and moves the invoice to paid through the workflow in one transaction.
func (s *serviceImpl) MarkPaid(ctx context.Context, req dto.PayRequest, id string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaid")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	invoice, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if invoice.Status == workflowModel.InvoicePaid {
		return res, failure.Conflict("invoice is already paid") // nolint:wrapcheck
	}

	now := timezone.Now()

	changes := map[string]any{
		model.FieldPaidAmount:    invoice.Amount,
		model.FieldPaidAt:        now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: shared.Operator(ctx),
	}

	if req.PaymentMethod != constant.Empty {
		changes[model.FieldPaymentMethod] = req.PaymentMethod
		invoice.PaymentMethod = req.PaymentMethod
	}

	var event workflowModel.StatusChanged

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if txErr := s.repo.UpdateTx(ctx, tx, changes, shared.FilterByID(id, model.FieldID, model.TableName)); txErr != nil {
			return fmt.Errorf("failed to record invoice payment: %w", txErr)
		}

		var txErr error

		event, txErr = s.workflow.SetStatusTx(ctx, tx, workflowModel.KindInvoice, id, workflowModel.InvoicePaid)

		return txErr //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to mark invoice as paid")

		return res, fmt.Errorf("failed to mark invoice as paid: %w", err)
	}

	s.workflow.Announce(ctx, event)

	invoice.PaidAmount = invoice.Amount
	invoice.PaidAt = &now
	invoice.Status = workflowModel.InvoicePaid

	s.invalidate(ctx)

	res.FromModel(invoice)

	return res, nil
}

// Send renders the invoice and hands it to the mailer through the invoice-sent topic.
func (s *serviceImpl) Send(ctx context.Context, id string) (res dto.SendResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	invoice, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	doc, err := s.documents.Generate(ctx, documentModel.KindInvoice, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate invoice document")

		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	event := model.Sent{
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		ClientName:    invoice.ClientName,
		ClientEmail:   invoice.ClientEmail,
		Amount:        invoice.Amount,
		Outstanding:   invoice.Outstanding(),
		DueDate:       timezone.Format(invoice.DueDate, constant.DayFormat),
		DocumentURL:   doc.URL,
		SentBy:        shared.Operator(ctx),
		SentAt:        now,
	}

	err = s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.InvoiceSent, kafka.Message{
		Key:   invoice.ID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("invoice", invoice.ID).Msg("failed to publish invoice")

		return res, fmt.Errorf("failed to send invoice: %w", err)
	}

	return dto.SendResponse{
		InvoiceID:   invoice.ID,
		Recipient:   invoice.ClientEmail,
		DocumentURL: doc.URL,
		SentAt:      timezone.Format(now, constant.DateFormat),
	}, nil
}

func (s *serviceImpl) Summary(ctx context.Context) (res model.Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheSummary, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheSummary).Msg("cache hit for invoice summary")

		return res, nil
	}

	invoices, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{},
		model.FieldID, model.FieldStatus, model.FieldAmount, model.FieldPaidAmount)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices for summary")

		return res, fmt.Errorf("failed to get invoices: %w", err)
	}

	res = model.Summarize(invoices)

	s.save(ctx, cacheSummary, res)

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save invoice data to cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.CachePrefix)
	}()
}
