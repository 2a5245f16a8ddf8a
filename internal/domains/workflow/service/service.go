package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Workflow=MockWorkflowService

import (
	"context"
	"fmt"

	"grandplaza/config"
	"grandplaza/infras/kafka"
	"grandplaza/infras/otel"
	"grandplaza/infras/postgres"
	inquiryModel "grandplaza/internal/domains/inquiry/model"
	inquiryRepo "grandplaza/internal/domains/inquiry/repository"
	invoiceModel "grandplaza/internal/domains/invoice/model"
	invoiceRepo "grandplaza/internal/domains/invoice/repository"
	"grandplaza/internal/domains/workflow/model"
	"grandplaza/internal/domains/workflow/model/dto"
	"grandplaza/internal/domains/workflow/repository"
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
	cacheGetItem = "workflow:get"
	cacheBoard   = "workflow:board"
	cacheSummary = "workflow:summary"
)

// Workflow is the only path that changes the status of an inquiry or an invoice.
type Workflow interface {
	Vocabulary(ctx context.Context, kind string) (dto.VocabularyResponse, error)
	SetStatus(ctx context.Context, kind model.Kind, subjectID, status string) (dto.StatusChangeResponse, error)
	SetStatusTx(ctx context.Context, tx *sqlx.Tx, kind model.Kind, subjectID, status string) (model.StatusChanged, error)
	Announce(ctx context.Context, event model.StatusChanged)
	SetItemStatus(ctx context.Context, itemID, status string) (dto.StatusChangeResponse, error)
	Track(ctx context.Context, tx *sqlx.Tx, req dto.TrackRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, kind string) (dto.GetItemsResponse, error)
	Get(ctx context.Context, id string) (dto.ItemResponse, error)
	Summary(ctx context.Context) (model.Summary, error)
}

type serviceImpl struct {
	repo        repository.Workflow
	inquiryRepo inquiryRepo.Inquiry
	invoiceRepo invoiceRepo.Invoice
	transactor  postgres.Transactor
	kafka       kafka.Client
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Workflow,
	inquiryRepo inquiryRepo.Inquiry,
	invoiceRepo invoiceRepo.Invoice,
	transactor postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Workflow {
	return &serviceImpl{
		repo:        repo,
		inquiryRepo: inquiryRepo,
		invoiceRepo: invoiceRepo,
		transactor:  transactor,
		kafka:       kafka,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Vocabulary(ctx context.Context, kind string) (res dto.VocabularyResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Vocabulary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parsed, err := model.ParseKind(kind)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	return dto.VocabularyResponse{Kind: parsed, Statuses: model.Vocabulary(parsed)}, nil
}

// SetStatus overwrites the subject status with any value of its vocabulary, whatever the current status is,
// and moves every board card of the subject along with it.
func (s *serviceImpl) SetStatus(ctx context.Context, kind model.Kind, subjectID, status string) (res dto.StatusChangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var event model.StatusChanged

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var txErr error

		event, txErr = s.SetStatusTx(ctx, tx, kind, subjectID, status)

		return txErr
	})
	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Str("subject", subjectID).Msg("failed to set status")

		return res, fmt.Errorf("failed to set %s status: %w", kind, err)
	}

	s.Announce(ctx, event)

	res.FromEvent(event)

	return res, nil
}

// SetStatusTx writes a status change on the subject and its board card inside tx.
// The caller announces the returned event once tx has committed.
func (s *serviceImpl) SetStatusTx(ctx context.Context, tx *sqlx.Tx, kind model.Kind, subjectID, status string) (event model.StatusChanged, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatusTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = model.ParseKind(string(kind)); err != nil {
		return event, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !model.IsValid(kind, status) {
		return event, failure.BadRequestFromString(fmt.Sprintf("%q is not a valid %s status", status, kind)) // nolint:wrapcheck
	}

	event = model.StatusChanged{
		Kind:      kind,
		SubjectID: subjectID,
		To:        status,
		Progress:  model.Progress(kind, status),
		ChangedBy: shared.Operator(ctx),
		ChangedAt: timezone.Now(),
	}

	event.From, err = s.updateSubject(ctx, tx, event)
	if err != nil {
		return event, err
	}

	err = s.repo.UpdateTx(ctx, tx, map[string]any{
		model.FieldStatus:        status,
		model.FieldProgress:      event.Progress,
		model.FieldNextAction:    model.NextAction(kind, status),
		model.FieldLastChanged:   event.ChangedAt,
		constant.FieldModifiedAt: event.ChangedAt,
		constant.FieldModifiedBy: event.ChangedBy,
	}, shared.FilterByID(subjectID, model.FieldSubjectID, model.TableName))
	if err != nil {
		return event, fmt.Errorf("failed to update workflow item: %w", err)
	}

	return event, nil
}

// Announce publishes a committed status change and drops every cache it makes stale.
func (s *serviceImpl) Announce(ctx context.Context, event model.StatusChanged) {
	s.publish(ctx, event)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, subjectCachePrefix(event.Kind))
		shared.InvalidateCaches(c, s.cache, model.CachePrefix)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixReport)
	}()
}

func subjectCachePrefix(kind model.Kind) string {
	if kind == model.KindInvoice {
		return invoiceModel.CachePrefix
	}

	return inquiryModel.CachePrefix
}

// updateSubject locks the inquiry or invoice row, writes the new status and returns the status it replaced.
// Inquiries record the change time in last_updated, invoices keep no update timestamp.
func (s *serviceImpl) updateSubject(ctx context.Context, tx *sqlx.Tx, event model.StatusChanged) (string, error) {
	switch event.Kind {
	case model.KindInquiry:
		filter := shared.FilterByID(event.SubjectID, inquiryModel.FieldID, inquiryModel.TableName)

		inquiry, err := s.inquiryRepo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return "", fmt.Errorf("failed to get inquiry: %w", err)
		}

		if inquiry.ID == constant.Empty {
			return "", failure.NotFound("inquiry not found") // nolint:wrapcheck
		}

		err = s.inquiryRepo.UpdateTx(ctx, tx, map[string]any{
			inquiryModel.FieldStatus:      event.To,
			inquiryModel.FieldLastUpdated: event.ChangedAt,
			constant.FieldModifiedAt:      event.ChangedAt,
			constant.FieldModifiedBy:      event.ChangedBy,
		}, filter)
		if err != nil {
			return "", fmt.Errorf("failed to update inquiry status: %w", err)
		}

		return inquiry.Status, nil
	case model.KindInvoice:
		filter := shared.FilterByID(event.SubjectID, invoiceModel.FieldID, invoiceModel.TableName)

		invoice, err := s.invoiceRepo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return "", fmt.Errorf("failed to get invoice: %w", err)
		}

		if invoice.ID == constant.Empty {
			return "", failure.NotFound("invoice not found") // nolint:wrapcheck
		}

		err = s.invoiceRepo.UpdateTx(ctx, tx, map[string]any{
			invoiceModel.FieldStatus: event.To,
		}, filter)
		if err != nil {
			return "", fmt.Errorf("failed to update invoice status: %w", err)
		}

		return invoice.Status, nil
	default:
		return "", failure.BadRequest(fmt.Errorf("%w: %q", model.ErrUnknownKind, event.Kind)) // nolint:wrapcheck
	}
}

// publish is best effort: the status change has already been committed.
func (s *serviceImpl) publish(ctx context.Context, event model.StatusChanged) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".StatusChanged")
	defer scope.End()

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.StatusChanged, kafka.Message{
		Key:   event.SubjectID,
		Value: event,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("subject", event.SubjectID).Msg("failed to publish status change")
	}
}

func (s *serviceImpl) SetItemStatus(ctx context.Context, itemID, status string) (res dto.StatusChangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetItemStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	item, err := s.repo.Get(ctx, shared.FilterByID(itemID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get workflow item")

		return res, fmt.Errorf("failed to get workflow item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("workflow item not found") // nolint:wrapcheck
	}

	return s.SetStatus(ctx, item.Kind, item.SubjectID, status)
}

// Track opens a board card inside the transaction that creates its subject.
func (s *serviceImpl) Track(ctx context.Context, tx *sqlx.Tx, req dto.TrackRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Track")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ids, err := s.repo.Pluck(ctx, model.FieldID, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to list workflow item ids")

		return fmt.Errorf("failed to list workflow item ids: %w", err)
	}

	item := req.ToModel(identifier.Next(identifier.PrefixWorkflow, identifier.DefaultWidth, ids), shared.Operator(ctx))

	if err = s.repo.InsertTx(ctx, tx, item); err != nil {
		log.Error().Err(err).Msg("failed to create workflow item")

		return fmt.Errorf("failed to create workflow item: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.CachePrefix)
	}()

	return nil
}

// GetAll pages through the board. The whole board is cached per ordering and
// filtered in memory, one card per inquiry or invoice.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, kind string) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	items, err := s.board(ctx, req.SortBy, req.SortDir)
	if err != nil {
		log.Error().Err(err).Msg("failed to get workflow items")

		return res, fmt.Errorf("failed to get workflow items: %w", err)
	}

	matched := model.Filter(items, req.Search, req.Status, kind)

	res.FromModels(paginate(matched, req.Page, req.Limit), len(matched), req.Limit)

	return res, nil
}

func (s *serviceImpl) board(ctx context.Context, sortBy, sortDir string) (items []model.Item, err error) {
	cacheKey := shared.BuildCacheKey(cacheBoard, sortBy, sortDir)

	if err = s.cache.Get(ctx, cacheKey, &items); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for workflow board")

		return items, nil
	}

	items, err = s.repo.GetAll(ctx, gDto.QueryParams{SortBy: sortBy, SortDir: sortDir}, gDto.FilterGroup{})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	s.save(ctx, cacheKey, items)

	return items, nil
}

func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}

	start := (max(page, 1) - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	return items[start:min(start+limit, len(items))]
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetItem, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for workflow item")

		return res, nil
	}

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get workflow item")

		return res, fmt.Errorf("failed to get workflow item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("workflow item not found") // nolint:wrapcheck
	}

	res.FromModel(item)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Summary(ctx context.Context) (res model.Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheSummary, &res)
	if err == nil {
		return res, nil
	}

	items, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.FieldID, model.FieldStatus, model.FieldPriority)
	if err != nil {
		log.Error().Err(err).Msg("failed to get workflow items for summary")

		return res, fmt.Errorf("failed to get workflow items: %w", err)
	}

	res = model.Summarize(items)

	s.save(ctx, cacheSummary, res)

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save workflow data to cache")
		}
	}()
}
