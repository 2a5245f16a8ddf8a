package service

import (
	"context"
	"fmt"

	"grandplaza/config"
	"grandplaza/infras/otel"
	"grandplaza/infras/postgres"
	"grandplaza/internal/domains/inquiry/model"
	"grandplaza/internal/domains/inquiry/model/dto"
	"grandplaza/internal/domains/inquiry/repository"
	workflowModel "grandplaza/internal/domains/workflow/model"
	workflowDto "grandplaza/internal/domains/workflow/model/dto"
	workflowService "grandplaza/internal/domains/workflow/service"
	"grandplaza/shared"
	"grandplaza/shared/cache"
	"grandplaza/shared/constant"
	gDto "grandplaza/shared/dto"
	"grandplaza/shared/failure"
	"grandplaza/shared/identifier"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetInquiry    = "inquiry:get"
	cacheGetAllInquiry = "inquiry:gets"
	cacheCountInquiry  = "inquiry:count"
	cacheSummary       = "inquiry:summary"
)

type Inquiry interface {
	Create(ctx context.Context, req dto.CreateInquiryRequest) (dto.InquiryResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInquiriesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.InquiryResponse, error)
	Update(ctx context.Context, req dto.UpdateInquiryRequest, id string) error
	Summary(ctx context.Context) (model.Summary, error)
}

type serviceImpl struct {
	repo       repository.Inquiry
	workflow   workflowService.Workflow
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Inquiry,
	workflow workflowService.Workflow,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Inquiry {
	return &serviceImpl{
		repo:       repo,
		workflow:   workflow,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Create stores a pending inquiry and opens its card on the workflow board in the same transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInquiryRequest) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ids, err := s.repo.Pluck(ctx, model.FieldID, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to list inquiry ids")

		return res, fmt.Errorf("failed to list inquiry ids: %w", err)
	}

	inquiry, err := req.ToModel(identifier.Next(model.IDPrefix, identifier.DefaultWidth, ids), shared.Operator(ctx))
	if err != nil {
		log.Error().Err(err).Msg("failed to parse inquiry request")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, inquiry); err != nil {
			return err //nolint:wrapcheck
		}

		checkIn := inquiry.CheckInDate

		return s.workflow.Track(ctx, tx, workflowDto.TrackRequest{
			Kind:       workflowModel.KindInquiry,
			SubjectID:  inquiry.ID,
			Title:      fmt.Sprintf("%s %s", inquiry.ClientName, inquiry.EventType),
			Client:     inquiry.ClientName,
			Status:     inquiry.Status,
			DueDate:    &checkIn,
			AssignedTo: inquiry.AssignedTo,
			Priority:   inquiry.Priority,
		})
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create inquiry")

		return res, fmt.Errorf("failed to create inquiry: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(inquiry)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInquiriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInquiry, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiries")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inquiries")

		return res, fmt.Errorf("failed to count inquiries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiries")

		return res, fmt.Errorf("failed to get inquiries: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountInquiry, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiry count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inquiries")

		return res, fmt.Errorf("failed to count inquiries: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiry count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetInquiry, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiry")

		return res, nil
	}

	inquiry, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiry")

		return res, fmt.Errorf("failed to get inquiry: %w", err)
	}

	if inquiry.ID == constant.Empty {
		return res, failure.NotFound("inquiry not found") // nolint:wrapcheck
	}

	res.FromModel(inquiry)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiry to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateInquiryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateInquiryRequest{}) {
		return failure.EmptyUpdateError
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiry")

		return fmt.Errorf("failed to get inquiry: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Str("id", id).Msg("inquiry not found")

		return failure.NotFound("inquiry not found") // nolint:wrapcheck
	}

	if err = shared.CheckStay(current.CheckInDate, current.CheckOutDate, req.CheckInDate, req.CheckOutDate); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, req.Changes(shared.Operator(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update inquiry")

		return fmt.Errorf("failed to update inquiry: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Summary(ctx context.Context) (res model.Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheSummary, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheSummary).Msg("cache hit for inquiry summary")

		return res, nil
	}

	inquiries, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.FieldID, model.FieldStatus, model.FieldEstimatedRevenue)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiries for summary")

		return res, fmt.Errorf("failed to get inquiries: %w", err)
	}

	res = model.Summarize(inquiries)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheSummary, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiry summary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.CachePrefix)
	}()
}
