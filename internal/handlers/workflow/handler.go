package workflow

import (
	"net/http"
	"strings"

	"grandplaza/infras/otel"
	"grandplaza/internal/domains/workflow/model"
	"grandplaza/internal/domains/workflow/model/dto"
	"grandplaza/internal/domains/workflow/service"
	"grandplaza/shared"
	"grandplaza/shared/constant"
	gDto "grandplaza/shared/dto"
	"grandplaza/shared/validator"
	"grandplaza/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Workflow
	otel    otel.Otel
}

func New(service service.Workflow, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/workflow", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Get("/statuses/{kind}", handler.GetStatuses)
		routerGroup.Get("/{id}", handler.GetItemByID)
		routerGroup.Patch("/{id}/status", handler.UpdateItemStatus)
	})
}

// GetItems lists the workflow board.
// @Summary Get workflow items
// @Description Search matches title, client and subject id. Items carry status label, category and progress.
// @Tags Workflow
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination, search and status parameters"
// @Param kind query string false "Filter by kind (inquiry, invoice)"
// @Success 200 {object} response.Data[dto.GetItemsResponse] "Workflow items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/workflow [get]
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := queryParams.ValidateSort(model.FieldID, model.FieldDueDate, model.FieldProgress, model.FieldLastChanged); err != nil {
		response.WithError(w, err)

		return
	}

	kind := strings.TrimSpace(r.URL.Query().Get(model.FieldKind))

	items, err := handler.service.GetAll(ctx, queryParams, kind)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get workflow items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetSummary returns the board counters.
// @Summary Workflow summary
// @Tags Workflow
// @Produce json
// @Success 200 {object} response.Data[model.Summary] "Board summary"
// @Failure 500 {object} response.Error
// @Router /v1/workflow/summary [get]
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get workflow summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// GetStatuses returns the status vocabulary of a kind, in display order.
// @Summary Status vocabulary
// @Tags Workflow
// @Produce json
// @Param kind path string true "inquiry or invoice"
// @Success 200 {object} response.Data[dto.VocabularyResponse] "Status options"
// @Failure 400 {object} response.Error
// @Router /v1/workflow/statuses/{kind} [get]
func (handler *Handler) GetStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatuses")
	defer scope.End()

	vocabulary, err := handler.service.Vocabulary(ctx, chi.URLParam(r, constant.RequestParamKind))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, vocabulary)
}

// GetItemByID retrieves a workflow item.
// @Summary Get a workflow item by ID
// @Tags Workflow
// @Produce json
// @Param id path string true "Workflow item ID"
// @Success 200 {object} response.Data[dto.ItemResponse] "Workflow item"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/workflow/{id} [get]
func (handler *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	item, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get workflow item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateItemStatus changes the status of the subject behind a board card.
// @Summary Change status from the board
// @Description Applies to the inquiry or invoice the item tracks, and to every item tracking it.
// @Tags Workflow
// @Accept json
// @Produce json
// @Param id path string true "Workflow item ID"
// @Param request body dto.StatusRequest true "New status"
// @Success 200 {object} response.Data[dto.StatusChangeResponse] "Applied status change"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/workflow/{id}/status [patch]
func (handler *Handler) UpdateItemStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItemStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.StatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	change, err := handler.service.SetItemStatus(ctx, id, req.Status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change workflow item status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Workflow item " + id + " moved to " + req.Status + " by " + shared.Operator(ctx))

	response.WithJSON(w, http.StatusOK, change)
}
