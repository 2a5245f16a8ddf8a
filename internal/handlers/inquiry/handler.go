package inquiry

import (
	"net/http"

	"grandplaza/infras/otel"
	"grandplaza/internal/domains/inquiry/model"
	"grandplaza/internal/domains/inquiry/model/dto"
	"grandplaza/internal/domains/inquiry/service"
	workflowModel "grandplaza/internal/domains/workflow/model"
	workflowDto "grandplaza/internal/domains/workflow/model/dto"
	workflowService "grandplaza/internal/domains/workflow/service"
	"grandplaza/shared"
	"grandplaza/shared/constant"
	gDto "grandplaza/shared/dto"
	"grandplaza/shared/validator"
	"grandplaza/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Inquiry
	workflow workflowService.Workflow
	otel     otel.Otel
}

func New(service service.Inquiry, workflow workflowService.Workflow, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		workflow: workflow,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inquiries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateInquiry)
		routerGroup.Get("/", handler.GetInquiries)
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Get("/{id}", handler.GetInquiryByID)
		routerGroup.Patch("/{id}", handler.UpdateInquiry)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
	})
}

// CreateInquiry handles the creation of a new inquiry.
// @Summary Create a new inquiry
// @Description Record a pending event inquiry and open its card on the workflow board. The id is assigned as INQ followed by three digits.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Create Inquiry Request"
// @Success 201 {object} response.Data[dto.InquiryResponse] "Created inquiry"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [post]
func (handler *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := dto.CreateInquiryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	inquiry, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry " + inquiry.ID + " created by " + shared.Operator(ctx))

	response.WithJSON(w, http.StatusCreated, inquiry)
}

// GetInquiries retrieves inquiries matching the search and status filter.
// @Summary Get all inquiries
// @Description Search matches client name, contact person, inquiry id and event type, case-insensitively.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination, search and status parameters"
// @Param priority query string false "Filter by priority (high, medium, low)"
// @Success 200 {object} response.Data[dto.GetInquiriesResponse] "List of inquiries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [get]
func (handler *Handler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := queryParams.ValidateSort(model.FieldID, model.FieldCheckInDate, model.FieldEstimatedRevenue, model.FieldLastUpdated); err != nil {
		response.WithError(w, err)

		return
	}

	filter := shared.FilterFromSearch(gDto.SearchFilter{
		Query:       queryParams.Search,
		Fields:      []string{model.FieldClientName, model.FieldContactPerson, model.FieldID, model.FieldEventType},
		StatusField: model.FieldStatus,
		Status:      queryParams.Status,
		Table:       model.TableName,
	}.Equal(model.FieldPriority, r.URL.Query().Get(model.FieldPriority)))

	inquiries, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiries retrieved successfully")

	response.WithJSON(w, http.StatusOK, inquiries)
}

// GetSummary returns the inquiry counters.
// @Summary Inquiry summary
// @Tags Inquiry
// @Produce json
// @Success 200 {object} response.Data[model.Summary] "Inquiry summary"
// @Failure 500 {object} response.Error
// @Router /v1/inquiries/summary [get]
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiry summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// GetInquiryByID retrieves a inquiry by its ID.
// @Summary Get a inquiry by ID
// @Tags Inquiry
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Data[dto.InquiryResponse] "Inquiry details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries/{id} [get]
func (handler *Handler) GetInquiryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	inquiry, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiry by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry retrieved successfully")

	response.WithJSON(w, http.StatusOK, inquiry)
}

// UpdateInquiry updates an existing inquiry by its ID.
// @Summary Update a inquiry by ID
// @Description The status is changed through /status only. Every edit bumps last_updated.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body dto.UpdateInquiryRequest true "Update Inquiry Request"
// @Success 200 {object} response.Message "Inquiry updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries/{id} [patch]
func (handler *Handler) UpdateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInquiry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateInquiryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry " + id + " updated by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Inquiry updated successfully")
}

// UpdateStatus moves an inquiry to any status of its vocabulary through the workflow board.
// @Summary Change inquiry status
// @Description Every workflow item tracking the inquiry follows the new status. The inquiry last_updated timestamp is bumped.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body workflowDto.StatusRequest true "New status"
// @Success 200 {object} response.Data[workflowDto.StatusChangeResponse] "Applied status change"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries/{id}/status [patch]
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := workflowDto.StatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	change, err := handler.workflow.SetStatus(ctx, workflowModel.KindInquiry, id, req.Status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change inquiry status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry " + id + " moved to " + req.Status + " by " + shared.Operator(ctx))

	response.WithJSON(w, http.StatusOK, change)
}
