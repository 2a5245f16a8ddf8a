package invoice

import (
	"net/http"

	"grandplaza/infras/otel"
	"grandplaza/internal/domains/invoice/model"
	"grandplaza/internal/domains/invoice/model/dto"
	"grandplaza/internal/domains/invoice/service"
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
	service  service.Invoice
	workflow workflowService.Workflow
	otel     otel.Otel
}

func New(service service.Invoice, workflow workflowService.Workflow, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		workflow: workflow,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/invoices", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateInvoice)
		routerGroup.Get("/", handler.GetInvoices)
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Get("/{id}", handler.GetInvoiceByID)
		routerGroup.Patch("/{id}", handler.UpdateInvoice)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
		routerGroup.Post("/{id}/pay", handler.MarkPaid)
		routerGroup.Post("/{id}/send", handler.SendInvoice)
	})
}

// CreateInvoice handles the creation of a new invoice.
// @Summary Create a new invoice
// @Description Issue a pending invoice numbered <year>-NNN. The amount is the sum of its line items. The id is assigned as INV followed by three digits.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param request body dto.CreateInvoiceRequest true "Create Invoice Request"
// @Success 201 {object} response.Data[dto.InvoiceResponse] "Created invoice"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [post]
func (handler *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInvoice")
	defer scope.End()

	req := dto.CreateInvoiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	invoice, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create invoice")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice " + invoice.ID + " created by " + shared.Operator(ctx))

	response.WithJSON(w, http.StatusCreated, invoice)
}

// GetInvoices retrieves invoices matching the search and status filter.
// @Summary Get all invoices
// @Description Search matches client name, invoice number and invoice id, case-insensitively.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination, search and status parameters"
// @Success 200 {object} response.Data[dto.GetInvoicesResponse] "List of invoices"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [get]
func (handler *Handler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := queryParams.ValidateSort(model.FieldID, model.FieldInvoiceNumber, model.FieldDueDate, model.FieldAmount); err != nil {
		response.WithError(w, err)

		return
	}

	filter := shared.FilterFromSearch(gDto.SearchFilter{
		Query:       queryParams.Search,
		Fields:      []string{model.FieldClientName, model.FieldInvoiceNumber, model.FieldID},
		StatusField: model.FieldStatus,
		Status:      queryParams.Status,
		Table:       model.TableName,
	})

	invoices, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoices retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoices)
}

// GetSummary returns the invoice counters.
// @Summary Invoice summary
// @Tags Invoice
// @Produce json
// @Success 200 {object} response.Data[model.Summary] "Invoice summary"
// @Failure 500 {object} response.Error
// @Router /v1/invoices/summary [get]
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// GetInvoiceByID retrieves a invoice by its ID.
// @Summary Get a invoice by ID
// @Tags Invoice
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Data[dto.InvoiceResponse] "Invoice details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id} [get]
func (handler *Handler) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	invoice, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoice)
}

// UpdateInvoice updates an existing invoice by its ID.
// @Summary Update a invoice by ID
// @Description The status is changed through /status or /pay only. The paid amount cannot exceed the amount.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.UpdateInvoiceRequest true "Update Invoice Request"
// @Success 200 {object} response.Message "Invoice updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id} [patch]
func (handler *Handler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInvoice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateInvoiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update invoice")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice " + id + " updated by " + shared.Operator(ctx))

	response.WithMessage(w, http.StatusOK, "Invoice updated successfully")
}

// UpdateStatus moves an invoice to any status of its vocabulary through the workflow board.
// @Summary Change invoice status
// @Description Every workflow item tracking the invoice follows the new status.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body workflowDto.StatusRequest true "New status"
// @Success 200 {object} response.Data[workflowDto.StatusChangeResponse] "Applied status change"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id}/status [patch]
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

	change, err := handler.workflow.SetStatus(ctx, workflowModel.KindInvoice, id, req.Status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change invoice status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice " + id + " moved to " + req.Status + " by " + shared.Operator(ctx))

	response.WithJSON(w, http.StatusOK, change)
}

// MarkPaid settles an invoice in full.
// @Summary Mark an invoice as paid
// @Description Sets the paid amount to the invoice amount, stamps paid_at and moves the invoice to paid.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.PayRequest false "Payment details"
// @Success 200 {object} response.Data[dto.InvoiceResponse] "Paid invoice"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id}/pay [post]
func (handler *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkPaid")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.PayRequest{}
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	invoice, err := handler.service.MarkPaid(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark invoice as paid")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice " + id + " paid, recorded by " + shared.Operator(ctx))

	response.WithJSON(w, http.StatusOK, invoice)
}

// SendInvoice hands the rendered invoice to the mailer.
// @Summary Send an invoice
// @Description Renders the invoice document and publishes an invoice.sent event for the mailer.
// @Tags Invoice
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 202 {object} response.Data[dto.SendResponse] "Invoice queued for delivery"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id}/send [post]
func (handler *Handler) SendInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendInvoice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	sent, err := handler.service.Send(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send invoice")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice " + id + " sent by " + shared.Operator(ctx))

	response.WithJSON(w, http.StatusAccepted, sent)
}
