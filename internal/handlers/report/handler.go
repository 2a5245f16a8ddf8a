package report

import (
	"net/http"

	"grandplaza/infras/otel"
	"grandplaza/internal/domains/report/model"
	"grandplaza/internal/domains/report/service"
	"grandplaza/shared/constant"
	"grandplaza/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.GetDashboard)
		routerGroup.Get("/charts", handler.GetCharts)
	})
}

// GetDashboard returns the dashboard cards.
// @Summary Dashboard
// @Description Occupancy, guests, pending bookings, today's check-ins, this month's revenue and average daily rate.
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[model.Dashboard] "Dashboard"
// @Failure 500 {object} response.Error
// @Router /v1/reports/dashboard [get]
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	var (
		dashboard model.Dashboard
		err       error
	)

	if dashboard, err = handler.service.Dashboard(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dashboard)
}

// GetCharts returns every chart series as label/value records.
// @Summary Charts
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[model.Charts] "Chart series"
// @Failure 500 {object} response.Error
// @Router /v1/reports/charts [get]
func (handler *Handler) GetCharts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCharts")
	defer scope.End()

	var (
		charts model.Charts
		err    error
	)

	if charts, err = handler.service.Charts(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build charts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, charts)
}
