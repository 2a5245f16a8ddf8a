package router

import (
	"grandplaza/internal/handlers/booking"
	"grandplaza/internal/handlers/client"
	"grandplaza/internal/handlers/document"
	"grandplaza/internal/handlers/guest"
	"grandplaza/internal/handlers/inquiry"
	"grandplaza/internal/handlers/invoice"
	"grandplaza/internal/handlers/report"
	"grandplaza/internal/handlers/room"
	"grandplaza/internal/handlers/workflow"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking  booking.Handler
	Guest    guest.Handler
	Client   client.Handler
	Inquiry  inquiry.Handler
	Invoice  invoice.Handler
	Room     room.Handler
	Workflow workflow.Handler
	Document document.Handler
	Report   report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Client.Router(routerGroup)
		r.DomainHandlers.Inquiry.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Workflow.Router(routerGroup)
		r.DomainHandlers.Document.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
