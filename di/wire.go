//go:build wireinject
// +build wireinject

package di

import (
	"grandplaza/config"
	"grandplaza/infras/kafka"
	"grandplaza/infras/otel"
	"grandplaza/infras/postgres"
	"grandplaza/infras/redis"
	"grandplaza/infras/s3"
	"grandplaza/shared/cache"
	"grandplaza/transport/http"
	"grandplaza/transport/http/middleware"
	"grandplaza/transport/http/router"

	"github.com/google/wire"

	bookingRepository "grandplaza/internal/domains/booking/repository"
	bookingService "grandplaza/internal/domains/booking/service"
	bookingHandler "grandplaza/internal/handlers/booking"

	guestRepository "grandplaza/internal/domains/guest/repository"
	guestService "grandplaza/internal/domains/guest/service"
	guestHandler "grandplaza/internal/handlers/guest"

	clientRepository "grandplaza/internal/domains/client/repository"
	clientService "grandplaza/internal/domains/client/service"
	clientHandler "grandplaza/internal/handlers/client"

	roomRepository "grandplaza/internal/domains/room/repository"
	roomService "grandplaza/internal/domains/room/service"
	roomHandler "grandplaza/internal/handlers/room"

	inquiryRepository "grandplaza/internal/domains/inquiry/repository"
	inquiryService "grandplaza/internal/domains/inquiry/service"
	inquiryHandler "grandplaza/internal/handlers/inquiry"

	invoiceRepository "grandplaza/internal/domains/invoice/repository"
	invoiceService "grandplaza/internal/domains/invoice/service"
	invoiceHandler "grandplaza/internal/handlers/invoice"

	workflowRepository "grandplaza/internal/domains/workflow/repository"
	workflowService "grandplaza/internal/domains/workflow/service"
	workflowHandler "grandplaza/internal/handlers/workflow"

	documentRenderer "grandplaza/internal/domains/document/renderer"
	documentService "grandplaza/internal/domains/document/service"
	documentHandler "grandplaza/internal/handlers/document"

	reportService "grandplaza/internal/domains/report/service"
	reportHandler "grandplaza/internal/handlers/report"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var clientDomain = wire.NewSet(
	clientRepository.New,
	clientService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceService.New,
)

var workflowDomain = wire.NewSet(
	workflowRepository.New,
	workflowService.New,
)

var documentDomain = wire.NewSet(
	documentRenderer.New,
	documentService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	guestDomain,
	clientDomain,
	roomDomain,
	inquiryDomain,
	invoiceDomain,
	workflowDomain,
	documentDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	guestHandler.New,
	clientHandler.New,
	roomHandler.New,
	inquiryHandler.New,
	invoiceHandler.New,
	workflowHandler.New,
	documentHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

// InitializeConsumer builds the event consumer without the HTTP stack.
func InitializeConsumer() kafka.Client {
	wire.Build(
		configurations,
		kafka.New,
	)

	return nil
}
