//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	bookingHandler "frontdesk/internal/handlers/booking"
	expenseHandler "frontdesk/internal/handlers/expense"
	incomeHandler "frontdesk/internal/handlers/income"
	reportHandler "frontdesk/internal/handlers/report"
	roomHandler "frontdesk/internal/handlers/room"
	stayHandler "frontdesk/internal/handlers/stay"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	expenseRepository "frontdesk/internal/domains/expense/repository"
	expenseService "frontdesk/internal/domains/expense/service"
	incomeRepository "frontdesk/internal/domains/income/repository"
	incomeService "frontdesk/internal/domains/income/service"
	reportService "frontdesk/internal/domains/report/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	saleRepository "frontdesk/internal/domains/sale/repository"
	stayRepository "frontdesk/internal/domains/stay/repository"
	stayService "frontdesk/internal/domains/stay/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var stayDomain = wire.NewSet(
	saleRepository.New,
	stayRepository.New,
	stayService.New,
)

var expenseDomain = wire.NewSet(
	expenseRepository.New,
	expenseService.New,
)

var incomeDomain = wire.NewSet(
	incomeRepository.New,
	incomeService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	stayDomain,
	expenseDomain,
	incomeDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	stayHandler.New,
	expenseHandler.New,
	incomeHandler.New,
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
