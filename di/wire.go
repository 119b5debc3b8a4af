//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/api"
	"frontdesk/infras/otel"
	"frontdesk/internal/console"

	"github.com/google/wire"

	adminRepository "frontdesk/internal/domains/admin/repository"
	adminService "frontdesk/internal/domains/admin/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	customerRepository "frontdesk/internal/domains/customer/repository"
	customerService "frontdesk/internal/domains/customer/service"
	dashboardService "frontdesk/internal/domains/dashboard/service"
	paymentRepository "frontdesk/internal/domains/payment/repository"
	paymentService "frontdesk/internal/domains/payment/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	staffRepository "frontdesk/internal/domains/staff/repository"
	staffService "frontdesk/internal/domains/staff/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	api.New,
	otel.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminService.New,
)

var domains = wire.NewSet(
	customerDomain,
	roomDomain,
	bookingDomain,
	paymentDomain,
	staffDomain,
	dashboardDomain,
	adminDomain,
)

func InitializeConsole() console.Model {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		console.New,
	)

	return console.Model{}
}
