package report_fx

import (
	"go.uber.org/fx"

	"canteen/internal/repositories"
	"canteen/internal/services"
)

var Module = fx.Provide(
	provideReportService)

func provideReportService(
	paymentRepo repositories.PaymentRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	issuanceRepo repositories.IssuanceRepository,
) services.ReportServiceInterface {
	return services.NewReportService(paymentRepo, subscriptionRepo, issuanceRepo)
}
