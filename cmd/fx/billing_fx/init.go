package billing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"comnet/internal/repositories"
	"comnet/internal/services"
)

var Module = fx.Provide(
	provideBillingService, providePaymentRepo)

func providePaymentRepo(db *gorm.DB) repositories.IPaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func provideBillingService(
	paymentRepo repositories.IPaymentRepository,
	subRepo repositories.ISubscriptionRepository,
	accountRepo repositories.AccountRepository) services.BillingServiceInterface {
	return services.NewBillingService(paymentRepo, subRepo, accountRepo)
}
