package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"comnet/internal/repositories"
	"comnet/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionService, provideSubscriptionRepo)

func provideSubscriptionRepo(db *gorm.DB) repositories.ISubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	subRepo repositories.ISubscriptionRepository,
	planRepo repositories.IPlanRepository,
	paymentRepo repositories.IPaymentRepository,
	referralRepo repositories.IReferralRepository,
	accountRepo repositories.AccountRepository) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subRepo, planRepo, paymentRepo, referralRepo, accountRepo)
}
