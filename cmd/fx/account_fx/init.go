package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"comnet/internal/repositories"
	"comnet/internal/services"
	mem "comnet/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	subRepo repositories.ISubscriptionRepository,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, subRepo, mailService, resetTokens)
}
