package referral_fx

import (
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"comnet/internal/repositories"
	"comnet/internal/services"
)

var Module = fx.Provide(
	provideReferralService, provideReferralRepo)

func provideReferralRepo(db *gorm.DB) repositories.IReferralRepository {
	return repositories.NewReferralRepository(db)
}

func provideReferralService(
	referralRepo repositories.IReferralRepository,
	accountRepo repositories.AccountRepository,
	mailService services.IMailService) services.ReferralServiceInterface {

	reward, err := decimal.NewFromString(os.Getenv("REFERRAL_REWARD"))
	if err != nil || !reward.IsPositive() {
		reward = decimal.NewFromInt(100)
	}

	return services.NewReferralService(referralRepo, accountRepo, mailService, reward)
}
