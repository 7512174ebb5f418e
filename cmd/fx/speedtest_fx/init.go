package speedtest_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"comnet/internal/repositories"
	"comnet/internal/services"
)

var Module = fx.Provide(
	provideSpeedTestService, provideSpeedTestRepo)

func provideSpeedTestRepo(db *gorm.DB) repositories.ISpeedTestRepository {
	return repositories.NewSpeedTestRepository(db)
}

func provideSpeedTestService(
	speedTestRepo repositories.ISpeedTestRepository,
	subRepo repositories.ISubscriptionRepository) services.SpeedTestServiceInterface {
	return services.NewSpeedTestService(speedTestRepo, subRepo)
}
