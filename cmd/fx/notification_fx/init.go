package notification_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"comnet/internal/repositories"
	"comnet/internal/services"
)

var Module = fx.Provide(
	provideNotificationService, provideNotificationRepo)

func provideNotificationRepo(db *gorm.DB) repositories.INotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(
	notificationRepo repositories.INotificationRepository,
	accountRepo repositories.AccountRepository) services.NotificationServiceInterface {
	return services.NewNotificationService(notificationRepo, accountRepo)
}
