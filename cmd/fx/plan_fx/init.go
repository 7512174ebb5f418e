package plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"comnet/internal/repositories"
	"comnet/internal/services"
)

var Module = fx.Provide(
	providePlanService, providePlanRepo)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(
	planRepo repositories.IPlanRepository,
	subRepo repositories.ISubscriptionRepository,
	paymentRepo repositories.IPaymentRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo, subRepo, paymentRepo)
}
