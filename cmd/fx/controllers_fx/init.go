package controllers_fx

import (
	"go.uber.org/fx"

	"comnet/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountsController),
	fx.Provide(controllers.NewPlansController),
	fx.Provide(controllers.NewSubscriptionsController),
	fx.Provide(controllers.NewBillingController),
	fx.Provide(controllers.NewReferralsController),
	fx.Provide(controllers.NewNotificationsController),
	fx.Provide(controllers.NewTicketsController),
	fx.Provide(controllers.NewSpeedTestsController))
