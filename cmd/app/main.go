package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"comnet/cmd/fx/account_fx"
	"comnet/cmd/fx/billing_fx"
	"comnet/cmd/fx/controllers_fx"
	"comnet/cmd/fx/db_fx"
	"comnet/cmd/fx/mail_fx"
	"comnet/cmd/fx/memcache_fx"
	"comnet/cmd/fx/notification_fx"
	"comnet/cmd/fx/plan_fx"
	"comnet/cmd/fx/referral_fx"
	"comnet/cmd/fx/speedtest_fx"
	"comnet/cmd/fx/subscription_fx"
	"comnet/cmd/fx/ticket_fx"
	"comnet/internal/api/controllers"
	"comnet/internal/models/db_models"
	"comnet/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		plan_fx.Module,
		subscription_fx.Module,
		billing_fx.Module,
		referral_fx.Module,
		notification_fx.Module,
		ticket_fx.Module,
		speedtest_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountsController *controllers.AccountsController,
	plansController *controllers.PlansController,
	subscriptionsController *controllers.SubscriptionsController,
	billingController *controllers.BillingController,
	referralsController *controllers.ReferralsController,
	notificationsController *controllers.NotificationsController,
	ticketsController *controllers.TicketsController,
	speedTestsController *controllers.SpeedTestsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountsController,
		plansController,
		subscriptionsController,
		billingController,
		referralsController,
		notificationsController,
		ticketsController,
		speedTestsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountsController *controllers.AccountsController,
	plansController *controllers.PlansController,
	subscriptionsController *controllers.SubscriptionsController,
	billingController *controllers.BillingController,
	referralsController *controllers.ReferralsController,
	notificationsController *controllers.NotificationsController,
	ticketsController *controllers.TicketsController,
	speedTestsController *controllers.SpeedTestsController) {

	auth := middleware.JWTAuthMiddleware()
	adminOnly := middleware.RoleMiddleware(db_models.RoleAdmin)

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountsController.Register)
	accounts.POST("/login", accountsController.Login)
	accounts.POST("/forgot-password", accountsController.ForgotPassword)
	accounts.POST("/reset-password", accountsController.ResetPassword)
	accounts.GET("/profile", auth, accountsController.GetProfile)
	accounts.PUT("/profile", auth, accountsController.UpdateProfile)
	accounts.POST("/change-password", auth, accountsController.ChangePassword)
	accounts.POST("/archive", auth, accountsController.ArchiveAccount)

	plans := r.Group("/plans")
	plans.GET("", plansController.ListPlans)
	plans.GET("/:planId", plansController.GetPlanById)
	plans.POST("", auth, adminOnly, plansController.CreatePlan)
	plans.PUT("/:planId", auth, adminOnly, plansController.UpdatePlan)
	plans.POST("/:planId/archive", auth, adminOnly, plansController.ArchivePlan)
	plans.GET("/:planId/stats", auth, adminOnly, plansController.GetPlanStats)

	subscriptions := r.Group("/subscriptions", auth)
	subscriptions.POST("/subscribe", subscriptionsController.Subscribe)
	subscriptions.GET("/active", subscriptionsController.GetActiveSubscription)
	subscriptions.POST("/change-plan", subscriptionsController.ChangePlan)
	subscriptions.GET("/history", subscriptionsController.GetHistory)

	billing := r.Group("/billing", auth)
	billing.GET("/payments", billingController.ListPayments)
	billing.GET("/revenue", adminOnly, billingController.GetRevenueSummary)

	referrals := r.Group("/referrals", auth)
	referrals.POST("", referralsController.CreateReferral)
	referrals.GET("", referralsController.ListReferrals)

	notifications := r.Group("/notifications", auth)
	notifications.POST("/send", adminOnly, notificationsController.Send)
	notifications.GET("", notificationsController.ListNotifications)
	notifications.POST("/:notificationId/read", notificationsController.MarkRead)
	notifications.GET("/unread-count", notificationsController.UnreadCount)

	tickets := r.Group("/tickets", auth)
	tickets.POST("", ticketsController.SubmitTicket)
	tickets.GET("", ticketsController.ListMyTickets)
	tickets.GET("/all", adminOnly, ticketsController.ListAllTickets)
	tickets.POST("/:ticketId/status", adminOnly, ticketsController.UpdateTicketStatus)

	speedTests := r.Group("/speed-tests", auth)
	speedTests.POST("/run", speedTestsController.RunSpeedTest)
	speedTests.GET("", speedTestsController.ListRecentSpeedTests)
}
