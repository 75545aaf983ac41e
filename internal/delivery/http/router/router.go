// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"destinos/internal/delivery/http/middleware"
	"destinos/internal/delivery/http/router/handler"
	"destinos/internal/domain/entity"
	"destinos/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler           *handler.UserHandler
	DestinationHandler    *handler.DestinationHandler
	RecommendationHandler *handler.RecommendationHandler
	AnalyticsHandler      *handler.AnalyticsHandler
	RewardHandler         *handler.RewardHandler
	AuthMiddleware        *middleware.AuthMiddleware
	Registry              metrics.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler           *handler.UserHandler
	destinationHandler    *handler.DestinationHandler
	recommendationHandler *handler.RecommendationHandler
	analyticsHandler      *handler.AnalyticsHandler
	rewardHandler         *handler.RewardHandler
	authMiddleware        *middleware.AuthMiddleware
	registry              metrics.Registry
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:           params.UserHandler,
		destinationHandler:    params.DestinationHandler,
		recommendationHandler: params.RecommendationHandler,
		analyticsHandler:      params.AnalyticsHandler,
		rewardHandler:         params.RewardHandler,
		authMiddleware:        params.AuthMiddleware,
		registry:              params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.registry.Registry != nil {
		e.GET("/metrics", echo.WrapHandler(r.registry.Handler()))
	}

	api := e.Group("/api")
	api.GET("/health", handler.HealthCheck)

	destinations := api.Group("/destinations")
	{
		destinations.GET("", r.destinationHandler.ListDestinations)
		destinations.POST("/submissions", r.destinationHandler.SubmitDestination)
	}

	users := api.Group("/users")
	{
		users.POST("/preferences", r.userHandler.SavePreferences)
		users.GET("/:userId/preferences", r.userHandler.GetPreferences)
		users.POST("/interactions", r.userHandler.TrackInteraction)
		users.GET("/:userId/points", r.userHandler.GetPoints)
		users.GET("/:userId/points/transactions", r.userHandler.GetTransactions)
		users.GET("/:userId/redemptions", r.userHandler.GetRedemptions)
	}

	api.GET("/recommendations/:userId", r.recommendationHandler.GetRecommendations)

	analytics := api.Group("/analytics")
	{
		analytics.GET("/popular-destinations", r.analyticsHandler.PopularDestinations)
		analytics.GET("/trends", r.analyticsHandler.Trends)
	}

	rewards := api.Group("/rewards")
	{
		rewards.GET("", r.rewardHandler.ListRewards)
		rewards.POST("/:rewardId/redeem", r.rewardHandler.Redeem)
	}

	redemptions := api.Group("/redemptions")
	{
		redemptions.GET("/:id", r.rewardHandler.GetRedemption)
		redemptions.GET("/:id/voucher", r.rewardHandler.GetVoucher)
	}

	admin := api.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.POST("/rewards", r.rewardHandler.CreateReward)
		admin.GET("/submissions", r.destinationHandler.ListSubmissions)
		admin.POST("/submissions/:id/approve", r.destinationHandler.ApproveSubmission)
		admin.POST("/submissions/:id/reject", r.destinationHandler.RejectSubmission)
	}
}
