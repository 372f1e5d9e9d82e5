package fx

import (
	"context"

	"NestEgg/config"
	"NestEgg/internal/domain/user"
	"NestEgg/internal/logger"
	"NestEgg/internal/middleware"
	"NestEgg/internal/routes"

	docs "NestEgg/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule provides the HTTP server setup.
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
	userSvc *user.Service,
) {
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.GET("/health", handler.HealthCheck)
		public.POST("/users/register", handler.Registration)
		public.POST("/users/login", handler.Authenticate)
	}

	userRateLimiter := middleware.NewRateLimiter(cfg.RateLimit.UserLimit, cfg.RateLimit.UserWindow)

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc, userSvc))
	private.Use(middleware.RateLimitByUser(userRateLimiter))
	{
		private.GET("/dashboard", handler.GetDashboard)

		users := private.Group("/users")
		{
			users.GET("/me", handler.GetCurrentUser)
			users.PUT("/me", handler.UpdateCurrentUser)
			users.DELETE("/me", handler.DeleteCurrentUser)
		}

		goals := private.Group("/goals")
		{
			goals.POST("", handler.CreateGoal)
			goals.GET("", handler.ListGoals)
			goals.GET("/:id", handler.GetGoal)
			goals.PUT("/:id", handler.UpdateGoal)
			goals.DELETE("/:id", handler.DeleteGoal)
			goals.POST("/:id/contributions", handler.ContributeToGoal)
			goals.GET("/:id/contributions", handler.GetGoalContributions)
			goals.GET("/:id/projection", handler.GetGoalProjection)
		}

		expenses := private.Group("/expenses")
		{
			expenses.POST("", handler.CreateExpense)
			expenses.GET("", handler.ListExpenses)
			expenses.GET("/summary", handler.GetExpenseSummary)
			expenses.GET("/stats", handler.GetExpenseStats)
			expenses.GET("/:id", handler.GetExpense)
			expenses.PUT("/:id", handler.UpdateExpense)
			expenses.DELETE("/:id", handler.DeleteExpense)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Server failed to start")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Server stopping...")
			return nil
		},
	})
}
