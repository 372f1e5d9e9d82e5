package fx

import (
	"NestEgg/config"
	"NestEgg/internal/domain/auth"
	"NestEgg/internal/domain/dashboard"
	"NestEgg/internal/domain/expense"
	"NestEgg/internal/domain/goal"
	"NestEgg/internal/domain/user"
	"NestEgg/internal/middleware"
	"NestEgg/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule provides the handler and rate limiters.
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	authSvc *auth.Service,
	jwtSvc *middleware.JwtService,
	goalSvc *goal.Service,
	expenseSvc *expense.Service,
	dashboardSvc *dashboard.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:      userSvc,
		AuthService:      authSvc,
		JwtService:       jwtSvc,
		GoalService:      goalSvc,
		ExpenseService:   expenseSvc,
		DashboardService: dashboardSvc,
	}
}

func newAuthRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit.AuthLimit, cfg.RateLimit.AuthWindow)
}
