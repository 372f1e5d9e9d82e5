package fx

import (
	"NestEgg/internal/domain/auth"
	"NestEgg/internal/domain/dashboard"
	"NestEgg/internal/domain/expense"
	"NestEgg/internal/domain/goal"
	"NestEgg/internal/domain/user"
	"NestEgg/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule provides every domain service.
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newAuthService,
		newGoalService,
		newExpenseService,
		newDashboardService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newAuthService(repo *infrastructure.UserRepository, userSvc *user.Service) *auth.Service {
	return auth.NewService(repo, userSvc)
}

func newGoalService(repo *infrastructure.GoalRepository) *goal.Service {
	return goal.NewService(repo)
}

func newExpenseService(repo *infrastructure.ExpenseRepository) *expense.Service {
	return expense.NewService(repo)
}

func newDashboardService(
	repo *infrastructure.DashboardRepository,
	expenseSvc *expense.Service,
) *dashboard.Service {
	return &dashboard.Service{
		Repository:     repo,
		ExpenseService: expenseSvc,
	}
}
