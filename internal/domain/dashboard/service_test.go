package dashboard_test

import (
	"context"
	"testing"
	"time"

	"NestEgg/internal/domain/dashboard"
	"NestEgg/internal/domain/expense"

	"github.com/oklog/ulid/v2"
)

type fakeDashboardRepository struct {
	savings *dashboard.SavingsSummary
	goals   []*dashboard.GoalProgress
}

func (f *fakeDashboardRepository) GetSavingsSummary(ctx context.Context, userID ulid.ULID) (*dashboard.SavingsSummary, error) {
	if f.savings != nil {
		return f.savings, nil
	}
	return &dashboard.SavingsSummary{}, nil
}

func (f *fakeDashboardRepository) GetGoalProgress(ctx context.Context, userID ulid.ULID) ([]*dashboard.GoalProgress, error) {
	return f.goals, nil
}

type fakeExpenseRepository struct {
	expenses []*expense.Expense
}

func (f *fakeExpenseRepository) Create(ctx context.Context, e *expense.Expense) error { return nil }
func (f *fakeExpenseRepository) Update(ctx context.Context, e *expense.Expense) error { return nil }
func (f *fakeExpenseRepository) Delete(ctx context.Context, id, userID ulid.ULID) error {
	return nil
}
func (f *fakeExpenseRepository) GetByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*expense.Expense, error) {
	return nil, nil
}
func (f *fakeExpenseRepository) GetByUserId(ctx context.Context, userID ulid.ULID) ([]*expense.Expense, error) {
	return f.expenses, nil
}
func (f *fakeExpenseRepository) SumByCategory(ctx context.Context, userID ulid.ULID) ([]*expense.CategoryTotal, error) {
	return nil, nil
}

func newExpense(typ expense.ExpenseType, amount float64, date time.Time) *expense.Expense {
	return &expense.Expense{
		Id:        ulid.Make(),
		Name:      "test",
		Amount:    amount,
		Type:      typ,
		Frequency: expense.FrequencyMonthly,
		Date:      date,
	}
}

func TestServiceGetOverview(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	ctx := context.Background()

	goalID := ulid.Make()
	repo := &fakeDashboardRepository{
		savings: &dashboard.SavingsSummary{TotalSaved: 2500, TotalTarget: 10000, GoalCount: 2},
		goals: []*dashboard.GoalProgress{
			{Id: goalID, Name: "Emergency fund", Type: "emergency", TargetAmount: 10000, CurrentAmount: 2500, Percentage: 25},
		},
	}
	expenseRepo := &fakeExpenseRepository{
		expenses: []*expense.Expense{
			newExpense(expense.TypeHousing, 1500, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)),
			newExpense(expense.TypeFood, 400, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)),
			newExpense(expense.TypeFood, 350, time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)),
			newExpense(expense.TypeFood, 300, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)),
		},
	}

	svc := &dashboard.Service{
		Repository:     repo,
		ExpenseService: expense.NewService(expenseRepo),
	}

	overview, err := svc.GetOverview(ctx, userID, 6, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if overview.Savings.TotalSaved != 2500 || overview.Savings.GoalCount != 2 {
		t.Fatalf("unexpected savings summary: %+v", overview.Savings)
	}
	if len(overview.Goals) != 1 || overview.Goals[0].Id != goalID {
		t.Fatalf("unexpected goal progress: %+v", overview.Goals)
	}

	// Only June 2025 counts toward the month figures.
	if overview.MonthExpenses != 1900 {
		t.Fatalf("expected month expenses 1900, got %v", overview.MonthExpenses)
	}

	if len(overview.CategoryExpenses) != 2 {
		t.Fatalf("expected 2 categories, got %+v", overview.CategoryExpenses)
	}
	if overview.CategoryExpenses[0].Type != expense.TypeHousing || overview.CategoryExpenses[0].Amount != 1500 {
		t.Fatalf("expected housing first with 1500, got %+v", overview.CategoryExpenses[0])
	}
	if overview.CategoryExpenses[1].Type != expense.TypeFood || overview.CategoryExpenses[1].Amount != 400 {
		t.Fatalf("expected food second with 400, got %+v", overview.CategoryExpenses[1])
	}

	if len(overview.MonthlyTrend) != 6 {
		t.Fatalf("expected a six month trend, got %d", len(overview.MonthlyTrend))
	}
	last := overview.MonthlyTrend[5]
	if last.Month != "June" || last.Year != 2025 || last.Expenses != 1900 {
		t.Fatalf("expected the trend to end on June 2025 with 1900, got %+v", last)
	}
	previous := overview.MonthlyTrend[4]
	if previous.Month != "May" || previous.Expenses != 350 {
		t.Fatalf("expected May 2025 with 350 before it, got %+v", previous)
	}
}

func TestServiceGetOverviewDefaultsToCurrentMonth(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := &dashboard.Service{
		Repository: &fakeDashboardRepository{},
		ExpenseService: expense.NewService(&fakeExpenseRepository{
			expenses: []*expense.Expense{
				newExpense(expense.TypeFood, 75, now),
			},
		}),
	}

	overview, err := svc.GetOverview(context.Background(), ulid.Make(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.MonthExpenses != 75 {
		t.Fatalf("expected the current month to be used, got %+v", overview)
	}
}
