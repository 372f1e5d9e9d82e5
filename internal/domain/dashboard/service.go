package dashboard

import (
	"context"
	"sort"
	"time"

	"NestEgg/internal/domain/expense"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository     Repository
	ExpenseService *expense.Service
}

type Overview struct {
	Savings          *SavingsSummary        `json:"savings"`
	Goals            []*GoalProgress        `json:"goals"`
	MonthExpenses    float64                `json:"monthExpenses"`
	CategoryExpenses []*CategoryExpenseItem `json:"categoryExpenses"`
	MonthlyTrend     []*MonthlyTrendItem    `json:"monthlyTrend"`
}

type CategoryExpenseItem struct {
	Type   expense.ExpenseType `json:"type"`
	Amount float64             `json:"amount"`
}

type MonthlyTrendItem struct {
	Month    string  `json:"month"`
	Year     int     `json:"year"`
	Expenses float64 `json:"expenses"`
}

// GetOverview assembles the dashboard for one user: goal totals from the
// store, expense aggregates computed in memory for the requested month.
// Month and year default to the current calendar month.
func (s *Service) GetOverview(ctx context.Context, userID ulid.ULID, month, year int) (*Overview, error) {
	now := time.Now()
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year <= 0 {
		year = now.Year()
	}

	savings, err := s.Repository.GetSavingsSummary(ctx, userID)
	if err != nil {
		return nil, err
	}

	goals, err := s.Repository.GetGoalProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	all, err := s.ExpenseService.GetExpenses(ctx, userID, expense.Filter{})
	if err != nil {
		return nil, err
	}

	monthExpenses := expense.FilterExpenses(all, expense.Filter{Month: month, Year: year})

	categories := make([]*CategoryExpenseItem, 0)
	for typ, amount := range expense.AggregateByCategory(monthExpenses) {
		categories = append(categories, &CategoryExpenseItem{Type: typ, Amount: amount})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Amount > categories[j].Amount
	})

	return &Overview{
		Savings:          savings,
		Goals:            goals,
		MonthExpenses:    expense.Total(monthExpenses),
		CategoryExpenses: categories,
		MonthlyTrend:     monthlyTrend(all, time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), 6),
	}, nil
}

// monthlyTrend sums expenses for each of the trailing n calendar months,
// oldest first.
func monthlyTrend(all []*expense.Expense, end time.Time, months int) []*MonthlyTrendItem {
	items := make([]*MonthlyTrendItem, 0, months)
	for i := months - 1; i >= 0; i-- {
		target := end.AddDate(0, -i, 0)
		bucket := expense.FilterExpenses(all, expense.Filter{
			Month: int(target.Month()),
			Year:  target.Year(),
		})
		items = append(items, &MonthlyTrendItem{
			Month:    target.Month().String(),
			Year:     target.Year(),
			Expenses: expense.Total(bucket),
		})
	}
	return items
}
