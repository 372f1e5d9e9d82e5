package expense_test

import (
	"testing"
	"time"

	"NestEgg/internal/domain/expense"

	"github.com/oklog/ulid/v2"
)

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

func TestAggregateByCategory(t *testing.T) {
	t.Parallel()

	jan := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	t.Run("empty input yields empty map", func(t *testing.T) {
		totals := expense.AggregateByCategory(nil)
		if len(totals) != 0 {
			t.Fatalf("expected empty map, got %v", totals)
		}
	})

	t.Run("sums per category without zero-filling", func(t *testing.T) {
		totals := expense.AggregateByCategory([]*expense.Expense{
			newExpense(expense.TypeFood, 10, jan),
			newExpense(expense.TypeFood, 5, jan),
			newExpense(expense.TypeHousing, 20, jan),
		})

		if len(totals) != 2 {
			t.Fatalf("expected 2 categories, got %v", totals)
		}
		if totals[expense.TypeFood] != 15 {
			t.Fatalf("expected food 15, got %v", totals[expense.TypeFood])
		}
		if totals[expense.TypeHousing] != 20 {
			t.Fatalf("expected housing 20, got %v", totals[expense.TypeHousing])
		}
		if _, present := totals[expense.TypeHealth]; present {
			t.Fatalf("absent categories must not appear")
		}
	})
}

func TestFilterExpenses(t *testing.T) {
	t.Parallel()

	expenses := []*expense.Expense{
		newExpense(expense.TypeFood, 10, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)),
		newExpense(expense.TypeFood, 20, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
		newExpense(expense.TypeHousing, 30, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)),
		newExpense(expense.TypeHealth, 40, time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)),
	}

	tests := []struct {
		name       string
		filter     expense.Filter
		wantAmount float64
		wantCount  int
	}{
		{
			name:       "empty filter keeps everything",
			filter:     expense.Filter{},
			wantAmount: 100,
			wantCount:  4,
		},
		{
			name:       "type only",
			filter:     expense.Filter{Type: expense.TypeFood},
			wantAmount: 30,
			wantCount:  2,
		},
		{
			name:       "month matches any year",
			filter:     expense.Filter{Month: 1},
			wantAmount: 70,
			wantCount:  3,
		},
		{
			name:       "month and year",
			filter:     expense.Filter{Month: 1, Year: 2025},
			wantAmount: 50,
			wantCount:  2,
		},
		{
			name:       "conjunction of all constraints",
			filter:     expense.Filter{Type: expense.TypeFood, Month: 1, Year: 2025},
			wantAmount: 10,
			wantCount:  1,
		},
		{
			name:      "no matches",
			filter:    expense.Filter{Type: expense.TypeEntertainment},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := expense.FilterExpenses(expenses, tt.filter)
			if len(got) != tt.wantCount {
				t.Fatalf("expected %d expenses, got %d", tt.wantCount, len(got))
			}
			if total := expense.Total(got); total != tt.wantAmount {
				t.Fatalf("expected total %v, got %v", tt.wantAmount, total)
			}

			// Filtering is idempotent.
			again := expense.FilterExpenses(got, tt.filter)
			if len(again) != len(got) {
				t.Fatalf("filter not idempotent: %d then %d", len(got), len(again))
			}
		})
	}
}

func TestMonthlyAverage(t *testing.T) {
	t.Parallel()

	expenses := []*expense.Expense{
		newExpense(expense.TypeFood, 60, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)),
		newExpense(expense.TypeFood, 60, time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC)),
	}

	if got := expense.MonthlyAverage(expenses, false); got != 10 {
		t.Fatalf("expected 120/12 = 10, got %v", got)
	}
	if got := expense.MonthlyAverage(expenses, true); got != 120 {
		t.Fatalf("expected 120/1 = 120, got %v", got)
	}
	if got := expense.MonthlyAverage(nil, false); got != 0 {
		t.Fatalf("expected 0 for no expenses, got %v", got)
	}
}

func TestMonthlyTotals(t *testing.T) {
	t.Parallel()

	totals := expense.MonthlyTotals([]*expense.Expense{
		newExpense(expense.TypeFood, 10, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)),
		newExpense(expense.TypeFood, 15, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
		newExpense(expense.TypeHousing, 30, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)),
	})

	if totals[0] != 25 {
		t.Fatalf("expected January bucket 25 across years, got %v", totals[0])
	}
	if totals[11] != 30 {
		t.Fatalf("expected December bucket 30, got %v", totals[11])
	}
	for i := 1; i < 11; i++ {
		if totals[i] != 0 {
			t.Fatalf("expected empty bucket %d, got %v", i, totals[i])
		}
	}
}
