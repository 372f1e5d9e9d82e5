package expense_test

import (
	"context"
	"testing"
	"time"

	domaincontracts "NestEgg/internal/domain/contracts"
	"NestEgg/internal/domain/expense"
	appErrors "NestEgg/internal/errors"

	"github.com/oklog/ulid/v2"
)

type fakeExpenseRepository struct {
	createFn        func(ctx context.Context, e *expense.Expense) error
	updateFn        func(ctx context.Context, e *expense.Expense) error
	deleteFn        func(ctx context.Context, id, userID ulid.ULID) error
	getByIDFn       func(ctx context.Context, id, userID ulid.ULID) (*expense.Expense, error)
	getByUserFn     func(ctx context.Context, userID ulid.ULID) ([]*expense.Expense, error)
	sumByCategoryFn func(ctx context.Context, userID ulid.ULID) ([]*expense.CategoryTotal, error)
}

func (f *fakeExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeExpenseRepository) Delete(ctx context.Context, id, userID ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, userID)
	}
	return nil
}

func (f *fakeExpenseRepository) GetByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*expense.Expense, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id, userID)
	}
	return nil, appErrors.ErrExpenseNotFound
}

func (f *fakeExpenseRepository) GetByUserId(ctx context.Context, userID ulid.ULID) ([]*expense.Expense, error) {
	if f.getByUserFn != nil {
		return f.getByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeExpenseRepository) SumByCategory(ctx context.Context, userID ulid.ULID) ([]*expense.CategoryTotal, error) {
	if f.sumByCategoryFn != nil {
		return f.sumByCategoryFn(ctx, userID)
	}
	return nil, nil
}

func TestServiceCreateExpense(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	ctx := context.Background()

	t.Run("valid request persists with defaults", func(t *testing.T) {
		var created *expense.Expense
		repo := &fakeExpenseRepository{
			createFn: func(ctx context.Context, e *expense.Expense) error {
				created = e
				return nil
			},
		}

		svc := expense.NewService(repo)
		entity, err := svc.CreateExpense(ctx, &domaincontracts.ExpenseCreateRequest{
			UserId:    userID,
			Name:      "  Groceries  ",
			Amount:    82.50,
			Type:      "food",
			Frequency: "weekly",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatalf("expected a persisted row")
		}
		if entity.Name != "Groceries" {
			t.Fatalf("expected trimmed name, got %q", entity.Name)
		}
		if entity.Date.IsZero() {
			t.Fatalf("expected the date to default to now")
		}
	})

	tests := []struct {
		name    string
		request domaincontracts.ExpenseCreateRequest
	}{
		{
			name: "blank name",
			request: domaincontracts.ExpenseCreateRequest{
				UserId: userID, Name: " ", Amount: 10, Type: "food", Frequency: "monthly",
			},
		},
		{
			name: "non-positive amount",
			request: domaincontracts.ExpenseCreateRequest{
				UserId: userID, Name: "Rent", Amount: 0, Type: "housing", Frequency: "monthly",
			},
		},
		{
			name: "unknown type",
			request: domaincontracts.ExpenseCreateRequest{
				UserId: userID, Name: "Rent", Amount: 10, Type: "luxury", Frequency: "monthly",
			},
		},
		{
			name: "unknown frequency",
			request: domaincontracts.ExpenseCreateRequest{
				UserId: userID, Name: "Rent", Amount: 10, Type: "housing", Frequency: "hourly",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := expense.NewService(&fakeExpenseRepository{})

			_, err := svc.CreateExpense(ctx, &tt.request)
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
		})
	}
}

func TestServiceUpdateExpense(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	expenseID := ulid.Make()
	ctx := context.Background()

	repo := &fakeExpenseRepository{
		getByIDFn: func(ctx context.Context, id, uid ulid.ULID) (*expense.Expense, error) {
			return &expense.Expense{
				Id:        id,
				UserId:    uid,
				Name:      "Rent",
				Amount:    1500,
				Type:      expense.TypeHousing,
				Frequency: expense.FrequencyMonthly,
				Date:      time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	svc := expense.NewService(repo)

	t.Run("patches only supplied fields", func(t *testing.T) {
		amount := 1600.0
		updated, err := svc.UpdateExpense(ctx, &domaincontracts.ExpenseUpdateRequest{
			Id:     expenseID,
			UserId: userID,
			Amount: &amount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Amount != 1600 {
			t.Fatalf("expected amount 1600, got %v", updated.Amount)
		}
		if updated.Name != "Rent" || updated.Type != expense.TypeHousing {
			t.Fatalf("untouched fields changed: %+v", updated)
		}
	})

	t.Run("rejects invalid patch values", func(t *testing.T) {
		bad := -5.0
		_, err := svc.UpdateExpense(ctx, &domaincontracts.ExpenseUpdateRequest{
			Id:     expenseID,
			UserId: userID,
			Amount: &bad,
		})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %v", err)
		}
	})

	t.Run("unknown expense", func(t *testing.T) {
		svc := expense.NewService(&fakeExpenseRepository{})

		name := "Rent"
		_, err := svc.UpdateExpense(ctx, &domaincontracts.ExpenseUpdateRequest{
			Id:     expenseID,
			UserId: userID,
			Name:   &name,
		})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrExpenseNotFound.Code {
			t.Fatalf("expected EXPENSE_NOT_FOUND, got %v", err)
		}
	})
}

func TestServiceGetStats(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	ctx := context.Background()

	repo := &fakeExpenseRepository{
		getByUserFn: func(ctx context.Context, uid ulid.ULID) ([]*expense.Expense, error) {
			return []*expense.Expense{
				newExpense(expense.TypeFood, 120, time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC)),
				newExpense(expense.TypeFood, 120, time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC)),
				newExpense(expense.TypeHousing, 1500, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)),
			}, nil
		},
	}
	svc := expense.NewService(repo)

	t.Run("unfiltered divides by twelve", func(t *testing.T) {
		stats, err := svc.GetStats(ctx, userID, expense.Filter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.Total != 1740 || stats.Count != 3 {
			t.Fatalf("unexpected totals: %+v", stats)
		}
		if stats.MonthlyAverage != 145 {
			t.Fatalf("expected 1740/12 = 145, got %v", stats.MonthlyAverage)
		}
		if stats.MonthlyTotals[4] != 1620 {
			t.Fatalf("expected May bucket 1620, got %v", stats.MonthlyTotals[4])
		}
	})

	t.Run("month filter divides by one", func(t *testing.T) {
		stats, err := svc.GetStats(ctx, userID, expense.Filter{Month: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.Total != 1620 || stats.Count != 2 {
			t.Fatalf("unexpected totals: %+v", stats)
		}
		if stats.MonthlyAverage != 1620 {
			t.Fatalf("expected 1620/1, got %v", stats.MonthlyAverage)
		}
	})
}
