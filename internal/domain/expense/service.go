package expense

import (
	"context"
	"strings"
	"time"

	domaincontracts "NestEgg/internal/domain/contracts"
	appErrors "NestEgg/internal/errors"
	"NestEgg/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) CreateExpense(ctx context.Context, request *domaincontracts.ExpenseCreateRequest) (*Expense, error) {
	if err := validateCreate(request); err != nil {
		return nil, err
	}

	date := request.Date
	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now()
	entity := &Expense{
		Id:        pkg.GenerateULID(),
		UserId:    request.UserId,
		Name:      strings.TrimSpace(request.Name),
		Amount:    request.Amount,
		Type:      ExpenseType(request.Type),
		Frequency: Frequency(request.Frequency),
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) UpdateExpense(ctx context.Context, request *domaincontracts.ExpenseUpdateRequest) (*Expense, error) {
	current, err := s.Repository.GetByIdAndUser(ctx, request.Id, request.UserId)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "is required")
		}
		current.Name = name
	}
	if request.Amount != nil {
		if *request.Amount <= 0 {
			return nil, appErrors.NewValidationError("amount", "must be greater than zero")
		}
		current.Amount = *request.Amount
	}
	if request.Type != nil {
		if !ValidExpenseType(ExpenseType(*request.Type)) {
			return nil, appErrors.NewValidationError("type", "is not a valid expense type")
		}
		current.Type = ExpenseType(*request.Type)
	}
	if request.Frequency != nil {
		if !ValidFrequency(Frequency(*request.Frequency)) {
			return nil, appErrors.NewValidationError("frequency", "is not a valid frequency")
		}
		current.Frequency = Frequency(*request.Frequency)
	}
	if request.Date != nil {
		current.Date = *request.Date
	}

	current.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) DeleteExpense(ctx context.Context, expenseID, userID ulid.ULID) error {
	return s.Repository.Delete(ctx, expenseID, userID)
}

func (s *Service) GetExpenseByID(ctx context.Context, expenseID, userID ulid.ULID) (*Expense, error) {
	return s.Repository.GetByIdAndUser(ctx, expenseID, userID)
}

// GetExpenses returns the user's expenses, newest first, narrowed by the
// given filter.
func (s *Service) GetExpenses(ctx context.Context, userID ulid.ULID, filter Filter) ([]*Expense, error) {
	all, err := s.Repository.GetByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	return FilterExpenses(all, filter), nil
}

// GetSummary returns per-category totals sorted by descending total.
func (s *Service) GetSummary(ctx context.Context, userID ulid.ULID) ([]*CategoryTotal, error) {
	return s.Repository.SumByCategory(ctx, userID)
}

type Stats struct {
	Total          float64     `json:"total"`
	Count          int         `json:"count"`
	MonthlyAverage float64     `json:"monthlyAverage"`
	MonthlyTotals  [12]float64 `json:"monthlyTotals"`
}

// GetStats computes the totals the expense overview shows: filtered total,
// count, monthly average, and per-month buckets for charting.
func (s *Service) GetStats(ctx context.Context, userID ulid.ULID, filter Filter) (*Stats, error) {
	filtered, err := s.GetExpenses(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Total:          Total(filtered),
		Count:          len(filtered),
		MonthlyAverage: MonthlyAverage(filtered, filter.MonthFilterActive()),
		MonthlyTotals:  MonthlyTotals(filtered),
	}, nil
}

func validateCreate(request *domaincontracts.ExpenseCreateRequest) error {
	if strings.TrimSpace(request.Name) == "" {
		return appErrors.NewValidationError("name", "is required")
	}
	if request.Amount <= 0 {
		return appErrors.NewValidationError("amount", "must be greater than zero")
	}
	if !ValidExpenseType(ExpenseType(request.Type)) {
		return appErrors.NewValidationError("type", "is not a valid expense type")
	}
	if !ValidFrequency(Frequency(request.Frequency)) {
		return appErrors.NewValidationError("frequency", "is not a valid frequency")
	}
	return nil
}
