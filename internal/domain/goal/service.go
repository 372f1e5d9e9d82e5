package goal

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

func (s *Service) CreateGoal(ctx context.Context, request *domaincontracts.GoalCreateRequest) (*Goal, error) {
	if err := validateCreate(request); err != nil {
		return nil, err
	}

	now := time.Now()
	entity := &Goal{
		Id:                  pkg.GenerateULID(),
		UserId:              request.UserId,
		Name:                strings.TrimSpace(request.Name),
		Type:                GoalType(request.Type),
		TargetAmount:        request.TargetAmount,
		CurrentAmount:       0,
		TargetDate:          request.TargetDate,
		AnnualContribution:  request.AnnualContribution,
		MonthlyContribution: request.MonthlyContribution,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// UpdateGoal applies a partial patch. A CurrentAmount in the patch is an
// absolute value, distinct from the delta path in AddContribution. Concurrent
// edits are not coordinated; last write wins.
func (s *Service) UpdateGoal(ctx context.Context, request *domaincontracts.GoalUpdateRequest) (*Goal, error) {
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
	if request.Type != nil {
		if !ValidGoalType(GoalType(*request.Type)) {
			return nil, appErrors.NewValidationError("type", "is not a valid goal type")
		}
		current.Type = GoalType(*request.Type)
	}
	if request.TargetAmount != nil {
		if *request.TargetAmount <= 0 {
			return nil, appErrors.NewValidationError("targetAmount", "must be greater than zero")
		}
		current.TargetAmount = *request.TargetAmount
	}
	if request.CurrentAmount != nil {
		if *request.CurrentAmount < 0 {
			return nil, appErrors.NewValidationError("currentAmount", "must not be negative")
		}
		current.CurrentAmount = *request.CurrentAmount
	}
	if request.AnnualContribution != nil {
		if *request.AnnualContribution < 0 {
			return nil, appErrors.NewValidationError("annualContribution", "must not be negative")
		}
		current.AnnualContribution = *request.AnnualContribution
	}
	if request.MonthlyContribution != nil {
		if *request.MonthlyContribution < 0 {
			return nil, appErrors.NewValidationError("monthlyContribution", "must not be negative")
		}
		current.MonthlyContribution = *request.MonthlyContribution
	}
	if request.TargetDate != nil {
		current.TargetDate = request.TargetDate
	}

	current.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// AddContribution increments the goal balance by a positive delta and records
// a contribution row. The increment runs as a single SQL update so concurrent
// contributions never lose increments.
func (s *Service) AddContribution(ctx context.Context, goalID, userID ulid.ULID, amount float64, note string) (*Goal, error) {
	if amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "must be greater than zero")
	}

	if _, err := s.Repository.GetByIdAndUser(ctx, goalID, userID); err != nil {
		return nil, err
	}

	contribution := &Contribution{
		Id:        pkg.GenerateULID(),
		GoalId:    goalID,
		UserId:    userID,
		Amount:    amount,
		Note:      strings.TrimSpace(note),
		CreatedAt: time.Now(),
	}

	if err := s.Repository.CreateContribution(ctx, contribution); err != nil {
		return nil, err
	}

	if err := s.Repository.UpdateCurrentAmountAtomic(ctx, goalID, amount); err != nil {
		_ = s.Repository.DeleteContribution(ctx, contribution.Id)
		return nil, err
	}

	return s.Repository.GetByIdAndUser(ctx, goalID, userID)
}

func (s *Service) GetContributions(ctx context.Context, goalID, userID ulid.ULID) ([]*Contribution, error) {
	if _, err := s.Repository.GetByIdAndUser(ctx, goalID, userID); err != nil {
		return nil, err
	}
	return s.Repository.GetContributionsByGoalId(ctx, goalID, userID)
}

// ProjectBalance runs the projection for a stored goal. Horizon and rate are
// clamped here so Project itself stays a pure total function over its domain.
func (s *Service) ProjectBalance(ctx context.Context, goalID, userID ulid.ULID, years int, annualRatePercent float64) (*Projection, error) {
	entity, err := s.Repository.GetByIdAndUser(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	years = ClampProjectionYears(years)
	annualRatePercent = ClampAnnualRate(annualRatePercent)

	projected := Project(
		entity.CurrentAmount,
		entity.MonthlyContribution,
		entity.AnnualContribution,
		years,
		annualRatePercent,
	)

	return &Projection{
		GoalId:          goalID,
		Years:           years,
		AnnualRate:      annualRatePercent,
		ProjectedAmount: projected,
	}, nil
}

type Projection struct {
	GoalId          ulid.ULID `json:"goalId"`
	Years           int       `json:"years"`
	AnnualRate      float64   `json:"annualRate"`
	ProjectedAmount float64   `json:"projectedAmount"`
}

func (s *Service) DeleteGoal(ctx context.Context, goalID, userID ulid.ULID) error {
	return s.Repository.Delete(ctx, goalID, userID)
}

func (s *Service) GetGoalByID(ctx context.Context, goalID, userID ulid.ULID) (*Goal, error) {
	return s.Repository.GetByIdAndUser(ctx, goalID, userID)
}

func (s *Service) GetGoalsByUserID(ctx context.Context, userID ulid.ULID) ([]*Goal, error) {
	return s.Repository.GetByUserId(ctx, userID)
}

func validateCreate(request *domaincontracts.GoalCreateRequest) error {
	if strings.TrimSpace(request.Name) == "" {
		return appErrors.NewValidationError("name", "is required")
	}
	if !ValidGoalType(GoalType(request.Type)) {
		return appErrors.NewValidationError("type", "is not a valid goal type")
	}
	if request.TargetAmount <= 0 {
		return appErrors.NewValidationError("targetAmount", "must be greater than zero")
	}
	if request.AnnualContribution < 0 {
		return appErrors.NewValidationError("annualContribution", "must not be negative")
	}
	if request.MonthlyContribution < 0 {
		return appErrors.NewValidationError("monthlyContribution", "must not be negative")
	}
	return nil
}
