package dashboard

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	GetSavingsSummary(ctx context.Context, userID ulid.ULID) (*SavingsSummary, error)
	GetGoalProgress(ctx context.Context, userID ulid.ULID) ([]*GoalProgress, error)
}

type SavingsSummary struct {
	TotalSaved  float64 `json:"totalSaved"`
	TotalTarget float64 `json:"totalTarget"`
	GoalCount   int64   `json:"goalCount"`
}

type GoalProgress struct {
	Id            ulid.ULID `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	Percentage    float64   `json:"percentage"`
}
