package goal

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, goal *Goal) error
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id, userID ulid.ULID) error
	GetByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*Goal, error)
	GetByUserId(ctx context.Context, userID ulid.ULID) ([]*Goal, error)
	CreateContribution(ctx context.Context, contribution *Contribution) error
	DeleteContribution(ctx context.Context, contributionID ulid.ULID) error
	GetContributionsByGoalId(ctx context.Context, goalID, userID ulid.ULID) ([]*Contribution, error)
	UpdateCurrentAmountAtomic(ctx context.Context, goalID ulid.ULID, delta float64) error
}
