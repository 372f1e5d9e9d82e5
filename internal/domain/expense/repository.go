package expense

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type CategoryTotal struct {
	Type  ExpenseType `json:"type"`
	Total float64     `json:"total"`
}

type Repository interface {
	Create(ctx context.Context, expense *Expense) error
	Update(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id, userID ulid.ULID) error
	GetByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*Expense, error)
	GetByUserId(ctx context.Context, userID ulid.ULID) ([]*Expense, error)
	SumByCategory(ctx context.Context, userID ulid.ULID) ([]*CategoryTotal, error)
}
