package infrastructure

import (
	"context"
	"errors"
	"time"

	"NestEgg/internal/domain/expense"
	appErrors "NestEgg/internal/errors"
	"NestEgg/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	DB *gorm.DB
}

var _ expense.Repository = (*ExpenseRepository)(nil)

type expenseDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	UserId    string    `gorm:"type:varchar(26);index:idx_expenses_user_id;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Amount    float64   `gorm:"type:decimal(15,2);not null"`
	Type      string    `gorm:"type:varchar(20);not null;index:idx_expenses_type"`
	Frequency string    `gorm:"type:varchar(10);not null"`
	Date      time.Time `gorm:"type:timestamp;not null;index:idx_expenses_date"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null"`
}

func (expenseDB) TableName() string {
	return "expenses"
}

func toDomainExpense(edb *expenseDB) (*expense.Expense, error) {
	id, err := pkg.ParseULID(edb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(edb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &expense.Expense{
		Id:        id,
		UserId:    uid,
		Name:      edb.Name,
		Amount:    edb.Amount,
		Type:      expense.ExpenseType(edb.Type),
		Frequency: expense.Frequency(edb.Frequency),
		Date:      edb.Date,
		CreatedAt: edb.CreatedAt,
		UpdatedAt: edb.UpdatedAt,
	}, nil
}

func toDBExpense(e *expense.Expense) *expenseDB {
	return &expenseDB{
		Id:        e.Id.String(),
		UserId:    e.UserId.String(),
		Name:      e.Name,
		Amount:    e.Amount,
		Type:      string(e.Type),
		Frequency: string(e.Frequency),
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	edb := toDBExpense(e)
	if err := r.DB.WithContext(ctx).Table("expenses").Create(edb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	edb := toDBExpense(e)
	if err := r.DB.WithContext(ctx).Table("expenses").
		Where("id = ? AND user_id = ?", edb.Id, edb.UserId).
		Select("name", "amount", "type", "frequency", "date", "updated_at").
		Updates(edb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id, userID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("expenses").
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		Delete(&expenseDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) GetByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*expense.Expense, error) {
	var edb expenseDB
	if err := r.DB.WithContext(ctx).Table("expenses").
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		First(&edb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrExpenseNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainExpense(&edb)
}

func (r *ExpenseRepository) GetByUserId(ctx context.Context, userID ulid.ULID) ([]*expense.Expense, error) {
	var rows []expenseDB
	if err := r.DB.WithContext(ctx).Table("expenses").
		Where("user_id = ?", userID.String()).
		Order("date DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*expense.Expense, 0, len(rows))
	for i := range rows {
		e, err := toDomainExpense(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *ExpenseRepository) SumByCategory(ctx context.Context, userID ulid.ULID) ([]*expense.CategoryTotal, error) {
	var rows []struct {
		Type  string
		Total float64
	}
	if err := r.DB.WithContext(ctx).Table("expenses").
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID.String()).
		Group("type").
		Order("total DESC").
		Scan(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*expense.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, &expense.CategoryTotal{
			Type:  expense.ExpenseType(row.Type),
			Total: row.Total,
		})
	}
	return out, nil
}
