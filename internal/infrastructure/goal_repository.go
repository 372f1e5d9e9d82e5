package infrastructure

import (
	"context"
	"errors"
	"time"

	"NestEgg/internal/domain/goal"
	appErrors "NestEgg/internal/errors"
	"NestEgg/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

var _ goal.Repository = (*GoalRepository)(nil)

type goalDB struct {
	Id                  string  `gorm:"type:varchar(26);primaryKey"`
	UserId              string  `gorm:"type:varchar(26);index:idx_goals_user_id;not null"`
	Name                string  `gorm:"type:varchar(100);not null"`
	Type                string  `gorm:"type:varchar(20);not null"`
	TargetAmount        float64 `gorm:"type:decimal(15,2);not null"`
	CurrentAmount       float64 `gorm:"type:decimal(15,2);not null;default:0"`
	TargetDate          *time.Time
	AnnualContribution  float64 `gorm:"type:decimal(15,2);not null;default:0"`
	MonthlyContribution float64 `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (goalDB) TableName() string {
	return "goals"
}

func toDomainGoal(gdb *goalDB) (*goal.Goal, error) {
	id, err := pkg.ParseULID(gdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(gdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &goal.Goal{
		Id:                  id,
		UserId:              uid,
		Name:                gdb.Name,
		Type:                goal.GoalType(gdb.Type),
		TargetAmount:        gdb.TargetAmount,
		CurrentAmount:       gdb.CurrentAmount,
		TargetDate:          gdb.TargetDate,
		AnnualContribution:  gdb.AnnualContribution,
		MonthlyContribution: gdb.MonthlyContribution,
		CreatedAt:           gdb.CreatedAt,
		UpdatedAt:           gdb.UpdatedAt,
	}, nil
}

func toDBGoal(g *goal.Goal) *goalDB {
	return &goalDB{
		Id:                  g.Id.String(),
		UserId:              g.UserId.String(),
		Name:                g.Name,
		Type:                string(g.Type),
		TargetAmount:        g.TargetAmount,
		CurrentAmount:       g.CurrentAmount,
		TargetDate:          g.TargetDate,
		AnnualContribution:  g.AnnualContribution,
		MonthlyContribution: g.MonthlyContribution,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
}

func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	gdb := toDBGoal(g)
	if err := r.DB.WithContext(ctx).Table("goals").Create(gdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	gdb := toDBGoal(g)
	if err := r.DB.WithContext(ctx).Table("goals").
		Where("id = ? AND user_id = ?", gdb.Id, gdb.UserId).
		Select("name", "type", "target_amount", "current_amount", "target_date",
			"annual_contribution", "monthly_contribution", "updated_at").
		Updates(gdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Delete is owner-scoped: a goal belonging to another user behaves exactly
// like a missing goal. The goal and its contribution history go in one
// transaction so a failure cannot leave orphaned contribution rows.
func (r *GoalRepository) Delete(ctx context.Context, id, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("goal_contributions").
			Where("goal_id = ?", id.String()).
			Delete(&contributionDB{}).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}

		result := tx.Table("goals").
			Where("id = ? AND user_id = ?", id.String(), userID.String()).
			Delete(&goalDB{})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrGoalNotFound
		}
		return nil
	})
}

func (r *GoalRepository) GetByIdAndUser(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
	var gdb goalDB
	if err := r.DB.WithContext(ctx).Table("goals").
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		First(&gdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrGoalNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainGoal(&gdb)
}

func (r *GoalRepository) GetByUserId(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error) {
	var rows []goalDB
	if err := r.DB.WithContext(ctx).Table("goals").
		Where("user_id = ?", userID.String()).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*goal.Goal, 0, len(rows))
	for i := range rows {
		g, err := toDomainGoal(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

type contributionDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	GoalId    string    `gorm:"type:varchar(26);index:idx_contributions_goal_id;not null"`
	UserId    string    `gorm:"type:varchar(26);index:idx_contributions_user_id;not null"`
	Amount    float64   `gorm:"type:decimal(15,2);not null"`
	Note      string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
}

func (contributionDB) TableName() string {
	return "goal_contributions"
}

func toDomainContribution(cdb *contributionDB) (*goal.Contribution, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	gid, err := pkg.ParseULID(cdb.GoalId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(cdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &goal.Contribution{
		Id:        id,
		GoalId:    gid,
		UserId:    uid,
		Amount:    cdb.Amount,
		Note:      cdb.Note,
		CreatedAt: cdb.CreatedAt,
	}, nil
}

func (r *GoalRepository) CreateContribution(ctx context.Context, c *goal.Contribution) error {
	cdb := &contributionDB{
		Id:        c.Id.String(),
		GoalId:    c.GoalId.String(),
		UserId:    c.UserId.String(),
		Amount:    c.Amount,
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
	}
	if err := r.DB.WithContext(ctx).Table("goal_contributions").Create(cdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GoalRepository) DeleteContribution(ctx context.Context, contributionID ulid.ULID) error {
	if err := r.DB.WithContext(ctx).Table("goal_contributions").
		Where("id = ?", contributionID.String()).
		Delete(&contributionDB{}).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GoalRepository) GetContributionsByGoalId(ctx context.Context, goalID, userID ulid.ULID) ([]*goal.Contribution, error) {
	var rows []contributionDB
	if err := r.DB.WithContext(ctx).Table("goal_contributions").
		Where("goal_id = ? AND user_id = ?", goalID.String(), userID.String()).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*goal.Contribution, 0, len(rows))
	for i := range rows {
		c, err := toDomainContribution(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *GoalRepository) UpdateCurrentAmountAtomic(ctx context.Context, goalID ulid.ULID, delta float64) error {
	result := r.DB.WithContext(ctx).Table("goals").
		Where("id = ?", goalID.String()).
		UpdateColumn("current_amount", gorm.Expr("current_amount + ?", delta)).
		UpdateColumn("updated_at", time.Now())
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrGoalNotFound
	}
	return nil
}
