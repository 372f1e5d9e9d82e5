package infrastructure

import (
	"context"

	"NestEgg/internal/domain/dashboard"
	appErrors "NestEgg/internal/errors"
	"NestEgg/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	DB *gorm.DB
}

var _ dashboard.Repository = (*DashboardRepository)(nil)

func (r *DashboardRepository) GetSavingsSummary(ctx context.Context, userID ulid.ULID) (*dashboard.SavingsSummary, error) {
	var row struct {
		TotalSaved  float64
		TotalTarget float64
		GoalCount   int64
	}

	if err := r.DB.WithContext(ctx).Table("goals").
		Select("COALESCE(SUM(current_amount), 0) AS total_saved, COALESCE(SUM(target_amount), 0) AS total_target, COUNT(*) AS goal_count").
		Where("user_id = ?", userID.String()).
		Scan(&row).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return &dashboard.SavingsSummary{
		TotalSaved:  row.TotalSaved,
		TotalTarget: row.TotalTarget,
		GoalCount:   row.GoalCount,
	}, nil
}

func (r *DashboardRepository) GetGoalProgress(ctx context.Context, userID ulid.ULID) ([]*dashboard.GoalProgress, error) {
	var rows []goalDB
	if err := r.DB.WithContext(ctx).Table("goals").
		Where("user_id = ?", userID.String()).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*dashboard.GoalProgress, 0, len(rows))
	for i := range rows {
		id, err := pkg.ParseULID(rows[i].Id)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}

		percentage := 0.0
		if rows[i].TargetAmount > 0 {
			percentage = rows[i].CurrentAmount / rows[i].TargetAmount * 100
		}

		out = append(out, &dashboard.GoalProgress{
			Id:            id,
			Name:          rows[i].Name,
			Type:          rows[i].Type,
			TargetAmount:  rows[i].TargetAmount,
			CurrentAmount: rows[i].CurrentAmount,
			Percentage:    percentage,
		})
	}
	return out, nil
}
