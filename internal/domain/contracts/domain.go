package contracts

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type GoalCreateRequest struct {
	UserId              ulid.ULID
	Name                string
	Type                string
	TargetAmount        float64
	TargetDate          *time.Time
	AnnualContribution  float64
	MonthlyContribution float64
}

type GoalUpdateRequest struct {
	Id                  ulid.ULID
	UserId              ulid.ULID
	Name                *string
	Type                *string
	TargetAmount        *float64
	TargetDate          *time.Time
	CurrentAmount       *float64
	AnnualContribution  *float64
	MonthlyContribution *float64
}

type ExpenseCreateRequest struct {
	UserId    ulid.ULID
	Name      string
	Amount    float64
	Type      string
	Frequency string
	Date      time.Time
}

type ExpenseUpdateRequest struct {
	Id        ulid.ULID
	UserId    ulid.ULID
	Name      *string
	Amount    *float64
	Type      *string
	Frequency *string
	Date      *time.Time
}
