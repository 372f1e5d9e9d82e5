package goal

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type GoalType string

const (
	TypeEmergency GoalType = "emergency"
	TypeTFSA      GoalType = "tfsa"
	TypeRRSP      GoalType = "rrsp"
	TypeFHSA      GoalType = "fhsa"
	TypeVacation  GoalType = "vacation"
	TypePurchase  GoalType = "purchase"
	TypeOther     GoalType = "other"
)

func ValidGoalType(t GoalType) bool {
	switch t {
	case TypeEmergency, TypeTFSA, TypeRRSP, TypeFHSA, TypeVacation, TypePurchase, TypeOther:
		return true
	}
	return false
}

type Goal struct {
	Id                  ulid.ULID  `json:"id"`
	UserId              ulid.ULID  `json:"userId"`
	Name                string     `json:"name"`
	Type                GoalType   `json:"type"`
	TargetAmount        float64    `json:"targetAmount"`
	CurrentAmount       float64    `json:"currentAmount"`
	TargetDate          *time.Time `json:"targetDate"`
	AnnualContribution  float64    `json:"annualContribution"`
	MonthlyContribution float64    `json:"monthlyContribution"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// Complete reports whether the saved balance has reached the target.
// CurrentAmount is allowed to exceed TargetAmount.
func (g *Goal) Complete() bool {
	return g.CurrentAmount >= g.TargetAmount
}
