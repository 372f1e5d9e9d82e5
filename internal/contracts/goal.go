package contracts

type GoalCreateRequest struct {
	Name                string  `json:"name" binding:"required,max=100"`
	Type                string  `json:"type" binding:"required,oneof=emergency tfsa rrsp fhsa vacation purchase other"`
	TargetAmount        float64 `json:"targetAmount" binding:"required,gt=0"`
	TargetDate          string  `json:"targetDate" binding:"omitempty"`
	AnnualContribution  float64 `json:"annualContribution" binding:"omitempty,gte=0"`
	MonthlyContribution float64 `json:"monthlyContribution" binding:"omitempty,gte=0"`
}

type GoalUpdateRequest struct {
	Name                *string  `json:"name" binding:"omitempty,max=100"`
	Type                *string  `json:"type" binding:"omitempty,oneof=emergency tfsa rrsp fhsa vacation purchase other"`
	TargetAmount        *float64 `json:"targetAmount" binding:"omitempty,gt=0"`
	TargetDate          *string  `json:"targetDate" binding:"omitempty"`
	CurrentAmount       *float64 `json:"currentAmount" binding:"omitempty,gte=0"`
	AnnualContribution  *float64 `json:"annualContribution" binding:"omitempty,gte=0"`
	MonthlyContribution *float64 `json:"monthlyContribution" binding:"omitempty,gte=0"`
}

type ContributionRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Note   string  `json:"note" binding:"omitempty,max=255"`
}
