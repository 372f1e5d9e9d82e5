package contracts

type ExpenseCreateRequest struct {
	Name      string  `json:"name" binding:"required,max=100"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Type      string  `json:"type" binding:"required,oneof=housing food transportation utilities entertainment health other"`
	Frequency string  `json:"frequency" binding:"required,oneof=one-time daily weekly monthly yearly"`
	Date      string  `json:"date" binding:"omitempty"`
}

type ExpenseUpdateRequest struct {
	Name      *string  `json:"name" binding:"omitempty,max=100"`
	Amount    *float64 `json:"amount" binding:"omitempty,gt=0"`
	Type      *string  `json:"type" binding:"omitempty,oneof=housing food transportation utilities entertainment health other"`
	Frequency *string  `json:"frequency" binding:"omitempty,oneof=one-time daily weekly monthly yearly"`
	Date      *string  `json:"date" binding:"omitempty"`
}
