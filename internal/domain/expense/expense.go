package expense

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type ExpenseType string

const (
	TypeHousing        ExpenseType = "housing"
	TypeFood           ExpenseType = "food"
	TypeTransportation ExpenseType = "transportation"
	TypeUtilities      ExpenseType = "utilities"
	TypeEntertainment  ExpenseType = "entertainment"
	TypeHealth         ExpenseType = "health"
	TypeOther          ExpenseType = "other"
)

func ValidExpenseType(t ExpenseType) bool {
	switch t {
	case TypeHousing, TypeFood, TypeTransportation, TypeUtilities, TypeEntertainment, TypeHealth, TypeOther:
		return true
	}
	return false
}

type Frequency string

const (
	FrequencyOneTime Frequency = "one-time"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyOneTime, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

type Expense struct {
	Id        ulid.ULID   `json:"id"`
	UserId    ulid.ULID   `json:"userId"`
	Name      string      `json:"name"`
	Amount    float64     `json:"amount"`
	Type      ExpenseType `json:"type"`
	Frequency Frequency   `json:"frequency"`
	Date      time.Time   `json:"date"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
