package goal

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Contribution is one addition to a goal's balance, kept as history next to
// the running current_amount on the goal row.
type Contribution struct {
	Id        ulid.ULID `json:"id"`
	GoalId    ulid.ULID `json:"goalId"`
	UserId    ulid.ULID `json:"userId"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}
