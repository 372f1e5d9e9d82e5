package expense

// Pure aggregation helpers over expense slices. Everything here is
// side-effect free and deterministic; handlers and the dashboard compose
// these instead of re-deriving sums inline.

// Filter narrows an expense list. Zero values mean "no constraint": an empty
// Type matches every category, Month matches the month-of-year (1-12) in any
// year, Year matches the calendar year.
type Filter struct {
	Type  ExpenseType
	Month int
	Year  int
}

func (f Filter) Empty() bool {
	return f.Type == "" && f.Month == 0 && f.Year == 0
}

// MonthFilterActive reports whether the filter pins a single month-of-year.
func (f Filter) MonthFilterActive() bool {
	return f.Month >= 1 && f.Month <= 12
}

// FilterExpenses returns the subsequence matching every supplied constraint.
// Filtering is idempotent: applying the same filter to its own output is a
// no-op.
func FilterExpenses(expenses []*Expense, filter Filter) []*Expense {
	out := make([]*Expense, 0, len(expenses))
	for _, e := range expenses {
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		if filter.MonthFilterActive() && int(e.Date.Month()) != filter.Month {
			continue
		}
		if filter.Year != 0 && e.Date.Year() != filter.Year {
			continue
		}
		out = append(out, e)
	}
	return out
}

// AggregateByCategory sums amounts grouped by type. Only categories actually
// present appear in the result; absent categories are not zero-filled.
func AggregateByCategory(expenses []*Expense) map[ExpenseType]float64 {
	totals := make(map[ExpenseType]float64)
	for _, e := range expenses {
		totals[e.Type] += e.Amount
	}
	return totals
}

// Total sums all amounts.
func Total(expenses []*Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}

// MonthlyAverage divides the total by 1 when a month filter is active and by
// 12 otherwise. This mirrors the historical behavior and is deliberately not
// calendar-aware; it lives behind its own name so a corrected average can
// replace it without touching callers.
func MonthlyAverage(expenses []*Expense, monthFilterActive bool) float64 {
	divisor := 12.0
	if monthFilterActive {
		divisor = 1.0
	}
	return Total(expenses) / divisor
}

// MonthlyTotals buckets amounts by month-of-year across all years,
// January first.
func MonthlyTotals(expenses []*Expense) [12]float64 {
	var totals [12]float64
	for _, e := range expenses {
		totals[int(e.Date.Month())-1] += e.Amount
	}
	return totals
}
