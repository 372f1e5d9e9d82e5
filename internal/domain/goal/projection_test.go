package goal_test

import (
	"math"
	"testing"

	"NestEgg/internal/domain/goal"
)

func TestProjectZeroRateIsPlainSum(t *testing.T) {
	t.Parallel()

	// With a zero rate the projection degenerates to starting amount plus
	// one monthly deposit per month plus one annual deposit per year.
	got := goal.Project(1000, 100, 0, 1, 0)
	if got != 2200 {
		t.Fatalf("expected 2200, got %v", got)
	}

	got = goal.Project(1000, 100, 500, 2, 0)
	want := 1000.0 + 24*100 + 2*500
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestProjectZeroEverything(t *testing.T) {
	t.Parallel()

	if got := goal.Project(0, 0, 0, 10, 5); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestProjectGrowthExceedsDeposits(t *testing.T) {
	t.Parallel()

	deposits := 1000.0 + 12*100 + 500
	got := goal.Project(1000, 100, 500, 1, 5)
	if got <= deposits {
		t.Fatalf("expected projection above %v with positive rate, got %v", deposits, got)
	}
}

func TestProjectMonotonicInRate(t *testing.T) {
	t.Parallel()

	prev := goal.Project(1000, 100, 0, 10, 0)
	for _, rate := range []float64{1, 2.5, 5, 10, 20} {
		next := goal.Project(1000, 100, 0, 10, rate)
		if next <= prev {
			t.Fatalf("expected projection at rate %v to exceed %v, got %v", rate, prev, next)
		}
		prev = next
	}
}

func TestProjectMonotonicInYears(t *testing.T) {
	t.Parallel()

	prev := 0.0
	for years := 1; years <= 30; years++ {
		next := goal.Project(500, 50, 0, years, 3)
		if next <= prev {
			t.Fatalf("expected projection at %d years to exceed %v, got %v", years, prev, next)
		}
		prev = next
	}
}

func TestProjectCompoundsMonthly(t *testing.T) {
	t.Parallel()

	// One year, no deposits: the balance should grow by the effective annual
	// rate derived from monthly compounding.
	got := goal.Project(1000, 0, 0, 1, 5)
	want := 1000 * math.Pow(1+(math.Pow(1.05, 1.0/12)-1), 12)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestClampProjectionYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want int
	}{
		{-5, goal.MinProjectionYears},
		{0, goal.MinProjectionYears},
		{1, 1},
		{15, 15},
		{30, 30},
		{31, goal.MaxProjectionYears},
		{1000, goal.MaxProjectionYears},
	}

	for _, tt := range tests {
		if got := goal.ClampProjectionYears(tt.in); got != tt.want {
			t.Fatalf("ClampProjectionYears(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampAnnualRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{-1, goal.MinAnnualRate},
		{0, 0},
		{7.5, 7.5},
		{20, 20},
		{20.1, goal.MaxAnnualRate},
		{100, goal.MaxAnnualRate},
	}

	for _, tt := range tests {
		if got := goal.ClampAnnualRate(tt.in); got != tt.want {
			t.Fatalf("ClampAnnualRate(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
