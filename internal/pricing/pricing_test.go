package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRegularAmountAtThreshold(t *testing.T) {
	assertAmount(t, CategoryRegular, 2, "2")
	assertAmount(t, CategoryRegular, 3, "3.5")
}

func TestChildrenAmountAtThreshold(t *testing.T) {
	assertAmount(t, CategoryChildren, 3, "1.5")
	assertAmount(t, CategoryChildren, 4, "3")
}

func TestNewReleaseAmountIsLinear(t *testing.T) {
	assertAmount(t, CategoryNew, 0, "0")
	assertAmount(t, CategoryNew, 1, "3")
	assertAmount(t, CategoryNew, 2, "6")
	assertAmount(t, CategoryNew, 5, "15")
}

func TestAmountRejectsNegativeDays(t *testing.T) {
	_, err := CalculateAmount(CategoryRegular, -1)
	if !errors.Is(err, ErrNegativeDays) {
		t.Fatalf("expected ErrNegativeDays, got %v", err)
	}
	_, err = CalculateAmount(CategoryChildren, -3)
	if !errors.Is(err, ErrNegativeDays) {
		t.Fatalf("expected ErrNegativeDays, got %v", err)
	}
}

func TestAmountRejectsUnknownCategory(t *testing.T) {
	_, err := CalculateAmount(Category("vhs"), 1)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestPointsBonusThreshold(t *testing.T) {
	// The new-release bonus kicks in at exactly NewReleaseBonusDays.
	cases := []struct {
		category Category
		days     int
		want     int
	}{
		{CategoryNew, 1, 1},
		{CategoryNew, 2, 2},
		{CategoryNew, 3, 2},
		{CategoryRegular, 10, 1},
		{CategoryChildren, 10, 1},
	}
	for _, tc := range cases {
		got, err := CalculatePoints(tc.category, tc.days)
		if err != nil {
			t.Fatalf("CalculatePoints(%s, %d): %v", tc.category, tc.days, err)
		}
		if got != tc.want {
			t.Fatalf("CalculatePoints(%s, %d) = %d, want %d", tc.category, tc.days, got, tc.want)
		}
	}
}

func TestPointsRejectsUnknownCategory(t *testing.T) {
	_, err := CalculatePoints(Category(""), 2)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestParseCategoryNormalizes(t *testing.T) {
	got, err := ParseCategory("  NEW ")
	if err != nil {
		t.Fatalf("parse category: %v", err)
	}
	if got != CategoryNew {
		t.Fatalf("expected %q, got %q", CategoryNew, got)
	}
	if _, err := ParseCategory("documentary"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestAmountWithCustomRule(t *testing.T) {
	rule := Rule{
		Code:         CategoryRegular,
		BaseAmount:   decimal.RequireFromString("4.25"),
		IncludedDays: 1,
		ExtraPerDay:  decimal.RequireFromString("0.75"),
	}
	got, err := Amount(rule, 3)
	if err != nil {
		t.Fatalf("amount: %v", err)
	}
	if got.String() != "5.75" {
		t.Fatalf("expected 5.75, got %s", got)
	}
}

func assertAmount(t *testing.T, category Category, days int, want string) {
	t.Helper()
	got, err := CalculateAmount(category, days)
	if err != nil {
		t.Fatalf("CalculateAmount(%s, %d): %v", category, days, err)
	}
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("CalculateAmount(%s, %d) = %s, want %s", category, days, got, want)
	}
}
