package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category identifies the pricing class of a movie.
type Category string

const (
	CategoryRegular  Category = "regular"
	CategoryNew      Category = "new"
	CategoryChildren Category = "children"
)

// NewReleaseBonusDays is the minimum rental length for which a new release
// earns the double frequent-renter bonus. Historical rule variants disagree on
// whether the bonus starts at 2 or strictly above 2 days; the current rule
// grants it from 2 days onward.
const NewReleaseBonusDays = 2

var (
	ErrNegativeDays    = errors.New("daysRented cannot be negative")
	ErrUnknownCategory = errors.New("unrecognized movie category")
)

// Rule describes how a category is priced: a base amount covering the first
// IncludedDays of a rental, then a flat per-day rate beyond that. NEW releases
// are rate-only (zero base, zero included days).
type Rule struct {
	Code         Category
	BaseAmount   decimal.Decimal
	IncludedDays int
	ExtraPerDay  decimal.Decimal
	BonusPoints  bool
}

var rules = map[Category]Rule{
	CategoryRegular: {
		Code:         CategoryRegular,
		BaseAmount:   decimal.NewFromInt(2),
		IncludedDays: 2,
		ExtraPerDay:  decimal.RequireFromString("1.5"),
	},
	CategoryChildren: {
		Code:         CategoryChildren,
		BaseAmount:   decimal.RequireFromString("1.5"),
		IncludedDays: 3,
		ExtraPerDay:  decimal.RequireFromString("1.5"),
	},
	CategoryNew: {
		Code:        CategoryNew,
		ExtraPerDay: decimal.NewFromInt(3),
		BonusPoints: true,
	},
}

// ParseCategory normalizes a raw movie type code into a Category.
func ParseCategory(raw string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryRegular:
		return CategoryRegular, nil
	case CategoryNew:
		return CategoryNew, nil
	case CategoryChildren:
		return CategoryChildren, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
}

// RuleFor returns the built-in pricing rule for a category.
func RuleFor(category Category) (Rule, error) {
	rule, ok := rules[category]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return rule, nil
}

// Amount prices a rental of daysRented days under the given rule. The result
// carries full precision; callers round only when rendering.
func Amount(rule Rule, daysRented int) (decimal.Decimal, error) {
	if daysRented < 0 {
		return decimal.Decimal{}, ErrNegativeDays
	}
	amount := rule.BaseAmount
	if daysRented > rule.IncludedDays {
		extraDays := decimal.NewFromInt(int64(daysRented - rule.IncludedDays))
		amount = amount.Add(rule.ExtraPerDay.Mul(extraDays))
	}
	return amount, nil
}

// CalculateAmount prices a rental using the built-in rule table.
func CalculateAmount(category Category, daysRented int) (decimal.Decimal, error) {
	rule, err := RuleFor(category)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return Amount(rule, daysRented)
}

// CalculatePoints returns the frequent-renter points earned by one rental.
func CalculatePoints(category Category, daysRented int) (int, error) {
	rule, err := RuleFor(category)
	if err != nil {
		return 0, err
	}
	if daysRented < 0 {
		return 0, ErrNegativeDays
	}
	if rule.BonusPoints && daysRented >= NewReleaseBonusDays {
		return 2, nil
	}
	return 1, nil
}
