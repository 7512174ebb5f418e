// Package billing holds the pure pricing logic for plan switches. Nothing in
// here touches storage; services feed it the current term and the candidate
// plan and persist whatever it returns.
package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PlanTerms is the pricing view of a plan: what it costs and how long it runs.
type PlanTerms struct {
	Price        decimal.Decimal
	ValidityDays int
}

// CurrentTerm is the pricing view of the subscription being switched away
// from. EndsAt is the paid-through date.
type CurrentTerm struct {
	EndsAt time.Time
	Terms  PlanTerms
}

// CalculateSwitchPrice computes the charge for moving to newPlan as of today.
//
// The customer keeps the value of unused days on the current plan: the charge
// is the cost of running the new plan for the remaining window minus the
// unused value of the old one. A negative difference (downgrade) is never
// refunded; the switch is free and the notional credit is only reported in
// the rationale. Per-day rates are kept at full precision; only the final
// amount is rounded to 2 decimal places.
func CalculateSwitchPrice(current *CurrentTerm, newPlan PlanTerms, today time.Time) (decimal.Decimal, string) {
	if current == nil {
		return newPlan.Price, "New subscription"
	}

	remainingDays := RemainingDays(current.EndsAt, today)
	if remainingDays <= 0 {
		return newPlan.Price, "Current plan expired, full price"
	}

	days := decimal.NewFromInt(int64(remainingDays))

	currentPerDay := current.Terms.Price.Div(decimal.NewFromInt(int64(current.Terms.ValidityDays)))
	newPerDay := newPlan.Price.Div(decimal.NewFromInt(int64(newPlan.ValidityDays)))

	remainingValue := currentPerDay.Mul(days)
	newPlanCost := newPerDay.Mul(days)

	amount := newPlanCost.Sub(remainingValue)

	if amount.IsPositive() {
		return amount.Round(2), fmt.Sprintf("Upgrade for %d days", remainingDays)
	}

	credit := amount.Abs().Round(2)
	return decimal.Zero, fmt.Sprintf("Downgrade - %s credit (refund not applicable)", credit.String())
}

// RemainingDays counts whole calendar days from today's date to the
// paid-through date. Zero or negative means the term has elapsed.
func RemainingDays(endsAt, today time.Time) int {
	end := dateOf(endsAt)
	now := dateOf(today)
	return int(end.Sub(now).Hours() / 24)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
