package service

import (
	"fmt"
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
)

// perkUsageTotals carries the aggregates recomputed from the usage log for
// one perk: count of redemptions for discrete perks, sum of quantity_used
// for hour-based ones.
type perkUsageTotals struct {
	Today     float64
	ThisWeek  float64
	ThisMonth float64
}

type ruleInput struct {
	Perk       models.PlanPerk
	Membership models.Membership
	Usage      perkUsageTotals
	Now        time.Time
}

// rejection explains why a perk cannot be used right now. NextAvailable is
// nil when no retry date can be computed (e.g. outside the daily time
// window, where the caller should retry later the same day).
type rejection struct {
	Reason        string
	NextAvailable *time.Time
}

type perkRule func(in ruleInput) *rejection

// evaluationRules is the full ordered chain for availability checks. The
// order is a contract: monthly before weekly before daily, so that when
// several caps are exhausted the broadest one names the reason.
func evaluationRules() []perkRule {
	return []perkRule{
		dayOfWeekRule,
		timeWindowRule,
		monthlyCapRule,
		weeklyCapRule,
		dailyCapRule,
		remainingHoursRule,
		membershipExpiryRule,
	}
}

// redemptionRules is the shared gate set re-run on every redemption attempt.
// The hour-quantity check happens in the meeting-room path itself, where the
// requested duration is known.
func redemptionRules() []perkRule {
	return []perkRule{
		dayOfWeekRule,
		timeWindowRule,
		monthlyCapRule,
		weeklyCapRule,
		dailyCapRule,
	}
}

func runRules(rules []perkRule, in ruleInput) *rejection {
	for _, rule := range rules {
		if rej := rule(in); rej != nil {
			return rej
		}
	}
	return nil
}

func dayOfWeekRule(in ruleInput) *rejection {
	days := in.Perk.DaysOfWeek
	if days.Unrestricted() || days.Contains(in.Now.Weekday()) {
		return nil
	}
	next := nextAllowedDay(in.Now, days)
	return &rejection{
		Reason:        "Only available on " + days.String(),
		NextAvailable: &next,
	}
}

func timeWindowRule(in ruleInput) *rejection {
	from, until := in.Perk.ValidFrom, in.Perk.ValidUntil
	if from == "" || until == "" {
		return nil
	}
	nowHM := in.Now.Format("15:04")
	if nowHM < from || nowHM > until {
		return &rejection{
			Reason: fmt.Sprintf("Only available between %s and %s", from, until),
		}
	}
	return nil
}

func monthlyCapRule(in ruleInput) *rejection {
	if in.Perk.MaxPerMonth == nil || in.Usage.ThisMonth < float64(*in.Perk.MaxPerMonth) {
		return nil
	}
	next := firstAllowedDayOfNextMonth(in.Now, in.Perk.DaysOfWeek)
	return &rejection{
		Reason:        fmt.Sprintf("Monthly limit reached (%d per month)", *in.Perk.MaxPerMonth),
		NextAvailable: &next,
	}
}

func weeklyCapRule(in ruleInput) *rejection {
	if in.Perk.MaxPerWeek == nil || in.Usage.ThisWeek < float64(*in.Perk.MaxPerWeek) {
		return nil
	}
	next := startOfWeek(in.Now).AddDate(0, 0, 7)
	return &rejection{
		Reason:        fmt.Sprintf("Weekly limit reached (%d per week)", *in.Perk.MaxPerWeek),
		NextAvailable: &next,
	}
}

func dailyCapRule(in ruleInput) *rejection {
	if in.Perk.MaxPerDay == nil || in.Usage.Today < float64(*in.Perk.MaxPerDay) {
		return nil
	}
	next := startOfDay(in.Now).AddDate(0, 0, 1)
	return &rejection{
		Reason:        fmt.Sprintf("Daily limit reached (%d per day)", *in.Perk.MaxPerDay),
		NextAvailable: &next,
	}
}

func remainingHoursRule(in ruleInput) *rejection {
	if !in.Perk.Type.SumsQuantity() {
		return nil
	}
	remaining := in.Perk.Quantity - in.Usage.Today
	if remaining > 0 {
		return nil
	}
	if in.Perk.IsRecurring {
		next := startOfDay(in.Now).AddDate(0, 0, 1)
		return &rejection{
			Reason:        "No meeting room hours remaining today",
			NextAvailable: &next,
		}
	}
	return &rejection{
		Reason: "All meeting room hours have been used",
	}
}

// The membership lookup already excludes expired rows, but state can change
// between the lookup and the evaluation.
func membershipExpiryRule(in ruleInput) *rejection {
	if in.Membership.EndDate != nil && in.Membership.EndDate.Before(in.Now) {
		return &rejection{Reason: "Membership expired"}
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the preceding Sunday at midnight.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// nextAllowedDay scans forward up to a week for the next weekday in the set.
func nextAllowedDay(from time.Time, days models.WeekdaySet) time.Time {
	day := startOfDay(from)
	for i := 1; i <= 7; i++ {
		candidate := day.AddDate(0, 0, i)
		if days.Contains(candidate.Weekday()) {
			return candidate
		}
	}
	return day.AddDate(0, 0, 1)
}

// firstAllowedDayOfNextMonth honors the day-of-week restriction when one is
// set; otherwise it is simply the 1st.
func firstAllowedDayOfNextMonth(from time.Time, days models.WeekdaySet) time.Time {
	first := startOfMonth(from).AddDate(0, 1, 0)
	if days.Unrestricted() {
		return first
	}
	for i := 0; i < 7; i++ {
		candidate := first.AddDate(0, 0, i)
		if days.Contains(candidate.Weekday()) {
			return candidate
		}
	}
	return first
}
