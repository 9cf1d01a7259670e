package service

import (
	"testing"
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

// Saturday, 14:00 local time.
var saturdayAfternoon = time.Date(2026, time.March, 7, 14, 0, 0, 0, time.UTC)

// Wednesday, 14:00 local time.
var wednesdayAfternoon = time.Date(2026, time.March, 4, 14, 0, 0, 0, time.UTC)

func weekdaysOnly(t *testing.T) models.WeekdaySet {
	t.Helper()
	s, err := models.ParseWeekdaySet([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	return s
}

func TestDayOfWeekRuleRejectsOffDays(t *testing.T) {
	in := ruleInput{
		Perk: models.PlanPerk{DaysOfWeek: weekdaysOnly(t)},
		Now:  saturdayAfternoon,
	}

	rej := dayOfWeekRule(in)
	require.NotNil(t, rej)
	assert.Equal(t, "Only available on Monday, Tuesday, Wednesday, Thursday, Friday", rej.Reason)
	require.NotNil(t, rej.NextAvailable)
	assert.Equal(t, time.Monday, rej.NextAvailable.Weekday())
	assert.Equal(t, 9, rej.NextAvailable.Day())
}

func TestDayOfWeekRuleAllowsListedDays(t *testing.T) {
	in := ruleInput{
		Perk: models.PlanPerk{DaysOfWeek: weekdaysOnly(t)},
		Now:  wednesdayAfternoon,
	}
	assert.Nil(t, dayOfWeekRule(in))
}

func TestDayOfWeekRuleUnrestrictedWhenEmpty(t *testing.T) {
	in := ruleInput{Now: saturdayAfternoon}
	assert.Nil(t, dayOfWeekRule(in))
}

func TestTimeWindowRule(t *testing.T) {
	perk := models.PlanPerk{ValidFrom: "09:00", ValidUntil: "18:00"}

	inside := ruleInput{Perk: perk, Now: wednesdayAfternoon}
	assert.Nil(t, timeWindowRule(inside))

	evening := time.Date(2026, time.March, 4, 19, 30, 0, 0, time.UTC)
	rej := timeWindowRule(ruleInput{Perk: perk, Now: evening})
	require.NotNil(t, rej)
	assert.Equal(t, "Only available between 09:00 and 18:00", rej.Reason)
	assert.Nil(t, rej.NextAvailable)
}

func TestTimeWindowRuleBoundariesInclusive(t *testing.T) {
	perk := models.PlanPerk{ValidFrom: "09:00", ValidUntil: "18:00"}

	atOpen := time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)
	assert.Nil(t, timeWindowRule(ruleInput{Perk: perk, Now: atOpen}))

	atClose := time.Date(2026, time.March, 4, 18, 0, 0, 0, time.UTC)
	assert.Nil(t, timeWindowRule(ruleInput{Perk: perk, Now: atClose}))

	justBefore := time.Date(2026, time.March, 4, 8, 59, 0, 0, time.UTC)
	assert.NotNil(t, timeWindowRule(ruleInput{Perk: perk, Now: justBefore}))
}

func TestDailyCapRule(t *testing.T) {
	perk := models.PlanPerk{MaxPerDay: intp(2)}

	underCap := ruleInput{Perk: perk, Usage: perkUsageTotals{Today: 1}, Now: wednesdayAfternoon}
	assert.Nil(t, dailyCapRule(underCap))

	atCap := ruleInput{Perk: perk, Usage: perkUsageTotals{Today: 2}, Now: wednesdayAfternoon}
	rej := dailyCapRule(atCap)
	require.NotNil(t, rej)
	assert.Equal(t, "Daily limit reached (2 per day)", rej.Reason)
	require.NotNil(t, rej.NextAvailable)
	assert.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), *rej.NextAvailable)
}

func TestWeeklyCapRule(t *testing.T) {
	perk := models.PlanPerk{MaxPerWeek: intp(3)}

	rej := weeklyCapRule(ruleInput{Perk: perk, Usage: perkUsageTotals{ThisWeek: 3}, Now: wednesdayAfternoon})
	require.NotNil(t, rej)
	assert.Equal(t, "Weekly limit reached (3 per week)", rej.Reason)
	// Week starts Sunday; next week begins Sunday March 8.
	require.NotNil(t, rej.NextAvailable)
	assert.Equal(t, time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC), *rej.NextAvailable)
}

func TestMonthlyCapRule(t *testing.T) {
	perk := models.PlanPerk{MaxPerMonth: intp(50)}

	rej := monthlyCapRule(ruleInput{Perk: perk, Usage: perkUsageTotals{ThisMonth: 50}, Now: wednesdayAfternoon})
	require.NotNil(t, rej)
	assert.Equal(t, "Monthly limit reached (50 per month)", rej.Reason)
	require.NotNil(t, rej.NextAvailable)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), *rej.NextAvailable)
}

func TestMonthlyCapNextAvailableHonorsDayRestriction(t *testing.T) {
	// April 1 2026 is a Wednesday; a Friday-only perk must point at April 3.
	perk := models.PlanPerk{
		MaxPerMonth: intp(10),
		DaysOfWeek:  models.NewWeekdaySet(time.Friday),
	}

	rej := monthlyCapRule(ruleInput{Perk: perk, Usage: perkUsageTotals{ThisMonth: 10}, Now: wednesdayAfternoon})
	require.NotNil(t, rej)
	require.NotNil(t, rej.NextAvailable)
	assert.Equal(t, time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC), *rej.NextAvailable)
}

// Cap precedence: when several caps are exhausted at once, the broadest
// one names the rejection.
func TestCapPrecedenceMonthlyOverWeeklyOverDaily(t *testing.T) {
	perk := models.PlanPerk{
		MaxPerDay:   intp(1),
		MaxPerWeek:  intp(2),
		MaxPerMonth: intp(3),
	}
	in := ruleInput{
		Perk:  perk,
		Usage: perkUsageTotals{Today: 1, ThisWeek: 2, ThisMonth: 3},
		Now:   wednesdayAfternoon,
	}

	rej := runRules(evaluationRules(), in)
	require.NotNil(t, rej)
	assert.Equal(t, "Monthly limit reached (3 per month)", rej.Reason)

	in.Usage.ThisMonth = 2
	rej = runRules(evaluationRules(), in)
	require.NotNil(t, rej)
	assert.Equal(t, "Weekly limit reached (2 per week)", rej.Reason)

	in.Usage.ThisWeek = 1
	rej = runRules(evaluationRules(), in)
	require.NotNil(t, rej)
	assert.Equal(t, "Daily limit reached (1 per day)", rej.Reason)
}

func TestRemainingHoursRule(t *testing.T) {
	perk := models.PlanPerk{
		Type:        models.PerkMeetingRoomHours,
		Quantity:    2,
		IsRecurring: true,
	}

	partial := ruleInput{Perk: perk, Usage: perkUsageTotals{Today: 1.5}, Now: wednesdayAfternoon}
	assert.Nil(t, remainingHoursRule(partial))

	exhausted := ruleInput{Perk: perk, Usage: perkUsageTotals{Today: 2}, Now: wednesdayAfternoon}
	rej := remainingHoursRule(exhausted)
	require.NotNil(t, rej)
	assert.Equal(t, "No meeting room hours remaining today", rej.Reason)
	require.NotNil(t, rej.NextAvailable)
	assert.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), *rej.NextAvailable)
}

func TestRemainingHoursRuleNonRecurring(t *testing.T) {
	perk := models.PlanPerk{
		Type:     models.PerkMeetingRoomHours,
		Quantity: 10,
	}

	rej := remainingHoursRule(ruleInput{Perk: perk, Usage: perkUsageTotals{Today: 10}, Now: wednesdayAfternoon})
	require.NotNil(t, rej)
	assert.Equal(t, "All meeting room hours have been used", rej.Reason)
	assert.Nil(t, rej.NextAvailable)
}

func TestRemainingHoursRuleIgnoresCountPerks(t *testing.T) {
	perk := models.PlanPerk{Type: models.PerkCoffeeVouchers, Quantity: 1}
	in := ruleInput{Perk: perk, Usage: perkUsageTotals{Today: 5}, Now: wednesdayAfternoon}
	assert.Nil(t, remainingHoursRule(in))
}

func TestMembershipExpiryRule(t *testing.T) {
	past := wednesdayAfternoon.AddDate(0, 0, -1)
	in := ruleInput{
		Membership: models.Membership{EndDate: &past},
		Now:        wednesdayAfternoon,
	}

	rej := membershipExpiryRule(in)
	require.NotNil(t, rej)
	assert.Equal(t, "Membership expired", rej.Reason)

	future := wednesdayAfternoon.AddDate(0, 1, 0)
	in.Membership.EndDate = &future
	assert.Nil(t, membershipExpiryRule(in))

	in.Membership.EndDate = nil
	assert.Nil(t, membershipExpiryRule(in))
}

// Evaluation must not consume anything: running the chain twice over the
// same input yields the same answer.
func TestEvaluationIsIdempotent(t *testing.T) {
	perk := models.PlanPerk{
		Type:      models.PerkPrintingCredits,
		Quantity:  100,
		MaxPerDay: intp(5),
	}
	in := ruleInput{Perk: perk, Usage: perkUsageTotals{Today: 3}, Now: wednesdayAfternoon}

	first := runRules(evaluationRules(), in)
	second := runRules(evaluationRules(), in)
	assert.Equal(t, first, second)
	assert.Nil(t, first)
}

func TestRedemptionRulesSkipHourQuota(t *testing.T) {
	// The redemption chain leaves the hour check to the booking path, where
	// the requested duration is known.
	perk := models.PlanPerk{
		Type:        models.PerkMeetingRoomHours,
		Quantity:    2,
		IsRecurring: true,
	}
	in := ruleInput{Perk: perk, Usage: perkUsageTotals{Today: 2}, Now: wednesdayAfternoon}

	assert.Nil(t, runRules(redemptionRules(), in))
	assert.NotNil(t, runRules(evaluationRules(), in))
}
