package services

import (
	"time"

	"github.com/CyberDemon2001/Bill-Generator/models"
)

const (
	PlanTrial   = "trial"
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"

	trialDuration = 10 * 24 * time.Hour
)

// NewPlan computes the subscription window for a plan change starting now.
// Trial is a fixed 10-day window; monthly and yearly use calendar-aware
// addition with end-of-month clamping (Jan 31 + 1 month = Feb 28/29).
func NewPlan(plan string, now time.Time) (models.SubscriptionPlan, error) {
	var end time.Time

	switch plan {
	case PlanTrial:
		end = now.Add(trialDuration)
	case PlanMonthly:
		end = addMonthsClamped(now, 1)
	case PlanYearly:
		end = addMonthsClamped(now, 12)
	default:
		return models.SubscriptionPlan{}, &ValidationError{Message: "Invalid subscription plan"}
	}

	return models.SubscriptionPlan{
		Plan:      plan,
		StartDate: now,
		EndDate:   end,
		IsActive:  true,
	}, nil
}

// TrialPlan seeds the 10-day window granted to every new restaurant.
func TrialPlan(now time.Time) models.SubscriptionPlan {
	plan, _ := NewPlan(PlanTrial, now)
	return plan
}

// Expired reports whether the plan's end date is in the past.
func Expired(plan models.SubscriptionPlan, now time.Time) bool {
	return plan.EndDate.Before(now)
}

// addMonthsClamped adds calendar months, clamping the day to the last day of
// the target month instead of letting it overflow the way AddDate does.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, months, 0)

	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
