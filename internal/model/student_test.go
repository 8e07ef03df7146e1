package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus_AutoPromotion(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)

	fresh := &Student{Status: StatusNewlyEnrolled, EnrollDate: "2024-03-01"}
	assert.Equal(t, StatusNewlyEnrolled, fresh.EffectiveStatus(now))

	matured := &Student{Status: StatusNewlyEnrolled, EnrollDate: "2024-01-10"}
	assert.Equal(t, StatusActive, matured.EffectiveStatus(now))

	withdrawn := &Student{Status: StatusWithdrawn, EnrollDate: "2024-01-10", LeaveDate: "2024-02-01"}
	assert.Equal(t, StatusWithdrawn, withdrawn.EffectiveStatus(now))
}

func TestDiscountFor_MonthScoping(t *testing.T) {
	unscoped := &Student{DiscountRate: 0.2}
	assert.Equal(t, 0.2, unscoped.DiscountFor("2024-01"))
	assert.Equal(t, 0.2, unscoped.DiscountFor("2025-06"))

	scoped := &Student{DiscountRate: 0.2, DiscountMonths: []Month{"2024-01", "2024-02"}}
	assert.Equal(t, 0.2, scoped.DiscountFor("2024-01"))
	assert.Equal(t, 0.0, scoped.DiscountFor("2024-03"))
}

func TestWeeklyPattern_SessionsOn(t *testing.T) {
	pattern := WeeklyPattern{
		Morning:   []Weekday{Monday, Wednesday},
		Afternoon: []Weekday{Monday},
		Evening:   []Weekday{Sunday},
	}

	assert.Equal(t, 2, pattern.SessionsOn(Monday))
	assert.Equal(t, 1, pattern.SessionsOn(Wednesday))
	assert.Equal(t, 1, pattern.SessionsOn(Sunday))
	assert.Equal(t, 0, pattern.SessionsOn(Friday))
}

func TestExtraSession_FeeFallback(t *testing.T) {
	override := int64(250000)

	withOverride := &ExtraSession{Fee: &override}
	assert.Equal(t, int64(250000), withOverride.FeeOr(200000))

	withoutOverride := &ExtraSession{}
	assert.Equal(t, int64(200000), withoutOverride.FeeOr(200000))
}
