package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhdat-89/qlhv-sub000/internal/model"
)

func mwfClass(fee int64) *model.ClassSchedule {
	return &model.ClassSchedule{
		ID:            "c00001",
		Name:          "Math A",
		FeePerSession: fee,
		Pattern: model.WeeklyPattern{
			Morning: []model.Weekday{model.Monday, model.Wednesday, model.Friday},
		},
	}
}

func TestCountSessions_January2024MonWedFri(t *testing.T) {
	// January 2024 is a 31-day month starting on a Monday:
	// Mondays 1,8,15,22,29; Wednesdays 3,10,17,24,31; Fridays 5,12,19,26.
	class := mwfClass(200000)

	count := CountSessions(class, "2024-01-01", "2024-01-31", class.ID, nil)
	require.Equal(t, 14, count)
}

func TestCountSessions_EmptyRange(t *testing.T) {
	class := mwfClass(200000)

	assert.Equal(t, 0, CountSessions(class, "2024-01-31", "2024-01-01", class.ID, nil))
}

func TestCountSessions_SingleDayRange(t *testing.T) {
	class := mwfClass(200000)

	// 2024-01-01 is a Monday
	assert.Equal(t, 1, CountSessions(class, "2024-01-01", "2024-01-01", class.ID, nil))
	// 2024-01-02 is a Tuesday
	assert.Equal(t, 0, CountSessions(class, "2024-01-02", "2024-01-02", class.ID, nil))
}

func TestCountSessions_Additivity(t *testing.T) {
	// Splitting a range at any day must not change the total.
	class := &model.ClassSchedule{
		ID: "c00001",
		Pattern: model.WeeklyPattern{
			Morning:   []model.Weekday{model.Monday, model.Saturday},
			Afternoon: []model.Weekday{model.Monday, model.Thursday},
			Evening:   []model.Weekday{model.Sunday},
		},
	}
	holidays := []*model.Holiday{
		{ID: "h00001", Date: "2024-02-12", EndDate: "2024-02-16"},
	}

	whole := CountSessions(class, "2024-01-15", "2024-03-10", class.ID, holidays)
	for _, cut := range []model.Date{"2024-01-15", "2024-02-01", "2024-02-14", "2024-03-09"} {
		left := CountSessions(class, "2024-01-15", cut, class.ID, holidays)
		right := CountSessions(class, cut.AddDays(1), "2024-03-10", class.ID, holidays)
		assert.Equal(t, whole, left+right, "split at %s", cut)
	}
}

func TestCountSessions_MultipleBucketsSameDay(t *testing.T) {
	// A weekday listed in all three buckets bills three sessions that day.
	class := &model.ClassSchedule{
		ID: "c00001",
		Pattern: model.WeeklyPattern{
			Morning:   []model.Weekday{model.Monday},
			Afternoon: []model.Weekday{model.Monday},
			Evening:   []model.Weekday{model.Monday},
		},
	}

	assert.Equal(t, 3, CountSessions(class, "2024-01-01", "2024-01-01", class.ID, nil))
	assert.Equal(t, 15, CountSessions(class, "2024-01-01", "2024-01-31", class.ID, nil))
}

func TestCountSessions_HolidayRemovesCoveredSessions(t *testing.T) {
	// A class-wide holiday spanning Mon 8th through Fri 12th covers
	// exactly three session dates (8, 10, 12).
	class := mwfClass(200000)
	holidays := []*model.Holiday{
		{ID: "h00001", Date: "2024-01-08", EndDate: "2024-01-12", Type: model.HolidayGlobalClosure},
	}

	count := CountSessions(class, "2024-01-01", "2024-01-31", class.ID, holidays)
	require.Equal(t, 14-3, count)
}

func TestCountSessions_OtherClassHolidayIgnored(t *testing.T) {
	class := mwfClass(200000)
	holidays := []*model.Holiday{
		{ID: "h00001", Date: "2024-01-08", EndDate: "2024-01-12", Type: model.HolidayClassWide, ClassID: "c00099"},
	}

	count := CountSessions(class, "2024-01-01", "2024-01-31", class.ID, holidays)
	require.Equal(t, 14, count)
}

func TestCountSessions_NilSchedule(t *testing.T) {
	assert.Equal(t, 0, CountSessions(nil, "2024-01-01", "2024-01-31", "c00001", nil))
}
