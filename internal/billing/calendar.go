package billing

import (
	"time"

	"github.com/thanhdat-89/qlhv-sub000/internal/model"
)

// CountSessions expands the class's weekly pattern over [start, end]
// (inclusive on both ends) and returns how many sessions fall inside.
// Each day contributes one session per time-of-day bucket whose
// weekday set contains the day's code, so a single day can contribute
// up to three. Days the holiday set excludes for this class contribute
// nothing. Returns 0 when start is after end.
func CountSessions(schedule *model.ClassSchedule, start, end model.Date, classID string, holidays []*model.Holiday) int {
	if schedule == nil || start.IsZero() || end.IsZero() || start > end {
		return 0
	}

	// Iterate at local midnight so DST shifts cannot skip or double a day.
	from := atMidnight(start.Time())
	to := atMidnight(end.Time())

	count := 0
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := model.DateOf(day)
		if IsExcluded(date, classID, holidays) {
			continue
		}
		count += schedule.Pattern.SessionsOn(model.WeekdayOf(day.Weekday()))
	}
	return count
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
