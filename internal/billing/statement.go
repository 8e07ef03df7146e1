package billing

import (
	"errors"
	"math"
	"time"

	"github.com/thanhdat-89/qlhv-sub000/internal/model"
)

// ErrStudentNotFound is returned by Statement for an unknown student
// id. An unresolved class, by contrast, is not an error: the statement
// comes back zeroed with status "N/A".
var ErrStudentNotFound = errors.New("billing: student not found")

// Statement computes the tuition statement for one student and one
// target month. The month-scoped figures bill the display window (the
// target month intersected with the student's enrollment interval);
// the balance accumulates every month from enrollment through the end
// of the target month, clipped at the leave date for withdrawn
// students.
func Statement(snap *Snapshot, studentID string, year int, month time.Month) (*model.TuitionStatement, error) {
	student := snap.StudentByID(studentID)
	if student == nil {
		return nil, ErrStudentNotFound
	}

	targetMonth := model.MonthOf(year, month)
	st := &model.TuitionStatement{
		StudentID: studentID,
		Month:     targetMonth,
	}

	class := snap.ClassByID(student.ClassID)
	if class == nil {
		st.Status = model.StatementNA
		return st, nil
	}
	st.FeePerSession = class.FeePerSession

	// Display window: target month clipped to the enrollment interval.
	winStart := model.MaxDate(targetMonth.First(), student.EnrollDate)
	winEnd := targetMonth.Last()
	if !student.LeaveDate.IsZero() {
		winEnd = model.MinDate(winEnd, student.LeaveDate)
	}
	if winStart <= winEnd {
		st.ScheduledCount = CountSessions(class, winStart, winEnd, class.ID, snap.Holidays)
	}

	// Extra sessions are month-scoped on calendar boundaries, not
	// clipped to the enrollment interval; an extra dated inside the
	// month counts even outside the active window.
	for _, e := range snap.extrasFor(studentID) {
		if targetMonth.Contains(e.Date) {
			st.ExtraCount++
			st.TotalExtraFee += e.FeeOr(class.FeePerSession)
		}
	}

	studentDiscount := student.DiscountFor(targetMonth)
	if promo := ResolvePromotion(class.ID, targetMonth, snap.Promotions); promo != nil {
		st.PromotionDiscount = promo.DiscountRate
		st.PromotionDescription = promo.Description
	}

	scheduledBase := float64(st.ScheduledCount) * float64(class.FeePerSession)
	discount := (1 - studentDiscount) * (1 - st.PromotionDiscount)
	st.ScheduledTuition = roundMoney(scheduledBase * discount)
	st.TuitionDue = roundMoney((scheduledBase + float64(st.TotalExtraFee)) * discount)

	incurred := cumulativeTuition(snap, student, class, targetMonth)
	for _, p := range snap.paymentsFor(studentID) {
		st.TotalPaid += p.Amount
	}
	st.Balance = incurred - st.TotalPaid

	if st.Balance <= 0 {
		st.Status = model.StatementCompleted
	} else {
		st.Status = model.StatementOwing
	}
	return st, nil
}

// cumulativeTuition totals everything the student has incurred from
// enrollment through the end of the target month. Each month gets its
// own session count, its own promotion lookup, and its own rounding;
// extra sessions are discounted by the promotion of the month they
// fall in.
func cumulativeTuition(snap *Snapshot, student *model.Student, class *model.ClassSchedule, targetMonth model.Month) int64 {
	limit := targetMonth.Last()
	if !student.LeaveDate.IsZero() {
		limit = model.MinDate(limit, student.LeaveDate)
	}

	var incurred int64
	for m := student.EnrollDate.Month(); m != "" && m <= limit.Month(); m = m.Next() {
		start := model.MaxDate(m.First(), student.EnrollDate)
		end := model.MinDate(m.Last(), limit)
		if start > end {
			continue
		}
		count := CountSessions(class, start, end, class.ID, snap.Holidays)
		if count == 0 {
			continue
		}
		discount := (1 - student.DiscountFor(m)) * (1 - ResolveDiscount(class.ID, m, snap.Promotions))
		incurred += roundMoney(float64(count) * float64(class.FeePerSession) * discount)
	}

	for _, e := range snap.extrasFor(student.ID) {
		if e.Date > limit {
			continue
		}
		m := e.Date.Month()
		discount := (1 - student.DiscountFor(m)) * (1 - ResolveDiscount(class.ID, m, snap.Promotions))
		incurred += roundMoney(float64(e.FeeOr(class.FeePerSession)) * discount)
	}
	return incurred
}

// roundMoney rounds half away from zero, matching how the center has
// always reconciled amounts. Applied at every monetary rounding point.
func roundMoney(x float64) int64 {
	return int64(math.Round(x))
}
