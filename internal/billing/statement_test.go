package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhdat-89/qlhv-sub000/internal/model"
)

func feeOverride(v int64) *int64 { return &v }

func TestStatement_LayeredDiscounts(t *testing.T) {
	// Mon+Wed mornings in January 2024 = 10 sessions. Student discount
	// 10%, class promotion 5%: round(10 × 200000 × 0.9 × 0.95).
	class := &model.ClassSchedule{
		ID:            "c00001",
		FeePerSession: 200000,
		Pattern: model.WeeklyPattern{
			Morning: []model.Weekday{model.Monday, model.Wednesday},
		},
	}
	student := &model.Student{
		ID:           "s00001",
		ClassID:      "c00001",
		Status:       model.StatusActive,
		EnrollDate:   "2023-09-01",
		DiscountRate: 0.1,
	}
	promos := []*model.Promotion{
		{ID: "p00001", ClassID: "c00001", Month: "2024-01", DiscountRate: 0.05, Description: "New year"},
	}

	snap := NewSnapshot([]*model.Student{student}, []*model.ClassSchedule{class}, nil, nil, nil, promos)

	st, err := Statement(snap, "s00001", 2024, time.January)
	require.NoError(t, err)

	assert.Equal(t, 10, st.ScheduledCount)
	assert.Equal(t, int64(1710000), st.ScheduledTuition)
	assert.Equal(t, int64(1710000), st.TuitionDue)
	assert.Equal(t, 0.05, st.PromotionDiscount)
	assert.Equal(t, "New year", st.PromotionDescription)
}

func TestStatement_DisplayWindowClipsAtEnrollment(t *testing.T) {
	// Enrolled on the 15th of a 30-day month; Mondays in April 2024
	// are 1, 8, 15, 22, 29; only the last three bill.
	class := &model.ClassSchedule{
		ID:            "c00001",
		FeePerSession: 150000,
		Pattern: model.WeeklyPattern{
			Morning: []model.Weekday{model.Monday},
		},
	}
	student := &model.Student{
		ID:         "s00001",
		ClassID:    "c00001",
		Status:     model.StatusNewlyEnrolled,
		EnrollDate: "2024-04-15",
	}

	snap := NewSnapshot([]*model.Student{student}, []*model.ClassSchedule{class}, nil, nil, nil, nil)

	st, err := Statement(snap, "s00001", 2024, time.April)
	require.NoError(t, err)

	assert.Equal(t, 3, st.ScheduledCount)
	assert.Equal(t, int64(450000), st.ScheduledTuition)
}

func TestStatement_MonthBeforeEnrollmentIsZero(t *testing.T) {
	class := &model.ClassSchedule{
		ID:            "c00001",
		FeePerSession: 150000,
		Pattern: model.WeeklyPattern{
			Morning: []model.Weekday{model.Monday},
		},
	}
	student := &model.Student{
		ID:         "s00001",
		ClassID:    "c00001",
		Status:     model.StatusActive,
		EnrollDate: "2024-04-15",
	}

	snap := NewSnapshot([]*model.Student{student}, []*model.ClassSchedule{class}, nil, nil, nil, nil)

	st, err := Statement(snap, "s00001", 2024, time.March)
	require.NoError(t, err)

	assert.Equal(t, 0, st.ScheduledCount)
	assert.Equal(t, int64(0), st.TuitionDue)
	assert.Equal(t, int64(0), st.Balance)
	assert.Equal(t, model.StatementCompleted, st.Status)
}

func TestStatement_BalanceAcrossPayments(t *testing.T) {
	// Five extra sessions at the class fee make 1,000,000 incurred.
	class := &model.ClassSchedule{ID: "c00001", FeePerSession: 200000}
	student := &model.Student{
		ID:         "s00001",
		ClassID:    "c00001",
		Status:     model.StatusActive,
		EnrollDate: "2024-01-01",
	}
	extras := []*model.ExtraSession{
		{ID: "e00001", StudentID: "s00001", Date: "2024-01-03"},
		{ID: "e00002", StudentID: "s00001", Date: "2024-01-08"},
		{ID: "e00003", StudentID: "s00001", Date: "2024-01-15"},
		{ID: "e00004", StudentID: "s00001", Date: "2024-01-22"},
		{ID: "e00005", StudentID: "s00001", Date: "2024-01-29"},
	}
	payments := []*model.Payment{
		{ID: "f00001", StudentID: "s00001", Amount: 500000, Date: "2024-01-10"},
		{ID: "f00002", StudentID: "s00001", Amount: 300000, Date: "2024-01-20"},
	}

	snap := NewSnapshot([]*model.Student{student}, []*model.ClassSchedule{class}, extras, payments, nil, nil)

	st, err := Statement(snap, "s00001", 2024, time.January)
	require.NoError(t, err)
	assert.Equal(t, 5, st.ExtraCount)
	assert.Equal(t, int64(1000000), st.TotalExtraFee)
	assert.Equal(t, int64(800000), st.TotalPaid)
	assert.Equal(t, int64(200000), st.Balance)
	assert.Equal(t, model.StatementOwing, st.Status)

	// A third payment flips the student into credit.
	payments = append(payments, &model.Payment{ID: "f00003", StudentID: "s00001", Amount: 300000, Date: "2024-01-25"})
	snap = NewSnapshot([]*model.Student{student}, []*model.ClassSchedule{class}, extras, payments, nil, nil)

	st, err = Statement(snap, "s00001", 2024, time.January)
	require.NoError(t, err)
	assert.Equal(t, int64(-100000), st.Balance)
	assert.Equal(t, model.StatementCompleted, st.Status)
}

func TestStatement_CumulativeBalanceAcrossMonths(t *testing.T) {
	// Monday mornings, enrolled 2023-11-01. Mondays: 4 in November,
	// 4 in December (promoted 50%), 5 in January.
	class := &model.ClassSchedule{
		ID:            "c00001",
		FeePerSession: 100000,
		Pattern: model.WeeklyPattern{
			Morning: []model.Weekday{model.Monday},
		},
	}
	student := &model.Student{
		ID:         "s00001",
		ClassID:    "c00001",
		Status:     model.StatusActive,
		EnrollDate: "2023-11-01",
	}
	promos := []*model.Promotion{
		{ID: "p00001", ClassID: "c00001", Month: "2023-12", DiscountRate: 0.5},
	}
	payments := []*model.Payment{
		{ID: "f00001", StudentID: "s00001", Amount: 1000000, Date: "2023-12-05"},
	}

	snap := NewSnapshot([]*model.Student{student}, []*model.ClassSchedule{class}, nil, payments, nil, promos)

	st, err := Statement(snap, "s00001", 2024, time.January)
	require.NoError(t, err)

	// 400000 + 200000 + 500000 incurred, 1000000 paid.
	assert.Equal(t, 5, st.ScheduledCount)
	assert.Equal(t, int64(100000), st.Balance)
	assert.Equal(t, model.StatementOwing, st.Status)
}

func TestStatement_ExtraUsesItsOwnMonthPromotion(t *testing.T) {
	// A December make-up carried into a January statement keeps the
	// December promotion rate. No scheduled sessions, so the balance
	// is exactly the discounted extra: 100000 × 0.5.
	class := &model.ClassSchedule{ID: "c00001", FeePerSession: 100000}
	student := &model.Student{
		ID:         "s00001",
		ClassID:    "c00001",
		Status:     model.StatusActive,
		EnrollDate: "2023-12-01",
	}
	extras := []*model.ExtraSession{
		{ID: "e00001", StudentID: "s00001", Date: "2023-12-15"},
	}
	promos := []*model.Promotion{
		{ID: "p00001", ClassID: "c00001", Month: "2023-12", DiscountRate: 0.5},
		{ID: "p00002", ClassID: "c00001", Month: "2024-01", DiscountRate: 0.9},
	}

	snap := NewSnapshot([]*model.Student{student}, []*model.ClassSchedule{class}, extras, nil, nil, promos)

	st, err := Statement(snap, "s00001", 2024, time.January)
	require.NoError(t, err)

	assert.Equal(t, int64(50000), st.Balance)
	assert.Equal(t, model.StatementOwing, st.Status)
}

func TestStatement_ExtraInsideMonthOutsideActiveWindow(t *testing.T) {
	// The student withdrew on the 10th; a make-up on the 20th still
	// shows in the month's figures but not in the balance.
	class := &model.ClassSchedule{ID: "c00001", FeePerSession: 200000}
	student := &model.Student{
		ID:         "s00001",
		ClassID:    "c00001",
		Status:     model.StatusWithdrawn,
		EnrollDate: "2023-12-01",
		LeaveDate:  "2024-01-10",
	}
	extras := []*model.ExtraSession{
		{ID: "e00001", StudentID: "s00001", Date: "2024-01-20", Fee: feeOverride(250000)},
	}

	snap := NewSnapshot([]*model.Student{student}, []*model.ClassSchedule{class}, extras, nil, nil, nil)

	st, err := Statement(snap, "s00001", 2024, time.January)
	require.NoError(t, err)

	assert.Equal(t, 1, st.ExtraCount)
	assert.Equal(t, int64(250000), st.TotalExtraFee)
	assert.Equal(t, int64(0), st.Balance, "extra after leave date must not accrue")
}

func TestStatement_MissingClassFailsSoft(t *testing.T) {
	student := &model.Student{
		ID:         "s00001",
		ClassID:    "c-gone",
		Status:     model.StatusActive,
		EnrollDate: "2024-01-01",
	}

	snap := NewSnapshot([]*model.Student{student}, nil, nil, nil, nil, nil)

	st, err := Statement(snap, "s00001", 2024, time.January)
	require.NoError(t, err)
	assert.Equal(t, model.StatementNA, st.Status)
	assert.Equal(t, 0, st.ScheduledCount)
	assert.Equal(t, int64(0), st.TuitionDue)
	assert.Equal(t, int64(0), st.Balance)
}

func TestStatement_MissingStudent(t *testing.T) {
	snap := NewSnapshot(nil, nil, nil, nil, nil, nil)

	_, err := Statement(snap, "s00099", 2024, time.January)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStatement_Idempotent(t *testing.T) {
	class := mwfClass(200000)
	student := &model.Student{
		ID:           "s00001",
		ClassID:      "c00001",
		Status:       model.StatusActive,
		EnrollDate:   "2023-10-05",
		DiscountRate: 0.07,
	}
	extras := []*model.ExtraSession{
		{ID: "e00001", StudentID: "s00001", Date: "2024-01-13", Fee: feeOverride(180000)},
	}
	payments := []*model.Payment{
		{ID: "f00001", StudentID: "s00001", Amount: 4000000, Date: "2023-12-01"},
	}
	holidays := []*model.Holiday{
		{ID: "h00001", Date: "2023-12-25", EndDate: "2024-01-01", Type: model.HolidayGlobalClosure},
	}

	snap := NewSnapshot([]*model.Student{student}, []*model.ClassSchedule{class}, extras, payments, holidays, nil)

	first, err := Statement(snap, "s00001", 2024, time.January)
	require.NoError(t, err)
	second, err := Statement(snap, "s00001", 2024, time.January)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStatement_DiscountMonotonicity(t *testing.T) {
	class := mwfClass(200000)
	extras := []*model.ExtraSession{
		{ID: "e00001", StudentID: "s00001", Date: "2024-01-13"},
	}

	dueAt := func(rate float64) (int64, int64) {
		student := &model.Student{
			ID:           "s00001",
			ClassID:      "c00001",
			Status:       model.StatusActive,
			EnrollDate:   "2023-11-01",
			DiscountRate: rate,
		}
		snap := NewSnapshot([]*model.Student{student}, []*model.ClassSchedule{class}, extras, nil, nil, nil)
		st, err := Statement(snap, "s00001", 2024, time.January)
		require.NoError(t, err)
		return st.TuitionDue, st.Balance
	}

	prevDue, prevBalance := dueAt(0)
	for _, rate := range []float64{0.05, 0.1, 0.25, 0.5, 0.9, 1} {
		due, balance := dueAt(rate)
		assert.LessOrEqual(t, due, prevDue, "rate %v", rate)
		assert.LessOrEqual(t, balance, prevBalance, "rate %v", rate)
		prevDue, prevBalance = due, balance
	}
}

func TestStatement_MonthScopedStudentDiscount(t *testing.T) {
	// The personal discount only applies in its listed months.
	class := &model.ClassSchedule{
		ID:            "c00001",
		FeePerSession: 100000,
		Pattern: model.WeeklyPattern{
			Morning: []model.Weekday{model.Monday},
		},
	}
	student := &model.Student{
		ID:             "s00001",
		ClassID:        "c00001",
		Status:         model.StatusActive,
		EnrollDate:     "2024-01-01",
		DiscountRate:   0.5,
		DiscountMonths: []model.Month{"2024-02"},
	}

	snap := NewSnapshot([]*model.Student{student}, []*model.ClassSchedule{class}, nil, nil, nil, nil)

	jan, err := Statement(snap, "s00001", 2024, time.January)
	require.NoError(t, err)
	// 5 Mondays in January 2024, no discount that month.
	assert.Equal(t, int64(500000), jan.ScheduledTuition)

	feb, err := Statement(snap, "s00001", 2024, time.February)
	require.NoError(t, err)
	// 4 Mondays in February 2024, halved.
	assert.Equal(t, int64(200000), feb.ScheduledTuition)
}
