package service

import "errors"

var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrClassNotFound        = errors.New("class not found")
	ErrExtraSessionNotFound = errors.New("extra session not found")
	ErrHolidayNotFound      = errors.New("holiday not found")
	ErrPromotionNotFound    = errors.New("promotion not found")
	ErrPaymentNotFound      = errors.New("payment not found")

	// ErrClassHasStudents blocks class deletion while any student
	// still references the class.
	ErrClassHasStudents = errors.New("class still has students")

	ErrInvalidDiscountRate = errors.New("discount rate must be in [0,1]")
	ErrInvalidWeekday      = errors.New("invalid weekday code")
	ErrInvalidMonth        = errors.New("invalid month, expected YYYY-MM")
	ErrLeaveDateRequired   = errors.New("leave date required for withdrawn student")
)
