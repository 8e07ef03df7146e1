package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/thanhdat-89/qlhv-sub000/internal/model"
	"github.com/thanhdat-89/qlhv-sub000/internal/repository"
)

// RegistryService owns record lifecycle: sequential id assignment,
// validation, and referential integrity on delete. Cascade deletes
// (student → payments + extra sessions, class → class-scoped
// holidays) are enforced by the schema's foreign keys; this layer adds
// the guards and the friendly errors. Credential checks for deletes
// happen out of band, before calls reach this service.
type RegistryService struct {
	classRepo   *repository.ClassRepository
	studentRepo *repository.StudentRepository
	extraRepo   *repository.ExtraSessionRepository
	holidayRepo *repository.HolidayRepository
	promoRepo   *repository.PromotionRepository
	paymentRepo *repository.PaymentRepository
	seqRepo     *repository.SequenceRepository
	logger      *zap.Logger
}

func NewRegistryService(
	classRepo *repository.ClassRepository,
	studentRepo *repository.StudentRepository,
	extraRepo *repository.ExtraSessionRepository,
	holidayRepo *repository.HolidayRepository,
	promoRepo *repository.PromotionRepository,
	paymentRepo *repository.PaymentRepository,
	seqRepo *repository.SequenceRepository,
	logger *zap.Logger,
) *RegistryService {
	return &RegistryService{
		classRepo:   classRepo,
		studentRepo: studentRepo,
		extraRepo:   extraRepo,
		holidayRepo: holidayRepo,
		promoRepo:   promoRepo,
		paymentRepo: paymentRepo,
		seqRepo:     seqRepo,
		logger:      logger,
	}
}

func (s *RegistryService) nextID(ctx context.Context, prefix string) (string, error) {
	seq, err := s.seqRepo.Next(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("allocate id: %w", err)
	}
	return FormatID(prefix, seq), nil
}

// CreateClass registers a class schedule.
func (s *RegistryService) CreateClass(ctx context.Context, name string, feePerSession int64, pattern model.WeeklyPattern) (*model.ClassSchedule, error) {
	if err := validatePattern(pattern); err != nil {
		return nil, err
	}

	id, err := s.nextID(ctx, PrefixClass)
	if err != nil {
		return nil, err
	}

	class := &model.ClassSchedule{
		ID:            id,
		Name:          name,
		FeePerSession: feePerSession,
		Pattern:       pattern,
	}

	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}

	s.logger.Info("Class created",
		zap.String("class_id", class.ID),
		zap.String("name", name),
		zap.Int64("fee_per_session", feePerSession),
	)

	return class, nil
}

// UpdateClass rewrites an existing class.
func (s *RegistryService) UpdateClass(ctx context.Context, class *model.ClassSchedule) error {
	if err := validatePattern(class.Pattern); err != nil {
		return err
	}

	existing, err := s.classRepo.GetByID(ctx, class.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrClassNotFound
	}

	return s.classRepo.Update(ctx, class)
}

// DeleteClass removes a class. Refused while any student still
// references it. Class-scoped holidays cascade; promotions are left
// dangling on purpose; reporting shows their class as deleted.
func (s *RegistryService) DeleteClass(ctx context.Context, id string) error {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if class == nil {
		return ErrClassNotFound
	}

	count, err := s.studentRepo.CountByClassID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrClassHasStudents
	}

	if err := s.classRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Class deleted", zap.String("class_id", id))
	return nil
}

// EnrollStudent registers a student into a class. New students start
// as newly-enrolled; the background pass promotes them to active after
// 30 days.
func (s *RegistryService) EnrollStudent(ctx context.Context, student *model.Student) (*model.Student, error) {
	if student.DiscountRate < 0 || student.DiscountRate > 1 {
		return nil, ErrInvalidDiscountRate
	}

	class, err := s.classRepo.GetByID(ctx, student.ClassID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrClassNotFound
	}

	id, err := s.nextID(ctx, PrefixStudent)
	if err != nil {
		return nil, err
	}
	student.ID = id
	if student.Status == "" {
		student.Status = model.StatusNewlyEnrolled
	}
	if student.EnrollDate.IsZero() {
		student.EnrollDate = model.Today()
	}
	if student.Status != model.StatusWithdrawn {
		student.LeaveDate = ""
	} else if student.LeaveDate.IsZero() {
		return nil, ErrLeaveDateRequired
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info("Student enrolled",
		zap.String("student_id", student.ID),
		zap.String("class_id", student.ClassID),
		zap.String("enroll_date", string(student.EnrollDate)),
	)

	return student, nil
}

// UpdateStudent rewrites a student, keeping the leave-date invariant:
// set if and only if withdrawn.
func (s *RegistryService) UpdateStudent(ctx context.Context, student *model.Student) error {
	if student.DiscountRate < 0 || student.DiscountRate > 1 {
		return ErrInvalidDiscountRate
	}

	existing, err := s.studentRepo.GetByID(ctx, student.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrStudentNotFound
	}

	class, err := s.classRepo.GetByID(ctx, student.ClassID)
	if err != nil {
		return err
	}
	if class == nil {
		return ErrClassNotFound
	}

	if student.Status == model.StatusWithdrawn {
		if student.LeaveDate.IsZero() {
			return ErrLeaveDateRequired
		}
	} else {
		student.LeaveDate = ""
	}

	return s.studentRepo.Update(ctx, student)
}

// WithdrawStudent marks a student withdrawn as of leaveDate.
func (s *RegistryService) WithdrawStudent(ctx context.Context, id string, leaveDate model.Date) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		return ErrStudentNotFound
	}
	if leaveDate.IsZero() {
		return ErrLeaveDateRequired
	}

	student.Status = model.StatusWithdrawn
	student.LeaveDate = leaveDate

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return err
	}

	s.logger.Info("Student withdrawn",
		zap.String("student_id", id),
		zap.String("leave_date", string(leaveDate)),
	)

	return nil
}

// DeleteStudent removes a student together with their payments and
// extra sessions (schema-level cascade).
func (s *RegistryService) DeleteStudent(ctx context.Context, id string) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		return ErrStudentNotFound
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Student deleted with payments and extra sessions",
		zap.String("student_id", id),
	)

	return nil
}

// AddExtraSession records an ad-hoc billable session for a student.
func (s *RegistryService) AddExtraSession(ctx context.Context, studentID string, date model.Date, fee *int64, note string) (*model.ExtraSession, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	id, err := s.nextID(ctx, PrefixExtraSession)
	if err != nil {
		return nil, err
	}

	session := &model.ExtraSession{
		ID:        id,
		StudentID: studentID,
		Date:      date,
		Fee:       fee,
		Note:      note,
	}

	if err := s.extraRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Extra session added",
		zap.String("session_id", id),
		zap.String("student_id", studentID),
		zap.String("date", string(date)),
	)

	return session, nil
}

// UpdateExtraSession rewrites an extra session.
func (s *RegistryService) UpdateExtraSession(ctx context.Context, session *model.ExtraSession) error {
	existing, err := s.extraRepo.GetByID(ctx, session.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrExtraSessionNotFound
	}

	return s.extraRepo.Update(ctx, session)
}

// DeleteExtraSession removes an extra session.
func (s *RegistryService) DeleteExtraSession(ctx context.Context, id string) error {
	session, err := s.extraRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrExtraSessionNotFound
	}

	return s.extraRepo.Delete(ctx, id)
}

// AddHoliday records a non-teaching date range. A holiday without a
// class id closes the whole center.
func (s *RegistryService) AddHoliday(ctx context.Context, holiday *model.Holiday) (*model.Holiday, error) {
	if holiday.ClassID != "" {
		class, err := s.classRepo.GetByID(ctx, holiday.ClassID)
		if err != nil {
			return nil, err
		}
		if class == nil {
			return nil, ErrClassNotFound
		}
	}

	id, err := s.nextID(ctx, PrefixHoliday)
	if err != nil {
		return nil, err
	}
	holiday.ID = id
	holiday.Normalize()
	if holiday.Type == "" {
		if holiday.ClassID == "" {
			holiday.Type = model.HolidayGlobalClosure
		} else {
			holiday.Type = model.HolidayClassWide
		}
	}

	if err := s.holidayRepo.Create(ctx, holiday); err != nil {
		return nil, err
	}

	s.logger.Info("Holiday added",
		zap.String("holiday_id", id),
		zap.String("from", string(holiday.Date)),
		zap.String("to", string(holiday.EndDate)),
		zap.String("class_id", holiday.ClassID),
	)

	return holiday, nil
}

// UpdateHoliday rewrites a holiday.
func (s *RegistryService) UpdateHoliday(ctx context.Context, holiday *model.Holiday) error {
	existing, err := s.holidayRepo.GetByID(ctx, holiday.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrHolidayNotFound
	}

	return s.holidayRepo.Update(ctx, holiday)
}

// DeleteHoliday removes a holiday.
func (s *RegistryService) DeleteHoliday(ctx context.Context, id string) error {
	holiday, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if holiday == nil {
		return ErrHolidayNotFound
	}

	return s.holidayRepo.Delete(ctx, id)
}

// AddPromotion records a month-scoped class discount.
func (s *RegistryService) AddPromotion(ctx context.Context, classID string, month model.Month, rate float64, description string) (*model.Promotion, error) {
	if rate < 0 || rate > 1 {
		return nil, ErrInvalidDiscountRate
	}
	if !month.Valid() {
		return nil, ErrInvalidMonth
	}

	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrClassNotFound
	}

	id, err := s.nextID(ctx, PrefixPromotion)
	if err != nil {
		return nil, err
	}

	promotion := &model.Promotion{
		ID:           id,
		ClassID:      classID,
		Month:        month,
		DiscountRate: rate,
		Description:  description,
	}

	if err := s.promoRepo.Create(ctx, promotion); err != nil {
		return nil, err
	}

	s.logger.Info("Promotion added",
		zap.String("promotion_id", id),
		zap.String("class_id", classID),
		zap.String("month", string(month)),
		zap.Float64("rate", rate),
	)

	return promotion, nil
}

// UpdatePromotion rewrites a promotion.
func (s *RegistryService) UpdatePromotion(ctx context.Context, promotion *model.Promotion) error {
	if promotion.DiscountRate < 0 || promotion.DiscountRate > 1 {
		return ErrInvalidDiscountRate
	}

	existing, err := s.promoRepo.GetByID(ctx, promotion.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPromotionNotFound
	}

	return s.promoRepo.Update(ctx, promotion)
}

// DeletePromotion removes a promotion.
func (s *RegistryService) DeletePromotion(ctx context.Context, id string) error {
	promotion, err := s.promoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if promotion == nil {
		return ErrPromotionNotFound
	}

	return s.promoRepo.Delete(ctx, id)
}

// RecordPayment appends a payment to the student's ledger.
func (s *RegistryService) RecordPayment(ctx context.Context, studentID string, amount int64, date model.Date, method model.PaymentMethod) (*model.Payment, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	id, err := s.nextID(ctx, PrefixPayment)
	if err != nil {
		return nil, err
	}

	payment := &model.Payment{
		ID:        id,
		StudentID: studentID,
		Amount:    amount,
		Date:      date,
		Method:    method,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Payment recorded",
		zap.String("payment_id", id),
		zap.String("student_id", studentID),
		zap.Int64("amount", amount),
	)

	return payment, nil
}

// DeletePayment removes a mistaken payment entry.
func (s *RegistryService) DeletePayment(ctx context.Context, id string) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}

	return s.paymentRepo.Delete(ctx, id)
}

func validatePattern(pattern model.WeeklyPattern) error {
	for _, bucket := range [][]model.Weekday{pattern.Morning, pattern.Afternoon, pattern.Evening} {
		for _, wd := range bucket {
			if !model.ValidWeekday(string(wd)) {
				return ErrInvalidWeekday
			}
		}
	}
	return nil
}
