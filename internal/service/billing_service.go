package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/thanhdat-89/qlhv-sub000/internal/billing"
	"github.com/thanhdat-89/qlhv-sub000/internal/model"
	"github.com/thanhdat-89/qlhv-sub000/internal/repository"
)

// BillingService loads an immutable snapshot from the repositories and
// runs the pure billing engine over it. One snapshot per call batch:
// everything committed before the load is visible, later mutations are
// not; callers that cache results key on snapshot.Version.
type BillingService struct {
	studentRepo *repository.StudentRepository
	classRepo   *repository.ClassRepository
	extraRepo   *repository.ExtraSessionRepository
	paymentRepo *repository.PaymentRepository
	holidayRepo *repository.HolidayRepository
	promoRepo   *repository.PromotionRepository
	logger      *zap.Logger
}

func NewBillingService(
	studentRepo *repository.StudentRepository,
	classRepo *repository.ClassRepository,
	extraRepo *repository.ExtraSessionRepository,
	paymentRepo *repository.PaymentRepository,
	holidayRepo *repository.HolidayRepository,
	promoRepo *repository.PromotionRepository,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		studentRepo: studentRepo,
		classRepo:   classRepo,
		extraRepo:   extraRepo,
		paymentRepo: paymentRepo,
		holidayRepo: holidayRepo,
		promoRepo:   promoRepo,
		logger:      logger,
	}
}

// LoadSnapshot reads all records the engine needs.
func (s *BillingService) LoadSnapshot(ctx context.Context) (*billing.Snapshot, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load classes: %w", err)
	}
	extras, err := s.extraRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load extra sessions: %w", err)
	}
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load holidays: %w", err)
	}
	promotions, err := s.promoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load promotions: %w", err)
	}

	snap := billing.NewSnapshot(students, classes, extras, payments, holidays, promotions)

	s.logger.Debug("Snapshot loaded",
		zap.String("version", snap.Version.String()),
		zap.Int("students", len(students)),
		zap.Int("classes", len(classes)),
	)

	return snap, nil
}

// StatementFor computes one student's statement for the target month.
func (s *BillingService) StatementFor(ctx context.Context, studentID string, year int, month time.Month) (*model.TuitionStatement, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	statement, err := billing.Statement(snap, studentID, year, month)
	if err != nil {
		return nil, fmt.Errorf("statement for %s: %w", studentID, err)
	}

	return statement, nil
}

// MonthlyReport computes statements for every student over a single
// snapshot, in student id order.
func (s *BillingService) MonthlyReport(ctx context.Context, year int, month time.Month) ([]*model.TuitionStatement, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	statements := make([]*model.TuitionStatement, 0, len(snap.Students))
	for _, student := range snap.Students {
		statement, err := billing.Statement(snap, student.ID, year, month)
		if err != nil {
			return nil, fmt.Errorf("statement for %s: %w", student.ID, err)
		}
		statements = append(statements, statement)
	}

	return statements, nil
}

// Debtors returns the statements of students still owing for the
// target month, in student id order.
func (s *BillingService) Debtors(ctx context.Context, year int, month time.Month) ([]*model.TuitionStatement, error) {
	statements, err := s.MonthlyReport(ctx, year, month)
	if err != nil {
		return nil, err
	}

	var owing []*model.TuitionStatement
	for _, st := range statements {
		if st.Status == model.StatementOwing {
			owing = append(owing, st)
		}
	}

	return owing, nil
}
