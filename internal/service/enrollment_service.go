package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/thanhdat-89/qlhv-sub000/internal/model"
	"github.com/thanhdat-89/qlhv-sub000/internal/repository"
)

// EnrollmentService runs the periodic status maintenance: students
// keep the newly-enrolled badge for 30 days after their enroll date,
// then become active unless they withdrew first.
type EnrollmentService struct {
	studentRepo *repository.StudentRepository
	logger      *zap.Logger
}

func NewEnrollmentService(studentRepo *repository.StudentRepository, logger *zap.Logger) *EnrollmentService {
	return &EnrollmentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// ActivateMatured promotes every newly-enrolled student whose enroll
// date is more than 30 days before now. Returns how many were
// promoted.
func (s *EnrollmentService) ActivateMatured(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.AddDate(0, 0, -30)

	students, err := s.studentRepo.ListNewlyEnrolledBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list newly enrolled: %w", err)
	}

	promoted := 0
	for _, student := range students {
		if student.EffectiveStatus(now) != model.StatusActive {
			continue
		}
		if err := s.studentRepo.UpdateStatus(ctx, student.ID, model.StatusActive); err != nil {
			return promoted, fmt.Errorf("activate student %s: %w", student.ID, err)
		}
		promoted++

		s.logger.Info("Student auto-activated",
			zap.String("student_id", student.ID),
			zap.String("enroll_date", string(student.EnrollDate)),
		)
	}

	return promoted, nil
}
