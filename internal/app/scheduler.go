package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/thanhdat-89/qlhv-sub000/internal/service"
)

// Scheduler runs the daily maintenance tasks in the background.
type Scheduler struct {
	enrollmentService *service.EnrollmentService
	logger            *zap.Logger
	stopChan          chan struct{}
}

func NewScheduler(enrollmentService *service.EnrollmentService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		enrollmentService: enrollmentService,
		logger:            logger,
		stopChan:          make(chan struct{}),
	}
}

// Start launches the background tasks.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")

	go s.runStatusPromotionTask(ctx)
}

// Stop stops the background tasks.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runStatusPromotionTask promotes matured newly-enrolled students to
// active, once at startup and then daily.
func (s *Scheduler) runStatusPromotionTask(ctx context.Context) {
	s.promoteStatuses(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.promoteStatuses(ctx)
		case <-s.stopChan:
			s.logger.Info("Status promotion task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Status promotion task cancelled")
			return
		}
	}
}

func (s *Scheduler) promoteStatuses(ctx context.Context) {
	promoted, err := s.enrollmentService.ActivateMatured(ctx, time.Now())
	if err != nil {
		s.logger.Error("Failed to promote student statuses", zap.Error(err))
		return
	}

	if promoted > 0 {
		s.logger.Info("Student statuses promoted", zap.Int("count", promoted))
	}
}
