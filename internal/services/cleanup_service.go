package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/thegrihome/grihome-api/internal/repositories"
	"github.com/thegrihome/grihome-api/internal/utils"
)

// CleanupService periodically removes expired verification codes.
type CleanupService struct {
	codeRepo repositories.VerificationCodeRepository
	cron     *cron.Cron
}

func NewCleanupService(codeRepo repositories.VerificationCodeRepository) *CleanupService {
	return &CleanupService{
		codeRepo: codeRepo,
		cron:     cron.New(),
	}
}

func (s *CleanupService) Start() error {
	_, err := s.cron.AddFunc("@hourly", s.run)
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *CleanupService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *CleanupService) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.codeRepo.DeleteExpired(ctx)
	if err != nil {
		utils.Logger.WithError(err).Error("verification code cleanup failed")
		return
	}
	if removed > 0 {
		utils.Logger.WithField("removed", removed).Info("expired verification codes removed")
	}
}
