package services

import (
	"context"
	"log"

	"masterdesk/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron             *cron.Cron
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewCronService creates a new cron service
func NewCronService(refreshTokenRepo repositories.RefreshTokenRepository) *CronService {
	return &CronService{
		cron:             cron.New(),
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Start registers the jobs and starts the scheduler
func (s *CronService) Start() error {
	// Purge expired refresh tokens nightly at 02:00
	if _, err := s.cron.AddFunc("0 2 * * *", s.purgeExpiredTokens); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Cron service started")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("✅ Cron service stopped")
}

func (s *CronService) purgeExpiredTokens() {
	if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("❌ Failed to purge expired refresh tokens: %v", err)
		return
	}
	log.Println("✅ Expired refresh tokens purged")
}
