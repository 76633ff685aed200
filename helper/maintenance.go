package helper

import (
	"log"
	"time"

	"kost_market/database"
	"kost_market/model"

	"github.com/robfig/cron/v3"
)

var maintenanceScheduler *cron.Cron

// StartMaintenanceScheduler purges expired password-reset tokens hourly.
func StartMaintenanceScheduler() {
	maintenanceScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := maintenanceScheduler.AddFunc("@hourly", purgeExpiredResetTokens)
	if err != nil {
		log.Printf("failed to start maintenance scheduler: %v", err)
		return
	}

	maintenanceScheduler.Start()
	log.Println("Maintenance scheduler started (hourly)")
}

func purgeExpiredResetTokens() {
	result := database.DB.
		Where("expires_at < ?", time.Now()).
		Delete(&model.PasswordResetToken{})

	if result.Error != nil {
		log.Printf("failed to purge reset tokens: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("purged %d expired reset tokens", result.RowsAffected)
	}
}

func StopMaintenanceScheduler() {
	if maintenanceScheduler != nil {
		maintenanceScheduler.Stop()
		log.Println("Maintenance scheduler stopped")
	}
}
