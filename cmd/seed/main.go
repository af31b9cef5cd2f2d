// Command seed replaces every table's contents with sample data.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"club-site.backend/internal/config"
	"club-site.backend/internal/infrastructure/database"
	"club-site.backend/internal/infrastructure/models"
	"club-site.backend/internal/infrastructure/repositories"
	"club-site.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = database.Open
)

type summary struct {
	Executives, Sponsors, InterestSubmissions, SponsorInquiries int
}

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := loadCfg()
	initLog(cfg.Server.Env)
	defer logger.Sync()

	db, err := openDB(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}

	s, err := seed(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	logger.Info(ctx, "Database seeded",
		zap.Int("executives", s.Executives),
		zap.Int("sponsors", s.Sponsors),
		zap.Int("interestSubmissions", s.InterestSubmissions),
		zap.Int("sponsorInquiries", s.SponsorInquiries),
	)
	if !cfg.Admin.Configured() {
		logger.Warn(ctx, "ADMIN_USER or ADMIN_PASS is not set; generate a hash with cmd/hash-gen")
	}
	return nil
}

// seed clears and refills every table in one transaction.
func seed(ctx context.Context, db *gorm.DB) (summary, error) {
	executives := repositories.NewExecutiveRepository(db)
	sponsors := repositories.NewSponsorRepository(db)
	interests := repositories.NewInterestSubmissionRepository(db)
	inquiries := repositories.NewSponsorInquiryRepository(db)

	var s summary
	err := repositories.NewUnitOfWork(db).Do(ctx, func(ctx context.Context) error {
		tx := repositories.GetDB(ctx, db)
		for _, m := range models.All() {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return fmt.Errorf("clear %T: %w", m, err)
			}
		}

		for _, e := range seedExecutives() {
			if err := executives.Create(ctx, e); err != nil {
				return fmt.Errorf("executive %q: %w", e.Name, err)
			}
			s.Executives++
		}
		for _, sp := range seedSponsors() {
			if err := sponsors.Create(ctx, sp); err != nil {
				return fmt.Errorf("sponsor %q: %w", sp.Name, err)
			}
			s.Sponsors++
		}
		for _, sub := range seedInterestSubmissions() {
			if err := interests.Create(ctx, sub); err != nil {
				return fmt.Errorf("interest submission %q: %w", sub.Email, err)
			}
			s.InterestSubmissions++
		}
		for _, inq := range seedSponsorInquiries() {
			if err := inquiries.Create(ctx, inq); err != nil {
				return fmt.Errorf("sponsor inquiry %q: %w", inq.Email, err)
			}
			s.SponsorInquiries++
		}
		return nil
	})
	return s, err
}
