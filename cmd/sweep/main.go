// cmd/sweep/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/verifield/credplane/internal/config"
	"github.com/verifield/credplane/internal/event"
	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/notify"
	"github.com/verifield/credplane/internal/repository"
	"github.com/verifield/credplane/internal/service"
)

// Out-of-band runner for the license expiration sweep, for operators and
// schedulers that are not wired to the HTTP trigger.
func main() {
	var (
		dryRun  = flag.Bool("dry-run", false, "Report expirations and notices without mutating or sending anything")
		asOfArg = flag.String("as-of", "", "Override the sweep reference time (RFC3339); defaults to now")
		timeout = flag.Duration("timeout", 10*time.Minute, "Maximum time for the sweep run")
	)
	flag.Parse()

	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	cfg := config.Load()

	asOf := time.Now().UTC()
	if *asOfArg != "" {
		parsed, err := time.Parse(time.RFC3339, *asOfArg)
		if err != nil {
			logger.Error("invalid -as-of value", "value", *asOfArg, "error", err)
			os.Exit(1)
		}
		asOf = parsed.UTC()
	}

	db, err := setupDatabase(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	licenseRepo := repository.NewLicenseRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *dryRun {
		reportOnly(ctx, logger, licenseRepo, asOf)
		return
	}

	var notifier notify.Notifier = notify.LogNotifier{Logger: logger}
	if cfg.Sendgrid.APIKey != "" {
		mailService, err := notify.NewService(cfg, notify.ProviderSendgrid)
		if err != nil {
			logger.Error("failed to initialize mail service", "error", err)
			os.Exit(1)
		}
		notifier = notify.NewEmailNotifier(mailService, cfg.MailFrom)
	}

	alertService := service.NewAlertService(licenseRepo, notifier, event.SlogEmitter{Logger: logger}, logger)

	result, err := alertService.RunSweep(ctx, asOf)
	if err != nil {
		logger.Error("sweep failed", "error", err)
		os.Exit(1)
	}

	logger.Info("sweep completed",
		"checked", result.Checked,
		"expired", result.Expired,
		"notifications_sent", result.NotificationsSent,
	)
}

// reportOnly prints what the sweep would do without touching anything.
func reportOnly(ctx context.Context, logger *slog.Logger, licenseRepo repository.LicenseRepositoryIface, asOf time.Time) {
	licenses, err := licenseRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load licenses", "error", err)
		os.Exit(1)
	}

	wouldExpire := 0
	for _, license := range licenses {
		if service.DaysUntilExpiration(license.ExpirationDate, asOf) < 0 && license.Status == model.LicenseActive {
			wouldExpire++
			logger.Info("would expire", "license_id", license.ID, "license_number", license.LicenseNumber)
		}
	}
	for _, notice := range service.BoundaryNotices(licenses, asOf) {
		logger.Info("would notify",
			"license_id", notice.LicenseID,
			"days_until_expiration", notice.DaysUntilExpiration,
			"provider_email", notice.ProviderEmail,
		)
	}

	logger.Info("dry run completed", "checked", len(licenses), "would_expire", wouldExpire)
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, nil
}
