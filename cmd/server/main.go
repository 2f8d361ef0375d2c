package main

import (
	"fmt"
	"log"

	"labelcheck/internal/barcode"
	"labelcheck/internal/config"
	"labelcheck/internal/email/noop"
	"labelcheck/internal/email/ses"
	"labelcheck/internal/export"
	"labelcheck/internal/handler"
	"labelcheck/internal/lookup"
	"labelcheck/internal/ocr"
	"labelcheck/internal/port"
	"labelcheck/internal/repository/postgres"
	"labelcheck/internal/router"
	"labelcheck/internal/scrape"
	"labelcheck/internal/service"
	s3storage "labelcheck/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	recordRepo := postgres.NewRecordRepo(db)
	complaintRepo := postgres.NewComplaintRepo(db)

	// Image archiving is optional
	var storage port.ObjectStorage
	if cfg.S3.Enabled {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Complaint notifications
	var notifier port.ComplaintNotifier
	if cfg.Email.Provider == "ses" {
		notifier, err = ses.NewSESNotifier(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.InboxAddress)
		if err != nil {
			return fmt.Errorf("failed to initialize SES notifier: %w", err)
		}
	} else {
		notifier = noop.NewNoopNotifier()
	}

	// Label text acquisition adapters
	recognizer := ocr.NewTesseractRecognizer(cfg.OCR.Binary, cfg.OCR.Language)
	decoder := barcode.NewZbarDecoder(cfg.Barcode.Binary)
	scraper := scrape.NewScraper(cfg.Scrape.TimeoutSecs)
	productLookup := lookup.NewChain(
		[]port.ProductLookup{
			lookup.NewOpenFoodFactsClient(cfg.Lookup.TimeoutSecs),
			lookup.NewCSVDatabase(cfg.Lookup.ProductsCSV),
		},
		[]string{"OpenFoodFacts API", "Local Database"},
	)

	appender := export.NewAppender(cfg.Records.CSVPath)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	checkSvc := service.NewCheckService(recordRepo, recognizer, decoder, productLookup, scraper, storage, appender, &cfg.S3)
	recordSvc := service.NewRecordService(recordRepo, storage, &cfg.S3)
	complaintSvc := service.NewComplaintService(complaintRepo, notifier)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc, userSvc)
	checkH := handler.NewCheckHandler(checkSvc)
	recordH := handler.NewRecordHandler(recordSvc)
	complaintH := handler.NewComplaintHandler(complaintSvc)
	userH := handler.NewUserHandler(userSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, authSvc, authH, checkH, recordH, complaintH, userH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
