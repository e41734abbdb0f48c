// @title           Terrawise Ventures API
// @version         1.0
// @description     Backend for the Terrawise land development marketing site: project catalog, enquiry intake, marketing agent portal and admin dashboard
// @BasePath        /api
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/app/routes"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/database"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/metrics"
	Logger "github.com/Niketh-Putta/Terrawise-Ventures/pkg/logger"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logger: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		Logger.Warning("no .env file loaded: %v", err)
	} else {
		Logger.Info(".env file loaded")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to create database pool: %v", err)
	}
	db := pool.GetDB()

	if cfg.DBMigrationMode == "drop" {
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("drop and recreate tables: %v", err)
		}
	} else {
		log.Println("running standard migration, only new columns and tables are added")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("auto migration: %v", err)
		}
	}

	seedDatabase(db)

	adminService := services.NewAdminService(db, cfg)
	if err := adminService.EnsureAdminExists(); err != nil {
		log.Fatalf("ensure admin exists: %v", err)
	}

	var redisClient *redis.Client
	if cfg.GetRedisAddr() != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.GetRedisAddr(),
			DB:   cfg.RedisDB,
		})
	}

	r := routes.SetupRouter(db, cfg, redisClient)

	// Inbox poller runs until shutdown
	ingestCtx, stopIngest := context.WithCancel(context.Background())
	emailService := services.NewEmailService(db, cfg)
	ingestService := services.NewEmailIngestService(cfg, emailService)
	go ingestService.StartMonitoring(ingestCtx)

	// Connection pool gauges refresh on a fixed interval
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ingestCtx.Done():
				return
			case <-ticker.C:
				if sqlDB, err := db.DB(); err == nil {
					stats := sqlDB.Stats()
					metrics.UpdateDBConnections(stats.InUse, stats.Idle)
				}
			}
		}
	}()

	printSystemInfo(pool)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		Logger.Info("server listening on http://0.0.0.0:%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			Logger.Error("server failed: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	Logger.Info("shutting down")
	stopIngest()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		Logger.Error("server shutdown: %v", err)
	}
	if err := pool.Close(); err != nil {
		Logger.Error("close database pool: %v", err)
	}
}

// autoMigrate adds new columns and tables, never dropping anything
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Project{},
		&models.Testimonial{},
		&models.Inquiry{},
		&models.SiteVisitEnquiry{},
		&models.ConstructionServiceEnquiry{},
		&models.GeneralEnquiry{},
		&models.MarketingAgent{},
		&models.OTPSession{},
		&models.AdminUser{},
		&models.Email{},
	)
	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables drops every table and migrates from scratch
func dropAndRecreateTables(db *gorm.DB) error {
	tables := []string{
		"projects", "testimonials", "inquiries", "site_visit_enquiries",
		"construction_service_enquiries", "general_enquiries",
		"marketing_agents", "otp_sessions", "admin_users", "emails",
	}

	for _, table := range tables {
		log.Printf("dropping table %s", table)
		if err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("drop table %s: %v", table, err)
		}
	}

	return autoMigrate(db)
}

// seedDatabase inserts sample projects and testimonials when the catalog is
// empty, so a fresh deployment has content to show.
func seedDatabase(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		Logger.Error("seed check: %v", err)
		return
	}
	if count > 0 {
		return
	}

	projects := []models.Project{
		{
			Name:           "Terrawise Gardens",
			Location:       "Electronic City Phase 2, Bangalore",
			Price:          "₹52L+",
			Status:         models.ProjectStatusReady,
			PlotsAvailable: 85,
			PlotSize:       "30x40 to 40x60 sq ft",
			Description:    "Premium gated plotted development with complete infrastructure including roads, water supply, electricity, and drainage. Located in Electronic City Phase 2 with excellent connectivity to IT hubs and proposed metro extension.",
			ImageURL:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Amenities:      models.StringList{"24/7 Security with CCTV", "Underground Drainage", "Metro Connectivity", "Children's Play Area", "Landscaped Gardens", "Club House", "Wide Internal Roads"},
			Features:       models.StringList{"DTCP Approved", "RERA Registered", "Clear Title", "Ready Infrastructure", "IT Hub Proximity", "Bank Loan Approved"},
		},
		{
			Name:           "Emerald Meadows",
			Location:       "Sarjapur-Attibele Road, Bangalore",
			Price:          "₹68L+",
			Status:         models.ProjectStatusUnderDevelopment,
			PlotsAvailable: 120,
			PlotSize:       "30x50 to 50x80 sq ft",
			Description:    "Luxury plotted community spread across 45 acres with modern infrastructure and premium amenities. Strategic location on Sarjapur-Attibele Road with proximity to major IT parks and excellent appreciation potential.",
			ImageURL:       "https://images.unsplash.com/photo-1590664863685-a99ef05e9f61?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Amenities:      models.StringList{"Swimming Pool", "Clubhouse & Gym", "Jogging Track", "Sewage Treatment Plant", "Rain Water Harvesting", "Multi-tier Security", "Shopping Complex"},
			Features:       models.StringList{"Gated Community", "RERA Approved", "Premium Location", "30+ Amenities", "Corner Plots Available", "Investment Grade"},
		},
		{
			Name:           "Heritage Hills",
			Location:       "Devanahalli, Near Bangalore Airport",
			Price:          "₹75L+",
			Status:         models.ProjectStatusUpcoming,
			PlotsAvailable: 200,
			PlotSize:       "40x60 to 60x100 sq ft",
			Description:    "Ultra-premium plotted development near Bangalore International Airport with world-class infrastructure. Spread across 80 acres with comprehensive amenities and excellent connectivity to the airport and emerging business districts.",
			ImageURL:       "https://images.unsplash.com/photo-1571087680163-de4ae3a3c0a7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Amenities:      models.StringList{"Airport Connectivity", "International School", "Medical Center", "Sports Complex", "Adventure Park", "Retail Outlets", "Business Center"},
			Features:       models.StringList{"Launch Q2 2024", "Airport Proximity", "International Standards", "Master Planned Community", "High ROI Potential", "Limited Plots"},
		},
	}
	if err := db.Create(&projects).Error; err != nil {
		Logger.Error("seed projects: %v", err)
		return
	}

	testimonials := []models.Testimonial{
		{
			Name:     "Rajesh Kumar",
			Location: "Electronics City Plot Owner",
			Rating:   5,
			Content:  "Excellent infrastructure development and transparent dealings. The plot was delivered exactly as promised with all amenities. Highly recommended for anyone looking for premium plots in Bangalore.",
		},
		{
			Name:     "Priya Sharma",
			Location: "Green Valley Estates",
			Rating:   5,
			Content:  "The team's professionalism and attention to detail impressed us. From site visits to documentation, everything was handled smoothly. We're happy to have invested in our dream plot.",
		},
		{
			Name:     "Amit Patel",
			Location: "Sarjapur Road Investor",
			Rating:   5,
			Content:  "Great investment opportunity with excellent returns. The location selection and development quality exceeded our expectations. Terrawise truly delivers on their promise of building futures.",
		},
	}
	if err := db.Create(&testimonials).Error; err != nil {
		Logger.Error("seed testimonials: %v", err)
		return
	}

	Logger.Info("seeded %d projects and %d testimonials", len(projects), len(testimonials))
}

// printSystemInfo logs pool and runtime statistics at startup
func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		log.Printf("database pool: %+v", stats)
	}

	log.Printf("cpu cores: %d", runtime.NumCPU())
	log.Printf("goroutines: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("memory: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
