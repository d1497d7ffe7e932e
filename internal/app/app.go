package app

import (
	"fmt"
	"net/http"

	"charity-app-go/internal/config"
	"charity-app-go/internal/db"
	"charity-app-go/internal/domain/donation"
	"charity-app-go/internal/domain/donor"
	"charity-app-go/internal/domain/existence"
	"charity-app-go/internal/domain/family"
	"charity-app-go/internal/domain/health"
	"charity-app-go/internal/domain/needs"
	"charity-app-go/internal/domain/report"
	donationrepo "charity-app-go/internal/repository/postgres/donation"
	donorrepo "charity-app-go/internal/repository/postgres/donor"
	existencerepo "charity-app-go/internal/repository/postgres/existence"
	familyrepo "charity-app-go/internal/repository/postgres/family"
	healthrepo "charity-app-go/internal/repository/postgres/health"
	needsrepo "charity-app-go/internal/repository/postgres/needs"
	"charity-app-go/internal/transport/httpserver"
	"charity-app-go/internal/transport/httpserver/handler"
	"charity-app-go/internal/transport/httpserver/handler/care"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
	"charity-app-go/internal/transport/httpserver/handler/donors"
	"charity-app-go/internal/transport/httpserver/handler/families"
	"charity-app-go/internal/transport/httpserver/handler/reports"
	"charity-app-go/internal/transport/httpserver/middleware"
	"charity-app-go/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		log.Info("app: applying migrations")
		if err := db.Migrate(dbConn, log); err != nil {
			closeDB(dbConn)
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	router, err := NewHandler(cfg, dbConn, log)
	if err != nil {
		closeDB(dbConn)
		return nil, err
	}

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

// NewHandler wires repositories, services and handlers on top of an open
// database and returns the router.
func NewHandler(cfg config.Config, dbConn *gorm.DB, log logger.Logger) (http.Handler, error) {
	sqlDB, err := dbConn.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}

	chain := existence.NewValidator(existencerepo.NewPostgres(dbConn))

	familyService := family.NewService(familyrepo.NewPostgres(dbConn), chain)
	healthService := health.NewService(healthrepo.NewPostgres(dbConn), chain)
	needsService := needs.NewService(needsrepo.NewPostgres(dbConn), chain)
	donorService := donor.NewService(donorrepo.NewPostgres(dbConn))
	donationService := donation.NewService(donationrepo.NewPostgres(dbConn), chain)
	reportService := report.NewService(familyService, donorService, donationService)

	handlers := handler.New(
		commonhandler.New(sqlDB, log),
		families.New(familyService, log),
		care.New(healthService, needsService, log),
		donors.New(donorService, donationService, log),
		reports.New(reportService, log),
	)

	var (
		metrics  *middleware.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewDBStatsCollector(sqlDB, cfg.DB.Name),
		)
		metrics = middleware.NewMetrics(reg)
		gatherer = reg
	}

	log.Info("app: initializing router")
	return httpserver.NewRouter(cfg, handlers, metrics, gatherer), nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(dbConn *gorm.DB) {
	if sqlDB, err := dbConn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
