package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/autenticco/backend/internal/application/catalog"
	financeapp "github.com/autenticco/backend/internal/application/finance"
	identityapp "github.com/autenticco/backend/internal/application/identity"
	marketingapp "github.com/autenticco/backend/internal/application/marketing"
	printingapp "github.com/autenticco/backend/internal/application/printing"
	reportapp "github.com/autenticco/backend/internal/application/report"
	"github.com/autenticco/backend/internal/infrastructure/auth"
	"github.com/autenticco/backend/internal/infrastructure/config"
	"github.com/autenticco/backend/internal/infrastructure/logger"
	"github.com/autenticco/backend/internal/infrastructure/notify"
	"github.com/autenticco/backend/internal/infrastructure/persistence"
	printinginfra "github.com/autenticco/backend/internal/infrastructure/printing"
	"github.com/autenticco/backend/internal/infrastructure/storage"
	"github.com/autenticco/backend/internal/infrastructure/telemetry"
	"github.com/autenticco/backend/internal/interfaces/http/handler"
	"github.com/autenticco/backend/internal/interfaces/http/middleware"
	"github.com/autenticco/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/autenticco/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			AutenTicco Motors API
//	@version		1.0
//	@description	Back office and storefront API of the AutenTicco Motors dealership

//	@contact.name	AutenTicco Motors
//	@contact.url	https://autenticco.com.br

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: logger.DefaultTimeFormat,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting AutenTicco backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), 200*time.Millisecond)
	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled,
		SlowQueryThresh: 200 * time.Millisecond,
		DBName:          cfg.Database.DBName,
	}, log)

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog, func(gdb *gorm.DB) error {
		return dbTracing.Register(gdb)
	})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	loc := cfg.App.Location()

	// Repositories
	carRepo := persistence.NewGormCarRepository(db.DB)
	platformRepo := persistence.NewGormPlatformRepository(db.DB)
	publicationRepo := persistence.NewGormPublicationRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	leadRepo := persistence.NewGormLeadRepository(db.DB)
	testimonialRepo := persistence.NewGormTestimonialRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	roleRepo := persistence.NewGormRoleRepository(db.DB)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist = auth.NewInMemoryTokenBlacklist()
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = redisBlacklist.Close() }()
		blacklist = redisBlacklist
		log.Info("Token blacklist backed by Redis")
	}

	var admin *identityapp.BootstrapAdmin
	if cfg.Bootstrap.Enabled() {
		admin = &identityapp.BootstrapAdmin{
			Email:    cfg.Bootstrap.AdminEmail,
			Name:     cfg.Bootstrap.AdminName,
			Password: cfg.Bootstrap.AdminPassword,
		}
	}
	if err := identityapp.Bootstrap(context.Background(), roleRepo, userRepo, admin, log); err != nil {
		log.Fatal("Failed to bootstrap the admin role", zap.Error(err))
	}

	// Car photos
	var imageStorage catalogapp.ImageStorage
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3ImageStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize image storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(context.Background()); err != nil {
			log.Fatal("Failed to prepare image bucket", zap.Error(err), zap.String("bucket", s3Storage.GetBucket()))
		}
		imageStorage = s3Storage
	} else {
		log.Warn("Image storage disabled, uploads will be rejected")
	}

	// Lead alerts
	var notifier marketingapp.LeadNotifier = marketingapp.NoopNotifier{}
	if cfg.Notify.TelegramEnabled {
		telegram, err := notify.NewTelegramNotifier(cfg.Notify, cfg.App.PublicSiteURL, log)
		if err != nil {
			log.Fatal("Failed to initialize Telegram notifier", zap.Error(err))
		}
		notifier = telegram
	}

	// Printing
	templates, err := printinginfra.NewTemplateEngine()
	if err != nil {
		log.Fatal("Failed to parse print templates", zap.Error(err))
	}
	var pdfRenderer printinginfra.PDFRenderer
	if cfg.Printing.PDFEnabled {
		chrome := printinginfra.NewChromedpRenderer(cfg.Printing, log)
		defer func() { _ = chrome.Close() }()
		pdfRenderer = chrome
	}

	// Services
	carService := catalogapp.NewCarService(carRepo, imageStorage, cfg.Storage.MaxUploadSize)
	financeService := financeapp.NewFinanceService(carRepo, platformRepo, publicationRepo, expenseRepo, saleRepo)
	publicationService := financeapp.NewPublicationService(publicationRepo, platformRepo, carRepo)
	expenseService := financeapp.NewExpenseService(expenseRepo, carRepo)
	saleService := financeapp.NewSaleService(saleRepo, platformRepo, persistence.NewGormSaleTransactionScope(db.DB), loc)
	platformService := marketingapp.NewPlatformService(platformRepo, publicationRepo)
	leadService := marketingapp.NewLeadService(leadRepo, carRepo, notifier)
	testimonialService := marketingapp.NewTestimonialService(testimonialRepo)
	reportService := reportapp.NewReportService(carRepo, publicationRepo, expenseRepo, saleRepo, platformRepo, loc)
	printService := printingapp.NewPrintService(carRepo, templates, pdfRenderer, cfg.App.PublicSiteURL, loc)
	authService := identityapp.NewAuthService(userRepo, roleRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, roleRepo, blacklist, cfg.JWT.RefreshTokenExpiration, log)
	roleService := identityapp.NewRoleService(roleRepo, userRepo, log)

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     cfg.Telemetry.Enabled,
		}),
		middleware.Secure(),
		middleware.CORSWithConfig(middleware.CORSConfigFromHTTP(cfg.HTTP)),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
		middleware.Timeout(cfg.HTTP.RequestTimeout),
	)

	engine.GET("/health", handler.Health(db))

	authenticate := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})

	// Swagger documentation endpoint
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger, authenticate),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	publicLimiter := middleware.NewRateLimiter(cfg.HTTP.PublicRateLimit, cfg.HTTP.PublicRateWindow)
	defer publicLimiter.Stop()

	r := router.NewRouter(engine, router.WithAPIVersion("v1")).Use(middleware.SpanEnricher())
	router.RegisterAPI(r, router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Cars:      handler.NewCarHandler(carService),
		Finance:   handler.NewFinanceHandler(financeService, publicationService, expenseService, saleService),
		Marketing: handler.NewMarketingHandler(platformService, leadService, testimonialService),
		Reports:   handler.NewReportHandler(reportService),
		Print:     handler.NewPrintHandler(printService),
		Identity:  handler.NewIdentityHandler(userService, roleService),
	}, router.Guards{
		Authenticate: authenticate,
		PublicForms:  middleware.RateLimit(publicLimiter),
		Upload:       middleware.UploadLimit(cfg.Storage.MaxUploadSize + 1<<20),
	})
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(ctx); err != nil {
		log.Error("Failed to flush traces", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
