package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"club-site.backend/internal/config"
	"club-site.backend/internal/infrastructure/database"
	"club-site.backend/internal/infrastructure/jobs"
	"club-site.backend/internal/infrastructure/repositories"
	"club-site.backend/internal/interfaces/http/handlers"
	"club-site.backend/internal/interfaces/http/middleware"
	"club-site.backend/internal/interfaces/http/response"
	"club-site.backend/internal/usecases"
	"club-site.backend/pkg/jwt"
	"club-site.backend/pkg/logger"
	"club-site.backend/pkg/redis"
)

const (
	lockKeyPrefix     = "club-site:lock:"
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second

	contentMetricsInterval = time.Minute
)

var errDefaultJWTSecret = errors.New("JWT_SECRET must be set when SERVER_ENV=production")

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = database.Open
	migrateDB  = database.Migrate
	runServer  = serve
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.IsProduction() && cfg.JWT.UsesDefaultSecret() {
		logger.Error(ctx, "JWT_SECRET is not set in production")
		return errDefaultJWTSecret
	}

	if !cfg.Admin.Configured() {
		logger.Warn(ctx, "ADMIN_USER or ADMIN_PASS is not set, admin login is disabled")
	}

	// Redis backs rate limiting and submission locks; both fail open.
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Warn(ctx, "Redis unavailable, rate limiting and submission locks are disabled", zap.Error(err))
	} else {
		logger.Info(ctx, "Redis initialized")
		defer redis.Close()
	}

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		response.SetExposeDetails(false)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := migrateDB(db); err != nil {
		return err
	}
	logger.Info(ctx, "Database ready", zap.String("driver", cfg.Database.Driver))

	deps, contentJob := buildDeps(cfg, db)
	r := newRouter(cfg, deps)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go contentJob.Start(sigCtx)
	defer contentJob.Stop()

	logger.Info(ctx, "Server starting",
		zap.String("port", cfg.Server.Port),
		zap.Int("routes", len(r.Routes())),
	)
	if err := runServer(sigCtx, srv); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info(ctx, "Server stopped")
	return nil
}

// serve runs srv until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildDeps(cfg *config.Config, db *gorm.DB) (routeDeps, *jobs.ContentMetricsJob) {
	uow := repositories.NewUnitOfWork(db)
	executiveRepo := repositories.NewExecutiveRepository(db)
	sponsorRepo := repositories.NewSponsorRepository(db)
	interestRepo := repositories.NewInterestSubmissionRepository(db)
	inquiryRepo := repositories.NewSponsorInquiryRepository(db)
	locker := redis.NewLocker(lockKeyPrefix)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)
	authUsecase := usecases.NewAuthUsecase(cfg.Admin.User, cfg.Admin.PassHash, jwtService)
	dashboardUsecase := usecases.NewDashboardUsecase(executiveRepo, sponsorRepo, interestRepo, inquiryRepo)

	deps := routeDeps{
		authHandler:      handlers.NewAuthHandler(authUsecase),
		executiveHandler: handlers.NewExecutiveHandler(usecases.NewExecutiveUsecase(executiveRepo, uow)),
		sponsorHandler:   handlers.NewSponsorHandler(usecases.NewSponsorUsecase(sponsorRepo, uow)),
		interestHandler:  handlers.NewInterestHandler(usecases.NewInterestUsecase(interestRepo, locker)),
		inquiryHandler:   handlers.NewInquiryHandler(usecases.NewInquiryUsecase(inquiryRepo, locker)),
		dashboardHandler: handlers.NewDashboardHandler(dashboardUsecase),
		healthHandler: handlers.NewHealthHandler(
			func(ctx context.Context) error { return database.Ping(ctx, db) },
			redis.Ping,
		),
		authMiddleware: middleware.AuthMiddleware(authUsecase),
	}
	return deps, jobs.NewContentMetricsJob(dashboardUsecase, contentMetricsInterval)
}
