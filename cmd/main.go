package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/Leganyst/labor-platform/internal/auth"
	"github.com/Leganyst/labor-platform/internal/config"
	"github.com/Leganyst/labor-platform/internal/db"
	"github.com/Leganyst/labor-platform/internal/handler"
	"github.com/Leganyst/labor-platform/internal/middleware"
	"github.com/Leganyst/labor-platform/internal/model"
	"github.com/Leganyst/labor-platform/internal/repository"
	"github.com/Leganyst/labor-platform/internal/seed"
	"github.com/Leganyst/labor-platform/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as is")
	}

	// 1. Конфиги приложения и БД из env.
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("load db config: %v", err)
	}

	// 2. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	// 3. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 4. Репозитории (реализации на GORM).
	userRepo := repository.NewGormUserRepository(gormDB)
	providerRepo := repository.NewGormProviderRepository(gormDB)
	jobRepo := repository.NewGormJobRequestRepository(gormDB)
	quoteRepo := repository.NewGormQuoteRepository(gormDB)

	// 5. Доменные сервисы.
	tokens := auth.NewTokenManager(appCfg.JWTSecret, time.Duration(appCfg.JWTTTLMinutes)*time.Minute)
	providerSvc := service.NewProviderService(providerRepo)
	jobSvc := service.NewJobRequestService(jobRepo)
	quoteSvc := service.NewQuoteService(quoteRepo, jobRepo, providerRepo)
	identitySvc := service.NewIdentityService(userRepo, providerSvc, tokens)

	if appCfg.SeedDemoData && appCfg.Env != "production" {
		if err := seed.Demo(context.Background(), identitySvc, providerSvc, jobSvc, quoteSvc); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
	}

	// 6. HTTP-приложение.
	app := fiber.New(fiber.Config{
		AppName: "labor-platform",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return c.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: "*"}))
	app.Use(healthcheck.New())
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	authMW := middleware.Authenticate(tokens)
	handler.NewAuthHandler(identitySvc, authMW).RegisterRoutes(app)
	handler.NewJobRequestHandler(jobSvc, authMW).RegisterRoutes(app)
	handler.NewProviderHandler(providerSvc, authMW).RegisterRoutes(app)
	handler.NewQuoteHandler(quoteSvc, jobSvc, providerSvc, authMW).RegisterRoutes(app)

	log.Printf("labor-platform listening on %s", appCfg.Addr)

	// 7. Запускаем сервер в горутине.
	go func() {
		if err := app.Listen(appCfg.Addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	// 8. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
