package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/atelierlabs/atelier-backend/internal/auth"
	"github.com/atelierlabs/atelier-backend/internal/config"
	"github.com/atelierlabs/atelier-backend/internal/gallery"
	apphttp "github.com/atelierlabs/atelier-backend/internal/http"
	"github.com/atelierlabs/atelier-backend/internal/router"
	"github.com/atelierlabs/atelier-backend/internal/segments"
	"github.com/atelierlabs/atelier-backend/internal/storage"
	"github.com/atelierlabs/atelier-backend/internal/users"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("error creating pgx pool", zap.Error(err))
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("error pinging database", zap.Error(err))
	}

	uploads, err := storage.NewS3Store(ctx, storage.Options{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		Bucket:        cfg.S3Bucket,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		logger.Fatal("error creating storage client", zap.Error(err))
	}

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware())
	app.Use(router.MethodOverride())
	app.Use(requestLogger(logger))

	secret := []byte(cfg.JWTSecret)
	userRepo := users.NewRepository(pool)
	galleryRepo := gallery.NewRepository(pool)
	segmentRepo := segments.NewRepository(pool)

	r := &router.Router{
		AuthHandler:    &apphttp.AuthHandler{Store: userRepo, Secret: secret, Log: logger},
		PageHandler:    &apphttp.PageHandler{Gallery: galleryRepo, Segments: segmentRepo, Log: logger},
		GalleryHandler: gallery.NewHandler(galleryRepo, uploads, logger),
		SegmentHandler: segments.NewHandler(segmentRepo, uploads, logger),
		AuthMW:         auth.RequireLogin(secret),
	}
	r.RegisterRoutes(app)

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	}
}
