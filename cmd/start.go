package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"id-reserve/core/cache"
	"id-reserve/core/config"
	"id-reserve/core/database"
	"id-reserve/core/loader"
	"id-reserve/core/logger"
	"id-reserve/core/middleware/auth"
	"id-reserve/core/middleware/rayid"
	"id-reserve/core/queue"
	"id-reserve/feature/catalog"
	"id-reserve/feature/reservation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "id-reserve/docs/swagger"
)

// @title ID Reservation API
// @version 1.0
// @description Reserve numeric content IDs ahead of publication.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reservation server",
	Long:  `Starts the HTTP server, the compaction consumer and all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.HasAuth() {
			logg.Warn("No JWT secret configured, mutating endpoints will reject every request")
		}

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		// 4. Build the ownership resolver, optionally with the author cache.
		registry := catalog.Registry(catalog.NewSQLRegistry(db))
		if client := cache.NewClient(cfg.Cache); client != nil {
			registry = catalog.NewCachedRegistry(registry, client, cfg.Cache.TTL(), logg)
			logg.Info("Author cache enabled", zap.String("addr", cfg.Cache.Addr))
		}
		resolver := catalog.NewResolver(catalog.NewSQLIndex(db), registry)

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		authMW := auth.New(auth.Config{Secret: cfg.Server.JWTSecret})
		feature := reservation.NewFeature(db, resolver, logg, cfg.Queue, authMW)
		mgr.Register(feature)

		// Middleware Registration
		// RayID must come first so every log line can be traced.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Compaction consumer; partial grants publish events here.
		if cfg.Queue.Enabled {
			svc := feature.Service()
			go queue.StartCompactConsumer(cfg.Queue, logg, func(ctx context.Context, event queue.CompactEvent) error {
				rt, err := reservation.TypeFromCode(event.TypeCode)
				if err != nil {
					return err
				}
				return svc.CompactType(ctx, rt)
			})
			logg.Info("Compaction consumer started", zap.String("queue", cfg.Queue.Name))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
