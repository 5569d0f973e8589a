package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"funcbox/config"
	"funcbox/handlers"
	"funcbox/logging"
	"funcbox/middleware"
	"funcbox/services"

	_ "funcbox/docs"
)

// @title Funcbox API
// @version 1.0
// @description Execution platform for the built-in example functions (greeter, image-processor)
// @host localhost:8080
// @BasePath /api
func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	log.Info().Msg("Starting Funcbox server")

	dbService, err := services.NewDBService(cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbService.Close()

	if err := dbService.InitSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database schema")
	}
	log.Info().Msg("Database schema initialized")

	storageService, err := services.NewStorageService(cfg.Storage.Type, cfg.Storage.PathOrBucket, cfg.Server.EnableXRay)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storage service")
	}
	log.Info().Str("type", cfg.Storage.Type).Str("location", cfg.Storage.PathOrBucket).Msg("Storage service initialized")

	redisService := services.NewRedisService(cfg.Redis.Host, cfg.Redis.Port, cfg.Server.EnableXRay)

	registry := services.NewRegistry()
	if err := services.SeedRegistry(registry, cfg.Worker.BinDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed function registry")
	}

	invokeService := services.NewInvokeService(registry, dbService, redisService, storageService)
	scheduleService := services.NewScheduleService(registry, dbService)

	scheduleRunner := services.NewScheduleRunner(scheduleService, invokeService)
	scheduleRunner.Start()
	defer scheduleRunner.Stop()

	functionHandler := handlers.NewFunctionHandler(invokeService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	app := fiber.New(fiber.Config{
		AppName: "Funcbox",
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	if cfg.Server.EnableXRay {
		app.Use(middleware.XRayMiddleware("funcbox-api"))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "UP"})
	})

	api := app.Group("/api")

	api.Get("/functions", functionHandler.ListFunctions)
	api.Get("/functions/:name", functionHandler.GetFunction)
	api.Post("/functions/:name/invoke", functionHandler.InvokeFunction)
	api.Get("/functions/:name/invocations", functionHandler.ListInvocations)
	api.Get("/functions/:name/invocations/:invocationId", functionHandler.GetInvocationResult)

	api.Post("/functions/:name/schedules", scheduleHandler.CreateSchedule)
	api.Get("/functions/:name/schedules", scheduleHandler.ListSchedules)
	api.Delete("/functions/:name/schedules/:scheduleId", scheduleHandler.DeleteSchedule)

	log.Info().Str("port", cfg.Server.Port).Msg("Funcbox server listening")
	log.Fatal().Err(app.Listen(":" + cfg.Server.Port)).Msg("Server stopped")
}
