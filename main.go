package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"freshplate/config"
	"freshplate/db"
	"freshplate/logger"
	"freshplate/recipe"
	"freshplate/routes"
	"freshplate/store"
)

func main() {
	opts := config.NewOptions()
	opts.ParseFlags()

	zl, err := logger.New(opts.LogLevel())
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zl.Sync()

	// Initialize database
	gdb, err := db.Open(opts.DatabasePath())
	if err != nil {
		zl.Fatal("failed to open database", zap.Error(err))
	}
	zl.Info("database ready", zap.String("path", opts.DatabasePath()))

	generator := recipe.NewClient(recipe.Config{
		APIKey:      opts.OpenAIKey(),
		BaseURL:     opts.OpenAIBaseURL(),
		Model:       opts.RecipeModel(),
		MaxTokens:   opts.RecipeMaxTokens(),
		Temperature: opts.RecipeTemperature(),
		Timeout:     opts.RecipeTimeout(),
	})

	h := routes.NewHandler(
		store.NewCategoryStore(gdb),
		store.NewProductStore(gdb),
		store.NewUserStore(gdb),
		generator,
		opts.JWTSecret(),
	)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app, h)

	// Start server
	zl.Info("starting server", zap.String("addr", opts.RunAddr()))
	log.Fatal(app.Listen(opts.RunAddr()))
}
