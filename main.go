package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/spf13/viper"

	"blogql/internal/engine"
	"blogql/internal/graph"
	"blogql/internal/seed"
	"blogql/internal/store"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("APP_PORT", ":4000")
	viper.SetDefault("SEED", "demo")
	viper.SetDefault("SEED_FILE", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	app, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// NewApp builds the store, engine and GraphQL schema and returns a Fiber app
// serving them. Seeding follows the SEED / SEED_FILE configuration.
func NewApp() (*fiber.App, error) {
	// --- Record Store + seed data ---
	recordStore := store.New()
	if err := seedStore(recordStore); err != nil {
		return nil, err
	}

	// --- Engine + GraphQL schema ---
	eng := engine.New(recordStore)
	schema := graph.MustSchema(eng)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- Routes ---
	// The relay handler implements the GraphQL-over-HTTP POST convention.
	app.Post("/graphql", adaptor.HTTPHandler(&relay.Handler{Schema: schema}))

	// GraphiQL playground for browser exploration
	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(graph.PlaygroundHTML)
	})

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, nil
}

// seedStore populates the store according to configuration: SEED_FILE wins
// over SEED; SEED=none starts empty.
func seedStore(s *store.Store) error {
	if path := viper.GetString("SEED_FILE"); path != "" {
		data, err := seed.FromFile(path)
		if err != nil {
			return err
		}
		if err := data.Apply(s); err != nil {
			return err
		}
		log.Printf("Seeded store from %s: %d users, %d posts, %d comments",
			path, len(data.Users), len(data.Posts), len(data.Comments))
		return nil
	}

	switch mode := viper.GetString("SEED"); mode {
	case "demo", "":
		data := seed.Demo()
		if err := data.Apply(s); err != nil {
			return err
		}
		log.Printf("Seeded store with demo data: %d users, %d posts, %d comments",
			len(data.Users), len(data.Posts), len(data.Comments))
	case "none":
		log.Println("Starting with an empty store")
	default:
		log.Printf("Unknown SEED mode %q, starting with an empty store", mode)
	}
	return nil
}
