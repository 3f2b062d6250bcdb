package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/taskboard/modules/api"
	"github.com/example/taskboard/modules/auth"
	"github.com/example/taskboard/modules/cache"
	"github.com/example/taskboard/modules/todo"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Taskboard ===")

	dbPath := getEnv("DB_PATH", "taskboard.db")
	httpPort := getEnvInt("HTTP_PORT", 3000)
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	cachePrefix := getEnv("CACHE_PREFIX", "taskboard:")
	cacheTTL := getEnvDuration("CACHE_TTL", 5*time.Minute)

	provider := auth.NewOAuthProvider(auth.ProviderConfigFromEnv())

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	authModule := auth.NewModule(dbPath, provider)
	cacheModule := cache.NewModule(redisAddr, cachePrefix, cacheTTL)
	todoModule := todo.NewModule(dbPath)

	app.Register(authModule)
	app.Register(cacheModule)
	app.Register(todoModule)
	app.Register(api.NewModule(httpPort)) // Depends on auth and todo modules

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	// The Redis-backed list cache only exists once the cache module has
	// started, so it is wired into the todo module here.
	todoModule.SetListCache(cacheModule.TaskListCache())

	printStartupInfo(httpPort)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(port int) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%d):", port)
	log.Println("")
	log.Println("  Auth:")
	log.Println("  GET    /auth/signin       - Get the provider consent URL")
	log.Println("  GET    /auth/callback     - Exchange the provider code for a session token")
	log.Println("  POST   /auth/signout      - End the session (requires Bearer token)")
	log.Println("")
	log.Println("  Tasks (require Bearer token):")
	log.Println("  POST   /api/tasks         - Create a task")
	log.Println("  GET    /api/tasks         - List your tasks, newest first")
	log.Println("  GET    /api/tasks/:id     - Get a single task")
	log.Println("  PUT    /api/tasks/:id     - Update a task")
	log.Println("  DELETE /api/tasks/:id     - Delete a task")
	log.Println("")
	log.Println("  GET    /health            - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Printf("Warning: invalid %s value %q, using %d", key, value, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
		log.Printf("Warning: invalid %s value %q, using %s", key, value, fallback)
	}
	return fallback
}
