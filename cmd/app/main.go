package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffeeshop/cmd"
	adapter "coffeeshop/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Error wiring the shop: %v", err)
	}

	if err := app.Shop().Open(); err != nil {
		log.Fatalf("Error opening the shop: %v", err)
	}
	defer app.Shop().Close()

	if err := app.JobManager().StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer app.JobManager().StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		WorkerCount:         goDotEnvVariable("WORKER_COUNT"),
		PourerCount:         goDotEnvVariable("POURER_COUNT"),
		PourerQueueCapacity: goDotEnvVariable("POURER_QUEUE_CAPACITY"),
		PourMinMs:           goDotEnvVariable("POUR_MIN_MS"),
		PourMaxMs:           goDotEnvVariable("POUR_MAX_MS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	adapter.NewServer(app.Shop()).RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
