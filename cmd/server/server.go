package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/shruggr/go-bpu/config"
	"github.com/shruggr/go-bpu/server"
)

var PORT int
var VERBOSE bool

func init() {
	wd, _ := os.Getwd()
	log.Println("CWD:", wd)
	godotenv.Load(fmt.Sprintf(`%s/../../.env`, wd))

	flag.IntVar(&PORT, "p", 0, "Port to listen on (overrides server.port)")
	flag.BoolVar(&VERBOSE, "v", false, "Verbose")
	flag.Parse()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if VERBOSE {
		cfg.Parse.Verbose = true
	}
	if PORT > 0 {
		cfg.Server.Port = PORT
	}

	services, err := cfg.Initialize(ctx, logger)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	defer services.Close()

	app := server.Initialize(services.Ingest)

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down")
		app.Shutdown()
	}()

	logger.Info("Listening", slog.Int("port", cfg.Server.Port))
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
