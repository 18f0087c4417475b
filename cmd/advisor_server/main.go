package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/advisor"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/ai/montecarlo"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/config"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/monitoring"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	port := flag.Int("port", -1, "The server port (-1 to use config default)")
	host := flag.String("host", "", "The server host (empty to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	seed := flag.Int64("seed", 0, "RNG seed (0 for time-based)")
	enableReflection := flag.Bool("enable-reflection", false, "Enable gRPC reflection for debugging")
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load(".env")
	}

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *port == -1 {
		*port = cfg.Server.Advisor.Port
	}
	if *host == "" {
		*host = cfg.Server.Advisor.Host
	}
	if *logLevel == "" {
		*logLevel = cfg.Server.Advisor.LogLevel
	}
	if !*enableReflection {
		*enableReflection = cfg.Server.Advisor.EnableReflection
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	setupLogging(*logLevel)

	limits := montecarlo.Config{
		Simulations:          cfg.MonteCarlo.Simulations,
		ShotsPerSimulation:   cfg.MonteCarlo.ShotsPerSimulation,
		MaxPlacementAttempts: cfg.MonteCarlo.MaxPlacementAttempts,
		Workers:              cfg.MonteCarlo.Workers,
	}
	advisorServer, err := advisor.NewServer(limits, cfg.Game.Fleet, *seed, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create advisor")
	}

	log.Info().
		Int("port", *port).
		Str("host", *host).
		Int("simulations", limits.Simulations).
		Int("shots_per_simulation", limits.ShotsPerSimulation).
		Int("workers", limits.Workers).
		Msg("Starting advisor server")

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", *host, *port))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to listen")
	}

	grpcServer, healthServer := advisor.NewGRPCServer(advisorServer, advisor.ServerOptions{
		EnableReflection: *enableReflection,
		Logger:           log.Logger,
	})
	if *enableReflection {
		log.Info().Msg("gRPC reflection enabled")
	}

	if path := config.ConfigFilePath(); path != "" {
		config.WatchConfig(func(c *config.Config, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("Ignoring invalid config change")
				return
			}
			// Listener settings and advisor limits are fixed at startup
			level, perr := zerolog.ParseLevel(c.Server.Advisor.LogLevel)
			if perr == nil {
				zerolog.SetGlobalLevel(level)
			}
			log.Info().Str("file", path).Msg("Config reloaded")
		})
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitor := monitoring.NewGoroutineMonitor(monitoring.DefaultMonitorConfig(), log.Logger)
	monitor.RegisterComponent("simulation_workers", limits.Workers)
	monitor.Start(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		healthServer.SetServingStatus(advisor.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

		// Give ongoing requests time to complete
		time.Sleep(time.Duration(cfg.Server.Advisor.GracefulShutdownDelay) * time.Second)

		log.Info().Msg("Gracefully stopping gRPC server")
		grpcServer.GracefulStop()
		cancel()
	}()

	log.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("Failed to serve")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Server shutdown complete")
}

func setupLogging(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Check if we're in production
	if os.Getenv("APP_ENV") == "production" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
