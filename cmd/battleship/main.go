package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/ai/montecarlo"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/ai/random"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/config"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/events"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/store"
)

var playerNames = []string{"MonteCarlo", "Random"}

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	games := flag.Int("games", 1, "Number of games to play")
	seed := flag.Int64("seed", 0, "RNG seed (0 for time-based)")
	simulations := flag.Int("simulations", -1, "Simulations per shot (-1 to use config default)")
	shots := flag.Int("shots", -1, "Random shots per simulation (-1 to use config default)")
	workers := flag.Int("workers", -1, "Parallel simulation workers (-1 to use config default)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	showBoards := flag.Bool("show-boards", false, "Print both boards after every shot")
	color := flag.Bool("color", true, "Use ANSI colors when printing boards")
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		// A missing .env is fine outside production too
		_ = godotenv.Load(".env")
	}

	setupLogging(*logLevel)

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}

	// Flags override config values
	if *simulations != -1 {
		config.Set("montecarlo.simulations", *simulations)
	}
	if *shots != -1 {
		config.Set("montecarlo.shots_per_simulation", *shots)
	}
	if *workers != -1 {
		config.Set("montecarlo.workers", *workers)
	}
	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	if !*showBoards {
		*showBoards = cfg.Development.ShowBoards
	}
	if *games < 1 {
		log.Fatal().Int("games", *games).Msg("At least one game is required")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var gameStore *store.GameStore
	if cfg.Store.Enabled {
		db, err := store.Open(cfg.Store.DSN, cfg.Store.MaxOpenConns)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to store")
		}
		defer db.Close()
		if err := store.Migrate(db, log.Logger); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate store")
		}
		gameStore = store.NewGameStore(db, log.Logger)
	}

	bus := events.NewEventBusWithLogger(log.Logger)
	stats := subscribers.NewStatsSubscriber("cli_stats")
	bus.Subscribe(stats)
	if cfg.Development.VerboseLogging {
		eventLogger := subscribers.NewLoggerSubscriber("cli_logger", log.Logger, zerolog.DebugLevel)
		eventLogger.SetDevMode(true)
		bus.Subscribe(eventLogger)
	}

	mcConfig := montecarlo.Config{
		Simulations:          cfg.MonteCarlo.Simulations,
		ShotsPerSimulation:   cfg.MonteCarlo.ShotsPerSimulation,
		MaxPlacementAttempts: cfg.MonteCarlo.MaxPlacementAttempts,
		Workers:              cfg.MonteCarlo.Workers,
	}

	log.Info().
		Int("games", *games).
		Int64("seed", *seed).
		Int("simulations", mcConfig.Simulations).
		Int("shots_per_simulation", mcConfig.ShotsPerSimulation).
		Int("workers", mcConfig.Workers).
		Msg("Starting matches")

	start := time.Now()
	played := 0
	for i := 0; i < *games; i++ {
		g, err := game.NewGame(game.GameConfig{
			Fleet:    cfg.Game.Fleet,
			MaxTurns: cfg.Game.MaxTurns,
			Rng:      rand.New(rand.NewSource(rng.Int63())),
			Logger:   log.Logger,
			Names:    playerNames,
			Strategies: []game.Strategy{
				montecarlo.NewStrategy(mcConfig, rand.New(rand.NewSource(rng.Int63())), log.Logger),
				random.New(rand.New(rand.NewSource(rng.Int63()))),
			},
			EventBus: bus,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create game")
		}

		if err := playGame(ctx, g, *showBoards, *color); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Warn().Int("completed", played).Msg("Interrupted")
				break
			}
			log.Error().Err(err).Str("game_id", g.ID()).Msg("Game failed")
			continue
		}
		played++

		summary := g.Summary()
		log.Info().
			Int("game", i+1).
			Str("game_id", summary.GameID).
			Str("winner", summary.WinnerName()).
			Int("turns", summary.Turns).
			Float64("mc_accuracy", summary.Players[0].Accuracy).
			Float64("random_accuracy", summary.Players[1].Accuracy).
			Msg("Game finished")

		if *showBoards {
			fmt.Println(g.Board(0, *color))
		}

		if gameStore != nil {
			rec, err := store.NewGameRecord(summary, g.ShotLog(), time.Now())
			if err == nil {
				err = gameStore.RecordGame(ctx, rec)
			}
			if err != nil {
				log.Error().Err(err).Str("game_id", summary.GameID).Msg("Failed to record game")
			}
		}
	}

	printTotals(stats, played, time.Since(start))

	if gameStore != nil {
		counts, err := gameStore.WinCounts(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Failed to read recorded win counts")
			return
		}
		for name, wins := range counts {
			fmt.Printf("All-time wins for %s: %d\n", name, wins)
		}
	}
}

// playGame runs g to completion, printing boards after each shot when asked
func playGame(ctx context.Context, g *game.Game, showBoards, color bool) error {
	if !showBoards {
		_, err := g.Run(ctx)
		return err
	}

	for !g.IsOver() {
		if g.Turn() >= g.MaxTurns() {
			_, err := g.Run(ctx) // reports the turn limit
			return err
		}
		shooter := g.CurrentPlayer()
		cell, outcome, err := g.PlayTurn(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Turn %d: %s fires at %s: %s\n", g.Turn(), shooter.Name, cell, outcome)
		fmt.Println(g.Board(shooter.ID, color))
	}
	return nil
}

func printTotals(stats *subscribers.StatsSubscriber, played int, elapsed time.Duration) {
	fmt.Printf("\nPlayed %d game(s) in %s (average %.1f turns)\n",
		played, elapsed.Round(time.Millisecond), stats.AverageTurns())
	for id, name := range playerNames {
		p := stats.Player(id)
		accuracy := 0.0
		if p.Shots > 0 {
			accuracy = float64(p.Hits) / float64(p.Shots)
		}
		fmt.Printf("%-10s wins: %4d  shots: %6d  hits: %5d  sunk: %4d  accuracy: %.3f\n",
			name, p.Wins, p.Shots, p.Hits, p.Sunk, accuracy)
	}
}

func setupLogging(level string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if os.Getenv("APP_ENV") == "production" {
		// JSON output for production
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
