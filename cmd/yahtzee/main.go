package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/config"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/handlers/terminal"
	"github.com/KirkDiggler/yahtzee/internal/repositories/result"
	gameService "github.com/KirkDiggler/yahtzee/internal/services/game"
	"github.com/KirkDiggler/yahtzee/internal/services/messaging"
	"github.com/pterm/pterm"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level, _ := cfg.PtermLevel()
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level)))
	slog.SetDefault(logger)

	var resultRepo result.Repository
	if cfg.HighScoresEnabled() {
		resultRepo = connectResults(cfg, logger)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		PlayerName:     cfg.PlayerName,
		HighScoreLimit: cfg.HighScoreLimit,
		ResultRepo:     resultRepo,
		DiceRoller:     dice.New(&dice.Config{Seed: cfg.Seed}),
		Clock:          clock.New(),
		UUIDGenerator:  uuid.New(),
		Logger:         logger,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	shell, err := terminal.New(&terminal.Config{
		GameService: gameSvc,
		Messaging:   messaging.New(&messaging.Config{Seed: cfg.Seed}),
		PlayerName:  cfg.PlayerName,
		Logger:      logger,
	})
	if err != nil {
		log.Fatalf("Failed to create terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := shell.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game ended with an error", "error", err)
		stop()
		os.Exit(1)
	}
}

// connectResults opens the high-score store. The game is still playable
// without it, so a connection failure only disables high scores.
func connectResults(cfg *config.Config, logger *slog.Logger) result.Repository {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	repo, err := result.NewRedis(&result.Config{RedisClient: redisClient})
	if err != nil {
		logger.Warn("high scores disabled: redis unreachable", "addr", cfg.RedisAddr, "error", err)
		_ = redisClient.Close()
		return nil
	}
	return repo
}
