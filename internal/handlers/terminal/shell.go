// Package terminal is the interactive front end: it draws the dice and the
// scorecard and turns menu choices into game service calls.
package terminal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/services/game"
	"github.com/KirkDiggler/yahtzee/internal/services/messaging"
	"github.com/pterm/pterm"
)

// Config holds the configuration for the shell
type Config struct {
	// GameService runs the game
	GameService game.Service

	// Messaging adds commentary after rolls and scores. Optional.
	Messaging messaging.Service

	// Prompter reads the player's choices. Defaults to PtermPrompter.
	Prompter Prompter

	// Out receives the rendered board. Defaults to os.Stdout.
	Out io.Writer

	// PlayerName is passed to the service when the game starts
	PlayerName string

	Logger *slog.Logger
}

// Shell plays one game in the terminal
type Shell struct {
	gameService game.Service
	messaging   messaging.Service
	prompter    Prompter
	out         io.Writer
	playerName  string
	logger      *slog.Logger
}

// New creates a new shell
func New(cfg *Config) (*Shell, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	prompter := cfg.Prompter
	if prompter == nil {
		prompter = PtermPrompter{}
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Shell{
		gameService: cfg.GameService,
		messaging:   cfg.Messaging,
		prompter:    prompter,
		out:         out,
		playerName:  cfg.PlayerName,
		logger:      logger,
	}, nil
}

// Run starts a game and plays it until the scorecard is full or the player
// quits. Cancelling ctx abandons the game.
func (s *Shell) Run(ctx context.Context) error {
	started, err := s.gameService.StartGame(ctx, &game.StartGameInput{
		PlayerName: s.playerName,
	})
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	gameID := started.GameID

	for {
		if err := ctx.Err(); err != nil {
			s.quit(context.WithoutCancel(ctx), gameID)
			return err
		}

		current, err := s.gameService.GetGame(ctx, &game.GetGameInput{GameID: gameID})
		if err != nil {
			return fmt.Errorf("failed to get game: %w", err)
		}
		if err := s.drawBoard(current); err != nil {
			return err
		}

		action, err := choose(s.prompter, "What next?", mainMenu(current.Game))
		if err != nil {
			s.quit(ctx, gameID)
			return fmt.Errorf("failed to read choice: %w", err)
		}

		done, err := s.handle(ctx, gameID, action, current)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// handle performs one menu action. It reports done once the game has ended.
func (s *Shell) handle(ctx context.Context, gameID, action string, current *game.GetGameOutput) (bool, error) {
	switch action {
	case ActionRoll:
		output, err := s.gameService.RollDice(ctx, &game.RollDiceInput{GameID: gameID})
		if err != nil {
			s.warn(err)
			return false, nil
		}
		s.commentOnRoll(ctx, output.Values)

	case ActionFreeze:
		index, err := choose(s.prompter, "Which die?", diceMenu(current.Game))
		if err != nil {
			return false, fmt.Errorf("failed to read choice: %w", err)
		}
		if index < 0 {
			return false, nil
		}
		_, err = s.gameService.ToggleFreeze(ctx, &game.ToggleFreezeInput{
			GameID:   gameID,
			DieIndex: index,
		})
		s.warn(err)

	case ActionScore:
		category, err := choose(s.prompter, "Score which category?", categoryMenu(current))
		if err != nil {
			return false, fmt.Errorf("failed to read choice: %w", err)
		}
		if category == "" {
			return false, nil
		}
		output, err := s.gameService.SelectCategory(ctx, &game.SelectCategoryInput{
			GameID:   gameID,
			Category: category,
		})
		if err != nil {
			s.warn(err)
			return false, nil
		}
		pterm.Fprintln(s.out, pterm.Success.Sprintf("%s scored %d", category.DisplayName(), output.Score))
		s.commentOnScore(ctx, category, output.Score)
		if output.GameOver {
			return true, s.finish(ctx, output)
		}

	case ActionQuit:
		s.quit(ctx, gameID)
		pterm.Fprintln(s.out, pterm.Info.Sprint("Game abandoned."))
		return true, nil
	}

	return false, nil
}

func (s *Shell) drawBoard(current *game.GetGameOutput) error {
	table, err := renderScorecard(current.Game, current.Potential)
	if err != nil {
		return fmt.Errorf("failed to render scorecard: %w", err)
	}

	pterm.Fprintln(s.out, table)
	pterm.Fprintln(s.out, renderStatus(current.Game))
	pterm.Fprintln(s.out, renderDice(current.Game.Dice))
	return nil
}

func (s *Shell) finish(ctx context.Context, output *game.SelectCategoryOutput) error {
	table, err := renderScorecard(output.Game, nil)
	if err != nil {
		return fmt.Errorf("failed to render scorecard: %w", err)
	}
	pterm.Fprintln(s.out, table)
	pterm.Fprintln(s.out, pterm.Success.Sprintf("Game over! Final total: %d", output.FinalTotal))

	scores, err := s.gameService.GetHighScores(ctx, &game.GetHighScoresInput{})
	if err != nil {
		// The game itself is finished; a missing board is not fatal
		s.logger.Warn("failed to load high scores", "error", err)
		return nil
	}

	board, err := renderHighScores(scores.Leaderboard)
	if err != nil {
		return fmt.Errorf("failed to render high scores: %w", err)
	}
	pterm.Fprintln(s.out, board)
	s.commentOnGameOver(ctx, output, scores.Leaderboard)
	return nil
}

func (s *Shell) commentOnRoll(ctx context.Context, values []int) {
	if s.messaging == nil {
		return
	}
	msg, err := s.messaging.GetRollMessage(ctx, &messaging.GetRollMessageInput{
		PlayerName: s.playerName,
		Values:     values,
	})
	if err != nil {
		s.logger.Debug("roll message", "error", err)
		return
	}
	if msg.Message != "" {
		pterm.Fprintln(s.out, pterm.Info.Sprint(msg.Message))
	}
}

func (s *Shell) commentOnScore(ctx context.Context, category models.Category, score int) {
	if s.messaging == nil {
		return
	}
	msg, err := s.messaging.GetScoreMessage(ctx, &messaging.GetScoreMessageInput{
		PlayerName: s.playerName,
		Category:   category,
		Score:      score,
	})
	if err != nil {
		s.logger.Debug("score message", "error", err)
		return
	}
	pterm.Fprintln(s.out, pterm.Info.Sprint(msg.Message))
}

func (s *Shell) commentOnGameOver(ctx context.Context, output *game.SelectCategoryOutput, board *models.Leaderboard) {
	if s.messaging == nil {
		return
	}
	msg, err := s.messaging.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
		PlayerName: s.playerName,
		FinalTotal: output.FinalTotal,
		Rank:       rankOf(board, output.Game.ID),
	})
	if err != nil {
		s.logger.Debug("game over message", "error", err)
		return
	}
	pterm.Fprintln(s.out, pterm.Success.Sprintf("%s %s", msg.Title, msg.Message))
}

// rankOf finds gameID on the board, returning zero when it did not place
func rankOf(board *models.Leaderboard, gameID string) int {
	if board == nil {
		return 0
	}
	for _, e := range board.Entries {
		if e.Result != nil && e.Result.ID == gameID {
			return e.Rank
		}
	}
	return 0
}

func (s *Shell) quit(ctx context.Context, gameID string) {
	if _, err := s.gameService.QuitGame(ctx, &game.QuitGameInput{GameID: gameID}); err != nil {
		s.logger.Debug("quit game", "game_id", gameID, "error", err)
	}
}

// warn prints a recoverable error so the player can try again
func (s *Shell) warn(err error) {
	if err == nil {
		return
	}
	s.logger.Debug("action rejected", "error", err)
	pterm.Fprintln(s.out, pterm.Warning.Sprint(describeError(err)))
}

func mainMenu(g *models.Game) []menuOption[string] {
	var options []menuOption[string]
	if g.RollsRemaining > 0 && g.TurnState != models.TurnStateScored {
		options = append(options, menuOption[string]{ActionRoll, ActionRoll})
	}
	if g.TurnState == models.TurnStateRolled {
		options = append(options,
			menuOption[string]{ActionFreeze, ActionFreeze},
			menuOption[string]{ActionScore, ActionScore},
		)
	}
	return append(options, menuOption[string]{ActionQuit, ActionQuit})
}

// diceMenu offers each die by 1-based position; Back maps to -1
func diceMenu(g *models.Game) []menuOption[int] {
	options := make([]menuOption[int], 0, len(g.Dice)+1)
	for i, d := range g.Dice {
		options = append(options, menuOption[int]{
			label: fmt.Sprintf("Die %d: %s", i+1, renderDie(d)),
			value: i,
		})
	}
	return append(options, menuOption[int]{ActionBack, -1})
}

// categoryMenu offers the open categories with their preview scores; Back
// maps to the empty category
func categoryMenu(current *game.GetGameOutput) []menuOption[models.Category] {
	var options []menuOption[models.Category]
	for _, c := range models.AllCategories() {
		if _, filled := current.Game.Scores[c]; filled {
			continue
		}
		options = append(options, menuOption[models.Category]{
			label: fmt.Sprintf("%s (%d)", c.DisplayName(), current.Potential[c]),
			value: c,
		})
	}
	return append(options, menuOption[models.Category]{ActionBack, ""})
}
