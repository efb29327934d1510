package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/models"
	resultRepo "github.com/KirkDiggler/yahtzee/internal/repositories/result"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

const defaultPlayerName = "player"

// service implements the Service interface. Games live in memory for the
// life of the process; a single player drives them one call at a time.
type service struct {
	playerName     string
	highScoreLimit int
	resultRepo     resultRepo.Repository
	diceRoller     dice.Roller
	rules          scoring.Rules
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	logger         *slog.Logger
	games          map[string]*session
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	rules := cfg.Rules
	if rules == nil {
		rules = scoring.Standard{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	playerName := cfg.PlayerName
	if playerName == "" {
		playerName = defaultPlayerName
	}

	highScoreLimit := cfg.HighScoreLimit
	if highScoreLimit <= 0 {
		highScoreLimit = resultRepo.DefaultHighScoreLimit
	}

	return &service{
		playerName:     playerName,
		highScoreLimit: highScoreLimit,
		resultRepo:     cfg.ResultRepo,
		diceRoller:     cfg.DiceRoller,
		rules:          rules,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		logger:         logger,
		games:          make(map[string]*session),
	}, nil
}

// StartGame opens a new game with an empty scorecard and its first turn
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	playerName := s.playerName
	if input != nil && input.PlayerName != "" {
		playerName = input.PlayerName
	}

	gameID := s.uuidGenerator.NewUUID()
	sess, err := newSession(gameID, playerName, s.diceRoller, s.rules, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}
	s.games[gameID] = sess

	s.logger.Info("game started", "game_id", gameID, "player", playerName)

	return &StartGameOutput{
		GameID: gameID,
		Game:   sess.snapshot(),
	}, nil
}

// RollDice rolls every unfrozen die in the current turn
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, err := s.activeSession(input.GameID)
	if err != nil {
		return nil, err
	}

	if err := sess.turn.Roll(); err != nil {
		return nil, err
	}
	sess.updatedAt = s.clock.Now()

	game := sess.snapshot()
	s.logger.Debug("dice rolled",
		"game_id", sess.id,
		"turn", sess.turnNumber,
		"values", game.Values(),
		"rolls_remaining", game.RollsRemaining)

	return &RollDiceOutput{
		Values:         game.Values(),
		RollsRemaining: game.RollsRemaining,
		Game:           game,
	}, nil
}

// ToggleFreeze holds or releases one die for the next roll
func (s *service) ToggleFreeze(ctx context.Context, input *ToggleFreezeInput) (*ToggleFreezeOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, err := s.activeSession(input.GameID)
	if err != nil {
		return nil, err
	}

	frozen, err := sess.turn.ToggleFreeze(input.DieIndex)
	if err != nil {
		return nil, err
	}
	sess.updatedAt = s.clock.Now()

	return &ToggleFreezeOutput{
		Frozen: frozen,
		Game:   sess.snapshot(),
	}, nil
}

// SelectCategory scores the current dice, ends the turn and advances the game
func (s *service) SelectCategory(ctx context.Context, input *SelectCategoryInput) (*SelectCategoryOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, err := s.activeSession(input.GameID)
	if err != nil {
		return nil, err
	}

	score, err := sess.turn.SelectCategory(input.Category)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("turn scored",
		"game_id", sess.id,
		"turn", sess.turnNumber,
		"category", input.Category,
		"score", score)

	if err := sess.endTurnAndAdvance(); err != nil {
		return nil, fmt.Errorf("failed to advance game: %w", err)
	}
	now := s.clock.Now()
	sess.updatedAt = now

	output := &SelectCategoryOutput{
		Score: score,
	}

	if sess.isGameOver() {
		total, _ := sess.finalTotal()
		output.GameOver = true
		output.FinalTotal = total
		output.ResultSaved = s.saveResult(ctx, sess.result(now))

		s.logger.Info("game over", "game_id", sess.id, "total", total)
	}

	output.Game = sess.snapshot()
	return output, nil
}

// QuitGame abandons a game before it is complete
func (s *service) QuitGame(ctx context.Context, input *QuitGameInput) (*QuitGameOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, ok := s.games[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	if err := sess.quit(); err != nil {
		return nil, err
	}
	sess.updatedAt = s.clock.Now()

	s.logger.Info("game abandoned", "game_id", sess.id, "turn", sess.turnNumber)

	return &QuitGameOutput{
		Game: sess.snapshot(),
	}, nil
}

// GetGame returns a snapshot of a game for display
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, ok := s.games[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	potential, err := sess.potential()
	if err != nil {
		return nil, fmt.Errorf("failed to preview scores: %w", err)
	}

	return &GetGameOutput{
		Game:      sess.snapshot(),
		Potential: potential,
	}, nil
}

// GetFinalTotal returns the final score of a finished game
func (s *service) GetFinalTotal(ctx context.Context, input *GetFinalTotalInput) (*GetFinalTotalOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, ok := s.games[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	total, err := sess.finalTotal()
	if err != nil {
		return nil, err
	}

	return &GetFinalTotalOutput{
		Total: total,
	}, nil
}

// GetHighScores returns the best completed games
func (s *service) GetHighScores(ctx context.Context, input *GetHighScoresInput) (*GetHighScoresOutput, error) {
	leaderboard := &models.Leaderboard{
		Entries: []*models.LeaderboardEntry{},
	}

	if s.resultRepo == nil {
		return &GetHighScoresOutput{Leaderboard: leaderboard}, nil
	}

	limit := s.highScoreLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	output, err := s.resultRepo.GetHighScores(ctx, &resultRepo.GetHighScoresInput{
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get high scores: %w", err)
	}

	for i, result := range output.Results {
		leaderboard.Entries = append(leaderboard.Entries, &models.LeaderboardEntry{
			Rank:   i + 1,
			Result: result,
		})
	}

	return &GetHighScoresOutput{
		Leaderboard: leaderboard,
	}, nil
}

// activeSession looks up a game that can still be played
func (s *service) activeSession(gameID string) (*session, error) {
	sess, ok := s.games[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	if sess.status != models.GameStatusActive {
		return nil, ErrGameNotActive
	}

	return sess, nil
}

// saveResult records a completed game. A failure is logged and does not
// change the outcome of the game.
func (s *service) saveResult(ctx context.Context, result *models.GameResult) bool {
	if s.resultRepo == nil {
		return false
	}

	err := s.resultRepo.SaveResult(ctx, &resultRepo.SaveResultInput{
		Result: result,
	})
	if err != nil {
		s.logger.Warn("failed to save game result", "game_id", result.ID, "error", err)
		return false
	}

	return true
}
