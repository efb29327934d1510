package game

import (
	"time"

	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scorecard"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
	"github.com/KirkDiggler/yahtzee/internal/turn"
)

// session is one player's game: a scorecard, a hand of dice and the turn
// currently being played. It keeps no history beyond the active turn.
type session struct {
	id         string
	playerName string
	status     models.GameStatus
	card       *scorecard.Scorecard
	dice       *dice.Set
	rules      scoring.Rules
	turn       *turn.Controller
	turnNumber int
	createdAt  time.Time
	updatedAt  time.Time
}

// newSession starts a game with an empty scorecard and opens the first turn
func newSession(id, playerName string, roller dice.Roller, rules scoring.Rules, now time.Time) (*session, error) {
	set, err := dice.NewSet(roller)
	if err != nil {
		return nil, err
	}

	sess := &session{
		id:         id,
		playerName: playerName,
		status:     models.GameStatusActive,
		card:       scorecard.New(),
		dice:       set,
		rules:      rules,
		createdAt:  now,
		updatedAt:  now,
	}

	if err := sess.openTurn(); err != nil {
		return nil, err
	}

	return sess, nil
}

func (s *session) openTurn() error {
	s.dice.Reset()

	t, err := turn.New(&turn.Config{
		Dice:      s.dice,
		Scorecard: s.card,
		Rules:     s.rules,
	})
	if err != nil {
		return err
	}

	s.turn = t
	s.turnNumber++
	return nil
}

// endTurnAndAdvance closes a scored turn. The game ends once the scorecard
// is complete, otherwise the next turn opens with a fresh hand.
func (s *session) endTurnAndAdvance() error {
	if s.status != models.GameStatusActive {
		return ErrGameNotActive
	}
	if s.turn.State() != models.TurnStateScored {
		return ErrTurnInProgress
	}

	if s.card.IsComplete() {
		s.status = models.GameStatusOver
		return nil
	}

	return s.openTurn()
}

// quit abandons the game and discards the active turn
func (s *session) quit() error {
	if s.status != models.GameStatusActive {
		return ErrGameNotActive
	}

	s.status = models.GameStatusQuit
	s.turn = nil
	s.dice.Reset()
	return nil
}

func (s *session) isGameOver() bool {
	return s.status == models.GameStatusOver
}

func (s *session) finalTotal() (int, error) {
	if !s.isGameOver() {
		return 0, ErrGameNotOver
	}
	return s.card.Total(), nil
}

// potential previews each open category against the current dice. It is
// empty until the turn has been rolled.
func (s *session) potential() (map[models.Category]int, error) {
	if s.turn == nil || s.turn.State() != models.TurnStateRolled {
		return map[models.Category]int{}, nil
	}
	return scoring.Potential(s.rules, s.dice.Values(), s.card.Open())
}

func (s *session) result(completedAt time.Time) *models.GameResult {
	return &models.GameResult{
		ID:          s.id,
		PlayerName:  s.playerName,
		Scores:      s.card.Scores(),
		Total:       s.card.Total(),
		StartedAt:   s.createdAt,
		CompletedAt: completedAt,
	}
}

func (s *session) snapshot() *models.Game {
	game := &models.Game{
		ID:        s.id,
		Status:    s.status,
		Turn:      s.turnNumber,
		Dice:      s.dice.Dice(),
		Scores:    s.card.Scores(),
		Total:     s.card.Total(),
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}

	if s.turn != nil {
		game.TurnState = s.turn.State()
		game.RollsRemaining = s.turn.RollsRemaining()
	}

	if s.isGameOver() {
		game.FinalTotal = game.Total
	}

	return game
}
