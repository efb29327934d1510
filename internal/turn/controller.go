// Package turn runs a single turn: up to three rolls, freezing dice in
// between, and committing the hand to one category.
package turn

import (
	"fmt"

	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scorecard"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// MaxRolls is the number of rolls allowed in a turn
const MaxRolls = 3

// Config holds the collaborators a turn works with
type Config struct {
	// Dice is the hand for this turn. It is expected to be reset.
	Dice *dice.Set

	// Scorecard receives the committed score
	Scorecard *scorecard.Scorecard

	// Rules computes the score for the chosen category
	Rules scoring.Rules
}

// Controller is the state machine for one turn
type Controller struct {
	dice           *dice.Set
	card           *scorecard.Scorecard
	rules          scoring.Rules
	state          models.TurnState
	rollsRemaining int
}

// New opens a turn in the awaiting-roll state
func New(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Dice == nil {
		return nil, ErrNilDice
	}
	if cfg.Scorecard == nil {
		return nil, ErrNilScorecard
	}
	if cfg.Rules == nil {
		return nil, ErrNilRules
	}

	return &Controller{
		dice:           cfg.Dice,
		card:           cfg.Scorecard,
		rules:          cfg.Rules,
		state:          models.TurnStateAwaitingRoll,
		rollsRemaining: MaxRolls,
	}, nil
}

// State returns the current turn state
func (c *Controller) State() models.TurnState {
	return c.state
}

// RollsRemaining returns how many rolls are left
func (c *Controller) RollsRemaining() int {
	return c.rollsRemaining
}

// Roll rerolls every unfrozen die
func (c *Controller) Roll() error {
	if c.state == models.TurnStateScored {
		return ErrTurnOver
	}
	if c.rollsRemaining <= 0 {
		return ErrNoRollsRemaining
	}

	if err := c.dice.Roll(); err != nil {
		return fmt.Errorf("failed to roll dice: %w", err)
	}

	c.rollsRemaining--
	c.state = models.TurnStateRolled
	return nil
}

// ToggleFreeze flips whether the die at index is held for the next roll
// and returns the new flag
func (c *Controller) ToggleFreeze(index int) (bool, error) {
	switch c.state {
	case models.TurnStateAwaitingRoll:
		return false, ErrNotYetRolled
	case models.TurnStateScored:
		return false, ErrTurnOver
	}

	return c.dice.ToggleFreeze(index)
}

// SelectCategory scores the current dice in category, commits the result
// and ends the turn. It returns the committed score.
func (c *Controller) SelectCategory(category models.Category) (int, error) {
	switch c.state {
	case models.TurnStateAwaitingRoll:
		return 0, ErrNotYetRolled
	case models.TurnStateScored:
		return 0, ErrTurnOver
	}

	if c.card.IsFilled(category) {
		return 0, fmt.Errorf("%w: %s", ErrCategoryUnavailable, category.DisplayName())
	}

	score, err := c.rules.ScoreFor(category, c.dice.Values())
	if err != nil {
		return 0, err
	}

	if err := c.card.Commit(category, score); err != nil {
		return 0, err
	}

	c.state = models.TurnStateScored
	return score, nil
}
