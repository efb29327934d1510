package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scorecard"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
	"github.com/KirkDiggler/yahtzee/internal/services/game"
	"github.com/KirkDiggler/yahtzee/internal/turn"
	"github.com/pterm/pterm"
)

// renderDie shows a frozen die as < n > and a free one as [ n ].
// An unrolled die has a blank face.
func renderDie(d models.Die) string {
	left, right := "[", "]"
	if d.Frozen {
		left, right = "<", ">"
	}

	face := " "
	if d.Rolled() {
		face = strconv.Itoa(d.Value)
	}

	return fmt.Sprintf("%s %s %s", left, face, right)
}

func renderDice(dice []models.Die) string {
	parts := make([]string, len(dice))
	for i, d := range dice {
		parts[i] = renderDie(d)
	}
	return strings.Join(parts, " ")
}

func renderStatus(g *models.Game) string {
	return fmt.Sprintf("Turn %d of %d  |  Rolls left: %d  |  Total: %d",
		g.Turn, len(models.AllCategories()), g.RollsRemaining, g.Total)
}

// renderScorecard lays out every category with its committed score. Open
// categories show the score the current dice would earn in parentheses.
func renderScorecard(g *models.Game, potential map[models.Category]int) (string, error) {
	data := pterm.TableData{{"Category", "Score"}}

	for _, c := range models.AllCategories() {
		cell := ""
		if score, ok := g.Scores[c]; ok {
			cell = strconv.Itoa(score)
		} else if score, ok := potential[c]; ok {
			cell = fmt.Sprintf("(%d)", score)
		}
		data = append(data, []string{c.DisplayName(), cell})
	}
	data = append(data, []string{"Total", strconv.Itoa(g.Total)})

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func renderHighScores(board *models.Leaderboard) (string, error) {
	if board == nil || len(board.Entries) == 0 {
		return "No high scores yet.", nil
	}

	data := pterm.TableData{{"#", "Player", "Total", "Completed"}}
	for _, e := range board.Entries {
		data = append(data, []string{
			strconv.Itoa(e.Rank),
			e.Result.PlayerName,
			strconv.Itoa(e.Result.Total),
			e.Result.CompletedAt.Format("2006-01-02"),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// describeError turns a recoverable game error into a hint for the player
func describeError(err error) string {
	switch {
	case errors.Is(err, dice.ErrOutOfRange):
		return fmt.Sprintf("Pick a die between 1 and %d.", dice.Count)
	case errors.Is(err, turn.ErrNoRollsRemaining):
		return "No rolls left this turn. Pick a category to score."
	case errors.Is(err, turn.ErrNotYetRolled):
		return "Roll the dice first."
	case errors.Is(err, turn.ErrCategoryUnavailable), errors.Is(err, scorecard.ErrAlreadyFilled):
		return "That category is already filled. Pick another one."
	case errors.Is(err, scoring.ErrUnknownCategory), errors.Is(err, scorecard.ErrUnknownCategory):
		return "That is not a category on the scorecard."
	case errors.Is(err, game.ErrGameNotActive):
		return "This game is over."
	}
	return err.Error()
}
