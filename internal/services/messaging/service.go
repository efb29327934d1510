// Package messaging picks the commentary printed after rolls and scores.
package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// Totals used to grade a finished game
const (
	GreatGameTotal = 250
	GoodGameTotal  = 180
	PoorGameTotal  = 120
)

// notableHands are checked best first
var notableHands = []models.Category{
	models.CategoryYahtzee,
	models.CategoryLargeStraight,
	models.CategorySmallStraight,
	models.CategoryFullHouse,
	models.CategoryFourOfAKind,
}

// service implements the Service interface
type service struct {
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) Service {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// GetRollMessage implements Service
func (s *service) GetRollMessage(ctx context.Context, input *GetRollMessageInput) (*GetRollMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if len(input.Values) != dice.Count {
		return nil, ErrWrongDiceCount
	}

	var values [dice.Count]int
	copy(values[:], input.Values)

	for _, hand := range notableHands {
		score, err := scoring.ScoreFor(hand, values)
		if err != nil {
			return nil, fmt.Errorf("failed to read hand: %w", err)
		}
		if score == 0 {
			continue
		}

		return &GetRollMessageOutput{
			Message: s.pick(rollMessages(hand, input.PlayerName)),
			Hand:    hand,
			Tone:    ToneCelebration,
		}, nil
	}

	return &GetRollMessageOutput{Tone: ToneNeutral}, nil
}

// GetScoreMessage implements Service
func (s *service) GetScoreMessage(ctx context.Context, input *GetScoreMessageInput) (*GetScoreMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	switch {
	case input.Category == models.CategoryYahtzee && input.Score > 0:
		return &GetScoreMessageOutput{
			Message: s.pick([]string{
				fmt.Sprintf("YAHTZEE! %s just banked %d points.", input.PlayerName, input.Score),
				fmt.Sprintf("Five of a kind! Frame that scorecard, %s.", input.PlayerName),
				"Fifty points. The dice will talk about this one for years.",
			}),
			Tone: ToneCelebration,
		}, nil

	case input.Score == 0:
		return &GetScoreMessageOutput{
			Message: s.pick([]string{
				fmt.Sprintf("A zero in %s. Sometimes you have to take one for the team.", input.Category.DisplayName()),
				fmt.Sprintf("Scratching %s. Better there than somewhere that counts.", input.Category.DisplayName()),
				fmt.Sprintf("Chin up, %s. There are still other boxes to fill.", input.PlayerName),
			}),
			Tone: ToneEncouraging,
		}, nil
	}

	return &GetScoreMessageOutput{
		Message: fmt.Sprintf("%d points in %s.", input.Score, input.Category.DisplayName()),
		Tone:    ToneNeutral,
	}, nil
}

// GetGameOverMessage implements Service
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	output := &GetGameOverMessageOutput{Tone: ToneNeutral}

	switch {
	case input.FinalTotal >= GreatGameTotal:
		output.Title = "Legendary!"
		output.Tone = ToneCelebration
		output.Message = s.pick([]string{
			fmt.Sprintf("%d points. %s has clearly done this before.", input.FinalTotal, input.PlayerName),
			fmt.Sprintf("A %d-point game. The dice bow to you, %s.", input.FinalTotal, input.PlayerName),
		})
	case input.FinalTotal >= GoodGameTotal:
		output.Title = "Well played"
		output.Tone = ToneCelebration
		output.Message = s.pick([]string{
			fmt.Sprintf("%d points is a solid game, %s.", input.FinalTotal, input.PlayerName),
			fmt.Sprintf("Nicely done, %s. %d points and a tidy scorecard.", input.PlayerName, input.FinalTotal),
		})
	case input.FinalTotal >= PoorGameTotal:
		output.Title = "Game over"
		output.Message = s.pick([]string{
			fmt.Sprintf("%d points. Respectable, %s.", input.FinalTotal, input.PlayerName),
			fmt.Sprintf("A %d-point finish. The next one could be the big one.", input.FinalTotal),
		})
	default:
		output.Title = "Rough game"
		output.Tone = ToneEncouraging
		output.Message = s.pick([]string{
			fmt.Sprintf("Only %d points. The dice owe you one, %s.", input.FinalTotal, input.PlayerName),
			fmt.Sprintf("%d points. Shake it off and roll again, %s.", input.FinalTotal, input.PlayerName),
		})
	}

	if input.Rank == 1 {
		output.Title = "New high score!"
		output.Tone = ToneCelebration
	} else if input.Rank > 1 {
		output.Message = fmt.Sprintf("%s That is good for #%d on the high-score table.", output.Message, input.Rank)
	}

	return output, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

func rollMessages(hand models.Category, playerName string) []string {
	switch hand {
	case models.CategoryYahtzee:
		return []string{
			"FIVE OF A KIND! Somebody check these dice.",
			fmt.Sprintf("That is a YAHTZEE, %s!", playerName),
		}
	case models.CategoryLargeStraight:
		return []string{
			"A large straight. Clean as a whistle.",
			fmt.Sprintf("Five in a row for %s!", playerName),
		}
	case models.CategorySmallStraight:
		return []string{
			"Four in a row. That is a small straight.",
			"Small straight on the table.",
		}
	case models.CategoryFullHouse:
		return []string{
			"Full house! A pair and three of a kind.",
			fmt.Sprintf("%s has a full house.", playerName),
		}
	}
	return []string{
		"Four of a kind. One more for a YAHTZEE.",
		fmt.Sprintf("Four of a kind, %s. Greedy or safe?", playerName),
	}
}
