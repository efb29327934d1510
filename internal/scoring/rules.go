// Package scoring maps five dice to the points each category awards.
package scoring

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/models"
)

// Fixed awards for the lower-section patterns
const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YahtzeeScore       = 50
)

// Rules computes the score a hand earns in a category
type Rules interface {
	ScoreFor(category models.Category, values [dice.Count]int) (int, error)
}

// Standard implements the classic rule set
type Standard struct{}

// ScoreFor implements Rules
func (Standard) ScoreFor(category models.Category, values [dice.Count]int) (int, error) {
	return ScoreFor(category, values)
}

// ScoreFor returns the score values earn in category. It has no side effects.
func ScoreFor(category models.Category, values [dice.Count]int) (int, error) {
	counts, err := faceCounts(values)
	if err != nil {
		return 0, err
	}

	if face := category.Face(); face > 0 {
		return face * counts[face], nil
	}

	switch category {
	case models.CategoryThreeOfAKind:
		if maxCount(counts) >= 3 {
			return sum(values), nil
		}
		return 0, nil
	case models.CategoryFourOfAKind:
		if maxCount(counts) >= 4 {
			return sum(values), nil
		}
		return 0, nil
	case models.CategoryFullHouse:
		if isFullHouse(counts) {
			return FullHouseScore, nil
		}
		return 0, nil
	case models.CategorySmallStraight:
		if longestRun(counts) >= 4 {
			return SmallStraightScore, nil
		}
		return 0, nil
	case models.CategoryLargeStraight:
		if longestRun(counts) >= 5 {
			return LargeStraightScore, nil
		}
		return 0, nil
	case models.CategoryYahtzee:
		if maxCount(counts) == dice.Count {
			return YahtzeeScore, nil
		}
		return 0, nil
	case models.CategoryChance:
		return sum(values), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
}

// Potential scores values against each of the given categories. Categories
// the rules do not know are left out.
func Potential(rules Rules, values [dice.Count]int, categories []models.Category) (map[models.Category]int, error) {
	out := make(map[models.Category]int, len(categories))
	for _, c := range categories {
		score, err := rules.ScoreFor(c, values)
		if err != nil {
			if errors.Is(err, ErrInvalidDieValue) {
				return nil, err
			}
			continue
		}
		out[c] = score
	}
	return out, nil
}

// faceCounts indexes by face value; index 0 is unused
func faceCounts(values [dice.Count]int) ([dice.Sides + 1]int, error) {
	var counts [dice.Sides + 1]int
	for _, v := range values {
		if v < 1 || v > dice.Sides {
			return counts, fmt.Errorf("%w: got %d", ErrInvalidDieValue, v)
		}
		counts[v]++
	}
	return counts, nil
}

func sum(values [dice.Count]int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func maxCount(counts [dice.Sides + 1]int) int {
	best := 0
	for _, c := range counts {
		if c > best {
			best = c
		}
	}
	return best
}

// isFullHouse requires exactly one pair and one triple, so five of a kind
// does not qualify
func isFullHouse(counts [dice.Sides + 1]int) bool {
	pair, triple := false, false
	for _, c := range counts[1:] {
		switch c {
		case 0:
		case 2:
			pair = true
		case 3:
			triple = true
		default:
			return false
		}
	}
	return pair && triple
}

// longestRun counts consecutive distinct faces, so duplicates collapse
func longestRun(counts [dice.Sides + 1]int) int {
	best, run := 0, 0
	for face := 1; face <= dice.Sides; face++ {
		if counts[face] == 0 {
			run = 0
			continue
		}
		run++
		if run > best {
			best = run
		}
	}
	return best
}
