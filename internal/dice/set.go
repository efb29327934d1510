package dice

import (
	"fmt"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

const (
	// Count is the number of dice in a hand
	Count = 5

	// Sides is the number of faces on each die
	Sides = 6
)

// Set is the hand of five dice used during a turn
type Set struct {
	roller Roller
	dice   [Count]models.Die
}

// NewSet creates a hand of unrolled, unfrozen dice
func NewSet(roller Roller) (*Set, error) {
	if roller == nil {
		return nil, ErrNilRoller
	}

	return &Set{roller: roller}, nil
}

// Roll gives every unfrozen die a new value. Frozen dice keep theirs.
// If the roller misbehaves the hand is left untouched.
func (s *Set) Roll() error {
	next := s.dice
	for i := range next {
		if next[i].Frozen {
			continue
		}

		value := s.roller.Roll(Sides)
		if value < 1 || value > Sides {
			return fmt.Errorf("%w: %d", ErrInvalidValue, value)
		}
		next[i].Value = value
	}

	s.dice = next
	return nil
}

// ToggleFreeze flips the frozen flag of the die at index and returns the
// new flag
func (s *Set) ToggleFreeze(index int) (bool, error) {
	if index < 0 || index >= Count {
		return false, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}

	s.dice[index].Frozen = !s.dice[index].Frozen
	return s.dice[index].Frozen, nil
}

// Reset clears values and freeze flags for a new turn
func (s *Set) Reset() {
	s.dice = [Count]models.Die{}
}

// Values returns the current face values in order
func (s *Set) Values() [Count]int {
	var values [Count]int
	for i, d := range s.dice {
		values[i] = d.Value
	}
	return values
}

// Dice returns a copy of the dice for display
func (s *Set) Dice() []models.Die {
	out := make([]models.Die, Count)
	copy(out, s.dice[:])
	return out
}
