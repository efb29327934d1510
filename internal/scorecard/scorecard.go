package scorecard

import (
	"fmt"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

type entry struct {
	score  int
	filled bool
}

// Scorecard records the committed score of each category for one game.
// The set of categories is fixed at construction and a category can be
// committed only once.
type Scorecard struct {
	entries map[models.Category]*entry
}

// New creates a scorecard with every category empty
func New() *Scorecard {
	entries := make(map[models.Category]*entry)
	for _, c := range models.AllCategories() {
		entries[c] = &entry{}
	}

	return &Scorecard{entries: entries}
}

// IsFilled reports whether category holds a committed score
func (s *Scorecard) IsFilled(category models.Category) bool {
	e, ok := s.entries[category]
	return ok && e.filled
}

// Commit stores score in category permanently
func (s *Scorecard) Commit(category models.Category, score int) error {
	e, ok := s.entries[category]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if e.filled {
		return fmt.Errorf("%w: %s", ErrAlreadyFilled, category.DisplayName())
	}

	e.score = score
	e.filled = true
	return nil
}

// Score returns the committed score of category and whether it is filled
func (s *Scorecard) Score(category models.Category) (int, bool) {
	e, ok := s.entries[category]
	if !ok || !e.filled {
		return 0, false
	}
	return e.score, true
}

// IsComplete reports whether every category is filled
func (s *Scorecard) IsComplete() bool {
	for _, e := range s.entries {
		if !e.filled {
			return false
		}
	}
	return true
}

// Total sums the committed scores. Empty categories count as zero.
func (s *Scorecard) Total() int {
	total := 0
	for _, e := range s.entries {
		if e.filled {
			total += e.score
		}
	}
	return total
}

// Scores returns a copy of the committed scores
func (s *Scorecard) Scores() map[models.Category]int {
	out := make(map[models.Category]int)
	for c, e := range s.entries {
		if e.filled {
			out[c] = e.score
		}
	}
	return out
}

// Open lists the empty categories in scorecard order
func (s *Scorecard) Open() []models.Category {
	var open []models.Category
	for _, c := range models.AllCategories() {
		if !s.IsFilled(c) {
			open = append(open, c)
		}
	}
	return open
}
