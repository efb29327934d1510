package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/yahtzee/internal/dice Roller

// Roller is the source of randomness for a die roll
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int
}

// RandomRoller rolls dice using a math/rand source
type RandomRoller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = Sides
	}
	return r.random.Intn(sides) + 1
}
