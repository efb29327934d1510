package models

// Category identifies one of the 13 scoring slots on a scorecard
type Category string

const (
	CategoryOnes   Category = "ones"
	CategoryTwos   Category = "twos"
	CategoryThrees Category = "threes"
	CategoryFours  Category = "fours"
	CategoryFives  Category = "fives"
	CategorySixes  Category = "sixes"

	CategoryThreeOfAKind  Category = "three_of_a_kind"
	CategoryFourOfAKind   Category = "four_of_a_kind"
	CategoryFullHouse     Category = "full_house"
	CategorySmallStraight Category = "small_straight"
	CategoryLargeStraight Category = "large_straight"
	CategoryYahtzee       Category = "yahtzee"
	CategoryChance        Category = "chance"
)

// Section groups categories the way a printed scorecard does
type Section string

const (
	// SectionUpper holds the face-count categories (Aces through Sixes)
	SectionUpper Section = "upper"

	// SectionLower holds the combination categories
	SectionLower Section = "lower"
)

var categoryOrder = []Category{
	CategoryOnes,
	CategoryTwos,
	CategoryThrees,
	CategoryFours,
	CategoryFives,
	CategorySixes,
	CategoryThreeOfAKind,
	CategoryFourOfAKind,
	CategoryFullHouse,
	CategorySmallStraight,
	CategoryLargeStraight,
	CategoryYahtzee,
	CategoryChance,
}

var categoryNames = map[Category]string{
	CategoryOnes:          "Aces",
	CategoryTwos:          "Twos",
	CategoryThrees:        "Threes",
	CategoryFours:         "Fours",
	CategoryFives:         "Fives",
	CategorySixes:         "Sixes",
	CategoryThreeOfAKind:  "3 of a Kind",
	CategoryFourOfAKind:   "4 of a Kind",
	CategoryFullHouse:     "Full House",
	CategorySmallStraight: "Small Straight",
	CategoryLargeStraight: "Large Straight",
	CategoryYahtzee:       "YAHTZEE",
	CategoryChance:        "Chance",
}

// AllCategories returns every category in scorecard order.
// The returned slice is a copy and may be modified by the caller.
func AllCategories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is one of the 13 known categories
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// DisplayName returns the label printed on the scorecard
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// Section returns which half of the scorecard the category lives in
func (c Category) Section() Section {
	if face := c.Face(); face > 0 {
		return SectionUpper
	}
	return SectionLower
}

// Face returns the die face counted by an upper-section category, or 0
// for lower-section categories.
func (c Category) Face() int {
	switch c {
	case CategoryOnes:
		return 1
	case CategoryTwos:
		return 2
	case CategoryThrees:
		return 3
	case CategoryFours:
		return 4
	case CategoryFives:
		return 5
	case CategorySixes:
		return 6
	}
	return 0
}
