package models

// Die is one six-sided die in the player's hand
type Die struct {
	// Value is the face showing, 1 through 6. Zero means not rolled yet.
	Value int

	// Frozen dice are skipped by the next roll
	Frozen bool
}

// Rolled reports whether the die has a face value
func (d Die) Rolled() bool {
	return d.Value != 0
}
