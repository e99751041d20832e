package game

// Card is a single project card. Cards are stored as negative integers
// representing debt directly: the "-30 project" is the value -30. Scoring
// sums raw magnitudes, so no sign juggling happens anywhere else.
type Card int

const (
	// CardMin and CardMax bound the project card range (inclusive). There is
	// exactly one card per value, 25 cards in total.
	CardMin Card = -50
	CardMax Card = -26

	// TotalCards is the full range size before the hidden card is set aside.
	TotalCards = int(CardMax-CardMin) + 1
)

// Magnitude returns the absolute debt value of the card.
func (c Card) Magnitude() int {
	if c < 0 {
		return int(-c)
	}
	return int(c)
}

// ValidCard reports whether v falls inside the playable card range.
func ValidCard(c Card) bool {
	return c >= CardMin && c <= CardMax
}
